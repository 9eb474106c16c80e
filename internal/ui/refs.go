package ui

import (
	"strings"

	"github.com/Johannes-Berggren/gco/internal/models"
	"github.com/charmbracelet/x/ansi"
)

// RefList is the scrollable ref list. The cursor never leaves
// [0, len(refs)-1] and does not wrap around.
type RefList struct {
	refs   []models.Ref
	cursor int
	offset int
	width  int
	height int
}

func NewRefList(refs []models.Ref) RefList {
	return RefList{refs: refs}
}

func (l *RefList) Len() int {
	return len(l.refs)
}

func (l *RefList) Cursor() int {
	return l.cursor
}

func (l *RefList) Down() {
	if l.cursor < len(l.refs)-1 {
		l.cursor++
		l.follow()
	}
}

func (l *RefList) Up() {
	if l.cursor > 0 {
		l.cursor--
		l.follow()
	}
}

func (l *RefList) Selected() (models.Ref, bool) {
	if l.cursor >= 0 && l.cursor < len(l.refs) {
		return l.refs[l.cursor], true
	}
	return models.Ref{}, false
}

// SetSize records the terminal size. A height of zero shows every ref.
func (l *RefList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.follow()
}

// follow keeps the cursor inside the visible window.
func (l *RefList) follow() {
	if l.height <= 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.height {
		l.offset = l.cursor - l.height + 1
	}
	if maxOffset := len(l.refs) - l.height; l.offset > maxOffset {
		l.offset = max(maxOffset, 0)
	}
}

func (l *RefList) window() (start, end int) {
	start = l.offset
	end = len(l.refs)
	if l.height > 0 && start+l.height < end {
		end = start + l.height
	}
	return start, end
}

func (l *RefList) View(styles Styles) string {
	start, end := l.window()

	var out strings.Builder
	for i := start; i < end; i++ {
		name := l.refs[i].Name
		if l.width > 0 {
			name = ansi.Truncate(name, l.width, "…")
		}

		if i == l.cursor {
			out.WriteString(styles.Selected.Render(name))
		} else {
			out.WriteString(styles.Normal.Render(name))
		}
		if i < end-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}
