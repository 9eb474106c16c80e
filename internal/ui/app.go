package ui

import (
	"github.com/Johannes-Berggren/gco/internal/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionCheckout
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionCheckout:
		return "checkout"
	default:
		return "none"
	}
}

// Outcome is how the picker ended. Ref is only set for ActionCheckout.
type Outcome struct {
	Action Action
	Ref    models.Ref
}

// Model is the picker state machine. It keeps running until a quit or
// checkout key sets a terminal Outcome, then asks the program to exit.
// The checkout itself is left to the caller once the terminal is restored.
type Model struct {
	list    RefList
	keys    KeyMap
	styles  Styles
	outcome Outcome
}

func NewModel(refs []models.Ref) Model {
	return Model{
		list:   NewRefList(refs),
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
}

func (m Model) WithStyles(styles Styles) Model {
	m.styles = styles
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Terminated() {
			return m, nil
		}
		for _, k := range keystrokes(msg) {
			m.handleKey(k)
			if m.Terminated() {
				return m, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.list.Down()

	case key.Matches(msg, m.keys.Up):
		m.list.Up()

	case key.Matches(msg, m.keys.Checkout):
		if ref, ok := m.list.Selected(); ok {
			m.outcome = Outcome{Action: ActionCheckout, Ref: ref}
		}

	case key.Matches(msg, m.keys.Quit):
		m.outcome = Outcome{Action: ActionQuit}
	}
}

// keystrokes splits a multi-rune key message (fast typing, buffered input)
// into one message per rune. Pasted text is not treated as keystrokes.
func keystrokes(msg tea.KeyMsg) []tea.KeyMsg {
	if msg.Paste {
		return nil
	}
	if msg.Type != tea.KeyRunes || msg.Alt || len(msg.Runes) <= 1 {
		return []tea.KeyMsg{msg}
	}
	out := make([]tea.KeyMsg, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		out = append(out, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return out
}

func (m Model) View() string {
	if m.Terminated() {
		return ""
	}
	return m.list.View(m.styles)
}

func (m Model) Cursor() int {
	return m.list.Cursor()
}

func (m Model) Selected() (models.Ref, bool) {
	return m.list.Selected()
}

func (m Model) Outcome() Outcome {
	return m.outcome
}

func (m Model) Terminated() bool {
	return m.outcome.Action != ActionNone
}
