package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
}

func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles builds the list styles for a specific renderer, which decides
// the color profile the escape sequences are produced for.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Normal:   r.NewStyle(),
		Selected: r.NewStyle().Reverse(true),
	}
}
