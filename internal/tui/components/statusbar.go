package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/wifak939/taskboard/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Mode  string
	Hint  string // key hints for the current mode
	// Message is the latest notification, already styled
	Message string
}

// RenderStatusBar renders the mode badge and message on the left and the
// key hints on the right
func RenderStatusBar(props StatusBarProps) string {
	mode := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Padding(0, 1).
		Render(props.Mode)

	left := mode
	if props.Message != "" {
		left = lipgloss.JoinHorizontal(lipgloss.Top, mode, " ", props.Message)
	}
	right := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(props.Hint)

	gapWidth := props.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gapWidth < 1 {
		gapWidth = 1
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
