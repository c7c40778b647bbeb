// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/wifak939/taskboard/internal/config/colors"
	"github.com/wifak939/taskboard/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of individual tasks as cards
	TaskStyle lipgloss.Style

	// TitleStyle defines the appearance of the app header
	TitleStyle lipgloss.Style

	// InputBoxStyle frames the new task input row
	InputBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// EmptyStyle is used for placeholders like "Drop tasks here"
	EmptyStyle lipgloss.Style

	// InfoBannerStyle defines the appearance of info notifications
	InfoBannerStyle lipgloss.Style

	// ErrorBannerStyle defines the appearance of error notifications
	ErrorBannerStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	theme.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1, 1, 1)

	TaskStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	EmptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Padding(1, 0)

	InfoBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InfoFg)).
		Background(lipgloss.Color(theme.InfoBg)).
		Padding(0, 1)

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.Delete)).
		Padding(0, 1)
}
