package theme

import "github.com/wifak939/taskboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Delete         string
	ColumnBorder   string
	SelectedBorder string
	SelectedBg     string
	TaskBg         string
	DraggingBg     string
	DropTarget     string
	InfoFg         string
	InfoBg         string

	scheme = config.DefaultColorScheme()
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	scheme = colors

	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	TaskBg = colors.TaskBackground
	DraggingBg = colors.DraggingBg
	DropTarget = colors.DropTarget
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
}

// ColumnAccent returns the header color for the column at index i
func ColumnAccent(i int) string {
	return scheme.ColumnAccent(i)
}
