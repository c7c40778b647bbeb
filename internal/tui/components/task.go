package components

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/tui/theme"
)

// TaskProps describes how a single card is drawn
type TaskProps struct {
	Task     models.Task
	Width    int  // outer width of the card
	Selected bool // cursor is on this card
	Held     bool // card is being dragged
}

// RenderTask renders a single task as a card
//
//	╭────────────────────╮
//	│ {content, wrapped} │
//	╰────────────────────╯
func RenderTask(props TaskProps) string {
	bg := theme.TaskBg
	border := theme.ColumnBorder
	switch {
	case props.Held:
		bg = theme.DraggingBg
		border = theme.DropTarget
	case props.Selected:
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	inner := max(props.Width-taskChrome, 1)
	content := wordwrap.String(props.Task.Content, inner)

	return TaskStyle.
		Width(props.Width).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Render(content)
}
