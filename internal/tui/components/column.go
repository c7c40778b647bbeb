package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/tui/theme"
)

// ColumnProps describes how a column and its cards are drawn
type ColumnProps struct {
	Column       models.Column
	Index        int  // display position, picks the header accent
	Selected     bool // cursor is in this column
	SelectedTask int  // index of the selected card when Selected
	DropTarget   bool // a drag is hovering this column
	Held         models.TaskID
	Width        int
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} {count}
//	{Task 1}
//	{Task 2}
//	...
//
// An empty column shows a "Drop tasks here" placeholder.
func RenderColumn(props ColumnProps) string {
	width := max(props.Width, MinColumnWidth)
	inner := width - columnChrome

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.ColumnAccent(props.Index))).
		Padding(0, 1).
		Render(fmt.Sprintf("%d", len(props.Column.Items)))
	name := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ColumnAccent(props.Index))).
		Render(props.Column.Name)
	header := lipgloss.JoinHorizontal(lipgloss.Center, name, " ", badge)

	parts := []string{header}
	if len(props.Column.Items) == 0 {
		parts = append(parts, EmptyStyle.Width(inner).Render(emptyPlaceholder))
	}
	for i, task := range props.Column.Items {
		parts = append(parts, RenderTask(TaskProps{
			Task:     task,
			Width:    inner,
			Selected: props.Selected && i == props.SelectedTask,
			Held:     props.Held != "" && task.ID == props.Held,
		}))
	}

	border := theme.ColumnBorder
	switch {
	case props.DropTarget:
		border = theme.DropTarget
	case props.Selected:
		border = theme.SelectedBorder
	}

	return ColumnStyle.
		Width(width).
		BorderForeground(lipgloss.Color(border)).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
