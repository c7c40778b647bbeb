package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/wifak939/taskboard/internal/tui/components"
	"github.com/wifak939/taskboard/internal/tui/state"
	"github.com/wifak939/taskboard/internal/tui/theme"
)

const helpWidth = 50

// View implements tea.Model
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.viewBoard()
	if m.uiState.Mode() != state.HelpMode {
		view.Content = base
		return view
	}

	help := components.RenderHelp(m.helpText(), helpWidth)
	x := max((m.uiState.Width()-lipgloss.Width(help))/2, 0)
	y := max((m.uiState.Height()-lipgloss.Height(help))/2, 0)

	canvas := lipgloss.NewCanvas(
		lipgloss.NewLayer(base),
		lipgloss.NewLayer(help).X(x).Y(y),
	)
	view.Content = canvas.Render()
	return view
}

// viewBoard renders header, input row, columns and status bar top to bottom
func (m Model) viewBoard() string {
	header := components.TitleStyle.Render("Task Board")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewInputRow(),
		m.viewColumns(),
		m.viewStatusBar(),
	)
}

// viewInputRow renders the new task input and its target column selector
func (m Model) viewInputRow() string {
	if m.uiState.Mode() != state.InputMode {
		hint := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render(fmt.Sprintf("%s  (press %s)", inputPlaceholder, m.config.KeyMappings.AddTask))
		return components.InputBoxStyle.
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Render(hint)
	}

	target, _ := m.columnAt(m.uiState.TargetColumn())
	selector := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(theme.ColumnAccent(m.uiState.TargetColumn()))).
		Padding(0, 1).
		Render(m.columnName(target))

	row := lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), "  ", selector)
	return components.InputBoxStyle.Render(row)
}

// viewColumns renders every column side by side
func (m Model) viewColumns() string {
	b := m.store.Board()
	ids := b.ColumnIDs()
	width := components.ColumnWidth(m.uiState.Width(), len(ids))
	dragging := m.uiState.Mode() == state.DragMode

	rendered := make([]string, 0, len(ids))
	for i, id := range ids {
		col, _ := b.Column(id)
		selected := i == m.uiState.SelectedColumn()

		props := components.ColumnProps{
			Column:       col,
			Index:        i,
			Selected:     selected && !dragging,
			SelectedTask: m.uiState.SelectedTask(),
			DropTarget:   selected && dragging,
			Width:        width,
		}
		if dragging {
			props.Held = m.drag.Task().ID
		}
		rendered = append(rendered, components.RenderColumn(props))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// viewStatusBar renders the mode, latest notification and key hints
func (m Model) viewStatusBar() string {
	var message string
	if n, ok := m.notificationState.Latest(); ok {
		style := components.InfoBannerStyle
		if n.Level == state.LevelError {
			style = components.ErrorBannerStyle
		}
		message = style.Render(n.Message)
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width:   m.uiState.Width(),
		Mode:    m.uiState.Mode().String(),
		Hint:    m.modeHint(),
		Message: message,
	})
}

// modeHint lists the keys that matter in the current mode
func (m Model) modeHint() string {
	km := m.config.KeyMappings
	switch m.uiState.Mode() {
	case state.InputMode:
		return fmt.Sprintf("enter add  %s column  %s close", km.CycleTarget, km.Cancel)
	case state.DragMode:
		return fmt.Sprintf("%s/%s column  %s drop  %s cancel", km.PrevColumn, km.NextColumn, km.DropTask, km.Cancel)
	default:
		return fmt.Sprintf("press %s for help", km.ShowHelp)
	}
}

// helpText builds the help overlay from the current key mappings
func (m Model) helpText() string {
	km := m.config.KeyMappings
	return fmt.Sprintf("# Keyboard Shortcuts\n\n"+
		"## Tasks\n\n"+
		"- `%s` add a task to the selected column\n"+
		"- `%s` delete the selected task\n"+
		"- `%s` pick up the selected task\n\n"+
		"## While moving\n\n"+
		"- `%s` / `%s` choose the column\n"+
		"- `%s` drop the task\n"+
		"- `%s` put it back\n\n"+
		"## Input\n\n"+
		"- `%s` change the target column\n"+
		"- `enter` add the task\n\n"+
		"## Navigation\n\n"+
		"- `%s` / `%s` previous/next column\n"+
		"- `%s` / `%s` previous/next task\n"+
		"- `%s` quit\n",
		km.AddTask, km.DeleteTask, km.GrabTask,
		km.PrevColumn, km.NextColumn, km.DropTask, km.Cancel,
		km.CycleTarget,
		km.PrevColumn, km.NextColumn, km.PrevTask, km.NextTask, km.Quit,
	)
}
