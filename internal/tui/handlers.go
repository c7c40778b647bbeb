package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/tui/state"
)

// handleNormalMode handles keyboard input in normal navigation mode
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.SetMode(state.HelpMode)
	case km.AddTask:
		return m.openInput()
	case km.DeleteTask:
		m.deleteSelected()
	case km.GrabTask:
		m.grabSelected()
	case km.PrevColumn, "left":
		m.moveColumn(-1)
	case km.NextColumn, "right":
		m.moveColumn(1)
	case km.PrevTask, "up":
		m.moveTaskCursor(-1)
	case km.NextTask, "down":
		m.moveTaskCursor(1)
	}
	return m, nil
}

// handleInputMode handles keyboard input while the new task row is focused
func (m Model) handleInputMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings
	n := m.store.Board().Len()

	switch msg.String() {
	case km.Cancel:
		m.closeInput()
		return m, nil
	case km.CycleTarget:
		m.uiState.CycleTarget(1, n)
		return m, nil
	case "shift+tab":
		m.uiState.CycleTarget(-1, n)
		return m, nil
	case "enter":
		m.submitInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleDragMode handles keyboard input while a task is held
func (m Model) handleDragMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.config.KeyMappings

	switch msg.String() {
	case km.Cancel:
		m.cancelDrag()
	case km.DropTask, km.GrabTask:
		m.dropHeld()
	case km.PrevColumn, "left":
		m.moveColumn(-1)
	case km.NextColumn, "right":
		m.moveColumn(1)
	}
	return m, nil
}

// handleHelpMode closes the help overlay on any key except quit
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == m.config.KeyMappings.Quit {
		return m, tea.Quit
	}
	m.uiState.SetMode(state.NormalMode)
	return m, nil
}

// moveColumn shifts the column cursor by delta, stopping at the edges
func (m Model) moveColumn(delta int) {
	next := m.uiState.SelectedColumn() + delta
	if next < 0 || next >= m.store.Board().Len() {
		return
	}
	m.uiState.SetSelectedColumn(next)
}

// moveTaskCursor shifts the task cursor by delta within the selected column
func (m Model) moveTaskCursor(delta int) {
	_, col, ok := m.currentColumn()
	if !ok {
		return
	}
	next := m.uiState.SelectedTask() + delta
	if next < 0 || next >= len(col.Items) {
		return
	}
	m.uiState.SetSelectedTask(next)
}

// openInput focuses the new task row, targeting the selected column
func (m Model) openInput() (tea.Model, tea.Cmd) {
	m.uiState.SetTargetColumn(m.uiState.SelectedColumn())
	m.uiState.SetMode(state.InputMode)
	cmd := m.input.Focus()
	return m, cmd
}

// closeInput leaves the new task row, discarding what was typed
func (m *Model) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.uiState.SetMode(state.NormalMode)
}

// submitInput adds the typed text to the target column. Blank text is
// ignored and the row stays open.
func (m *Model) submitInput() {
	text := m.input.Value()
	if models.IsBlank(text) {
		return
	}

	target, ok := m.columnAt(m.uiState.TargetColumn())
	if !ok {
		return
	}

	id, err := m.store.AddTask(target, text)
	if err != nil {
		slog.Warn("failed to add task", "column", target, "error", err)
		m.notificationState.Add(state.LevelError, "Could not add task")
		return
	}

	m.input.Reset()
	m.selectTask(id)
	m.notificationState.Add(state.LevelInfo, fmt.Sprintf("Added to %s", m.columnName(target)))
}

// deleteSelected removes the task under the cursor
func (m Model) deleteSelected() {
	colID, task, ok := m.currentTask()
	if !ok {
		return
	}

	if err := m.store.RemoveTask(colID, task.ID); err != nil {
		slog.Warn("failed to remove task", "column", colID, "task", task.ID, "error", err)
		m.notificationState.Add(state.LevelError, "Could not delete task")
		return
	}
	m.notificationState.Add(state.LevelInfo, "Deleted task")
}

// grabSelected starts a drag gesture on the task under the cursor
func (m Model) grabSelected() {
	colID, task, ok := m.currentTask()
	if !ok {
		return
	}

	m.drag.Begin(colID, task)
	m.uiState.SetMode(state.DragMode)
	m.notificationState.Add(state.LevelInfo, "Moving task, choose a column")
}

// dropHeld releases the held task over the hovered column
func (m Model) dropHeld() {
	held := m.drag.Task()
	target, ok := m.columnAt(m.uiState.SelectedColumn())
	if !ok {
		m.cancelDrag()
		return
	}

	next, err := m.drag.Drop(m.store.Board(), target)
	m.uiState.SetMode(state.NormalMode)
	if err != nil {
		slog.Warn("failed to drop task", "column", target, "task", held.ID, "error", err)
		m.notificationState.Add(state.LevelError, "Could not move task")
		return
	}

	m.store.Set(next)
	m.selectTask(held.ID)
}

// cancelDrag ends the gesture and puts the cursor back on the held task
func (m Model) cancelDrag() {
	held := m.drag.Task()
	m.drag.Cancel()
	m.uiState.SetMode(state.NormalMode)
	m.selectTask(held.ID)
}
