// Package tui is the terminal front end of the board: columns side by side,
// an input row for new tasks, and a keyboard driven drag gesture.
package tui

import (
	"context"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/wifak939/taskboard/internal/config"
	"github.com/wifak939/taskboard/internal/dnd"
	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/store"
	"github.com/wifak939/taskboard/internal/tui/components"
	"github.com/wifak939/taskboard/internal/tui/state"
)

const inputPlaceholder = "Add a new task..."

// Model represents the application state for the TUI
type Model struct {
	ctx               context.Context
	store             *store.Store
	config            *config.Config
	uiState           *state.UIState
	notificationState *state.NotificationState
	drag              *dnd.Drag
	input             textinput.Model
	unsubscribe       func()
}

// InitialModel creates the TUI model on top of s. The model subscribes to
// the store so selection stays inside the board whatever changes it; call
// Close to drop the subscription.
func InitialModel(ctx context.Context, s *store.Store, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	ti := textinput.New()
	ti.Placeholder = inputPlaceholder

	uiState := state.NewUIState()
	unsubscribe := s.Subscribe(func(_, next *models.Board) {
		uiState.Clamp(columnCounts(next))
	})

	return Model{
		ctx:               ctx,
		store:             s,
		config:            cfg,
		uiState:           uiState,
		notificationState: state.NewNotificationState(),
		drag:              &dnd.Drag{},
		input:             ti,
		unsubscribe:       unsubscribe,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the store subscription
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// columnCounts returns the number of tasks per column in display order
func columnCounts(b *models.Board) []int {
	ids := b.ColumnIDs()
	counts := make([]int, len(ids))
	for i, id := range ids {
		col, _ := b.Column(id)
		counts[i] = len(col.Items)
	}
	return counts
}

// columnAt returns the id of the column at display index idx
func (m Model) columnAt(idx int) (models.ColumnID, bool) {
	ids := m.store.Board().ColumnIDs()
	if idx < 0 || idx >= len(ids) {
		return "", false
	}
	return ids[idx], true
}

// currentColumn returns the id and contents of the selected column
func (m Model) currentColumn() (models.ColumnID, models.Column, bool) {
	id, ok := m.columnAt(m.uiState.SelectedColumn())
	if !ok {
		return "", models.Column{}, false
	}
	col, _ := m.store.Board().Column(id)
	return id, col, true
}

// currentTask returns the selected task, if the selected column has any
func (m Model) currentTask() (models.ColumnID, models.Task, bool) {
	id, col, ok := m.currentColumn()
	if !ok {
		return "", models.Task{}, false
	}
	idx := m.uiState.SelectedTask()
	if idx < 0 || idx >= len(col.Items) {
		return "", models.Task{}, false
	}
	return id, col.Items[idx], true
}

// selectTask moves the cursor onto task id wherever it lives
func (m Model) selectTask(id models.TaskID) {
	b := m.store.Board()
	colID, _, ok := b.FindTask(id)
	if !ok {
		return
	}
	col, _ := b.Column(colID)
	for i, cid := range b.ColumnIDs() {
		if cid == colID {
			m.uiState.SetSelectedColumn(i)
			m.uiState.SetSelectedTask(col.IndexOf(id))
			return
		}
	}
}

// columnName returns the display name of column id, or the id itself
func (m Model) columnName(id models.ColumnID) string {
	if col, ok := m.store.Board().Column(id); ok {
		return col.Name
	}
	return string(id)
}
