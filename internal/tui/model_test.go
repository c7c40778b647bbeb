package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/wifak939/taskboard/internal/config"
	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/store"
	"github.com/wifak939/taskboard/internal/testutil"
	"github.com/wifak939/taskboard/internal/tui/state"
)

// setupTestModel builds a sized model over the default board
func setupTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	s := store.New(models.DefaultBoard(), &testutil.SeqIDs{Start: 100})
	m := InitialModel(context.Background(), s, config.Default())
	t.Cleanup(m.Close)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), s
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func press(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func columnItems(t *testing.T, s *store.Store, id models.ColumnID) []models.Task {
	t.Helper()
	return testutil.Items(t, s.Board(), id)
}

// ============================================================================
// View
// ============================================================================

func TestView_LoadingBeforeSize(t *testing.T) {
	s := store.New(nil, nil)
	m := InitialModel(context.Background(), s, nil)
	defer m.Close()

	view := m.View()
	if view.Content != "Loading..." {
		t.Errorf("View() before resize = %q, want Loading...", view.Content)
	}
	if !view.AltScreen {
		t.Error("View() should use the alternate screen")
	}
}

func TestView_ShowsColumnsAndTasks(t *testing.T) {
	m, _ := setupTestModel(t)

	content := m.View().Content
	for _, want := range []string{"To Do", "En cours", "Done", "task 1 to do", "task en cour", inputPlaceholder} {
		if !strings.Contains(content, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestView_EmptyColumnPlaceholder(t *testing.T) {
	m, s := setupTestModel(t)
	if err := s.RemoveTask(models.ColumnDone, "4"); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(m.View().Content, "Drop tasks here") {
		t.Error("empty column should show the drop placeholder")
	}
}

// ============================================================================
// Navigation
// ============================================================================

func TestNavigation_Columns(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(m, key('l'))
	if got := m.uiState.SelectedColumn(); got != 1 {
		t.Errorf("after l SelectedColumn = %d, want 1", got)
	}

	m, _ = press(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyRight}), key('l'))
	if got := m.uiState.SelectedColumn(); got != 2 {
		t.Errorf("column cursor should stop at the last column, got %d", got)
	}

	m, _ = press(m, key('h'), key('h'), key('h'))
	if got := m.uiState.SelectedColumn(); got != 0 {
		t.Errorf("column cursor should stop at the first column, got %d", got)
	}
}

func TestNavigation_Tasks(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(m, key('j'), key('j'))
	if got := m.uiState.SelectedTask(); got != 1 {
		t.Errorf("task cursor should stop at the last task, got %d", got)
	}

	m, _ = press(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyUp}))
	if got := m.uiState.SelectedTask(); got != 0 {
		t.Errorf("after up SelectedTask = %d, want 0", got)
	}
}

func TestQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyPressMsg
	}{
		{"q", key('q')},
		{"ctrl+c", tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := setupTestModel(t)
			_, cmd := press(m, tt.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

// ============================================================================
// Input row
// ============================================================================

func TestInput_AddsToSelectedColumn(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = press(m, key('a'))
	if m.uiState.Mode() != state.InputMode {
		t.Fatalf("after a Mode = %v, want InputMode", m.uiState.Mode())
	}

	m.input.SetValue("buy milk")
	m, _ = press(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))

	todo := columnItems(t, s, models.ColumnTodo)
	if len(todo) != 3 {
		t.Fatalf("todo has %d tasks, want 3", len(todo))
	}
	if todo[2] != (models.Task{ID: "100", Content: "buy milk"}) {
		t.Errorf("new task = %+v", todo[2])
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}
	if m.uiState.Mode() != state.InputMode {
		t.Error("input row should stay open after adding")
	}
	if m.uiState.SelectedTask() != 2 {
		t.Errorf("cursor should land on the new task, got %d", m.uiState.SelectedTask())
	}
}

func TestInput_BlankIsIgnored(t *testing.T) {
	m, s := setupTestModel(t)
	before := s.Board()

	m, _ = press(m, key('a'))
	m.input.SetValue("   ")
	m, _ = press(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))

	if s.Board() != before {
		t.Error("blank input must not change the board")
	}
	if m.uiState.Mode() != state.InputMode {
		t.Error("input row should stay open")
	}
	if m.input.Value() != "   " {
		t.Errorf("blank input should be kept, got %q", m.input.Value())
	}
}

func TestInput_CycleTarget(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = press(m, key('a'), tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
	if got := m.uiState.TargetColumn(); got != 1 {
		t.Fatalf("after tab TargetColumn = %d, want 1", got)
	}

	m.input.SetValue("review")
	m, _ = press(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))

	inProgress := columnItems(t, s, models.ColumnInProgress)
	if len(inProgress) != 2 || inProgress[1].Content != "review" {
		t.Errorf("encour = %+v, want review appended", inProgress)
	}

	m, _ = press(m,
		tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}),
		tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}),
	)
	if got := m.uiState.TargetColumn(); got != 0 {
		t.Errorf("target should wrap to the first column, got %d", got)
	}
}

func TestInput_EscapeCloses(t *testing.T) {
	m, s := setupTestModel(t)
	before := s.Board()

	m, _ = press(m, key('a'))
	m.input.SetValue("never mind")
	m, _ = press(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))

	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("after esc Mode = %v, want NormalMode", m.uiState.Mode())
	}
	if m.input.Value() != "" {
		t.Errorf("input should be discarded, got %q", m.input.Value())
	}
	if s.Board() != before {
		t.Error("closing the input must not change the board")
	}
}

func TestInput_KeysAreNotCommands(t *testing.T) {
	m, s := setupTestModel(t)
	before := s.Board()

	m, _ = press(m, key('a'), key('q'), key('d'), key('m'))
	if m.uiState.Mode() != state.InputMode {
		t.Fatal("command keys inside the input should not leave it")
	}
	if m.drag.Active() {
		t.Error("m inside the input should not start a drag")
	}
	if s.Board() != before {
		t.Error("typing must not change the board")
	}
}

// ============================================================================
// Delete
// ============================================================================

func TestDelete_RemovesSelectedAndClamps(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = press(m, key('j'), key('d'))

	todo := columnItems(t, s, models.ColumnTodo)
	if len(todo) != 1 || todo[0].ID != "1" {
		t.Fatalf("todo = %+v, want only task 1", todo)
	}
	if got := m.uiState.SelectedTask(); got != 0 {
		t.Errorf("cursor should clamp to the remaining task, got %d", got)
	}
}

func TestDelete_EmptyColumnIsNoop(t *testing.T) {
	m, s := setupTestModel(t)
	if err := s.RemoveTask(models.ColumnDone, "4"); err != nil {
		t.Fatal(err)
	}
	before := s.Board()

	_, _ = press(m, key('l'), key('l'), key('d'))
	if s.Board() != before {
		t.Error("delete on an empty column must not change the board")
	}
}

// ============================================================================
// Drag
// ============================================================================

func TestDrag_MovesToHoveredColumn(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = press(m, key('m'))
	if m.uiState.Mode() != state.DragMode || !m.drag.Active() {
		t.Fatal("m should start a drag")
	}

	m, _ = press(m, key('l'), key('l'), tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))

	if m.uiState.Mode() != state.NormalMode || m.drag.Active() {
		t.Error("drop should end the drag")
	}
	todo := columnItems(t, s, models.ColumnTodo)
	done := columnItems(t, s, models.ColumnDone)
	if len(todo) != 1 || len(done) != 2 || done[1].ID != "1" {
		t.Errorf("todo = %+v, done = %+v", todo, done)
	}
	if m.uiState.SelectedColumn() != 2 || m.uiState.SelectedTask() != 1 {
		t.Errorf("cursor should follow the moved task, got column %d task %d",
			m.uiState.SelectedColumn(), m.uiState.SelectedTask())
	}
}

func TestDrag_HeldTaskIsHighlighted(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(m, key('m'), key('l'))
	if !strings.Contains(m.View().Content, "DRAG") {
		t.Error("status bar should show the drag mode")
	}
}

func TestDrag_DropOnOriginKeepsBoard(t *testing.T) {
	m, s := setupTestModel(t)
	before := s.Board()

	m, _ = press(m, key('m'), key('m'))

	if s.Board() != before {
		t.Error("dropping on the origin column must not change the board")
	}
	if m.drag.Active() {
		t.Error("drag should end")
	}
}

func TestDrag_EscapeCancels(t *testing.T) {
	m, s := setupTestModel(t)
	before := s.Board()

	m, _ = press(m, key('j'), key('m'), key('l'), tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))

	if s.Board() != before {
		t.Error("cancel must not change the board")
	}
	if m.uiState.Mode() != state.NormalMode || m.drag.Active() {
		t.Error("cancel should end the drag")
	}
	if m.uiState.SelectedColumn() != 0 || m.uiState.SelectedTask() != 1 {
		t.Errorf("cursor should return to the held task, got column %d task %d",
			m.uiState.SelectedColumn(), m.uiState.SelectedTask())
	}
}

func TestDrag_NothingToGrab(t *testing.T) {
	m, s := setupTestModel(t)
	if err := s.RemoveTask(models.ColumnDone, "4"); err != nil {
		t.Fatal(err)
	}

	m, _ = press(m, key('l'), key('l'), key('m'))
	if m.uiState.Mode() != state.NormalMode || m.drag.Active() {
		t.Error("grab on an empty column should do nothing")
	}
}

// ============================================================================
// Help and store subscription
// ============================================================================

func TestHelp_OpensAndCloses(t *testing.T) {
	m, _ := setupTestModel(t)

	m, _ = press(m, key('?'))
	if m.uiState.Mode() != state.HelpMode {
		t.Fatalf("after ? Mode = %v, want HelpMode", m.uiState.Mode())
	}
	if !strings.Contains(m.View().Content, "Shortcuts") {
		t.Error("help overlay should be rendered")
	}

	m, _ = press(m, tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	if m.uiState.Mode() != state.NormalMode {
		t.Errorf("after esc Mode = %v, want NormalMode", m.uiState.Mode())
	}
}

func TestStoreChangesClampSelection(t *testing.T) {
	m, s := setupTestModel(t)

	m, _ = press(m, key('l'), key('l'))
	if err := s.RemoveTask(models.ColumnDone, "4"); err != nil {
		t.Fatal(err)
	}
	m.uiState.SetSelectedTask(5)

	if _, err := s.AddTask(models.ColumnDone, "again"); err != nil {
		t.Fatal(err)
	}
	if got := m.uiState.SelectedTask(); got != 0 {
		t.Errorf("SelectedTask = %d, want clamped to 0", got)
	}
}
