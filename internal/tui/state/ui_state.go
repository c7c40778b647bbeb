package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	InputMode              // Typing a new task
	DragMode               // Holding a task, choosing where to drop it
	HelpMode               // Displaying help screen
)

// String returns the label shown in the status bar
func (m Mode) String() string {
	switch m {
	case InputMode:
		return "INSERT"
	case DragMode:
		return "DRAG"
	case HelpMode:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), the column new tasks
// are added to, terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// targetColumn is the index of the column the input row adds to
	targetColumn int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn moves the column selection and resets the task
// selection to the top of that column.
func (s *UIState) SetSelectedColumn(idx int) {
	if idx < 0 {
		idx = 0
	}
	s.selectedColumn = idx
	s.selectedTask = 0
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask sets the task index within the selected column.
func (s *UIState) SetSelectedTask(idx int) {
	if idx < 0 {
		idx = 0
	}
	s.selectedTask = idx
}

// TargetColumn returns the index of the column the input row adds to.
func (s *UIState) TargetColumn() int {
	return s.targetColumn
}

// SetTargetColumn sets the column the input row adds to.
func (s *UIState) SetTargetColumn(idx int) {
	if idx < 0 {
		idx = 0
	}
	s.targetColumn = idx
}

// CycleTarget advances the target column by delta, wrapping around n columns.
func (s *UIState) CycleTarget(delta, n int) {
	if n <= 0 {
		s.targetColumn = 0
		return
	}
	s.targetColumn = ((s.targetColumn+delta)%n + n) % n
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions.
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Clamp keeps every index inside the board after a change. counts holds the
// number of tasks in each column, in display order.
func (s *UIState) Clamp(counts []int) {
	if len(counts) == 0 {
		s.selectedColumn, s.selectedTask, s.targetColumn = 0, 0, 0
		return
	}

	s.selectedColumn = min(max(s.selectedColumn, 0), len(counts)-1)
	s.targetColumn = min(max(s.targetColumn, 0), len(counts)-1)

	n := counts[s.selectedColumn]
	if n == 0 {
		s.selectedTask = 0
		return
	}
	s.selectedTask = min(max(s.selectedTask, 0), n-1)
}
