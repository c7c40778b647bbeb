package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/wifak939/taskboard/internal/tui/state"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.uiState.Mode() {
		case state.InputMode:
			return m.handleInputMode(msg)
		case state.DragMode:
			return m.handleDragMode(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// Cursor blink and other input internals
	if m.uiState.Mode() == state.InputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}
