package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIState_Defaults(t *testing.T) {
	s := NewUIState()
	assert.Equal(t, NormalMode, s.Mode())
	assert.Equal(t, 0, s.SelectedColumn())
	assert.Equal(t, 0, s.SelectedTask())
	assert.Equal(t, 0, s.TargetColumn())
}

func TestUIState_SetSelectedColumnResetsTask(t *testing.T) {
	s := NewUIState()
	s.SetSelectedTask(3)
	s.SetSelectedColumn(2)

	assert.Equal(t, 2, s.SelectedColumn())
	assert.Equal(t, 0, s.SelectedTask())

	s.SetSelectedColumn(-1)
	assert.Equal(t, 0, s.SelectedColumn())
}

func TestUIState_CycleTarget(t *testing.T) {
	tests := []struct {
		name  string
		start int
		delta int
		n     int
		want  int
	}{
		{"forward", 0, 1, 3, 1},
		{"wraps forward", 2, 1, 3, 0},
		{"wraps backward", 0, -1, 3, 2},
		{"no columns", 2, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetTargetColumn(tt.start)
			s.CycleTarget(tt.delta, tt.n)
			assert.Equal(t, tt.want, s.TargetColumn())
		})
	}
}

func TestUIState_Clamp(t *testing.T) {
	tests := []struct {
		name       string
		column     int
		task       int
		target     int
		counts     []int
		wantColumn int
		wantTask   int
		wantTarget int
	}{
		{"inside bounds", 1, 0, 2, []int{2, 1, 1}, 1, 0, 2},
		{"task past end", 0, 5, 0, []int{2, 1, 1}, 0, 1, 0},
		{"empty column", 2, 1, 0, []int{2, 1, 0}, 2, 0, 0},
		{"column past end", 4, 0, 4, []int{2, 1}, 1, 0, 1},
		{"no columns", 2, 2, 2, nil, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetSelectedColumn(tt.column)
			s.SetSelectedTask(tt.task)
			s.SetTargetColumn(tt.target)

			s.Clamp(tt.counts)

			assert.Equal(t, tt.wantColumn, s.SelectedColumn())
			assert.Equal(t, tt.wantTask, s.SelectedTask())
			assert.Equal(t, tt.wantTarget, s.TargetColumn())
		})
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "NORMAL", NormalMode.String())
	assert.Equal(t, "INSERT", InputMode.String())
	assert.Equal(t, "DRAG", DragMode.String())
	assert.Equal(t, "HELP", HelpMode.String())
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())
	_, ok := s.Latest()
	assert.False(t, ok)

	s.Add(LevelInfo, "one")
	s.Add(LevelError, "two")
	s.Add(LevelInfo, "three")
	s.Add(LevelInfo, "four")

	all := s.All()
	assert.Len(t, all, maxNotifications)
	assert.Equal(t, "two", all[0].Message)

	latest, ok := s.Latest()
	assert.True(t, ok)
	assert.Equal(t, Notification{Level: LevelInfo, Message: "four"}, latest)

	s.Clear()
	assert.False(t, s.HasAny())
}
