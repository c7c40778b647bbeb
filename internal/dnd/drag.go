// Package dnd tracks a single drag gesture: which task is held and which
// column it was picked up from.
package dnd

import (
	"github.com/wifak939/taskboard/internal/board"
	"github.com/wifak939/taskboard/internal/models"
)

// Phase of the drag gesture
type Phase int

const (
	Idle     Phase = iota // No task held
	Dragging              // A task is held over the board
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Drag is the transient gesture state. It is never persisted and never part
// of the board. The zero value is Idle.
type Drag struct {
	phase  Phase
	origin models.ColumnID
	task   models.Task
}

// Begin picks up task from origin. A gesture already in progress is
// replaced.
func (d *Drag) Begin(origin models.ColumnID, task models.Task) {
	d.phase = Dragging
	d.origin = origin
	d.task = task
}

// Drop ends the gesture over target and returns the board with the held task
// moved there. Dropping onto the origin column leaves the board as is.
// Without a gesture in progress b is returned untouched. The gesture is
// cleared in every case, errors included.
func (d *Drag) Drop(b *models.Board, target models.ColumnID) (*models.Board, error) {
	if d.phase != Dragging {
		return b, nil
	}
	defer d.Cancel()

	return board.MoveTask(b, d.origin, target, d.task.ID)
}

// Cancel ends the gesture without touching any board
func (d *Drag) Cancel() {
	*d = Drag{}
}

// Phase returns the current phase
func (d *Drag) Phase() Phase {
	return d.phase
}

// Active reports whether a task is held
func (d *Drag) Active() bool {
	return d.phase == Dragging
}

// Origin returns the column the held task came from
func (d *Drag) Origin() models.ColumnID {
	return d.origin
}

// Task returns the held task
func (d *Drag) Task() models.Task {
	return d.task
}
