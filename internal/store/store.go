// Package store holds the current board snapshot and tells subscribers when
// it is replaced.
package store

import (
	"github.com/wifak939/taskboard/internal/board"
	"github.com/wifak939/taskboard/internal/models"
)

// Listener is called after the snapshot changes
type Listener func(prev, next *models.Board)

type subscription struct {
	id int
	fn Listener
}

// Store owns the current board. The board is only ever replaced as a whole.
// A Store is not safe for concurrent use: the TUI and the CLI both drive it
// from a single goroutine.
type Store struct {
	board       *models.Board
	ids         board.IDGenerator
	subscribers []subscription
	nextSubID   int
}

// New creates a store holding initial. A nil ids uses board.NewClockIDs.
func New(initial *models.Board, ids board.IDGenerator) *Store {
	if initial == nil {
		initial = models.DefaultBoard()
	}
	if ids == nil {
		ids = board.NewClockIDs()
	}
	return &Store{board: initial, ids: ids}
}

// Board returns the current snapshot
func (s *Store) Board() *models.Board {
	return s.board
}

// Set installs next as the current snapshot and notifies subscribers.
// Passing nil or the snapshot already installed does nothing.
func (s *Store) Set(next *models.Board) {
	if next == nil || next == s.board {
		return
	}

	prev := s.board
	s.board = next

	// Copy so a listener may unsubscribe while being notified
	subs := append([]subscription(nil), s.subscribers...)
	for _, sub := range subs {
		sub.fn(prev, next)
	}
}

// Subscribe registers fn for change notifications. The returned function
// removes the subscription; calling it more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// AddTask adds text to the column and installs the result
func (s *Store) AddTask(columnID models.ColumnID, text string) (models.TaskID, error) {
	next, id, err := board.AddTask(s.board, columnID, text, s.ids)
	if err != nil {
		return "", err
	}
	s.Set(next)
	return id, nil
}

// RemoveTask removes the task from the column and installs the result
func (s *Store) RemoveTask(columnID models.ColumnID, taskID models.TaskID) error {
	next, err := board.RemoveTask(s.board, columnID, taskID)
	if err != nil {
		return err
	}
	s.Set(next)
	return nil
}

// MoveTask moves the task between columns and installs the result
func (s *Store) MoveTask(from, to models.ColumnID, taskID models.TaskID) error {
	next, err := board.MoveTask(s.board, from, to, taskID)
	if err != nil {
		return err
	}
	s.Set(next)
	return nil
}

// Reset installs a fresh default board
func (s *Store) Reset() {
	s.Set(models.DefaultBoard())
}
