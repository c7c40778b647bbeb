package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifak939/taskboard/internal/models"
	"github.com/wifak939/taskboard/internal/testutil"
)

func TestNew_Defaults(t *testing.T) {
	s := New(nil, nil)
	assert.True(t, s.Board().Equal(models.DefaultBoard()))
}

func TestSet_NotifiesSubscribers(t *testing.T) {
	initial := models.DefaultBoard()
	s := New(initial, nil)

	var calls []string
	s.Subscribe(func(prev, next *models.Board) {
		assert.Same(t, initial, prev)
		calls = append(calls, "first")
	})
	s.Subscribe(func(prev, next *models.Board) {
		calls = append(calls, "second")
	})

	next := initial.WithItems(models.ColumnDone, nil)
	s.Set(next)

	assert.Same(t, next, s.Board())
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestSet_SameSnapshotIsSilent(t *testing.T) {
	s := New(models.DefaultBoard(), nil)

	called := 0
	s.Subscribe(func(prev, next *models.Board) { called++ })

	s.Set(s.Board())
	s.Set(nil)
	assert.Zero(t, called)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := New(models.DefaultBoard(), nil)

	called := 0
	unsubscribe := s.Subscribe(func(prev, next *models.Board) { called++ })

	s.Reset()
	unsubscribe()
	unsubscribe()
	s.Reset()

	assert.Equal(t, 1, called)
}

func TestSubscribe_UnsubscribeDuringNotify(t *testing.T) {
	s := New(models.DefaultBoard(), nil)

	others := 0
	var unsubscribe func()
	unsubscribe = s.Subscribe(func(prev, next *models.Board) { unsubscribe() })
	s.Subscribe(func(prev, next *models.Board) { others++ })

	s.Reset()
	s.Reset()
	assert.Equal(t, 2, others)
}

func TestAddTask(t *testing.T) {
	s := New(models.DefaultBoard(), &testutil.SeqIDs{Prefix: "t", Start: 1})

	notified := 0
	s.Subscribe(func(prev, next *models.Board) { notified++ })

	id, err := s.AddTask(models.ColumnTodo, "buy milk")
	require.NoError(t, err)
	assert.Equal(t, models.TaskID("t1"), id)
	assert.Equal(t, 1, notified)

	todo, _ := s.Board().Column(models.ColumnTodo)
	require.Len(t, todo.Items, 3)
	assert.Equal(t, "buy milk", todo.Items[2].Content)

	// Blank input changes nothing and notifies no one
	id, err = s.AddTask(models.ColumnTodo, "   ")
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, 1, notified)
}

func TestMutations_UnknownColumn(t *testing.T) {
	s := New(models.DefaultBoard(), nil)
	before := s.Board()

	notified := 0
	s.Subscribe(func(prev, next *models.Board) { notified++ })

	_, err := s.AddTask("ghost", "x")
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
	assert.ErrorIs(t, s.RemoveTask("ghost", "1"), models.ErrColumnNotFound)
	assert.ErrorIs(t, s.MoveTask("ghost", models.ColumnDone, "1"), models.ErrColumnNotFound)

	assert.Same(t, before, s.Board())
	assert.Zero(t, notified)
}

func TestMoveAndRemove(t *testing.T) {
	s := New(models.DefaultBoard(), nil)

	require.NoError(t, s.MoveTask(models.ColumnTodo, models.ColumnDone, "1"))
	col, _, ok := s.Board().FindTask("1")
	require.True(t, ok)
	assert.Equal(t, models.ColumnDone, col)

	require.NoError(t, s.RemoveTask(models.ColumnDone, "1"))
	_, _, ok = s.Board().FindTask("1")
	assert.False(t, ok)
	assert.Equal(t, 3, s.Board().TotalTasks())
}

func TestReset(t *testing.T) {
	s := New(models.DefaultBoard(), nil)
	require.NoError(t, s.RemoveTask(models.ColumnTodo, "1"))

	s.Reset()
	assert.True(t, s.Board().Equal(models.DefaultBoard()))
}
