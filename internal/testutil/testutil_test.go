package testutil

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wifak939/taskboard/internal/models"
)

func TestSeqIDs(t *testing.T) {
	ids := &SeqIDs{Prefix: "t", Start: 1}
	assert.Equal(t, models.TaskID("t1"), ids.NewID(nil))
	assert.Equal(t, models.TaskID("t2"), ids.NewID(nil))
}

func TestFixedID(t *testing.T) {
	assert.Equal(t, models.TaskID("x"), FixedID("x").NewID(nil))
}

func TestFailingStorage(t *testing.T) {
	boom := errors.New("boom")
	fs := &FailingStorage{Err: boom}

	_, _, err := fs.Get(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, fs.Set(context.Background(), "k", "v"), boom)
	assert.Equal(t, 1, fs.Writes)
}

func TestIsolate(t *testing.T) {
	dir := Isolate(t)
	assert.Equal(t, dir, os.Getenv("HOME"))
	assert.Len(t, Items(t, models.DefaultBoard(), models.ColumnTodo), 2)
}
