// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wifak939/taskboard/internal/models"
)

// SeqIDs hands out Prefix+Start, Prefix+(Start+1), ... ignoring the board
type SeqIDs struct {
	Prefix string
	Start  int
	n      int
}

func (s *SeqIDs) NewID(*models.Board) models.TaskID {
	id := models.TaskID(s.Prefix + strconv.Itoa(s.Start+s.n))
	s.n++
	return id
}

// FixedID always proposes the same id
type FixedID models.TaskID

func (f FixedID) NewID(*models.Board) models.TaskID {
	return models.TaskID(f)
}

// FailingStorage fails every call with Err and counts writes
type FailingStorage struct {
	Err    error
	Writes int
}

func (f *FailingStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, f.Err
}

func (f *FailingStorage) Set(context.Context, string, string) error {
	f.Writes++
	return f.Err
}

func (f *FailingStorage) Close() error { return nil }

// Items returns the tasks of column id, failing the test if it is missing
func Items(t *testing.T, b *models.Board, id models.ColumnID) []models.Task {
	t.Helper()
	col, ok := b.Column(id)
	require.True(t, ok, "column %q missing", id)
	return col.Items
}

// Isolate points HOME and the config directory at a fresh temp dir and
// returns it
func Isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("TASKBOARD_THEME_FILE", "")
	return dir
}
