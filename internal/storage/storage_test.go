package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wifak939/taskboard/internal/database"
)

// backends returns one fresh instance of every adapter
func backends(t *testing.T) map[string]Storage {
	t.Helper()
	ctx := context.Background()

	sqlite, err := Open(ctx, BackendSQLite, database.MemoryPath)
	require.NoError(t, err)

	file, err := Open(ctx, BackendFile, t.TempDir())
	require.NoError(t, err)

	memory, err := Open(ctx, BackendMemory, "")
	require.NoError(t, err)

	all := map[string]Storage{
		BackendSQLite: sqlite,
		BackendFile:   file,
		BackendMemory: memory,
	}
	t.Cleanup(func() {
		for _, s := range all {
			_ = s.Close()
		}
	})
	return all
}

func TestStorage_Contract(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := s.Get(ctx, "columns")
			require.NoError(t, err)
			assert.False(t, ok, "fresh storage should be empty")

			require.NoError(t, s.Set(ctx, "columns", "v1"))
			require.NoError(t, s.Set(ctx, "columns", "v2"))

			value, ok, err := s.Get(ctx, "columns")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "v2", value)

			require.NoError(t, s.Set(ctx, "other", ""))
			value, ok, err = s.Get(ctx, "other")
			require.NoError(t, err)
			assert.True(t, ok, "empty values are still stored")
			assert.Empty(t, value)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "redis", "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestFile_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "board")

	f, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, f.Set(ctx, "columns", "saved"))

	again, err := NewFile(dir)
	require.NoError(t, err)
	value, ok, err := again.Get(ctx, "columns")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "saved", value)

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temporary files must be cleaned up")
}

func TestFile_RejectsUnsafeKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", ".."} {
		assert.Error(t, f.Set(context.Background(), key, "x"), "key %q", key)
	}
}
