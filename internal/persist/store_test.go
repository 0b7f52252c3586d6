package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingSave(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	raw, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Save([]byte(`{"gold":5}`)))
	raw, ok, err := s.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"gold":5}`, string(raw))

	// Overwrite wins, and no temp files are left behind.
	require.NoError(t, s.Save([]byte(`{"gold":9}`)))
	raw, _, err = s.Load()
	require.NoError(t, err)
	assert.JSONEq(t, `{"gold":9}`, string(raw))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRotateKeepsBoundedHistory(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	// Rotating with no save yet is a no-op.
	require.NoError(t, s.Rotate(2))

	require.NoError(t, s.Save([]byte(`{"gold":1}`)))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Rotate(2))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	rotated := 0
	for _, e := range entries {
		if e.Name() != "save.json" {
			rotated++
		}
	}
	assert.LessOrEqual(t, rotated, 2)
}
