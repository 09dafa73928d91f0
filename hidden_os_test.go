//go:build unix || windows

package fshidden

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsHiddenVisibleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("notes"), 0o644))

	hidden, err := IsHidden(path)
	require.NoError(t, err)
	require.False(t, hidden)
}

func TestIsHiddenDotFileOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("notes"), 0o644))

	hidden, err := IsHidden(path)
	require.NoError(t, err)
	require.True(t, hidden)
}

func TestIsHiddenIdempotent(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", ".a.txt"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		first, err := IsHidden(path)
		require.NoError(t, err)
		second, err := IsHidden(path)
		require.NoError(t, err)
		require.Equal(t, first, second, name)
	}
}

func TestIsHiddenDirectory(t *testing.T) {
	dir := t.TempDir()
	visible := filepath.Join(dir, "visible")
	dotted := filepath.Join(dir, ".dotted")
	require.NoError(t, os.Mkdir(visible, 0o755))
	require.NoError(t, os.Mkdir(dotted, 0o755))

	hidden, err := IsHidden(visible + string(filepath.Separator))
	require.NoError(t, err)
	require.False(t, hidden)

	hidden, err = IsHidden(dotted)
	require.NoError(t, err)
	require.True(t, hidden)
}
