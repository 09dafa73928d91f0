//go:build darwin || freebsd

package fshidden

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestIsHiddenFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flagged.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	require.NoError(t, unix.Chflags(path, ufHidden))
	hidden, err := IsHidden(path)
	require.NoError(t, err)
	require.True(t, hidden)

	require.NoError(t, unix.Chflags(path, 0))
	hidden, err = IsHidden(path)
	require.NoError(t, err)
	require.False(t, hidden)
}

func TestIsHiddenDotPrefixSkipsFlag(t *testing.T) {
	// No file exists, so reaching stat would fail.
	hidden, err := IsHidden(filepath.Join(t.TempDir(), ".unflagged"))
	require.NoError(t, err)
	require.True(t, hidden)
}

func TestIsHiddenStatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	_, err := IsHidden(path)
	require.ErrorIs(t, err, fs.ErrNotExist)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, path, pathErr.Path)
	require.ErrorIs(t, err, unix.ENOENT)
}

func TestIsHiddenInvalidPath(t *testing.T) {
	_, err := IsHidden("with\x00nul")
	require.ErrorIs(t, err, ErrInvalidPath)
}
