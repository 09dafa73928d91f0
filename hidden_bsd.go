//go:build darwin || freebsd

package fshidden

import (
	"io/fs"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// ufHidden is UF_HIDDEN from <sys/stat.h>; macOS and FreeBSD share the value.
const ufHidden = 0x00008000

// isHiddenOS checks the UF_HIDDEN bit in the stat flags of path.
// Symbolic links are followed.
func isHiddenOS(path string) (bool, error) {
	if _, err := unix.ByteSliceFromString(path); err != nil {
		return false, errors.Wrapf(ErrInvalidPath, "%q", path)
	}
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return st.Flags&ufHidden != 0, nil
}
