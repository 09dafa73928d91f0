// Package fshidden reports whether a filesystem entry is hidden according to
// the conventions of the host operating system.
package fshidden

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrNoFileName is returned for paths without a final name component,
	// such as "/", "" or "a/..".
	ErrNoFileName = errors.New("fshidden: path has no file name")

	// ErrInvalidPath is returned when a path cannot be handed to the
	// operating system, for example because it contains a NUL byte.
	ErrInvalidPath = errors.New("fshidden: path cannot be converted for the operating system")

	// ErrUnsupportedPlatform is returned on platforms without a hidden-file rule.
	ErrUnsupportedPlatform = errors.New("fshidden: unsupported platform")
)

// IsHidden reports whether path is hidden on the current platform.
//
// A final component starting with a dot is hidden everywhere, and no OS call
// is made for it. Otherwise Windows consults the file attributes, macOS and
// FreeBSD consult the stat flags, and other Unix systems answer false.
// The result is not guaranteed to hold after the call returns.
func IsHidden(path string) (bool, error) {
	name, ok := fileName(path)
	if !ok {
		return false, errors.Wrapf(ErrNoFileName, "%q", path)
	}
	if HasDotPrefix(name) {
		return true, nil
	}
	return isHiddenOS(path)
}

// HasDotPrefix reports whether name starts with a dot. Names that are not
// valid UTF-8 never do.
func HasDotPrefix(name string) bool {
	if !utf8.ValidString(name) {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// fileName returns the last component of path, ignoring "." segments and
// trailing separators.
func fileName(path string) (string, bool) {
	rest := path[len(filepath.VolumeName(path)):]
	var last string
	for _, seg := range strings.FieldsFunc(rest, isSeparator) {
		if seg == "." {
			continue
		}
		last = seg
	}
	if last == "" || last == ".." {
		return "", false
	}
	return last, true
}

func isSeparator(r rune) bool {
	return r < utf8.RuneSelf && os.IsPathSeparator(uint8(r))
}
