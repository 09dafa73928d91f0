//go:build windows

package fshidden

import (
	"io/fs"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// isHiddenOS checks the FILE_ATTRIBUTE_HIDDEN bit of path. Invalid UTF-8 is
// rejected rather than converted with replacement characters.
func isHiddenOS(path string) (bool, error) {
	if !utf8.ValidString(path) {
		return false, errors.Wrapf(ErrInvalidPath, "%q", path)
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, errors.Wrapf(ErrInvalidPath, "%q", path)
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, &fs.PathError{Op: "GetFileAttributes", Path: path, Err: err}
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}
