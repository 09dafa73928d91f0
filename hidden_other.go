//go:build !unix && !windows

package fshidden

import (
	"runtime"

	"github.com/pkg/errors"
)

func isHiddenOS(path string) (bool, error) {
	return false, errors.Wrapf(ErrUnsupportedPlatform, "%s: %q", runtime.GOOS, path)
}
