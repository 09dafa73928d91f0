//go:build darwin

package fshidden

import (
	"path/filepath"
	"strings"
)

// isSystemFile reports whether path names a Finder, Spotlight or
// Time Machine bookkeeping file.
func isSystemFile(path string) bool {
	base := filepath.Base(path)
	switch strings.ToLower(base) {
	case ".ds_store", ".localized", ".spotlight-v100", ".trashes", ".fseventsd",
		".documentrevisions-v100", ".temporaryitems", ".volumeicon.icns",
		".apdisk", ".com.apple.timemachine.donotpresent":
		return true
	}

	// AppleDouble resource forks
	return strings.HasPrefix(base, "._")
}
