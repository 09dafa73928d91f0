//go:build windows

package fshidden

import (
	"path/filepath"
	"strings"
)

// isSystemFile reports whether path names an Explorer, recycle bin or
// Office lock file.
func isSystemFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	switch base {
	case "desktop.ini", "thumbs.db", "ehthumbs.db", "ehthumbs_vista.db",
		"$recycle.bin", "system volume information", "pagefile.sys",
		"hiberfil.sys", "swapfile.sys":
		return true
	}

	return strings.HasPrefix(base, "~$") || strings.HasSuffix(base, ".tmp")
}
