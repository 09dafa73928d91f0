//go:build linux

package fshidden

import (
	"path/filepath"
	"strings"
)

// isSystemFile reports whether path names a Linux desktop session file,
// a GNOME/GTK temporary file or a trash directory.
func isSystemFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	switch base {
	case ".bash_history", ".bash_logout", ".bash_profile", ".bashrc", ".profile",
		".login", ".sudo_as_admin_successful", ".xauthority", ".xsession-errors",
		".viminfo", ".cache", ".config", ".local", ".dbus", ".gvfs",
		".recently-used", ".fontconfig", ".iceauthority", ".flatpak", "snap":
		return true
	}

	return strings.HasPrefix(base, ".goutputstream-") ||
		strings.HasPrefix(base, ".trash-") ||
		strings.HasSuffix(base, "~")
}
