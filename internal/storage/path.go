package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading ~/ against the user's home directory. Paths
// without the prefix pass through unchanged.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
