package fsutil

import (
	"fmt"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~/ to the user's home directory and converts
// relative paths to absolute paths rooted at the current working directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return "", fmt.Errorf("failed to get current user: %w", err)
		}

		path = filepath.Join(usr.HomeDir, path[2:])
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}

	return absPath, nil
}
