package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermUserGroupRX = 0o750
	filePermUserRW     = 0o600
)

// WriteFile writes content to output, creating the parent directory when it does not exist.
// Existing files are always overwritten: the variables file and the result file are
// regenerated on every run.
func WriteFile(output string, content []byte) error {
	if output == "" {
		return ErrEmptyOutputPath
	}

	output = filepath.Clean(output)
	dir := filepath.Dir(output)

	err := os.MkdirAll(dir, dirPermUserGroupRX)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	err = os.WriteFile(output, content, filePermUserRW)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", output, err)
	}

	return nil
}
