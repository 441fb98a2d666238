package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFailureReport writes the failed ticket IDs, one per line in the
// order they failed, to path. The parent directory is created if needed.
func WriteFailureReport(path string, ids []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}
	content := strings.Join(ids, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write failure report %s: %w", path, err)
	}
	return nil
}
