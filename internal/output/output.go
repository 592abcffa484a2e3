// Package output writes scoring artifacts: JSON results, CSV batch exports,
// and plain-text reports.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Timestamp returns the run timestamp used in artifact file names.
func Timestamp() string {
	return time.Now().Format("20060102_150405")
}

// SaveJSON marshals v with indentation and writes it to path, creating parent
// directories as needed.
func SaveJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
