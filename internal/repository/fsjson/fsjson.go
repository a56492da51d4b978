// Package fsjson reads and writes the JSON documents under the settings
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a half document behind.
package fsjson

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load unmarshals the file at path into v. A missing file reports
// os.ErrNotExist so callers can seed their defaults.
func Load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Save marshals v with two-space indenting, creating parent directories as
// needed.
func Save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
