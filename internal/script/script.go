// Package script writes compiled folder scripts to disk and replays them
// against a directory.
package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/itsmostafa/foldertree/internal/outline"
)

// Format returns the script file contents: one command per line, without a
// trailing newline.
func Format(s outline.Script) string {
	return s.String()
}

// Write writes the script file contents to w.
func Write(w io.Writer, s outline.Script) error {
	_, err := io.WriteString(w, Format(s))
	return err
}

// WriteFile writes the script to dir/name and returns the path written.
func WriteFile(dir, name string, s outline.Script) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Format(s)), 0644); err != nil {
		return "", fmt.Errorf("failed to write script: %w", err)
	}
	return path, nil
}
