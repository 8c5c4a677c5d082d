package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsmostafa/foldertree/internal/outline"
)

var (
	// ErrEscapesRoot is returned when a cd .. would leave the replay root.
	ErrEscapesRoot = errors.New("cd .. would leave the target directory")
	// ErrInvalidName is returned for names that cannot be used as a single
	// directory component.
	ErrInvalidName = errors.New("invalid directory name")
)

// Options controls a Replay.
type Options struct {
	// DryRun reports what would be created without touching the filesystem
	DryRun bool

	// OnCreate is called with the root-relative path of every directory
	// created (or, in dry-run mode, that would be created)
	OnCreate func(rel string)
}

// Stats summarises a Replay.
type Stats struct {
	Created  int // directories created
	Existing int // mkdir targets that already existed
}

// Replay executes the script against root the way a shell would: mkdir
// creates a directory in the current directory, cd enters one and cd ..
// returns to the parent. Directories that already exist are reused.
func Replay(root string, s outline.Script, opts Options) (Stats, error) {
	var stats Stats

	info, err := os.Stat(root)
	if err != nil {
		return stats, fmt.Errorf("failed to open target directory: %w", err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("target is not a directory: %s", root)
	}

	var cursor []string
	planned := make(map[string]bool) // dry-run creations, keyed by rel path

	for i, cmd := range s {
		switch cmd.Op {
		case outline.OpMkdir:
			if err := validateName(cmd.Name); err != nil {
				return stats, fmt.Errorf("command %d (%s): %w", i+1, cmd, err)
			}
			rel := relPath(cursor, cmd.Name)
			abs := filepath.Join(root, rel)

			exists, err := isDir(abs)
			if err != nil {
				return stats, fmt.Errorf("command %d (%s): %w", i+1, cmd, err)
			}
			if exists || planned[rel] {
				stats.Existing++
				continue
			}

			if opts.DryRun {
				planned[rel] = true
			} else if err := os.Mkdir(abs, 0755); err != nil {
				return stats, fmt.Errorf("command %d (%s): failed to create directory: %w", i+1, cmd, err)
			}
			stats.Created++
			if opts.OnCreate != nil {
				opts.OnCreate(rel)
			}

		case outline.OpChdir:
			if err := validateName(cmd.Name); err != nil {
				return stats, fmt.Errorf("command %d (%s): %w", i+1, cmd, err)
			}
			rel := relPath(cursor, cmd.Name)

			exists, err := isDir(filepath.Join(root, rel))
			if err != nil {
				return stats, fmt.Errorf("command %d (%s): %w", i+1, cmd, err)
			}
			if !exists && !planned[rel] {
				return stats, fmt.Errorf("command %d (%s): directory does not exist: %s", i+1, cmd, rel)
			}
			cursor = append(cursor, cmd.Name)

		case outline.OpChdirUp:
			if len(cursor) == 0 {
				return stats, fmt.Errorf("command %d (%s): %w", i+1, cmd, ErrEscapesRoot)
			}
			cursor = cursor[:len(cursor)-1]

		default:
			return stats, fmt.Errorf("command %d: unknown op %d", i+1, cmd.Op)
		}
	}

	return stats, nil
}

func relPath(cursor []string, name string) string {
	return filepath.Join(filepath.Join(cursor...), name)
}

// validateName rejects names that are not a single path component.
func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// isDir reports whether path is an existing directory. An existing
// non-directory is an error.
func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fmt.Errorf("%s exists and is not a directory", path)
	}
	return true, nil
}
