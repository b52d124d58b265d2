package common

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Menu choice bounds
const (
	MinMenuChoice = 1
	MaxMenuChoice = 8
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ValidateMenuChoice parses a menu choice (1-8)
func ValidateMenuChoice(choice string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return 0, fmt.Errorf("invalid menu choice: %q", choice)
	}

	if n < MinMenuChoice || n > MaxMenuChoice {
		return 0, fmt.Errorf("menu choice must be between %d and %d, got: %d", MinMenuChoice, MaxMenuChoice, n)
	}

	return n, nil
}

// ValidateEntryName validates a name entered relative to the working
// directory. The name may contain subdirectories but must stay inside root.
func ValidateEntryName(root, name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return fmt.Errorf("name must be relative to the working directory: %s", name)
	}

	rel, err := filepath.Rel(root, filepath.Join(root, name))
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", name, err)
	}

	if rel == "." {
		return fmt.Errorf("name refers to the working directory itself: %s", name)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("name resolves outside the working directory: %s", name)
	}

	return nil
}

// ValidateGlobPattern validates a search pattern
func ValidateGlobPattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}

	if !doublestar.ValidatePattern(pattern) {
		return doublestar.ErrBadPattern
	}

	return nil
}
