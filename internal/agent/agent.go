package agent

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/GGPrompts/agentinit/internal/pattern"
)

// Failure taxonomy for Create. All are user-input errors and terminal;
// callers match with errors.Is.
var (
	ErrInvalidName    = errors.New("invalid agent name")
	ErrUnknownPattern = errors.New("unknown pattern")
	ErrExists         = errors.New("agent file already exists")
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidName reports whether name starts with a lowercase letter followed by
// lowercase letters, digits, or hyphens. No trimming or case-folding.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Create renders the named pattern into dir/<name>.md and returns the
// written path. The directory chain is created if missing; an existing
// target file is never overwritten. The write uses an exclusive create,
// so two racing invocations against the same path cannot both succeed.
func Create(name, dir, patternName string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("agent name %q must be lowercase with hyphens only: %w", name, ErrInvalidName)
	}

	p, ok := pattern.Lookup(patternName)
	if !ok {
		return "", fmt.Errorf("pattern %q: %w", patternName, ErrUnknownPattern)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating agents directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, name+".md")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return "", fmt.Errorf("%s: %w", path, ErrExists)
		}
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	if _, err := f.WriteString(Render(name, p)); err != nil {
		f.Close()
		// Leave no partial file behind.
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
