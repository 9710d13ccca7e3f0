package common

import (
	"fmt"
	"path/filepath"
	"strings"
)

const separator = "/"

// PathUtils provides the path rules of the listing
type PathUtils struct{}

// NewPathUtils creates a new PathUtils instance
func NewPathUtils() *PathUtils {
	return &PathUtils{}
}

// IsHidden reports whether the base name of path starts with a period. The base name is taken
// from the absolute form of the path so "." and ".." are judged by the directory they name.
func (pu *PathUtils) IsHidden(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return IsHiddenName(filepath.Base(abs))
}

// IsHiddenName reports whether a bare entry name is hidden.
func IsHiddenName(name string) bool {
	return strings.HasPrefix(name, ".")
}

// StripTrailingSeparators removes trailing separators from a directory argument. The
// filesystem root keeps its single separator.
func (pu *PathUtils) StripTrailingSeparators(path string) string {
	stripped := strings.TrimRight(path, separator)
	if stripped == "" && strings.HasPrefix(path, separator) {
		return separator
	}
	return stripped
}

// JoinChild spells the path of an entry found in dir the way the report prints it: dir and
// name joined by a single separator, without cleaning "." or ".." segments out of dir.
func (pu *PathUtils) JoinChild(dir, name string) string {
	if strings.HasSuffix(dir, separator) {
		return dir + name
	}
	return dir + separator + name
}

// ParentPrefix returns the prefix printed before an entry name when full paths are shown.
func (pu *PathUtils) ParentPrefix(dir string) string {
	if strings.HasSuffix(dir, separator) {
		return dir
	}
	return dir + separator
}

// RelativeTo returns target relative to base using forward slashes, for pattern matching.
func (pu *PathUtils) RelativeTo(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("failed to calculate relative path: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

// ValidatePath validates that a path argument is usable
func (pu *PathUtils) ValidatePath(path string) error {
	if path == "" {
		return ErrPathEmpty
	}

	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains null character")
	}

	if len(path) > 4096 {
		return fmt.Errorf("path too long (max 4096 characters)")
	}

	return nil
}
