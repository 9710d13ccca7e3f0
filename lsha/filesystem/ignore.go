package filesystem

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/lsha/lsha/filesystem/interfaces"

	ignore "github.com/sabhiram/go-gitignore"
)

// LoadIgnoreFile compiles a gitignore-style pattern file. An empty path means no patterns.
func LoadIgnoreFile(path string) (interfaces.IgnoreChecker, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("error checking ignore file %s: %w", path, err)
	}

	ignored, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading ignore file %s: %w", path, err)
	}
	return ignored, nil
}

// CompileIgnorePatterns compiles patterns given inline.
func CompileIgnorePatterns(patterns ...string) interfaces.IgnoreChecker {
	return ignore.CompileIgnoreLines(patterns...)
}
