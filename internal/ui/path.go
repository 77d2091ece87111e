package ui

import (
	"path/filepath"
	"strings"
)

// DisplayPath renders path for output: relative to base, unless absolute
// display was requested or the path escapes base, in which case it is
// absolute.
func DisplayPath(path, base string, absolute bool) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if absolute {
		return abs
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs
	}
	return rel
}
