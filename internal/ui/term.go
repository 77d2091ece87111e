package ui

import "github.com/mattn/go-isatty"

// IsTTY reports whether the given file descriptor refers to a terminal.
func IsTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled resolves a color mode ("auto", "always", "never") against
// the output descriptor. Unrecognized modes behave like "auto".
func ColorEnabled(mode string, fd uintptr) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return IsTTY(fd)
	}
}
