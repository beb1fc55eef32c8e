package cliutil

import "github.com/mattn/go-isatty"

// IsTty reports whether the given descriptor is attached to a
// terminal (cygwin pseudo terminals included)
func IsTty(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
