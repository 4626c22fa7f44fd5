// Package terminal reports the size of the terminal a writer is attached to.
package terminal

import (
	"io"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fder is satisfied by *os.File
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// SizeOf returns the width and height of the terminal behind w, or the
// defaults when w is not a terminal.
func SizeOf(w io.Writer) (width, height int) {
	if !IsTerminal(w) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(w.(fder).Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
