package render

import (
	"os"

	"golang.org/x/term"
)

// Width reports the width of the terminal attached to f, or fallback
// when f is not a terminal or the size cannot be read.
func Width(f *os.File, fallback int) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
