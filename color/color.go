// Package color provides ANSI color escape sequences and small helpers
// for emitting them to a stream.
package color

import (
	"io"
	"os"
)

const (
	Esc = "\033"

	Red         = "\033[0;31m"
	BoldRed     = "\033[1;31m"
	Green       = "\033[0;32m"
	BoldGreen   = "\033[1;32m"
	Yellow      = "\033[0;33m"
	BoldYellow  = "\033[1;33m"
	Blue        = "\033[0;34m"
	BoldBlue    = "\033[1;34m"
	Magenta     = "\033[0;35m"
	BoldMagenta = "\033[1;35m"
	Cyan        = "\033[0;36m"
	BoldCyan    = "\033[1;36m"
	Reset       = "\033[0m"
)

// Fprint writes the escape sequence code to w.
func Fprint(w io.Writer, code string) (int, error) {
	return io.WriteString(w, code)
}

// Set writes the escape sequence code to stdout; pair with
// Set(Reset) when done.
func Set(code string) {
	io.WriteString(os.Stdout, code)
}

// Wrap returns s surrounded by the escape sequence code and a reset.
func Wrap(code, s string) string {
	return code + s + Reset
}
