package notty

import (
	"io"
	"os"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"
)

// MustTermSize returns the dimensions of the hosting terminal, falling back
// to COLS/COLUMNS/LINES and finally to 79x25 when stdout is not a terminal.
func MustTermSize() (uint, uint) {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err == nil {
			return uint(width), uint(height)
		}
	}

	var w uint = 79
	if cols := env.Int("COLS", 0); cols > 0 {
		w = uint(cols)
	} else if cols := env.Int("COLUMNS", 0); cols > 0 {
		w = uint(cols)
	}
	return w, uint(env.Int("LINES", 25))
}

// NewSessionFromEnv creates a session sized to the hosting terminal, with
// the transport writing to w.
func NewSessionFromEnv(w io.Writer) *Session {
	width, height := MustTermSize()
	return NewSession(width, height, w)
}
