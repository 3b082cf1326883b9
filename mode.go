package notty

import (
	"fmt"

	"github.com/xyproto/env/v2"
)

// InputMode is the negotiated session setting that selects which
// byte-sequence table encodes cursor-key presses.
type InputMode uint8

const (
	// ModeAnsi is the classic VT100/xterm-compatible mode.
	ModeAnsi InputMode = iota
	// ModeApplication is ANSI-compatible mode with application cursor keys.
	ModeApplication
	// ModeExtended is reserved; its encoding table is not defined yet.
	ModeExtended
)

// String returns the mode name.
func (m InputMode) String() string {
	switch m {
	case ModeAnsi:
		return "Ansi"
	case ModeApplication:
		return "Application"
	case ModeExtended:
		return "Extended"
	default:
		return fmt.Sprintf("InputMode(%d)", uint8(m))
	}
}

// UnderTMUX reports whether the process is running inside a TMUX session.
var UnderTMUX = env.Has("TMUX")

// UnderScreen reports whether the process is running inside a GNU Screen session.
var UnderScreen = env.Has("STY")

// UnderZellij reports whether the process is running inside a Zellij session.
var UnderZellij = env.Has("ZELLIJ")

// Multiplexed is true when running inside any known terminal multiplexer.
var Multiplexed = UnderTMUX || UnderScreen || UnderZellij

// DefaultInputMode returns the input mode new sessions start in.
// NOTTY_INPUT_MODE can override it ("ansi" or "application").
func DefaultInputMode() InputMode {
	switch env.Str("NOTTY_INPUT_MODE") {
	case "application":
		return ModeApplication
	case "extended":
		return ModeExtended
	}
	return ModeAnsi
}
