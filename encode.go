package notty

import "fmt"

// Escape-sequence templates for the compatible (VT100/xterm) input tables.
const (
	escByte            = "\x1b"
	cursorAnsiTemplate = "\x1b[%c"
	cursorAppTemplate  = "\x1bO%c"
	cursorModTemplate  = "\x1b[1;%d%c"
	tildeTemplate      = "\x1b[%c~"
	tildeModTemplate   = "\x1b[%c;%d~"
)

// Encode maps a logical key event to the byte sequence the controlling
// process expects under the given input mode. It is pure: all context comes
// in as parameters and no state is shared.
//
// The boolean is false when the event has no encoding: release events, bare
// Meta presses, and ctrl combinations outside the representable range. That
// is not an error; the caller sends nothing. Unimplemented tables (Extended
// mode, function and num/scroll lock keys) panic instead, so gaps stay
// visible during development and cannot masquerade as legitimate silence.
func Encode(ev KeyEvent, mode InputMode, mods Modifiers) (string, bool) {
	switch mode {
	case ModeAnsi:
		return compatibleCode(ev, mods, true)
	case ModeApplication:
		return compatibleCode(ev, mods, false)
	case ModeExtended:
		panic("notty: the extended input mode has no encoding table yet")
	default:
		panic(fmt.Sprintf("notty: unknown input mode %d", uint8(mode)))
	}
}

// compatibleCode dispatches one event through the classic tables. Only press
// events produce output; key releases carry no meaning in this protocol.
func compatibleCode(ev KeyEvent, mods Modifiers, ansi bool) (string, bool) {
	switch ev.Key {
	case KeyChar:
		if !ev.Press {
			return "", false
		}
		return charCode(ev.Rune, mods)
	case KeyEnter:
		if !ev.Press {
			return "", false
		}
		return charCode('\r', mods)
	case KeyCmd:
		return ev.Cmd, true
	case KeyUp:
		if !ev.Press {
			return "", false
		}
		return cursorCode('A', mods, ansi), true
	case KeyDown:
		if !ev.Press {
			return "", false
		}
		return cursorCode('B', mods, ansi), true
	case KeyLeft:
		if !ev.Press {
			return "", false
		}
		return cursorCode('D', mods, ansi), true
	case KeyRight:
		if !ev.Press {
			return "", false
		}
		return cursorCode('C', mods, ansi), true
	case KeyShiftLeft, KeyShiftRight, KeyCtrlLeft, KeyCtrlRight,
		KeyAltLeft, KeyAltRight, KeyCapsLock:
		// The dispatcher folds these into the modifier flags before
		// encoding; one arriving here is a logic fault, not a "no
		// encoding" case.
		panic("notty: bare modifier key reached the encoder: " + ev.Key.String())
	case KeyMetaLeft, KeyMetaRight:
		// Meta is consumed elsewhere as an Alt-equivalent flag and has
		// no byte sequence of its own.
		return "", false
	case KeyPageUp:
		if !ev.Press {
			return "", false
		}
		return tildeCode('5', mods), true
	case KeyPageDown:
		if !ev.Press {
			return "", false
		}
		return tildeCode('6', mods), true
	case KeyHome:
		if !ev.Press {
			return "", false
		}
		// Home and End are not mode-sensitive; they always use the
		// ansi-flavor convention.
		return cursorCode('H', mods, true), true
	case KeyEnd:
		if !ev.Press {
			return "", false
		}
		return cursorCode('F', mods, true), true
	case KeyInsert:
		if !ev.Press {
			return "", false
		}
		return tildeCode('2', mods), true
	case KeyDelete:
		if !ev.Press {
			return "", false
		}
		return tildeCode('3', mods), true
	case KeyNumLock:
		panic("notty: num lock encoding not implemented")
	case KeyScrollLock:
		panic("notty: scroll lock encoding not implemented")
	case KeyFunction:
		panic("notty: function key encoding not implemented")
	default:
		return "", false
	}
}

// charCode encodes a printable character under ctrl/alt. Ctrl maps runes in
// the 0x40..0x7F range to their control code (the rune with bits 0x20 and up
// masked off); anything outside that range has no ctrl encoding, matching
// real terminals silently dropping such combinations.
func charCode(c rune, mods Modifiers) (string, bool) {
	switch {
	case !mods.Ctrl && !mods.Alt:
		return string(c), true
	case mods.Ctrl && !mods.Alt:
		if c >= 0x40 && c <= 0x7f {
			return string(c & 0x1f), true
		}
		return "", false
	case !mods.Ctrl && mods.Alt:
		return escByte + string(c), true
	default:
		if c >= 0x40 && c <= 0x7f {
			return escByte + string(c&0x1f), true
		}
		return "", false
	}
}

// cursorCode encodes a cursor-style key with terminator letter term.
// The ansi flag only matters for the unmodified case; every modified
// sequence is identical across the two compatible modes.
func cursorCode(term byte, mods Modifiers, ansi bool) string {
	if n := mods.Param(); n != 0 {
		return fmt.Sprintf(cursorModTemplate, n, term)
	}
	if ansi {
		return fmt.Sprintf(cursorAnsiTemplate, term)
	}
	return fmt.Sprintf(cursorAppTemplate, term)
}

// tildeCode encodes a navigation key that has no dedicated terminator
// letter, using the ESC [ digit (;n)? ~ shape.
func tildeCode(digit byte, mods Modifiers) string {
	if n := mods.Param(); n != 0 {
		return fmt.Sprintf(tildeModTemplate, digit, n)
	}
	return fmt.Sprintf(tildeTemplate, digit)
}
