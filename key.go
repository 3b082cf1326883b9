package notty

import (
	"fmt"
	"strconv"
)

// Key identifies the kind of a logical input event.
type Key uint8

const (
	KeyNone Key = iota

	// KeyChar is a printable character; the rune lives in KeyEvent.Rune.
	KeyChar

	// Directional keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Modifier keys. These are informational press/release events; they
	// only matter as flags accompanying other keys and are never encoded
	// on their own.
	KeyShiftLeft
	KeyShiftRight
	KeyCtrlLeft
	KeyCtrlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight

	// Navigation keys
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete

	// KeyEnter is the confirmation key.
	KeyEnter

	// Lock keys
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	// KeyFunction is a function key; the 1-based index lives in KeyEvent.Index.
	KeyFunction

	// KeyCmd carries a pre-formatted literal string in KeyEvent.Cmd,
	// emitted verbatim regardless of mode and modifiers.
	KeyCmd
)

// String returns a human-readable name for the key kind.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyChar:
		return "Char"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyShiftLeft:
		return "ShiftLeft"
	case KeyShiftRight:
		return "ShiftRight"
	case KeyCtrlLeft:
		return "CtrlLeft"
	case KeyCtrlRight:
		return "CtrlRight"
	case KeyAltLeft:
		return "AltLeft"
	case KeyAltRight:
		return "AltRight"
	case KeyMetaLeft:
		return "MetaLeft"
	case KeyMetaRight:
		return "MetaRight"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyInsert:
		return "Insert"
	case KeyDelete:
		return "Delete"
	case KeyEnter:
		return "Enter"
	case KeyCapsLock:
		return "CapsLock"
	case KeyNumLock:
		return "NumLock"
	case KeyScrollLock:
		return "ScrollLock"
	case KeyFunction:
		return "Function"
	case KeyCmd:
		return "Cmd"
	default:
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
}

// KeyEvent is a single logical input event. Exactly one interpretation is
// active per event: Rune is set only for KeyChar, Index only for KeyFunction
// and Cmd only for KeyCmd.
type KeyEvent struct {
	Key   Key
	Press bool
	Rune  rune
	Index int
	Cmd   string
}

// Char returns a printable-character event.
func Char(press bool, r rune) KeyEvent {
	return KeyEvent{Key: KeyChar, Press: press, Rune: r}
}

// Function returns a function key event with a 1-based index.
func Function(press bool, index int) KeyEvent {
	return KeyEvent{Key: KeyFunction, Press: press, Index: index}
}

// Literal returns an event that emits s verbatim.
func Literal(s string) KeyEvent {
	return KeyEvent{Key: KeyCmd, Press: true, Cmd: s}
}

// MenuSelection returns the synthesized event sent when a menu widget
// confirms entry n. The literal is the decimal index followed by CR, so the
// controlling process receives the selection as if it had been typed.
func MenuSelection(n int) KeyEvent {
	return Literal(strconv.Itoa(n) + "\r")
}

// String renders the event for debugging.
func (ev KeyEvent) String() string {
	action := "release"
	if ev.Press {
		action = "press"
	}
	switch ev.Key {
	case KeyChar:
		return fmt.Sprintf("Char(%q) %s", ev.Rune, action)
	case KeyFunction:
		return fmt.Sprintf("F%d %s", ev.Index, action)
	case KeyCmd:
		return fmt.Sprintf("Cmd(%q)", ev.Cmd)
	default:
		return ev.Key.String() + " " + action
	}
}
