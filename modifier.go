package notty

import "strings"

// Modifiers captures the modifier flags accompanying a key event.
type Modifiers struct {
	Shift bool
	Caps  bool
	Ctrl  bool
	Alt   bool
}

// Triplet reduces the four flags to the (shift-or-caps, ctrl, alt)
// combination that every modifier-sensitive encoding table is keyed on.
// Caps lock and shift produce identical modifier codes in escape sequences,
// so they share one axis.
func (m Modifiers) Triplet() (shift, ctrl, alt bool) {
	return m.Shift || m.Caps, m.Ctrl, m.Alt
}

// Param returns the xterm modifier parameter for the reduced triplet:
// 0 when no modifier is held, otherwise 2 through 8.
func (m Modifiers) Param() int {
	shift, ctrl, alt := m.Triplet()
	n := 1
	if shift {
		n++
	}
	if alt {
		n += 2
	}
	if ctrl {
		n += 4
	}
	if n == 1 {
		return 0
	}
	return n
}

// Apply folds a bare modifier or lock key event into the flag record and
// reports whether the event was consumed. Consumed events carry no encodable
// meaning of their own and must not reach the encoder. Meta keys are not
// consumed here; the compatible tables treat them as a deliberate no-op.
func (m *Modifiers) Apply(ev KeyEvent) bool {
	switch ev.Key {
	case KeyShiftLeft, KeyShiftRight:
		m.Shift = ev.Press
	case KeyCtrlLeft, KeyCtrlRight:
		m.Ctrl = ev.Press
	case KeyAltLeft, KeyAltRight:
		m.Alt = ev.Press
	case KeyCapsLock:
		if ev.Press {
			m.Caps = !m.Caps
		}
	default:
		return false
	}
	return true
}

// String returns a representation like "Ctrl+Alt", or "" when empty.
func (m Modifiers) String() string {
	var parts []string
	if m.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if m.Alt {
		parts = append(parts, "Alt")
	}
	if m.Shift {
		parts = append(parts, "Shift")
	}
	if m.Caps {
		parts = append(parts, "Caps")
	}
	return strings.Join(parts, "+")
}
