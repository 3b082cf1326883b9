package notty

import "io"

// Sender is the input transport: it tracks the negotiated input mode and the
// current modifier flags, encodes key events, and writes the resulting bytes
// to the controlling process in one step.
type Sender struct {
	w    io.Writer
	mode InputMode
	mods Modifiers
}

// NewSender wraps a byte sink, typically the master side of the pty the
// controlling process runs on.
func NewSender(w io.Writer) *Sender {
	return &Sender{w: w, mode: DefaultInputMode()}
}

// SetMode switches the encoding table used for subsequent writes.
func (s *Sender) SetMode(mode InputMode) {
	s.mode = mode
}

// Mode returns the currently negotiated input mode.
func (s *Sender) Mode() InputMode {
	return s.mode
}

// Modifiers returns the modifier flags accumulated from bare modifier key
// events.
func (s *Sender) Modifiers() Modifiers {
	return s.mods
}

// Write encodes one key event and sends it to the controlling process.
// Bare modifier and lock key events update the tracked flags and produce no
// output. Events without an encoding are dropped. Delivery is at-most-once:
// a write error surfaces immediately and nothing is retried or buffered.
func (s *Sender) Write(ev KeyEvent) error {
	if s.mods.Apply(ev) {
		return nil
	}
	code, ok := Encode(ev, s.mode, s.mods)
	if !ok {
		return nil
	}
	return s.send(code)
}

// send writes the complete sequence, finishing partial writes.
func (s *Sender) send(code string) error {
	data := []byte(code)
	for len(data) > 0 {
		n, err := s.w.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
