package notty

import (
	"fmt"
	"io"
	"sync"
)

// Session is one terminal session: the active screen buffer, the stack of
// saved buffers behind it, the visible dimensions, and the transport to the
// controlling process. A single mutex serializes all access, since buffer
// push/pop and mode changes are not safe to interleave.
type Session struct {
	mu     sync.Mutex
	width  uint
	height uint
	title  string
	active *Buffer
	saved  []*Buffer
	sender *Sender
	bell   io.Writer
}

// NewSession creates a session with one active buffer sized to the given
// dimensions, an empty saved-buffer stack, and a transport writing to w.
func NewSession(width, height uint, w io.Writer) *Session {
	return &Session{
		width:  width,
		height: height,
		active: NewBuffer(width, height, false, true),
		sender: NewSender(w),
	}
}

// SendInput routes one key event. Presses of Down, Up and Enter are first
// offered to a selectable widget sitting at the cursor position; the widget
// either produces a selection (the synthesized selection literal is sent),
// declines (the original key is forwarded), or absorbs the key. Everything
// else goes straight through the encoder to the transport. At most one
// outbound write happens per event, and transport errors propagate
// unchanged.
func (s *Session) SendInput(ev KeyEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Key {
	case KeyDown, KeyUp, KeyEnter:
		if !ev.Press {
			return s.sender.Write(ev)
		}
		w := s.active.WidgetAt(s.active.Cursor())
		if w == nil || !w.Selectable() {
			return s.sender.Write(ev)
		}
		n, outcome := w.Interact(ev)
		switch outcome {
		case SelectionMade:
			return s.sender.Write(MenuSelection(n))
		case Forward:
			return s.sender.Write(ev)
		default:
			return nil
		}
	default:
		return s.sender.Write(ev)
	}
}

// PushBuffer installs a fresh buffer at the current dimensions with the
// given scroll-independence flags and moves the old active buffer onto the
// saved stack (alternate-screen semantics).
func (s *Session) PushBuffer(scrollX, scrollY bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, s.active)
	s.active = NewBuffer(s.width, s.height, scrollX, scrollY)
}

// PopBuffer restores the most recently saved buffer as active, discarding
// the buffer being replaced. Popping with an empty stack is a no-op.
func (s *Session) PopBuffer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n := len(s.saved); n > 0 {
		s.active = s.saved[n-1]
		s.saved = s.saved[:n-1]
	}
}

// Active returns the active buffer. The caller must not retain it across
// push/pop operations.
func (s *Session) Active() *Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Depth returns the number of saved buffers.
func (s *Session) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

// SetVisibleWidth resizes the active buffer and the recorded width. Saved
// buffers keep the dimensions they had when pushed.
func (s *Session) SetVisibleWidth(cols uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.SetWidth(cols)
	s.width = cols
}

// SetVisibleHeight resizes the active buffer and the recorded height. Saved
// buffers keep the dimensions they had when pushed.
func (s *Session) SetVisibleHeight(rows uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active.SetHeight(rows)
	s.height = rows
}

// Size returns the visible dimensions.
func (s *Session) Size() (width, height uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// SetInputMode switches the encoding table for subsequent writes.
func (s *Session) SetInputMode(mode InputMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender.SetMode(mode)
}

// InputMode returns the currently negotiated input mode.
func (s *Session) InputMode() InputMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sender.Mode()
}

// SetTitle records the session title.
func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

// Title returns the session title.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// SetBellOutput directs Bell output somewhere other than the default stdout,
// e.g. the emulator's own display.
func (s *Session) SetBellOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bell = w
}

// Bell rings the terminal bell on the session's display.
func (s *Session) Bell() {
	s.mu.Lock()
	w := s.bell
	s.mu.Unlock()
	if w == nil {
		fmt.Print("\a")
		return
	}
	fmt.Fprint(w, "\a")
}
