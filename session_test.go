package notty

import (
	"bytes"
	"errors"
	"testing"
)

// stubWidget scripts one Interact outcome.
type stubWidget struct {
	selectable bool
	index      int
	outcome    InteractOutcome
	offered    []KeyEvent
}

func (w *stubWidget) Selectable() bool {
	return w.selectable
}

func (w *stubWidget) Interact(ev KeyEvent) (int, InteractOutcome) {
	w.offered = append(w.offered, ev)
	return w.index, w.outcome
}

func newTestSession() (*Session, *bytes.Buffer) {
	var sink bytes.Buffer
	return NewSession(80, 25, &sink), &sink
}

func attach(s *Session, w Widget) {
	buf := s.Active()
	buf.AttachWidget(buf.Cursor(), w)
}

func TestDownForwardedWithoutWidget(t *testing.T) {
	s, sink := newTestSession()
	if err := s.SendInput(press(KeyDown)); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "\x1b[B" {
		t.Fatalf("sink = %q, want the standard Down sequence", got)
	}
}

func TestWidgetSelectionReplacesKey(t *testing.T) {
	s, sink := newTestSession()
	w := &stubWidget{selectable: true, index: 2, outcome: SelectionMade}
	attach(s, w)

	if err := s.SendInput(press(KeyDown)); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "2\r" {
		t.Fatalf("sink = %q, want only the selection literal", got)
	}
	if len(w.offered) != 1 || w.offered[0].Key != KeyDown {
		t.Fatalf("widget offered %v, want one Down press", w.offered)
	}
}

func TestWidgetForwardSendsOriginalKey(t *testing.T) {
	s, sink := newTestSession()
	attach(s, &stubWidget{selectable: true, outcome: Forward})

	if err := s.SendInput(press(KeyUp)); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "\x1b[A" {
		t.Fatalf("sink = %q, want the standard Up sequence", got)
	}
}

func TestWidgetConsumedSendsNothing(t *testing.T) {
	s, sink := newTestSession()
	attach(s, &stubWidget{selectable: true, outcome: Consumed})

	if err := s.SendInput(press(KeyEnter)); err != nil {
		t.Fatal(err)
	}
	if sink.Len() != 0 {
		t.Fatalf("sink = %q, want nothing", sink.String())
	}
}

func TestUnselectableWidgetIsSkipped(t *testing.T) {
	s, sink := newTestSession()
	w := &stubWidget{selectable: false, outcome: SelectionMade}
	attach(s, w)

	if err := s.SendInput(press(KeyDown)); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "\x1b[B" {
		t.Fatalf("sink = %q, want the standard Down sequence", got)
	}
	if len(w.offered) != 0 {
		t.Fatal("unselectable widget was offered the key")
	}
}

func TestNonSpecialKeysBypassWidget(t *testing.T) {
	s, sink := newTestSession()
	w := &stubWidget{selectable: true, outcome: SelectionMade}
	attach(s, w)

	if err := s.SendInput(Char(true, 'x')); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "x" {
		t.Fatalf("sink = %q, want %q", got, "x")
	}
	if len(w.offered) != 0 {
		t.Fatal("widget was offered a character key")
	}
}

func TestReleaseBypassesWidget(t *testing.T) {
	s, sink := newTestSession()
	w := &stubWidget{selectable: true, outcome: SelectionMade}
	attach(s, w)

	if err := s.SendInput(release(KeyDown)); err != nil {
		t.Fatal(err)
	}
	if sink.Len() != 0 {
		t.Fatalf("sink = %q, want nothing for a release", sink.String())
	}
	if len(w.offered) != 0 {
		t.Fatal("widget was offered a release event")
	}
}

func TestModeSwitchAffectsSubsequentWrites(t *testing.T) {
	s, sink := newTestSession()
	if err := s.SendInput(press(KeyUp)); err != nil {
		t.Fatal(err)
	}
	s.SetInputMode(ModeApplication)
	if err := s.SendInput(press(KeyUp)); err != nil {
		t.Fatal(err)
	}
	if got := sink.String(); got != "\x1b[A\x1bOA" {
		t.Fatalf("sink = %q, want ansi then application sequences", got)
	}
	if s.InputMode() != ModeApplication {
		t.Fatalf("InputMode() = %v, want Application", s.InputMode())
	}
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("pty gone")
}

func TestTransportErrorsPropagate(t *testing.T) {
	s := NewSession(80, 25, failWriter{})
	if err := s.SendInput(press(KeyDown)); err == nil {
		t.Fatal("write error did not surface")
	}
	// Events with no encoding never touch the transport.
	if err := s.SendInput(release(KeyDown)); err != nil {
		t.Fatalf("release reached the failing transport: %v", err)
	}
}

func TestPushPopRestoresBuffer(t *testing.T) {
	s, _ := newTestSession()
	first := s.Active()
	first.Plot(0, 0, 'x')

	s.PushBuffer(true, false)
	second := s.Active()
	if second == first {
		t.Fatal("push did not install a fresh buffer")
	}
	if !second.ScrollsX() || second.ScrollsY() {
		t.Fatal("push ignored the scroll flags")
	}
	if second.At(0, 0).R == 'x' {
		t.Fatal("fresh buffer inherited old content")
	}

	s.PopBuffer()
	if s.Active() != first {
		t.Fatal("pop did not restore the saved buffer")
	}
	if s.Active().At(0, 0).R != 'x' {
		t.Fatal("restored buffer lost its content")
	}
}

func TestPopOnEmptyStackIsANoOp(t *testing.T) {
	s, _ := newTestSession()
	s.PushBuffer(false, true)
	s.PopBuffer()
	active := s.Active()
	s.PopBuffer()
	if s.Active() != active {
		t.Fatal("second pop changed the active buffer")
	}
	if s.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0", s.Depth())
	}
}

func TestResizeLeavesSavedBuffersAlone(t *testing.T) {
	s, _ := newTestSession()
	saved := s.Active()
	s.PushBuffer(false, true)

	s.SetVisibleWidth(120)
	s.SetVisibleHeight(40)

	if w, h := s.Size(); w != 120 || h != 40 {
		t.Fatalf("Size() = %dx%d, want 120x40", w, h)
	}
	if s.Active().Width() != 120 || s.Active().Height() != 40 {
		t.Fatalf("active buffer = %dx%d, want 120x40", s.Active().Width(), s.Active().Height())
	}
	if saved.Width() != 80 || saved.Height() != 25 {
		t.Fatalf("saved buffer = %dx%d, want its original 80x25", saved.Width(), saved.Height())
	}
}

func TestPushSizesToCurrentDimensions(t *testing.T) {
	s, _ := newTestSession()
	s.SetVisibleWidth(100)
	s.PushBuffer(false, false)
	if s.Active().Width() != 100 {
		t.Fatalf("pushed buffer width = %d, want 100", s.Active().Width())
	}
}
