//go:build !windows

package notty

import (
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/term"
	"github.com/xyproto/env/v2"
)

var defaultTimeout = 2 * time.Millisecond

// decoded is one lookup entry: the logical event plus the modifier flags
// implied by the sequence.
type decoded struct {
	ev   KeyEvent
	mods Modifiers
}

// Plain 3-byte sequences: CSI arrows and Home/End, plus their SS3
// (application cursor mode) forms.
var plainSeqLookup = map[[3]byte]decoded{
	{27, '[', 'A'}: {ev: KeyEvent{Key: KeyUp, Press: true}},
	{27, '[', 'B'}: {ev: KeyEvent{Key: KeyDown, Press: true}},
	{27, '[', 'C'}: {ev: KeyEvent{Key: KeyRight, Press: true}},
	{27, '[', 'D'}: {ev: KeyEvent{Key: KeyLeft, Press: true}},
	{27, '[', 'H'}: {ev: KeyEvent{Key: KeyHome, Press: true}},
	{27, '[', 'F'}: {ev: KeyEvent{Key: KeyEnd, Press: true}},
	{27, 'O', 'A'}: {ev: KeyEvent{Key: KeyUp, Press: true}},
	{27, 'O', 'B'}: {ev: KeyEvent{Key: KeyDown, Press: true}},
	{27, 'O', 'C'}: {ev: KeyEvent{Key: KeyRight, Press: true}},
	{27, 'O', 'D'}: {ev: KeyEvent{Key: KeyLeft, Press: true}},
	{27, 'O', 'H'}: {ev: KeyEvent{Key: KeyHome, Press: true}},
	{27, 'O', 'F'}: {ev: KeyEvent{Key: KeyEnd, Press: true}},
}

// 4-byte tilde sequences: ESC [ digit ~.
var tildeSeqLookup = map[[4]byte]decoded{
	{27, '[', '1', '~'}: {ev: KeyEvent{Key: KeyHome, Press: true}},
	{27, '[', '2', '~'}: {ev: KeyEvent{Key: KeyInsert, Press: true}},
	{27, '[', '3', '~'}: {ev: KeyEvent{Key: KeyDelete, Press: true}},
	{27, '[', '4', '~'}: {ev: KeyEvent{Key: KeyEnd, Press: true}},
	{27, '[', '5', '~'}: {ev: KeyEvent{Key: KeyPageUp, Press: true}},
	{27, '[', '6', '~'}: {ev: KeyEvent{Key: KeyPageDown, Press: true}},
}

// 6-byte modified sequences (ESC [ 1 ; n letter and ESC [ digit ; n ~),
// generated from the same modifier-parameter progression the encoder uses.
var modSeqLookup = map[[6]byte]decoded{}

func init() {
	letters := map[byte]Key{
		'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
		'H': KeyHome, 'F': KeyEnd,
	}
	digits := map[byte]Key{
		'2': KeyInsert, '3': KeyDelete, '5': KeyPageUp, '6': KeyPageDown,
	}
	for n := 2; n <= 8; n++ {
		mods := modsForParam(n)
		p := byte('0' + n)
		for t, k := range letters {
			seq := [6]byte{27, '[', '1', ';', p, t}
			modSeqLookup[seq] = decoded{ev: KeyEvent{Key: k, Press: true}, mods: mods}
		}
		for d, k := range digits {
			seq := [6]byte{27, '[', d, ';', p, '~'}
			modSeqLookup[seq] = decoded{ev: KeyEvent{Key: k, Press: true}, mods: mods}
		}
	}
}

// modsForParam inverts the xterm modifier parameter (2..8) back into flags.
func modsForParam(n int) Modifiers {
	n--
	return Modifiers{
		Shift: n&1 != 0,
		Alt:   n&2 != 0,
		Ctrl:  n&4 != 0,
	}
}

// DecodeSequence turns raw bytes read from the keyboard device into a
// logical key event and its modifier flags. The boolean is false when the
// bytes do not form a recognizable event. The device only reports presses;
// releases never appear on a tty.
func DecodeSequence(buf []byte) (KeyEvent, Modifiers, bool) {
	switch {
	case len(buf) == 1:
		b := buf[0]
		switch {
		case b == '\r' || b == '\n':
			return KeyEvent{Key: KeyEnter, Press: true}, Modifiers{}, true
		case b == '\t' || b == 27 || b == 127:
			return Char(true, rune(b)), Modifiers{}, true
		case b < 32:
			// A control code is a ctrl-modified letter; undo the
			// masking the sending terminal applied.
			return Char(true, rune(b+0x40)), Modifiers{Ctrl: true}, true
		default:
			return Char(true, rune(b)), Modifiers{}, true
		}
	case len(buf) == 2 && buf[0] == 27:
		// ESC prefix on a single byte is the alt-modified form.
		if ev, mods, ok := DecodeSequence(buf[1:]); ok && ev.Key == KeyChar {
			mods.Alt = true
			return ev, mods, true
		}
		return KeyEvent{}, Modifiers{}, false
	case len(buf) == 3:
		seq := [3]byte{buf[0], buf[1], buf[2]}
		if d, found := plainSeqLookup[seq]; found {
			return d.ev, d.mods, true
		}
	case len(buf) == 4:
		seq := [4]byte{buf[0], buf[1], buf[2], buf[3]}
		if d, found := tildeSeqLookup[seq]; found {
			return d.ev, d.mods, true
		}
	case len(buf) == 6:
		seq := [6]byte{buf[0], buf[1], buf[2], buf[3], buf[4], buf[5]}
		if d, found := modSeqLookup[seq]; found {
			return d.ev, d.mods, true
		}
	}
	// Not a known sequence; take it as UTF-8 text.
	r, _ := utf8.DecodeRune(buf)
	if r != utf8.RuneError && unicode.IsPrint(r) {
		return Char(true, r), Modifiers{}, true
	}
	return KeyEvent{}, Modifiers{}, false
}

// TTY reads raw keyboard input from the terminal device.
type TTY struct {
	t       *term.Term
	timeout time.Duration
}

// NewTTY opens the terminal device in raw mode.
func NewTTY() (*TTY, error) {
	t, err := term.Open(getTTYPath(), term.RawMode, term.CBreakMode, term.ReadTimeout(defaultTimeout))
	if err != nil {
		return nil, err
	}
	return &TTY{t, defaultTimeout}, nil
}

// getTTYPath returns the device to read keyboard input from, preferring the
// multiplexer pane or SSH tty when one is advertised.
func getTTYPath() string {
	if tmuxTTY := env.Str("TMUX_PANE_TTY"); tmuxTTY != "" {
		return tmuxTTY
	}
	if sshTTY := env.Str("SSH_TTY"); sshTTY != "" {
		return sshTTY
	}
	defaultTTY := "/dev/tty"
	if _, err := os.Stat(defaultTTY); err == nil {
		return defaultTTY
	}
	return "/dev/stdin"
}

// SetTimeout sets a timeout for reading a key.
func (tty *TTY) SetTimeout(d time.Duration) {
	tty.timeout = d
	tty.t.SetReadTimeout(tty.timeout)
}

// RawMode switches the terminal device to raw mode.
func (tty *TTY) RawMode() {
	term.RawMode(tty.t)
}

// NoBlock sets the terminal device to cbreak mode.
func (tty *TTY) NoBlock() {
	tty.t.SetCbreak()
}

// Restore returns the terminal device to its original state.
func (tty *TTY) Restore() {
	tty.t.Restore()
}

// Flush flushes pending device input.
func (tty *TTY) Flush() {
	tty.t.Flush()
}

// Close restores and closes the terminal device.
func (tty *TTY) Close() {
	tty.t.Restore()
	tty.t.Close()
}

// ReadKeyEvent reads one key from the device and decodes it. When no key
// arrives within the timeout it returns ok=false with a nil error.
func (tty *TTY) ReadKeyEvent() (KeyEvent, Modifiers, bool, error) {
	buf := make([]byte, 6)

	tty.RawMode()
	tty.NoBlock()
	tty.SetTimeout(tty.timeout)
	n, err := tty.t.Read(buf)
	tty.Restore()
	tty.t.Flush()

	if err != nil {
		return KeyEvent{}, Modifiers{}, false, err
	}
	if n == 0 {
		return KeyEvent{}, Modifiers{}, false, nil
	}
	ev, mods, ok := DecodeSequence(buf[:n])
	return ev, mods, ok, nil
}
