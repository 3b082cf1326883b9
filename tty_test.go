//go:build !windows

package notty

import "testing"

func TestDecodePlainSequences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		key  Key
	}{
		{"csi up", "\x1b[A", KeyUp},
		{"csi down", "\x1b[B", KeyDown},
		{"csi right", "\x1b[C", KeyRight},
		{"csi left", "\x1b[D", KeyLeft},
		{"ss3 up", "\x1bOA", KeyUp},
		{"home", "\x1b[H", KeyHome},
		{"end", "\x1b[F", KeyEnd},
		{"page up", "\x1b[5~", KeyPageUp},
		{"page down", "\x1b[6~", KeyPageDown},
		{"insert", "\x1b[2~", KeyInsert},
		{"delete", "\x1b[3~", KeyDelete},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ev, mods, ok := DecodeSequence([]byte(c.in))
			if !ok {
				t.Fatalf("DecodeSequence(%q) not recognized", c.in)
			}
			if ev.Key != c.key || !ev.Press {
				t.Fatalf("got %v, want %v press", ev, c.key)
			}
			if mods != (Modifiers{}) {
				t.Fatalf("mods = %+v, want none", mods)
			}
		})
	}
}

func TestDecodeModifiedSequences(t *testing.T) {
	cases := []struct {
		in   string
		key  Key
		mods Modifiers
	}{
		{"\x1b[1;2A", KeyUp, Modifiers{Shift: true}},
		{"\x1b[1;5B", KeyDown, Modifiers{Ctrl: true}},
		{"\x1b[1;3C", KeyRight, Modifiers{Alt: true}},
		{"\x1b[1;8D", KeyLeft, Modifiers{Shift: true, Ctrl: true, Alt: true}},
		{"\x1b[1;6H", KeyHome, Modifiers{Shift: true, Ctrl: true}},
		{"\x1b[3;2~", KeyDelete, Modifiers{Shift: true}},
		{"\x1b[5;7~", KeyPageUp, Modifiers{Ctrl: true, Alt: true}},
	}
	for _, c := range cases {
		ev, mods, ok := DecodeSequence([]byte(c.in))
		if !ok {
			t.Errorf("DecodeSequence(%q) not recognized", c.in)
			continue
		}
		if ev.Key != c.key || mods != c.mods {
			t.Errorf("DecodeSequence(%q) = %v %+v, want %v %+v", c.in, ev, mods, c.key, c.mods)
		}
	}
}

func TestDecodeRoundTripsThroughEncoder(t *testing.T) {
	// Every modified sequence the encoder can emit must decode back to
	// the same key and modifiers.
	keys := []Key{KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd,
		KeyPageUp, KeyPageDown, KeyInsert, KeyDelete}
	all := []Modifiers{
		{Shift: true}, {Alt: true}, {Shift: true, Alt: true},
		{Ctrl: true}, {Shift: true, Ctrl: true}, {Ctrl: true, Alt: true},
		{Shift: true, Ctrl: true, Alt: true},
	}
	for _, k := range keys {
		for _, m := range all {
			code, ok := Encode(press(k), ModeAnsi, m)
			if !ok {
				t.Fatalf("no encoding for %v with %+v", k, m)
			}
			ev, mods, ok := DecodeSequence([]byte(code))
			if !ok {
				t.Errorf("%q (from %v %+v) did not decode", code, k, m)
				continue
			}
			if ev.Key != k || mods != m {
				t.Errorf("%q decoded to %v %+v, want %v %+v", code, ev, mods, k, m)
			}
		}
	}
}

func TestDecodeSingleBytes(t *testing.T) {
	ev, mods, ok := DecodeSequence([]byte{'a'})
	if !ok || ev.Key != KeyChar || ev.Rune != 'a' || mods != (Modifiers{}) {
		t.Fatalf("plain byte decoded to %v %+v", ev, mods)
	}

	ev, mods, ok = DecodeSequence([]byte{0x03})
	if !ok || ev.Key != KeyChar || ev.Rune != 'C' || !mods.Ctrl {
		t.Fatalf("ETX decoded to %v %+v, want ctrl-C", ev, mods)
	}

	ev, _, ok = DecodeSequence([]byte{'\r'})
	if !ok || ev.Key != KeyEnter {
		t.Fatalf("CR decoded to %v, want Enter", ev)
	}
}

func TestDecodeAltPrefix(t *testing.T) {
	ev, mods, ok := DecodeSequence([]byte("\x1bx"))
	if !ok || ev.Key != KeyChar || ev.Rune != 'x' || !mods.Alt {
		t.Fatalf("ESC x decoded to %v %+v, want alt-x", ev, mods)
	}
}

func TestDecodeUTF8(t *testing.T) {
	ev, _, ok := DecodeSequence([]byte("ø"))
	if !ok || ev.Key != KeyChar || ev.Rune != 'ø' {
		t.Fatalf("utf8 decoded to %v", ev)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, ok := DecodeSequence([]byte{0x1b, '[', 'Z', 'Z', 'Z'}); ok {
		t.Fatal("garbage sequence decoded")
	}
}
