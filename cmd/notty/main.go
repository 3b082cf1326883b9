// Command notty runs a shell on a pty and forwards keyboard input through a
// session, demonstrating the input layer end to end. With -menu, a demo menu
// intercepts Up/Down/Enter; a confirmed selection is sent to the shell as
// the synthesized selection literal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/proudzhu/notty"
	"github.com/xyproto/env/v2"
)

func main() {
	application := flag.Bool("application", false, "start in application cursor key mode")
	shell := flag.String("shell", env.Str("SHELL", "/bin/sh"), "program to run on the pty")
	menu := flag.Bool("menu", false, "attach a demo menu at the cursor")
	flag.Parse()

	if err := run(*shell, *application, *menu); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(shell string, application, withMenu bool) error {
	width, height := notty.MustTermSize()
	ptmx, cmd, err := notty.StartProcess(shell, nil, width, height)
	if err != nil {
		return err
	}
	defer func() {
		ptmx.Close()
		_ = cmd.Wait()
	}()

	session := notty.NewSession(width, height, ptmx)
	if application {
		session.SetInputMode(notty.ModeApplication)
	}
	if withMenu {
		buf := session.Active()
		buf.AttachWidget(buf.Cursor(), notty.NewMenu("Demo", []string{"first", "second", "third"}))
		fmt.Print("menu attached: Up/Down/Enter are intercepted\r\n")
	}

	stop := notty.WatchResize(session, ptmx)
	defer stop()

	tty, err := notty.NewTTY()
	if err != nil {
		return err
	}
	defer tty.Close()

	// Mirror the controlling process output onto our own terminal.
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(os.Stdout, ptmx)
		close(done)
	}()

	fmt.Print("forwarding keys, Ctrl-Q detaches\r\n")
	for {
		select {
		case <-done:
			return nil
		default:
		}
		ev, mods, ok, err := tty.ReadKeyEvent()
		if err != nil || !ok {
			continue
		}
		if ev.Key == notty.KeyChar && ev.Rune == 'Q' && mods.Ctrl {
			return nil
		}
		if err := sendWithModifiers(session, ev, mods); err != nil {
			return err
		}
	}
}

// sendWithModifiers brackets the key with the bare modifier press/release
// events the device itself cannot report, so the session's tracked modifier
// state matches what accompanied the key.
func sendWithModifiers(s *notty.Session, ev notty.KeyEvent, mods notty.Modifiers) error {
	wrap := []struct {
		on  bool
		key notty.Key
	}{
		{mods.Shift, notty.KeyShiftLeft},
		{mods.Ctrl, notty.KeyCtrlLeft},
		{mods.Alt, notty.KeyAltLeft},
	}
	for _, m := range wrap {
		if m.on {
			if err := s.SendInput(notty.KeyEvent{Key: m.key, Press: true}); err != nil {
				return err
			}
		}
	}
	if err := s.SendInput(ev); err != nil {
		return err
	}
	for _, m := range wrap {
		if m.on {
			if err := s.SendInput(notty.KeyEvent{Key: m.key, Press: false}); err != nil {
				return err
			}
		}
	}
	return nil
}
