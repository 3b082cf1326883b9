//go:build !windows

package notty

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// WatchResize follows SIGWINCH from the hosting terminal: on every delivery
// it resizes the session's active buffer and, when ptmx is non-nil,
// propagates the new dimensions to the controlling process. The returned
// function stops the watcher.
func WatchResize(s *Session, ptmx *os.File) func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ch:
				w, h := MustTermSize()
				s.SetVisibleWidth(w)
				s.SetVisibleHeight(h)
				if ptmx != nil {
					_ = ResizeProcess(ptmx, w, h)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
