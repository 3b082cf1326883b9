package notty

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// StartProcess starts a controlling process on a fresh pty sized to the
// given dimensions and returns the master side, which serves as the
// transport sink for a session. The caller owns both the file and the
// command and should Wait on the command after closing the master.
func StartProcess(name string, args []string, width, height uint) (*os.File, *exec.Cmd, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(height),
		Cols: uint16(width),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("could not start %s on a pty: %w", name, err)
	}
	return ptmx, cmd, nil
}

// ResizeProcess propagates new dimensions to the controlling process.
func ResizeProcess(ptmx *os.File, width, height uint) error {
	return pty.Setsize(ptmx, &pty.Winsize{
		Rows: uint16(height),
		Cols: uint16(width),
	})
}
