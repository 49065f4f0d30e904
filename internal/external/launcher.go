package external

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"tread/internal/errors"
	"tread/internal/log"
)

// Launcher runs launchables
type Launcher interface {
	// Execute runs l while the application keeps running. Output is captured
	// so a failure can be reported with its diagnostic text.
	Execute(l *Launchable) error
	// Launch runs l as the final act of the application, attached to the
	// terminal.
	Launch(l *Launchable) error
}

// ExecLauncher runs programs with os/exec
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecLauncher creates a launcher bound to the process standard streams
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

var _ Launcher = (*ExecLauncher)(nil)

// Execute runs l to completion, returning its output in the error on failure
func (e *ExecLauncher) Execute(l *Launchable) error {
	if l.Kind() == PrinterKind {
		_, err := fmt.Fprintln(e.Stdout, l.Text())
		return err
	}

	var output bytes.Buffer
	cmd := exec.Command(l.Exe(), l.Args()...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	log.Debugf("executing %s", l)
	if err := cmd.Run(); err != nil {
		diagnostic := strings.TrimSpace(output.String())
		if diagnostic != "" {
			err = fmt.Errorf("%w: %s", err, diagnostic)
		}
		return errors.NewLaunchError("program failed", l.Exe(), errors.LaunchFailed, err)
	}
	return nil
}

// Launch runs l attached to the launcher streams
func (e *ExecLauncher) Launch(l *Launchable) error {
	if l.Kind() == PrinterKind {
		_, err := fmt.Fprintln(e.Stdout, l.Text())
		return err
	}

	cmd := exec.Command(l.Exe(), l.Args()...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	log.Infof("launching %s", l)
	if err := cmd.Run(); err != nil {
		return errors.NewLaunchError("program failed", l.Exe(), errors.LaunchFailed, err)
	}
	return nil
}
