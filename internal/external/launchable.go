// Package external builds and runs what a verb hands over to the outside
// world: programs launched with an argument vector and text printed once the
// application has left the terminal.
package external

import (
	"os"
	"strings"

	"tread/internal/errors"
)

// Kind tags the variant held by a Launchable
type Kind int

const (
	ProgramKind Kind = iota
	PrinterKind
)

// Launchable is something run outside of the application's own state:
// a program with its arguments or some text to print.
type Launchable struct {
	kind Kind
	exe  string
	args []string
	text string
}

// NewProgram builds a program launchable from execution tokens. The first
// token is the executable; a leading `$NAME` is replaced by the value of the
// environment variable when it is set.
func NewProgram(tokens []string) (*Launchable, error) {
	if len(tokens) == 0 || tokens[0] == "" {
		return nil, errors.ErrEmptyLaunch
	}
	args := make([]string, len(tokens)-1)
	copy(args, tokens[1:])
	return &Launchable{
		kind: ProgramKind,
		exe:  resolveEnvVariable(tokens[0]),
		args: args,
	}, nil
}

// NewPrinter builds a launchable writing text to standard output
func NewPrinter(text string) *Launchable {
	return &Launchable{kind: PrinterKind, text: text}
}

// Kind returns the variant of l
func (l *Launchable) Kind() Kind { return l.kind }

// Exe is the program to run, empty for a printer
func (l *Launchable) Exe() string { return l.exe }

// Args are the arguments of the program
func (l *Launchable) Args() []string { return l.args }

// Text is what a printer writes
func (l *Launchable) Text() string { return l.text }

func (l *Launchable) String() string {
	if l.kind == PrinterKind {
		return "print " + l.text
	}
	return strings.Join(append([]string{l.exe}, l.args...), " ")
}

func resolveEnvVariable(token string) string {
	if !strings.HasPrefix(token, "$") || len(token) == 1 {
		return token
	}
	if value, ok := os.LookupEnv(token[1:]); ok && value != "" {
		return value
	}
	return token
}
