package app

import (
	"fmt"

	"tread/internal/external"
)

// ResultKind tells what the application must do after a command
type ResultKind int

const (
	// Keep leaves the application as it is
	Keep ResultKind = iota
	// Quit leaves the application
	Quit
	// Refresh reloads the displayed directory
	Refresh
	// DisplayError shows a message in the status line, the application goes on
	DisplayError
	// Launch leaves the application and runs a launchable in the terminal
	Launch
)

func (k ResultKind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Quit:
		return "quit"
	case Refresh:
		return "refresh"
	case DisplayError:
		return "display-error"
	case Launch:
		return "launch"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// CmdResult is the outcome of a verb execution. Only the fields matching
// Kind are set.
type CmdResult struct {
	Kind       ResultKind
	ClearCache bool                 // Refresh
	Message    string               // DisplayError
	Launchable *external.Launchable // Launch
}

// KeepResult leaves the navigator as it is
func KeepResult() CmdResult {
	return CmdResult{Kind: Keep}
}

// QuitResult quits tread
func QuitResult() CmdResult {
	return CmdResult{Kind: Quit}
}

// RefreshResult rescans the displayed directory
func RefreshResult(clearCache bool) CmdResult {
	return CmdResult{Kind: Refresh, ClearCache: clearCache}
}

// ErrorResult shows msg as an error in the status line
func ErrorResult(msg string) CmdResult {
	return CmdResult{Kind: DisplayError, Message: msg}
}

// LaunchResult quits tread then launches l in the terminal
func LaunchResult(l *external.Launchable) CmdResult {
	return CmdResult{Kind: Launch, Launchable: l}
}

// LeavesApp reports whether the application must stop after this result
func (r CmdResult) LeavesApp() bool {
	return r.Kind == Quit || r.Kind == Launch
}

func (r CmdResult) String() string {
	switch r.Kind {
	case Refresh:
		return fmt.Sprintf("refresh(clear_cache=%t)", r.ClearCache)
	case DisplayError:
		return fmt.Sprintf("display-error(%q)", r.Message)
	case Launch:
		return fmt.Sprintf("launch(%s)", r.Launchable)
	default:
		return r.Kind.String()
	}
}
