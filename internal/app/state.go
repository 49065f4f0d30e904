package app

import (
	"fmt"
	"path/filepath"

	"tread/internal/config"
	"tread/internal/errors"
	"tread/internal/external"
	"tread/internal/log"
	"tread/internal/verb"
	"tread/pkg/types"
)

// State is the navigation state changed by the built-in verbs: the
// displayed directory, the directories displayed before, and whether
// hidden files are shown.
type State struct {
	Root       string
	ShowHidden bool

	history        []string
	fileExportPath string
}

var _ BuiltinExecutor = (*State)(nil)

// NewState starts at the launch root, or the working directory when none
// was given
func NewState(args config.LaunchArgs) (*State, error) {
	root := args.Root
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve root %q", root)
	}
	return &State{
		Root:           abs,
		ShowHidden:     args.ShowHidden,
		fileExportPath: args.FileExportPath,
	}, nil
}

// History returns the previously displayed directories, oldest first
func (s *State) History() []string {
	return s.history
}

// ExecuteBuiltin runs the built-in verb v on the navigation state
func (s *State) ExecuteBuiltin(v *verb.Verb, inv verb.Invocation, sel types.Selection) CmdResult {
	switch v.Name() {
	case "back":
		return s.back()
	case "focus":
		dir := sel.Path
		if !sel.IsDir {
			dir = filepath.Dir(sel.Path)
		}
		return s.moveTo(dir)
	case "parent":
		return s.moveTo(filepath.Dir(s.Root))
	case "print_path":
		return s.printPath(sel)
	case "quit":
		return QuitResult()
	case "refresh":
		return RefreshResult(true)
	case "toggle_hidden":
		s.ShowHidden = !s.ShowHidden
		return RefreshResult(false)
	default:
		log.Warnf("unknown built-in verb %q", v.Name())
		return ErrorResult(fmt.Sprintf("verb not implemented: %s", v.Name()))
	}
}

func (s *State) back() CmdResult {
	if len(s.history) == 0 {
		return QuitResult()
	}
	last := len(s.history) - 1
	s.Root = s.history[last]
	s.history = s.history[:last]
	return RefreshResult(false)
}

func (s *State) moveTo(dir string) CmdResult {
	dir = filepath.Clean(dir)
	if dir == s.Root {
		return KeepResult()
	}
	s.history = append(s.history, s.Root)
	s.Root = dir
	return RefreshResult(false)
}

// printPath hands the selected path to the shell function when there's one,
// or prints it once tread has left the terminal
func (s *State) printPath(sel types.Selection) CmdResult {
	if s.fileExportPath == "" {
		return LaunchResult(external.NewPrinter(sel.Path))
	}
	if err := appendLine(s.fileExportPath, sel.Path); err != nil {
		log.LogError(err, "export failed")
		return ErrorResult(err.Error())
	}
	return QuitResult()
}
