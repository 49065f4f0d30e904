// Package app runs verbs: it turns a verb matched to an invocation into a
// state change, a program run, or a command exported to the parent shell.
package app

import (
	"fmt"
	"strings"

	"tread/internal/config"
	"tread/internal/external"
	"tread/internal/log"
	"tread/internal/verb"
	"tread/pkg/types"
)

// ShellFunctionHint is shown when a verb needs the shell function
const ShellFunctionHint = "this verb needs tread to be launched as `td`. Try `tread shell-function` if necessary."

// BuiltinExecutor executes the built-in verbs, which change the application
// state.
type BuiltinExecutor interface {
	ExecuteBuiltin(v *verb.Verb, inv verb.Invocation, sel types.Selection) CmdResult
}

// Dispatcher executes verbs on the current selection
type Dispatcher struct {
	Store    *verb.Store
	Args     config.LaunchArgs
	Launcher external.Launcher
	Builtins BuiltinExecutor
}

// NewDispatcher creates a dispatcher running built-in verbs through builtins
func NewDispatcher(store *verb.Store, args config.LaunchArgs, launcher external.Launcher, builtins BuiltinExecutor) *Dispatcher {
	return &Dispatcher{
		Store:    store,
		Args:     args,
		Launcher: launcher,
		Builtins: builtins,
	}
}

// Invoke runs the verb named by a typed command line, eg `mv ../old.txt`
func (d *Dispatcher) Invoke(raw string, sel types.Selection) CmdResult {
	inv := verb.ParseInvocation(raw)
	if inv.IsEmpty() {
		return KeepResult()
	}

	v, status := d.find(inv, sel)
	if v == nil {
		return ErrorResult(status.Message)
	}
	if msg := v.MatchError(inv); msg != "" {
		return ErrorResult(msg)
	}
	return d.Execute(v, inv, sel)
}

// find returns the verb an invocation designates, or nil and the status
// explaining why there's none
func (d *Dispatcher) find(inv verb.Invocation, sel types.Selection) (*verb.Verb, Status) {
	res := d.Store.Search(inv.Name)
	switch res.Kind {
	case verb.NoMatch:
		return nil, errorStatus("No matching verb")
	case verb.TooManyMatches:
		return nil, Status{Message: "Possible verbs: " + strings.Join(res.Completions, ", ")}
	}
	if !res.Verb.SelectionCondition.Accepts(sel) {
		return nil, errorStatus(fmt.Sprintf("%s only applies to %ss", res.Verb.Name(), res.Verb.SelectionCondition))
	}
	return res.Verb, Status{}
}

// Execute runs v, already matched to inv, on sel. Failures are reported in
// the result, never as a panic or an error.
func (d *Dispatcher) Execute(v *verb.Verb, inv verb.Invocation, sel types.Selection) CmdResult {
	logger := log.LogWithFields(log.F("verb", v.Name()), log.F("kind", v.Kind().String()))
	if v.Kind() == verb.Builtin {
		logger.Debug("executing built-in verb")
		return d.Builtins.ExecuteBuiltin(v, inv, sel)
	}
	if v.FromShell {
		return d.exportToShell(v, inv, sel)
	}

	launchable, err := external.NewProgram(v.ExecTokens(sel.Path, inv.Args))
	if err != nil {
		logger.WithError(err).Warn("cannot build launchable")
		return ErrorResult(err.Error())
	}
	if v.LeaveApp {
		return LaunchResult(launchable)
	}

	logger.Infof("executing %s without leaving", launchable)
	if err := d.Launcher.Execute(launchable); err != nil {
		logger.WithError(err).Warn("launchable failed")
		return ErrorResult(err.Error())
	}
	return RefreshResult(true)
}

func (d *Dispatcher) exportToShell(v *verb.Verb, inv verb.Invocation, sel types.Selection) CmdResult {
	var path, line string
	switch {
	case d.Args.CmdExportPath != "":
		path, line = d.Args.CmdExportPath, v.ShellExecString(sel.Path, inv.Args)
	case d.Args.FileExportPath != "":
		// older shell functions only read the selected path
		path, line = d.Args.FileExportPath, sel.Path
	default:
		return ErrorResult(ShellFunctionHint)
	}

	if err := appendLine(path, line); err != nil {
		log.LogError(err, "export failed")
		return ErrorResult(err.Error())
	}
	log.LogWithFields(log.F("verb", v.Name()), log.F("path", path)).Debugf("exported %q", line)
	return QuitResult()
}
