package app

import (
	"fmt"

	"tread/internal/verb"
	"tread/pkg/types"
)

// Status is the line displayed under the tree while a command is typed
type Status struct {
	Message string
	IsError bool
}

func errorStatus(msg string) Status {
	return Status{Message: msg, IsError: true}
}

// VerbStatus tells what hitting enter would do, or how the invocation is
// wrong
func VerbStatus(v *verb.Verb, inv verb.Invocation, sel types.Selection) Status {
	if msg := v.MatchError(inv); msg != "" {
		return errorStatus(msg)
	}
	if v.Description != "" {
		return Status{Message: fmt.Sprintf("Hit enter to %s: %s", v.Name(), v.Description)}
	}
	return Status{Message: fmt.Sprintf("Hit enter to %s: `%s`", v.Name(), v.ShellExecString(sel.Path, inv.Args))}
}

// Status computes the status line for a partially typed command
func (d *Dispatcher) Status(raw string, sel types.Selection) Status {
	inv := verb.ParseInvocation(raw)
	if inv.IsEmpty() {
		return Status{Message: "Type a verb then hit enter, esc to go back"}
	}

	v, status := d.find(inv, sel)
	if v == nil {
		return status
	}
	return VerbStatus(v, inv, sel)
}
