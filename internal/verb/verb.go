// Package verb holds the verbs of tread: configured commands applying to the
// selected file or to the application state, with the small template language
// turning an execution pattern into a command line.
package verb

import (
	"fmt"
	"regexp"

	"tread/pkg/types"

	"github.com/charmbracelet/bubbles/key"
)

// Kind tells how a verb is executed
type Kind int

const (
	// Builtin verbs change the application state
	Builtin Kind = iota
	// External verbs run a program built from their execution pattern
	External
)

func (k Kind) String() string {
	if k == Builtin {
		return "built-in"
	}
	return "external"
}

// Verb is a command invokable by name, shortcut or key.
//
// Verbs are built once from the defaults and the configuration and are never
// modified afterwards.
type Verb struct {
	Invocation  Invocation // how the verb is called, eg `mv {newpath}`
	Key         key.Binding
	KeyDesc     string
	Shortcut    string // eg "md"
	Execution   string // eg ":quit" or "mkdir -p {subpath:path-from-directory}"
	Description string
	FromShell   bool // must run in the parent shell, eg `cd`
	LeaveApp    bool
	Confirm     bool // not used yet

	SelectionCondition types.SelectionType

	kind       Kind
	argsParser *regexp.Regexp
}

// Definition describes an external verb as read from the configuration
type Definition struct {
	Invocation  string
	Key         string
	Shortcut    string
	Execution   string
	Description string
	FromShell   bool
	LeaveApp    bool
	Confirm     bool
}

// NewExternal builds a verb running a program. It fails when the declared
// arguments or the key can't be understood.
func NewExternal(def Definition) (*Verb, error) {
	inv := ParseInvocation(def.Invocation)
	v := &Verb{
		Invocation:  inv,
		Shortcut:    def.Shortcut,
		Execution:   def.Execution,
		Description: def.Description,
		FromShell:   def.FromShell,
		LeaveApp:    def.LeaveApp,
		Confirm:     def.Confirm,
		kind:        External,
	}
	if inv.Args != "" {
		parser, err := compileArgsParser(inv)
		if err != nil {
			return nil, err
		}
		v.argsParser = parser
	}
	if def.Key != "" {
		k, err := ParseKey(def.Key)
		if err != nil {
			return nil, err
		}
		v.Key = k
		v.KeyDesc = keyDesc(k)
		// a verb on enter must not prevent entering directories
		if v.KeyDesc == "enter" {
			v.SelectionCondition = types.SelectionFile
		}
	}
	return v, nil
}

// NewBuiltin builds a verb changing the application state
func NewBuiltin(name string, k key.Binding, shortcut, description string) *Verb {
	return &Verb{
		Invocation:  Invocation{Name: name},
		Key:         k,
		KeyDesc:     keyDesc(k),
		Shortcut:    shortcut,
		Execution:   ":" + name,
		Description: description,
		LeaveApp:    true,
		kind:        Builtin,
	}
}

// Kind tells whether v is built in or runs an external program
func (v *Verb) Kind() Kind {
	return v.kind
}

// Name is the name the verb is invoked with
func (v *Verb) Name() string {
	return v.Invocation.Name
}

// HasKey reports whether a key triggers the verb
func (v *Verb) HasKey() bool {
	return hasKey(v.Key)
}

// TakesArgs reports whether the invocation declares arguments
func (v *Verb) TakesArgs() bool {
	return v.argsParser != nil
}

// MatchError checks the arguments of an invocation already matched to the
// verb. It returns an empty string when they are fine, and otherwise the
// message to display.
func (v *Verb) MatchError(inv Invocation) string {
	if v.argsParser == nil {
		if inv.Args == "" {
			return ""
		}
		return fmt.Sprintf("%s doesn't take arguments", inv.Name)
	}
	// an absent argument is matched as an empty one so that verbs with
	// only optional arguments can be run without
	if v.argsParser.MatchString(inv.Args) {
		return ""
	}
	return v.Invocation.StringForName(inv.Name)
}
