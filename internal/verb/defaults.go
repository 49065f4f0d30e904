package verb

import "github.com/charmbracelet/bubbles/key"

func mustExternal(def Definition) *Verb {
	v, err := NewExternal(def)
	if err != nil {
		panic(err)
	}
	return v
}

func defaultVerbs() []*Verb {
	none := key.Binding{}
	return []*Verb{
		NewBuiltin("back", none, "", "revert to the previous state (mapped to *esc*)"),
		mustExternal(Definition{
			Invocation:  "cd",
			Key:         "alt-enter",
			Execution:   "cd {directory}",
			Description: "change directory and quit (mapped to *alt*-*enter*)",
			FromShell:   true,
			LeaveApp:    true,
		}),
		mustExternal(Definition{
			Invocation: "cp {newpath}",
			Execution:  "cp -r {file} {newpath:path-from-parent}",
		}),
		NewBuiltin("focus", none, "goto", "display the directory (mapped to *enter*)"),
		mustExternal(Definition{
			Invocation: "mkdir {subpath}",
			Shortcut:   "md",
			Execution:  "mkdir -p {subpath:path-from-directory}",
		}),
		mustExternal(Definition{
			Invocation: "mv {newpath}",
			Execution:  "mv {file} {newpath:path-from-parent}",
		}),
		NewBuiltin("parent", none, "p", "move to the parent directory"),
		NewBuiltin("print_path", none, "pp", "print the path and leave tread"),
		NewBuiltin("quit", MustParseKey("ctrl-q"), "q", "quit tread"),
		NewBuiltin("refresh", MustParseKey("F5"), "", "refresh the tree"),
		mustExternal(Definition{
			Invocation: "rm",
			Execution:  "rm -rf {file}",
		}),
		NewBuiltin("toggle_hidden", none, "h", "toggle showing hidden files"),
	}
}
