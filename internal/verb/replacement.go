package verb

import (
	"os"
	"path/filepath"

	"tread/internal/external"
)

func pathToString(path string, forShell bool) string {
	if forShell {
		return external.EscapeForShell(path)
	}
	return path
}

// parentOf returns the parent of path, or path itself for a root
func parentOf(path string) string {
	clean := filepath.Clean(path)
	parent := filepath.Dir(clean)
	if parent == clean {
		return path
	}
	return parent
}

// replacementMap builds the values of the placeholders of the execution
// pattern. The path entries are escaped when building for a shell; the
// arguments typed by the user never are, as they may hold shell syntax.
func (v *Verb) replacementMap(file, args string, forShell bool) map[string]string {
	m := make(map[string]string)
	fileStr := pathToString(file, forShell)
	parentStr := pathToString(parentOf(file), forShell)
	m["file"] = fileStr
	m["parent"] = parentStr
	if info, err := os.Stat(file); err == nil && info.IsDir() {
		m["directory"] = fileStr
	} else {
		m["directory"] = parentStr
	}

	if v.argsParser == nil {
		return m
	}
	loc := v.argsParser.FindStringSubmatchIndex(args)
	if loc == nil {
		return m
	}
	for i, name := range v.argsParser.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		m[name] = args[loc[2*i]:loc[2*i+1]]
	}
	return m
}
