package types

import "os"

// SelectionType tells which kind of selected entry a verb applies to
type SelectionType int

const (
	// SelectionAny applies to files and directories
	SelectionAny SelectionType = iota
	// SelectionFile applies to files only
	SelectionFile
)

// Selection is the entry a verb is invoked on
type Selection struct {
	Path  string
	IsDir bool
}

// NewSelection stats path to build a Selection. A path that cannot be
// stat'ed is treated as a file.
func NewSelection(path string) Selection {
	info, err := os.Stat(path)
	return Selection{Path: path, IsDir: err == nil && info.IsDir()}
}

// Accepts reports whether a verb with this condition applies to sel
func (t SelectionType) Accepts(sel Selection) bool {
	switch t {
	case SelectionFile:
		return !sel.IsDir
	default:
		return true
	}
}

func (t SelectionType) String() string {
	if t == SelectionFile {
		return "file"
	}
	return "any"
}
