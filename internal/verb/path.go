package verb

import (
	"os"
	"regexp"
	"strings"

	"tread/internal/log"
)

// PathSource is the map entry relative path inputs are anchored on
type PathSource int

const (
	FromDirectory PathSource = iota
	FromParent
)

func (s PathSource) mapKey() string {
	if s == FromParent {
		return "parent"
	}
	return "directory"
}

var (
	tildePattern  = regexp.MustCompile(`^~(/|$)`)
	dotDotPattern = regexp.MustCompile(`/[^/.\\]+/\.\.`)
)

// userHomeDir is swapped in tests
var userHomeDir = os.UserHomeDir

// resolvePath builds a usable path from a user input: absolute inputs are
// kept, a leading `~` is the home directory, other inputs are relative to
// the selected directory or its parent.
func resolvePath(source PathSource, input string, replacements map[string]string) string {
	switch {
	case strings.HasPrefix(input, "/"):
		return input
	case tildePattern.MatchString(input):
		home, err := userHomeDir()
		if err != nil || home == "" {
			log.Warnf("no home directory found, %q keeps its ~", input)
			return input
		}
		return home + input[1:]
	default:
		return NormalizePath(replacements[source.mapKey()] + "/" + input)
	}
}

// NormalizePath collapses `segment/..` pairs textually, without looking at
// the file system, so symlinks aren't followed. A trailing slash after a
// collapsed pair is kept: `/home/dys/../` gives `/home/`.
func NormalizePath(path string) string {
	for {
		loc := dotDotPattern.FindStringIndex(path)
		if loc == nil {
			return path
		}
		path = path[:loc[0]] + path[loc[1]:]
	}
}
