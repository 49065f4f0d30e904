package external

import "github.com/alessio/shellescape"

// EscapeForShell quotes path so a POSIX shell reads it back as one word.
// Paths made only of safe characters are returned unchanged.
func EscapeForShell(path string) string {
	return shellescape.Quote(path)
}
