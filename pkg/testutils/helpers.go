package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content.
// Names ending with a slash are created as directories, and parent
// directories are created as needed.
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// CreateTestTree creates a small tree in a temporary directory and returns
// its root: a `docs` directory, a visible file and a hidden one.
func CreateTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	CreateTestFilesWithContent(t, root, map[string]string{
		"docs/":         "",
		"docs/notes.md": "# notes",
		"a.txt":         "test content",
		".hidden":       "secret",
	})
	return root
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	return ansi.Strip(str)
}
