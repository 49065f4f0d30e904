package verb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplacementMapForFile(t *testing.T) {
	v := newTestVerb(t, "rm", "rm -rf {file}")
	m := v.replacementMap("/a/b/c.txt", "", false)
	assert.Equal(t, map[string]string{
		"file":      "/a/b/c.txt",
		"parent":    "/a/b",
		"directory": "/a/b",
	}, m)
}

func TestReplacementMapForDirectory(t *testing.T) {
	dir := t.TempDir()
	v := newTestVerb(t, "rm", "rm -rf {file}")
	m := v.replacementMap(dir, "", false)
	assert.Equal(t, dir, m["file"])
	assert.Equal(t, filepath.Dir(dir), m["parent"])
	assert.Equal(t, dir, m["directory"])
}

func TestReplacementMapAtRoot(t *testing.T) {
	v := newTestVerb(t, "rm", "rm -rf {file}")
	m := v.replacementMap("/", "", false)
	assert.Equal(t, "/", m["file"])
	assert.Equal(t, "/", m["parent"])
	assert.Equal(t, "/", m["directory"])
}

func TestReplacementMapCaptures(t *testing.T) {
	t.Run("named capture", func(t *testing.T) {
		v := newTestVerb(t, "rn {new}", "mv {file} {parent}/{new}")
		m := v.replacementMap("/a/b/c.txt", "newname", false)
		assert.Equal(t, "newname", m["new"])
		assert.Len(t, m, 4)
	})

	t.Run("unmatched optional group adds nothing", func(t *testing.T) {
		v := newTestVerb(t, "ls ({flags})?", "ls {flags} {directory}")
		m := v.replacementMap("/a/b/c.txt", "", false)
		assert.NotContains(t, m, "flags")
		assert.Len(t, m, 3)

		m = v.replacementMap("/a/b/c.txt", "-la", false)
		assert.Equal(t, "-la", m["flags"])
	})

	t.Run("args not matching add nothing", func(t *testing.T) {
		v := newTestVerb(t, "cp {source} {dest}", "cp {source} {dest}")
		m := v.replacementMap("/a/b/c.txt", "single", false)
		assert.Len(t, m, 3)
	})

	t.Run("two captures", func(t *testing.T) {
		v := newTestVerb(t, "cp {source} {dest}", "cp {source} {dest}")
		m := v.replacementMap("/a/b/c.txt", "x y", false)
		assert.Equal(t, "x", m["source"])
		assert.Equal(t, "y", m["dest"])
	})
}

func TestReplacementMapEscaping(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my dir")
	require.NoError(t, os.Mkdir(dir, 0755))
	file := filepath.Join(dir, "it's.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	v := newTestVerb(t, "rn {new}", "mv {file} {parent}/{new}")
	m := v.replacementMap(file, "$(date) name", true)
	assert.Equal(t, "'"+dir+`/it'"'"'s.txt'`, m["file"])
	assert.Equal(t, "'"+dir+"'", m["parent"])
	assert.Equal(t, "'"+dir+"'", m["directory"])
	assert.Equal(t, "$(date) name", m["new"], "typed arguments are never escaped")

	raw := v.replacementMap(file, "", false)
	assert.Equal(t, file, raw["file"])
}
