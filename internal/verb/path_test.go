package verb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		before string
		after  string
	}{
		{"/abc/test/../thing.png", "/abc/thing.png"},
		{"/abc/def/../../thing.png", "/thing.png"},
		{"/home/dys/test", "/home/dys/test"},
		{"/home/dys/..", "/home"},
		{"/home/dys/../", "/home/"},
		{"/..", "/.."},
		{"../test", "../test"},
		{"/home/dys/../../../test", "/../test"},
		{"/home/dys/dev/broot/../../../canop/test", "/home/canop/test"},
		{"/a.b/../c", "/a.b/../c"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.before, func(t *testing.T) {
			got := NormalizePath(tt.before)
			assert.Equal(t, tt.after, got)
			assert.Equal(t, got, NormalizePath(got), "normalization is idempotent")
		})
	}
}

func withHomeDir(t *testing.T, home string, err error) {
	t.Helper()
	orig := userHomeDir
	userHomeDir = func() (string, error) { return home, err }
	t.Cleanup(func() { userHomeDir = orig })
}

func TestResolvePath(t *testing.T) {
	withHomeDir(t, "/home/alice", nil)
	m := map[string]string{
		"file":      "/a/b/c.txt",
		"parent":    "/a/b",
		"directory": "/a/b",
	}

	tests := []struct {
		name   string
		source PathSource
		input  string
		want   string
	}{
		{"absolute", FromParent, "/etc/hosts", "/etc/hosts"},
		{"absolute is not normalized", FromParent, "/x/../y", "/x/../y"},
		{"home", FromDirectory, "~/docs", "/home/alice/docs"},
		{"home alone", FromDirectory, "~", "/home/alice"},
		{"tilde inside a name", FromDirectory, "~docs", "/a/b/~docs"},
		{"relative to parent", FromParent, "d.txt", "/a/b/d.txt"},
		{"relative with dotdot", FromParent, "../d.txt", "/a/d.txt"},
		{"relative to directory", FromDirectory, "sub/dir", "/a/b/sub/dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePath(tt.source, tt.input, m))
		})
	}
}

func TestResolvePathWithoutHome(t *testing.T) {
	withHomeDir(t, "", errors.New("$HOME is not defined"))
	m := map[string]string{"directory": "/a/b", "parent": "/a"}
	assert.Equal(t, "~/docs", resolvePath(FromDirectory, "~/docs", m))
	assert.Equal(t, "/a/b/docs", resolvePath(FromDirectory, "docs", m))
}

func TestResolvePathUsesOSHome(t *testing.T) {
	t.Setenv("HOME", "/home/alice")
	assert.Equal(t, "/home/alice/docs", resolvePath(FromDirectory, "~/docs", nil))
}
