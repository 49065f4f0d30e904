package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"tread/internal/config"
	"tread/internal/external"
	"tread/internal/verb"
	"tread/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLauncher struct {
	executed []*external.Launchable
	launched []*external.Launchable
	err      error
}

func (f *fakeLauncher) Execute(l *external.Launchable) error {
	f.executed = append(f.executed, l)
	return f.err
}

func (f *fakeLauncher) Launch(l *external.Launchable) error {
	f.launched = append(f.launched, l)
	return f.err
}

type fakeBuiltins struct {
	names []string
}

func (f *fakeBuiltins) ExecuteBuiltin(v *verb.Verb, _ verb.Invocation, _ types.Selection) CmdResult {
	f.names = append(f.names, v.Name())
	return QuitResult()
}

func newTestDispatcher(t *testing.T, args config.LaunchArgs, defs ...verb.Definition) (*Dispatcher, *fakeLauncher) {
	t.Helper()
	store, err := verb.NewStore(defs)
	require.NoError(t, err)
	launcher := &fakeLauncher{}
	return NewDispatcher(store, args, launcher, &fakeBuiltins{}), launcher
}

func findVerb(t *testing.T, d *Dispatcher, name string) *verb.Verb {
	t.Helper()
	res := d.Store.Search(name)
	require.Equal(t, verb.Match, res.Kind, "verb %q", name)
	return res.Verb
}

func readLines(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestExecuteBuiltin(t *testing.T) {
	d, launcher := newTestDispatcher(t, config.LaunchArgs{})
	res := d.Execute(findVerb(t, d, "quit"), verb.ParseInvocation("q"), types.Selection{Path: "/a"})

	assert.Equal(t, Quit, res.Kind)
	assert.Equal(t, []string{"quit"}, d.Builtins.(*fakeBuiltins).names)
	assert.Empty(t, launcher.executed)
}

func TestExecuteFromShell(t *testing.T) {
	dir := t.TempDir()
	sel := types.Selection{Path: dir, IsDir: true}

	t.Run("command export", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "outcmd")
		d, _ := newTestDispatcher(t, config.LaunchArgs{CmdExportPath: out})
		cd := findVerb(t, d, "cd")

		assert.Equal(t, QuitResult(), d.Execute(cd, verb.ParseInvocation("cd"), sel))
		assert.Equal(t, QuitResult(), d.Execute(cd, verb.ParseInvocation("cd"), sel))
		assert.Equal(t, fmt.Sprintf("cd %s\ncd %s\n", dir, dir), readLines(t, out), "lines are appended")
	})

	t.Run("file export", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "out")
		d, _ := newTestDispatcher(t, config.LaunchArgs{FileExportPath: out})

		res := d.Execute(findVerb(t, d, "cd"), verb.ParseInvocation("cd"), sel)
		assert.Equal(t, Quit, res.Kind)
		assert.Equal(t, dir+"\n", readLines(t, out))
	})

	t.Run("command export wins", func(t *testing.T) {
		cmdOut := filepath.Join(t.TempDir(), "outcmd")
		fileOut := filepath.Join(t.TempDir(), "out")
		d, _ := newTestDispatcher(t, config.LaunchArgs{CmdExportPath: cmdOut, FileExportPath: fileOut})

		d.Execute(findVerb(t, d, "cd"), verb.ParseInvocation("cd"), sel)
		assert.FileExists(t, cmdOut)
		assert.NoFileExists(t, fileOut)
	})

	t.Run("no shell function", func(t *testing.T) {
		d, _ := newTestDispatcher(t, config.LaunchArgs{})
		res := d.Execute(findVerb(t, d, "cd"), verb.ParseInvocation("cd"), sel)
		assert.Equal(t, ErrorResult(ShellFunctionHint), res)
	})

	t.Run("unwritable export file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "missing", "outcmd")
		d, _ := newTestDispatcher(t, config.LaunchArgs{CmdExportPath: out})
		res := d.Execute(findVerb(t, d, "cd"), verb.ParseInvocation("cd"), sel)
		assert.Equal(t, DisplayError, res.Kind)
		assert.Contains(t, res.Message, "cannot open export file")
	})
}

func TestExecuteLeavingApp(t *testing.T) {
	d, launcher := newTestDispatcher(t, config.LaunchArgs{},
		verb.Definition{Invocation: "view", Execution: "less {file}", LeaveApp: true})

	res := d.Execute(findVerb(t, d, "view"), verb.ParseInvocation("view"), types.Selection{Path: "/a/b/c.txt"})
	require.Equal(t, Launch, res.Kind)
	assert.Equal(t, "less", res.Launchable.Exe())
	assert.Equal(t, []string{"/a/b/c.txt"}, res.Launchable.Args())
	assert.True(t, res.LeavesApp())
	assert.Empty(t, launcher.executed, "the launch happens after the application is gone")
	assert.Empty(t, launcher.launched)
}

func TestExecuteStayingInApp(t *testing.T) {
	sel := types.Selection{Path: "/a/b/c.txt"}

	t.Run("success", func(t *testing.T) {
		d, launcher := newTestDispatcher(t, config.LaunchArgs{})
		res := d.Execute(findVerb(t, d, "md"), verb.ParseInvocation("md new/sub"), sel)

		assert.Equal(t, RefreshResult(true), res)
		require.Len(t, launcher.executed, 1)
		assert.Equal(t, "mkdir", launcher.executed[0].Exe())
		assert.Equal(t, []string{"-p", "/a/b/new/sub"}, launcher.executed[0].Args())
	})

	t.Run("failure", func(t *testing.T) {
		d, launcher := newTestDispatcher(t, config.LaunchArgs{})
		launcher.err = fmt.Errorf("permission denied")
		res := d.Execute(findVerb(t, d, "rm"), verb.ParseInvocation("rm"), sel)

		assert.Equal(t, ErrorResult("permission denied"), res)
		assert.False(t, res.LeavesApp())
	})

	t.Run("empty execution", func(t *testing.T) {
		d, launcher := newTestDispatcher(t, config.LaunchArgs{},
			verb.Definition{Invocation: "noop", Execution: "   "})
		res := d.Execute(findVerb(t, d, "noop"), verb.ParseInvocation("noop"), sel)

		assert.Equal(t, ErrorResult("empty launch string"), res)
		assert.Empty(t, launcher.executed)
	})
}

func TestInvoke(t *testing.T) {
	file := types.Selection{Path: "/a/b/c.txt"}
	dir := types.Selection{Path: "/a/b", IsDir: true}
	d, launcher := newTestDispatcher(t, config.LaunchArgs{},
		verb.Definition{Invocation: "view", Key: "enter", Execution: "less {file}", LeaveApp: true})

	tests := []struct {
		name string
		raw  string
		sel  types.Selection
		want CmdResult
	}{
		{"empty", "  ", file, KeepResult()},
		{"unknown verb", "zz", file, ErrorResult("No matching verb")},
		{"ambiguous", "m", file, ErrorResult("Possible verbs: md, mv")},
		{"unexpected argument", "rm now", file, ErrorResult("rm doesn't take arguments")},
		{"missing argument", "mv", file, ErrorResult("mv {newpath}")},
		{"file only", "view", dir, ErrorResult("view only applies to files")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Invoke(tt.raw, tt.sel))
		})
	}
	assert.Empty(t, launcher.executed)

	res := d.Invoke(":mv ../d.txt", file)
	assert.Equal(t, RefreshResult(true), res)
	require.Len(t, launcher.executed, 1)
	assert.Equal(t, []string{"/a/b/c.txt", "/a/d.txt"}, launcher.executed[0].Args())

	res = d.Invoke("q", file)
	assert.Equal(t, Quit, res.Kind)
}
