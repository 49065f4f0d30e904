package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tread/internal/app"
	"tread/internal/external"
	"tread/internal/log"
	"tread/internal/tui/common"
	"tread/internal/tui/messages"
	"tread/internal/tui/views"
	"tread/internal/verb"
	"tread/internal/watch"
	"tread/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the navigator: a directory listing on which verbs are run, by
// key or typed in the command input.
type Model struct {
	mode       types.Mode
	keys       types.KeyMap
	dispatcher *app.Dispatcher
	state      *app.State
	watcher    *watch.Watcher

	files  []common.FileEntry
	cursor int
	height int

	input  textinput.Model
	status app.Status

	// launched once the program has left the terminal
	pending *external.Launchable
}

var _ common.ModelReader = (*Model)(nil)

// New creates the model. The watcher is optional.
func New(dispatcher *app.Dispatcher, state *app.State, watcher *watch.Watcher) *Model {
	input := textinput.New()
	input.Prompt = ":"

	m := &Model{
		mode:       types.Normal,
		keys:       types.DefaultKeyMap(),
		dispatcher: dispatcher,
		state:      state,
		watcher:    watcher,
		input:      input,
	}
	if err := m.scanDirectory(); err != nil {
		m.status = app.Status{Message: err.Error(), IsError: true}
	}
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	m.watchRoot()
	return waitForChange(m.watcher)
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m, m.height)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - 2
	case tea.KeyMsg:
		if m.mode == types.Command {
			return m.handleCommandMode(msg)
		}
		return m.handleNormalKeys(msg)
	case messages.DirectoryChangeMsg:
		if msg.Path == m.state.Root {
			m.rescan()
		}
		return m, waitForChange(m.watcher)
	case messages.ErrorMsg:
		m.status = app.Status{Message: msg.Err.Error(), IsError: true}
	}
	return m, nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sel := m.Selection()
	if v := m.dispatcher.Store.ForKey(msg, sel); v != nil {
		inv := verb.Invocation{Name: v.Name()}
		if v.MatchError(inv) != "" {
			// the verb needs arguments, let the user type them
			return m, m.enterCommandMode(v.Name()+" ", sel)
		}
		return m, m.apply(m.dispatcher.Execute(v, inv, sel))
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.SetCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Down):
		m.SetCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.GotoTop):
		m.SetCursor(0)
	case key.Matches(msg, m.keys.GotoBottom):
		m.SetCursor(len(m.files) - 1)
	case key.Matches(msg, m.keys.Open):
		if sel.IsDir {
			return m, m.apply(m.dispatcher.Invoke("focus", sel))
		}
		m.status = app.Status{Message: "Hit : to run a verb on " + filepath.Base(sel.Path)}
	case key.Matches(msg, m.keys.EnterCmdMode):
		return m, m.enterCommandMode("", sel)
	case key.Matches(msg, m.keys.ExitCmdMode):
		return m, m.apply(m.dispatcher.Invoke("back", sel))
	}
	return m, nil
}

func (m *Model) handleCommandMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ExitCmdMode):
		m.leaveCommandMode()
		return m, nil
	case key.Matches(msg, m.keys.ExecuteCmd):
		raw := m.input.Value()
		m.leaveCommandMode()
		return m, m.apply(m.dispatcher.Invoke(raw, m.Selection()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.status = m.dispatcher.Status(m.input.Value(), m.Selection())
	return m, cmd
}

// enterCommandMode opens the input with value already typed
func (m *Model) enterCommandMode(value string, sel types.Selection) tea.Cmd {
	m.mode = types.Command
	m.input.Reset()
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.status = m.dispatcher.Status(value, sel)
	return m.input.Focus()
}

func (m *Model) leaveCommandMode() {
	m.mode = types.Normal
	m.input.Reset()
	m.input.Blur()
	m.status = app.Status{}
}

// apply turns the result of a verb into a state change of the model
func (m *Model) apply(res app.CmdResult) tea.Cmd {
	log.Debugf("verb result: %s", res)
	switch res.Kind {
	case app.Quit:
		return tea.Quit
	case app.Launch:
		m.pending = res.Launchable
		return tea.Quit
	case app.Refresh:
		m.rescan()
	case app.DisplayError:
		m.status = app.Status{Message: res.Message, IsError: true}
	}
	return nil
}

// rescan reloads the listing, keeping the cursor on the same entry when
// it's still there
func (m *Model) rescan() {
	var current string
	if m.cursor < len(m.files) {
		current = m.files[m.cursor].Path
	}
	if err := m.scanDirectory(); err != nil {
		m.status = app.Status{Message: err.Error(), IsError: true}
		return
	}
	m.cursor = 0
	for i, f := range m.files {
		if f.Path == current {
			m.cursor = i
			break
		}
	}
	m.watchRoot()
}

func (m *Model) watchRoot() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Watch(m.state.Root); err != nil {
		log.LogWithFields(log.F("directory", m.state.Root), log.F("error", err)).Warn("cannot watch directory")
	}
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		change, ok := <-w.Changes()
		if !ok {
			return messages.WatchClosedMsg{}
		}
		return messages.DirectoryChangeMsg{Path: change.Dir}
	}
}

// File operations
func (m *Model) scanDirectory() error {
	entries, err := os.ReadDir(m.state.Root)
	if err != nil {
		m.files = nil
		return err
	}

	m.files = make([]common.FileEntry, 0, len(entries))
	for _, entry := range entries {
		if !m.state.ShowHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		fe := common.FileEntry{
			Name: entry.Name(),
			Path: filepath.Join(m.state.Root, entry.Name()),
		}
		// stat follows symlinks so that links to directories can be focused
		if info, err := os.Stat(fe.Path); err == nil {
			fe.IsDir = info.IsDir()
			fe.Size = info.Size()
		}
		m.files = append(m.files, fe)
	}

	// directories first, then by name
	sort.Slice(m.files, func(i, j int) bool {
		if m.files[i].IsDir != m.files[j].IsDir {
			return m.files[i].IsDir
		}
		return m.files[i].Name < m.files[j].Name
	})
	return nil
}

// Selection is the entry under the cursor, or the displayed directory when
// it's empty
func (m *Model) Selection() types.Selection {
	if m.cursor < len(m.files) {
		f := m.files[m.cursor]
		return types.Selection{Path: f.Path, IsDir: f.IsDir}
	}
	return types.Selection{Path: m.state.Root, IsDir: true}
}

// Pending returns the launchable to run once the program exited, if any
func (m *Model) Pending() *external.Launchable {
	return m.pending
}

// Getters
func (m *Model) Files() []common.FileEntry {
	return m.files
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) Mode() types.Mode {
	return m.mode
}

// CurrentDir returns the displayed directory
func (m *Model) CurrentDir() string {
	return m.state.Root
}

func (m *Model) ShowHidden() bool {
	return m.state.ShowHidden
}

func (m *Model) InputView() string {
	return m.input.View()
}

func (m *Model) StatusMessage() (string, bool) {
	return m.status.Message, m.status.IsError
}

// SetCursor moves the cursor, ignoring positions out of the listing
func (m *Model) SetCursor(pos int) {
	if pos >= 0 && pos < len(m.files) {
		m.cursor = pos
	}
}

// ScanDirectory scans the current directory
func (m *Model) ScanDirectory() error {
	return m.scanDirectory()
}
