package views

import (
	"strings"

	"tread/internal/tui/common"
	"tread/internal/tui/components"
	"tread/internal/tui/styles"
	"tread/pkg/types"
)

// reserved lines: title, input, status and key commands
const chromeHeight = 5

// RenderMainView renders the listing then the input and status lines
func RenderMainView(m common.ModelReader, height int) string {
	var sb strings.Builder

	fileList := components.NewFileList()
	fileList.SetCurrentDir(m.CurrentDir())
	fileList.SetFiles(m.Files())
	fileList.SetCursor(m.Cursor())
	if height > chromeHeight {
		fileList.SetHeight(height - chromeHeight)
	}
	sb.WriteString(fileList.View())

	if m.Mode() == types.Command {
		sb.WriteString(m.InputView() + "\n")
	}

	status := components.NewStatusBar()
	if msg, isError := m.StatusMessage(); isError {
		status.SetError(msg)
	} else {
		status.SetText(msg)
	}
	if line := status.View(); line != "" {
		sb.WriteString(line + "\n")
	}

	sb.WriteString(RenderKeyCommands(m))
	return styles.Theme.App.Render(sb.String())
}

func RenderKeyCommands(m common.ModelReader) string {
	if m.Mode() == types.Command {
		return styles.Theme.Help.Render("[Enter] Run  [Esc] Cancel")
	}
	hidden := "[:h] Show hidden"
	if m.ShowHidden() {
		hidden = "[:h] Hide hidden"
	}
	return styles.Theme.Help.Render("[↑/k] Up  [↓/j] Down  [Enter] Open  [:] Verb  " + hidden + "  [Esc] Back  [ctrl-q] Quit")
}
