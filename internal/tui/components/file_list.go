package components

import (
	"fmt"
	"strings"

	"tread/internal/tui/common"
	"tread/internal/tui/styles"

	"github.com/dustin/go-humanize"
)

// FileList renders the entries of the displayed directory with a cursor
type FileList struct {
	files      []common.FileEntry
	cursor     int
	currentDir string
	height     int
}

func NewFileList() *FileList {
	return &FileList{}
}

func (fl *FileList) SetFiles(files []common.FileEntry) {
	fl.files = files
}

func (fl *FileList) SetCurrentDir(dir string) {
	fl.currentDir = dir
}

func (fl *FileList) SetCursor(cursor int) {
	fl.cursor = cursor
}

// SetHeight limits the number of rendered entries, 0 meaning no limit
func (fl *FileList) SetHeight(height int) {
	fl.height = height
}

func (fl *FileList) View() string {
	var s strings.Builder

	s.WriteString(styles.Theme.Title.Render(fl.currentDir))
	s.WriteString("\n")

	if len(fl.files) == 0 {
		s.WriteString(styles.Theme.Help.Render("empty directory") + "\n")
		return s.String()
	}

	start, end := fl.window()
	for i := start; i < end; i++ {
		file := fl.files[i]

		cursor := " "
		style := styles.Theme.Unselected
		name := file.Name
		details := ""
		if file.IsDir {
			style = styles.Theme.Directory
			name += "/"
		} else {
			details = humanize.Bytes(uint64(file.Size))
		}
		if i == fl.cursor {
			cursor = ">"
			style = styles.Theme.Selected
		}

		s.WriteString(fmt.Sprintf("%s %s %s\n", cursor, style.Render(name), styles.Theme.Help.Render(details)))
	}
	return s.String()
}

// window returns the range of entries to render, keeping the cursor visible
func (fl *FileList) window() (int, int) {
	if fl.height <= 0 || len(fl.files) <= fl.height {
		return 0, len(fl.files)
	}
	start := fl.cursor - fl.height/2
	if start < 0 {
		start = 0
	}
	end := start + fl.height
	if end > len(fl.files) {
		end = len(fl.files)
		start = end - fl.height
	}
	return start, end
}
