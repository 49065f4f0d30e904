package common

import "tread/pkg/types"

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Files() []FileEntry
	Cursor() int
	Mode() types.Mode
	CurrentDir() string
	ShowHidden() bool
	// InputView is the rendered command input, only meaningful in command mode
	InputView() string
	StatusMessage() (msg string, isError bool)
}

// FileEntry is a line of the directory listing
type FileEntry struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}
