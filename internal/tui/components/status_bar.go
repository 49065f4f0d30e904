package components

import (
	"tread/internal/tui/styles"
)

// StatusBar renders the status line under the listing
type StatusBar struct {
	text    string
	isError bool
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) SetText(text string) {
	s.text = text
	s.isError = false
}

func (s *StatusBar) SetError(text string) {
	s.text = text
	s.isError = true
}

func (s *StatusBar) View() string {
	if s.text == "" {
		return ""
	}
	if s.isError {
		return styles.Theme.Error.Render(s.text)
	}
	return styles.Theme.Status.Render(s.text)
}
