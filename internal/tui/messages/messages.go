package messages

// ErrorMsg reports a failure happening outside of a verb execution
type ErrorMsg struct {
	Err error
}

// DirectoryChangeMsg is sent when the displayed directory changed on disk
type DirectoryChangeMsg struct {
	Path string
}

// WatchClosedMsg is sent once the directory watcher is stopped
type WatchClosedMsg struct{}
