package state

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ChangedMsg reports that the state file was written by someone.
type ChangedMsg struct {
	State State
	Err   error
}

// Watcher follows edits of one state file.
type Watcher struct {
	path string
	fs   *fsnotify.Watcher
}

// NewWatcher watches the directory holding path, so that editors replacing
// the file are noticed too.
func NewWatcher(path string) (*Watcher, error) {
	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("state: create config dir: %w", err)
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("state: watch: %w", err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("state: watch %s: %w", dir, err)
	}
	return &Watcher{path: path, fs: fs}, nil
}

// Next returns a command that blocks until the state file is written or
// created and yields the reloaded state. Issue it again after each message.
func (w *Watcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != w.path {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				s, err := read(w.path)
				return ChangedMsg{State: s, Err: err}
			case _, ok := <-w.fs.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
