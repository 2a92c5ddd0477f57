package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// PackChangedMsg reports that a watched pack file changed on disk.
type PackChangedMsg struct {
	Path string
}

// WatchErrorMsg carries an error from the pack watcher.
type WatchErrorMsg struct {
	Err error
}

// watchCmd waits for the next watcher event. It returns nil once the
// watcher is closed, which ends the wait loop.
func watchCmd(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return PackChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}
