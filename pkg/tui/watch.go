package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/quillmd/quill-cli/internal/system"
)

type fileChangedMsg struct {
	path string
}

// newWatcher builds a watcher over the given paths. A watcher failure is
// logged and live reload is simply disabled.
func newWatcher(paths []string) *fsnotify.Watcher {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		system.Logger.Warn("file watching disabled", "error", err)
		return nil
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := w.Add(p); err != nil {
			system.Logger.Warn("failed to watch file", "path", p, "error", err)
		}
	}
	return w
}

// waitForChange blocks on the next relevant watcher event. The command
// re-arms itself from the update loop after each message.
func waitForChange(w *fsnotify.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return fileChangedMsg{path: ev.Name}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				system.Logger.Warn("file watcher error", "error", err)
			}
		}
	}
}
