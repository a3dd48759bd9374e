package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/quillmd/quill-cli/pkg/models"
	"github.com/quillmd/quill-cli/pkg/samples"
	"github.com/quillmd/quill-cli/pkg/tabstrip"
	"github.com/quillmd/quill-cli/pkg/trigger"
)

// debounceMsg fires when the popup show delay elapses. The sequence
// number ties it to the cursor movement that scheduled it: a stale tick
// is ignored.
type debounceMsg struct {
	seq int
}

// App is the top-level inspector model: a strip of open documents, the
// document pane, the context pane, and at most one contextual popup.
type App struct {
	settings *models.Settings

	tabs    []tabstrip.Tab
	docs    map[string]*DocumentModel
	active  int
	nextTab int

	registry *trigger.Registry
	coord    *trigger.Coordinator
	changes  []trigger.Change

	popup   *PopupModel
	palette *PaletteModel

	watcher *fsnotify.Watcher

	width       int
	height      int
	statusMsg   string
	debounceSeq int
	sampleIdx   int
}

// NewApp builds the inspector with one tab per file. Without files a
// scratch document opens.
func NewApp(paths []string, settings *models.Settings) *App {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	a := &App{
		settings: settings,
		docs:     make(map[string]*DocumentModel),
	}

	a.registry = trigger.NewRegistry()
	trigger.RegisterFormatActions(a.registry)
	trigger.RegisterHeadingActions(a.registry)

	a.coord = trigger.NewCoordinator(a, a, a, settings.Popups.AutoSelect)

	for _, path := range paths {
		doc, err := NewDocumentModel(path)
		if err != nil {
			a.statusMsg = err.Error()
			continue
		}
		a.addTab(doc)
	}
	if len(a.tabs) == 0 {
		a.addTab(a.nextSample())
	}
	a.active = 0

	a.watcher = newWatcher(paths)
	return a
}

// nextSample opens the next built-in sample, cycling through the set.
func (a *App) nextSample() *DocumentModel {
	all := samples.All()
	s := all[a.sampleIdx%len(all)]
	a.sampleIdx++
	return NewScratchDocument(s.Name, s.Content)
}

func (a *App) addTab(doc *DocumentModel) {
	a.nextTab++
	id := fmt.Sprintf("tab-%d", a.nextTab)
	a.tabs = append(a.tabs, tabstrip.Tab{
		ID:       id,
		FilePath: doc.Path(),
		Title:    doc.title,
	})
	a.docs[id] = doc
	a.active = len(a.tabs) - 1
}

func (a *App) activeDoc() *DocumentModel {
	if a.active < 0 || a.active >= len(a.tabs) {
		return nil
	}
	return a.docs[a.tabs[a.active].ID]
}

func (a *App) Init() tea.Cmd {
	return waitForChange(a.watcher)
}

// OpenPopup implements trigger.UIInvoker.
func (a *App) OpenPopup(kind trigger.PopupKind, anchor models.Rect, ctx *models.CursorContext) {
	a.popup = NewPopupModel(kind, anchor, ctx,
		func(actionID string) { a.dispatchAction(actionID, ctx) },
		func(kind trigger.PopupKind) {
			a.popup = nil
			a.coord.NotifyClosed(kind)
		})
}

// ClosePopup implements trigger.UIInvoker.
func (a *App) ClosePopup(kind trigger.PopupKind) {
	if a.popup != nil && a.popup.Kind() == kind {
		a.popup = nil
	}
}

// RectOf implements trigger.CoordinateResolver. The popup anchors at the
// document pane's readout row; before the first layout there is no
// geometry and the invocation aborts.
func (a *App) RectOf(r models.Range) (models.Rect, bool) {
	if a.width == 0 || a.height == 0 {
		return models.Rect{}, false
	}
	return models.Rect{
		Top:    a.height - 3,
		Left:   2,
		Bottom: a.height - 2,
		Right:  2 + (r.To - r.From),
	}, true
}

// SetSelection implements trigger.SelectionMutator.
func (a *App) SetSelection(r models.Range) {
	if doc := a.activeDoc(); doc != nil {
		doc.SetSelection(r)
	}
}

// DispatchEdit implements trigger.EditDispatcher. The inspector has no
// editing engine; changes are recorded and surfaced in the status bar.
func (a *App) DispatchEdit(change trigger.Change) {
	a.changes = append(a.changes, change)
	a.statusMsg = fmt.Sprintf("%s → %d-%d", change.ActionID, change.Target.From, change.Target.To)
}

func (a *App) dispatchAction(actionID string, ctx *models.CursorContext) {
	if ctx == nil {
		if doc := a.activeDoc(); doc != nil {
			ctx = doc.Context()
		}
	}
	if ctx == nil {
		return
	}
	if !a.registry.Dispatch(actionID, trigger.Request{Context: ctx, Dispatch: a}) {
		a.statusMsg = fmt.Sprintf("no handler for %s", actionID)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case fileChangedMsg:
		for i, t := range a.tabs {
			if t.FilePath != msg.path {
				continue
			}
			if err := a.docs[t.ID].Reload(); err != nil {
				a.statusMsg = err.Error()
			} else {
				a.statusMsg = fmt.Sprintf("reloaded %s", a.tabs[i].Title)
			}
		}
		return a, waitForChange(a.watcher)

	case debounceMsg:
		if msg.seq != a.debounceSeq || a.popup != nil {
			return a, nil
		}
		if doc := a.activeDoc(); doc != nil && doc.tree != nil {
			a.coord.Trigger(doc.tree, doc.Selection())
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return a, tea.Quit
	}

	if a.palette != nil {
		actionID, done, cmd := a.palette.Update(msg)
		if done {
			a.palette = nil
			if actionID != "" {
				if doc := a.activeDoc(); doc != nil {
					a.dispatchAction(actionID, doc.Context())
				}
			}
		}
		return a, cmd
	}

	if a.popup != nil {
		if a.popup.HandleKey(msg) {
			return a, nil
		}
	}

	doc := a.activeDoc()

	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "left", "h":
		return a.moveCursor(doc, -1, false)
	case "right", "l":
		return a.moveCursor(doc, 1, false)
	case "shift+left", "H":
		return a.moveCursor(doc, -1, true)
	case "shift+right", "L":
		return a.moveCursor(doc, 1, true)
	case "up", "k":
		if doc != nil {
			doc.MoveLine(-1)
		}
		return a, nil
	case "down", "j":
		if doc != nil {
			doc.MoveLine(1)
		}
		return a, nil

	case "v":
		if doc != nil {
			if doc.ToggleAnchor() {
				a.statusMsg = "anchor set"
			} else {
				a.statusMsg = ""
			}
		}
		return a, nil

	case "s":
		if doc != nil && !doc.ExpandStep() {
			a.statusMsg = "selection covers the document"
		}
		return a, nil

	case "esc":
		if doc != nil {
			doc.CollapseSelection()
		}
		return a, nil

	case "e":
		if doc != nil && doc.tree != nil {
			inv := a.coord.Trigger(doc.tree, doc.Selection())
			if !inv.Opened && !inv.Closed {
				a.statusMsg = fmt.Sprintf("nothing to show (mode %s)", inv.Mode)
			}
		}
		return a, nil

	case "/":
		a.coord.Close()
		a.palette = NewPaletteModel(a.registry.ActionIDs())
		return a, nil

	case "y":
		return a.copySnapshot(doc)

	case "c":
		a.settings.UI.ShowContextPane = !a.settings.UI.ShowContextPane
		return a, nil

	case "n":
		a.addTab(a.nextSample())
		return a, nil

	case "tab":
		if len(a.tabs) > 0 {
			a.active = (a.active + 1) % len(a.tabs)
		}
		return a, nil
	case "shift+tab":
		if len(a.tabs) > 0 {
			a.active = (a.active - 1 + len(a.tabs)) % len(a.tabs)
		}
		return a, nil

	case "ctrl+left", "[":
		return a.moveTab(a.active - 1)
	case "ctrl+right", "]":
		return a.moveTab(a.active + 2) // visual drop slot past the right neighbor

	case "p":
		return a.togglePin()
	}

	return a, nil
}

func (a *App) moveCursor(doc *DocumentModel, delta int, extend bool) (tea.Model, tea.Cmd) {
	if doc == nil {
		return a, nil
	}
	a.coord.Close()
	doc.MoveCursor(delta, extend)

	a.debounceSeq++
	seq := a.debounceSeq
	delay := time.Duration(a.settings.Popups.ShowDelayMs) * time.Millisecond
	if delay <= 0 {
		return a, func() tea.Msg { return debounceMsg{seq: seq} }
	}
	return a, tea.Tick(delay, func(time.Time) tea.Msg { return debounceMsg{seq: seq} })
}

// moveTab moves the active tab to a visual drop slot, honoring the
// pinned-prefix policy.
func (a *App) moveTab(visualDrop int) (tea.Model, tea.Cmd) {
	plan := tabstrip.PlanReorder(a.tabs, a.active, visualDrop)
	if !plan.Allowed {
		if plan.BlockedReason == tabstrip.BlockedPinnedZone {
			a.statusMsg = "blocked by pinned tabs"
		}
		return a, nil
	}
	a.tabs = tabstrip.ApplyReorder(a.tabs, a.active, plan)
	a.active = plan.ToIndex
	return a, nil
}

func (a *App) togglePin() (tea.Model, tea.Cmd) {
	if a.active < 0 || a.active >= len(a.tabs) {
		return a, nil
	}
	id := a.tabs[a.active].ID
	if a.tabs[a.active].IsPinned {
		a.tabs = tabstrip.Unpin(a.tabs, a.active)
	} else {
		a.tabs = tabstrip.Pin(a.tabs, a.active)
	}
	for i, t := range a.tabs {
		if t.ID == id {
			a.active = i
		}
	}
	return a, nil
}

func (a *App) copySnapshot(doc *DocumentModel) (tea.Model, tea.Cmd) {
	if doc == nil {
		return a, nil
	}
	body, err := renderSnapshot(doc.Context(), a.settings.UI.SnapshotFormat)
	if err != nil {
		a.statusMsg = err.Error()
		return a, nil
	}
	if err := clipboard.WriteAll(body); err != nil {
		a.statusMsg = fmt.Sprintf("clipboard unavailable: %v", err)
	} else {
		a.statusMsg = "snapshot copied"
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	tabBar := renderTabBar(a.tabs, a.active, a.width, a.settings.UI.TabWidth)

	paneHeight := a.height - 4 // tab bar, borders, status bar
	if paneHeight < 3 {
		paneHeight = 3
	}

	doc := a.activeDoc()
	docWidth := a.width - 4
	var right string
	if a.settings.UI.ShowContextPane {
		docWidth = a.width * 3 / 5
		ctxWidth := a.width - docWidth - 8
		var ctx *models.CursorContext
		if doc != nil {
			ctx = doc.Context()
		}
		right = paneStyle.Height(paneHeight).Width(ctxWidth).
			Render(renderContextPane(ctx, a.settings.UI.SnapshotFormat, ctxWidth))
	}

	var docView string
	if doc != nil {
		docView = doc.View(docWidth, paneHeight)
	}
	left := focusedPaneStyle.Height(paneHeight).Width(docWidth).Render(docView)

	body := left
	if right != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, tabBar, body)

	if a.palette != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, a.palette.View())
	} else if a.popup != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, a.popup.View())
	}

	status := a.statusMsg
	if status == "" {
		status = "←/→ move · shift extend · s expand · e popup · / actions · y copy · q quit"
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusStyle.Render(status))
}
