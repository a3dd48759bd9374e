// Package trigger owns the decision "which contextual UI opens now".
// It turns a context snapshot into a popup invocation, holding the
// single-owner state of the currently open popup: opening one contextual
// UI always closes the previous one first, and triggering while one is
// open toggles it closed.
package trigger

import (
	"github.com/quillmd/quill-cli/pkg/cursor"
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

// PopupKind names a contextual popup family.
type PopupKind string

const (
	PopupNone       PopupKind = ""
	PopupFormat     PopupKind = "format"
	PopupInsert     PopupKind = "insert"
	PopupTable      PopupKind = "table"
	PopupList       PopupKind = "list"
	PopupBlockquote PopupKind = "blockquote"
	PopupCode       PopupKind = "code"
	PopupMath       PopupKind = "math"
	PopupFootnote   PopupKind = "footnote"
	PopupHeading    PopupKind = "heading"
)

// KindForMode maps a resolved context mode to its popup family.
func KindForMode(mode models.ContextMode) PopupKind {
	switch mode {
	case models.ModeFormat:
		return PopupFormat
	case models.ModeInsertBlock, models.ModeInsertLine:
		return PopupInsert
	case models.ModeTable:
		return PopupTable
	case models.ModeList:
		return PopupList
	case models.ModeBlockquote:
		return PopupBlockquote
	case models.ModeCode:
		return PopupCode
	case models.ModeMath:
		return PopupMath
	case models.ModeFootnote:
		return PopupFootnote
	case models.ModeHeading:
		return PopupHeading
	default:
		return PopupNone
	}
}

// UIInvoker is the popup surface the coordinator drives. Rendering is
// out of scope; the coordinator only says what to open where.
type UIInvoker interface {
	OpenPopup(kind PopupKind, anchor models.Rect, ctx *models.CursorContext)
	ClosePopup(kind PopupKind)
}

// CoordinateResolver maps a document range to screen space. It may fail
// (position not currently rendered); the invocation is then aborted
// silently.
type CoordinateResolver interface {
	RectOf(r models.Range) (models.Rect, bool)
}

// SelectionMutator applies the auto-selection steps: the core decides
// what range, never how it is applied.
type SelectionMutator interface {
	SetSelection(r models.Range)
}

// Invocation reports what a trigger did.
type Invocation struct {
	Opened bool
	Closed bool
	Kind   PopupKind
	Mode   models.ContextMode
	Anchor models.Rect
}

// Coordinator holds the single "currently open popup" state. It is not
// safe for concurrent use: everything runs on the UI event loop.
type Coordinator struct {
	ui       UIInvoker
	coords   CoordinateResolver
	sel      SelectionMutator
	debounce Debouncer

	openKind   PopupKind
	autoSelect bool
}

// NewCoordinator wires the coordinator to its collaborators. autoSelect
// controls whether implied ranges (word, link content, footnote content)
// are selected before the popup opens.
func NewCoordinator(ui UIInvoker, coords CoordinateResolver, sel SelectionMutator, autoSelect bool) *Coordinator {
	return &Coordinator{ui: ui, coords: coords, sel: sel, autoSelect: autoSelect}
}

// OpenKind returns the currently open popup family, or PopupNone.
func (c *Coordinator) OpenKind() PopupKind {
	return c.openKind
}

// Trigger classifies the selection and opens the matching contextual UI.
// If a popup is already open it is toggled closed instead. Unresolvable
// geometry aborts the invocation without opening anything: losing a
// contextual affordance always beats crashing or misplacing a popup.
func (c *Coordinator) Trigger(tree *doctree.Tree, sel models.Range) Invocation {
	if c.openKind != PopupNone {
		closed := c.openKind
		c.Close()
		return Invocation{Closed: true, Kind: closed}
	}

	ctx := cursor.BuildContext(tree, sel)
	mode, autoSel := cursor.ResolveMode(ctx)
	if mode == models.ModeNone {
		return Invocation{Mode: mode}
	}

	anchorRange := sel
	if autoSel != nil {
		if c.autoSelect && c.sel != nil {
			c.sel.SetSelection(*autoSel)
		}
		anchorRange = *autoSel
	}

	rect, ok := c.coords.RectOf(anchorRange)
	if !ok {
		return Invocation{Mode: mode}
	}

	kind := KindForMode(mode)
	c.ui.OpenPopup(kind, rect, ctx)
	c.openKind = kind
	return Invocation{Opened: true, Kind: kind, Mode: mode, Anchor: rect}
}

// TriggerDebounced schedules a trigger after the configured delay,
// replacing any pending one. The snapshot callback runs when the delay
// elapses so the selection is re-validated: the user may have kept
// moving the cursor.
func (c *Coordinator) TriggerDebounced(delayMs int, snapshot func() (*doctree.Tree, models.Range)) {
	c.debounce.Schedule(delayMs, func() {
		tree, sel := snapshot()
		c.Trigger(tree, sel)
	})
}

// CancelPending drops any scheduled trigger.
func (c *Coordinator) CancelPending() {
	c.debounce.Cancel()
}

// Close closes the currently open popup, if any.
func (c *Coordinator) Close() {
	if c.openKind == PopupNone {
		return
	}
	c.ui.ClosePopup(c.openKind)
	c.openKind = PopupNone
}

// NotifyClosed records that a popup closed itself (escape, click away)
// so the coordinator's single-owner state stays truthful.
func (c *Coordinator) NotifyClosed(kind PopupKind) {
	if c.openKind == kind {
		c.openKind = PopupNone
	}
}
