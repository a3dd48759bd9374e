package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillmd/quill-cli/pkg/dropdown"
	"github.com/quillmd/quill-cli/pkg/models"
	"github.com/quillmd/quill-cli/pkg/trigger"
)

// PopupModel hosts a dropdown menu for one contextual popup family. The
// menu owns focus and navigation; the popup translates terminal keys and
// activates the focused entry on enter/space.
type PopupModel struct {
	kind   trigger.PopupKind
	menu   *dropdown.Menu
	ctx    *models.CursorContext
	anchor models.Rect

	onAction func(actionID string)
	onClosed func(kind trigger.PopupKind)
}

// NewPopupModel builds the popup for a kind with entries derived from the
// context snapshot.
func NewPopupModel(kind trigger.PopupKind, anchor models.Rect, ctx *models.CursorContext,
	onAction func(actionID string), onClosed func(kind trigger.PopupKind)) *PopupModel {

	p := &PopupModel{
		kind:     kind,
		ctx:      ctx,
		anchor:   anchor,
		onAction: onAction,
		onClosed: onClosed,
	}
	p.menu = dropdown.New(menuEntries(kind, ctx), dropdown.Callbacks{
		OnSelect: onAction,
		OnClose: func() {
			if onClosed != nil {
				onClosed(kind)
			}
		},
	})
	p.menu.Open()
	return p
}

// Kind returns the popup family.
func (p *PopupModel) Kind() trigger.PopupKind {
	return p.kind
}

// HandleKey routes one key event. It reports whether the popup consumed
// the key.
func (p *PopupModel) HandleKey(msg tea.KeyMsg) bool {
	if !p.menu.IsOpen() {
		return false
	}
	if msg.Type == tea.KeyEnter || msg.String() == " " {
		p.activateFocused()
		return true
	}
	key, ok := menuKeyFor(msg)
	if !ok {
		return false
	}
	p.menu.HandleKey(key)
	return true
}

// activateFocused dispatches the focused entry and closes the menu.
// Disabled entries never activate.
func (p *PopupModel) activateFocused() {
	idx := p.menu.FocusedIndex()
	if idx < 0 {
		return
	}
	p.menu.Click(idx)
	p.menu.Close()
}

// menuKeyFor translates a terminal key event into a menu key.
func menuKeyFor(msg tea.KeyMsg) (dropdown.Key, bool) {
	switch msg.Type {
	case tea.KeyDown:
		return dropdown.KeyDown, true
	case tea.KeyUp:
		return dropdown.KeyUp, true
	case tea.KeyHome:
		return dropdown.KeyHome, true
	case tea.KeyEnd:
		return dropdown.KeyEnd, true
	case tea.KeyEsc:
		return dropdown.KeyEscape, true
	case tea.KeyLeft:
		return dropdown.KeyLeft, true
	case tea.KeyRight:
		return dropdown.KeyRight, true
	case tea.KeyTab:
		return dropdown.KeyTab, true
	case tea.KeyShiftTab:
		return dropdown.KeyShiftTab, true
	}
	switch msg.String() {
	case "j":
		return dropdown.KeyDown, true
	case "k":
		return dropdown.KeyUp, true
	}
	return 0, false
}

// View renders the menu.
func (p *PopupModel) View() string {
	var sb strings.Builder
	sb.WriteString(paneTitleStyle.Render(string(p.kind)) + "\n")

	focused := p.menu.FocusedIndex()
	for i, e := range p.menu.Entries() {
		if e.Item.Separator {
			sb.WriteString(separatorStyle.Render("────────") + "\n")
			continue
		}

		marker := "  "
		switch e.Role() {
		case dropdown.RoleToggle:
			if e.State.Active {
				marker = "☑ "
			} else {
				marker = "☐ "
			}
		case dropdown.RoleRadio:
			if e.State.Active {
				marker = "◉ "
			} else {
				marker = "○ "
			}
		}

		label := marker + e.Item.Label
		switch {
		case i == focused:
			label = menuFocusedStyle.Render(label)
		case e.State.Disabled || e.State.NotImplemented:
			label = menuDisabledStyle.Render(label)
		default:
			label = menuItemStyle.Render(label)
		}
		sb.WriteString(label + "\n")
	}

	return popupStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// menuEntries derives the entry list for a popup family from the context
// snapshot. Format marks render as toggles with their active state taken
// from the snapshot; heading levels form a radio group.
func menuEntries(kind trigger.PopupKind, ctx *models.CursorContext) []dropdown.Entry {
	switch kind {
	case trigger.PopupFormat:
		return formatEntries(ctx)
	case trigger.PopupHeading:
		return headingEntries(ctx)
	case trigger.PopupTable:
		return actionEntries([]actionSpec{
			{"table.row.above", "Insert row above", false},
			{"table.row.below", "Insert row below", false},
			{"table.col.left", "Insert column left", false},
			{"table.col.right", "Insert column right", false},
			{"", "", false},
			{"table.row.delete", "Delete row", false},
			{"table.col.delete", "Delete column", false},
			{"table.delete", "Delete table", false},
			{"table.align", "Set column alignment", true},
		})
	case trigger.PopupList:
		return actionEntries([]actionSpec{
			{"list.indent", "Indent item", false},
			{"list.outdent", "Outdent item", false},
			{"list.toggle-task", "Toggle task checkbox", false},
			{"", "", false},
			{"list.to-bullet", "Convert to bullet list", false},
			{"list.to-ordered", "Convert to ordered list", false},
		})
	case trigger.PopupBlockquote:
		return actionEntries([]actionSpec{
			{"blockquote.deepen", "Increase quote depth", false},
			{"blockquote.lift", "Lift out of quote", false},
		})
	case trigger.PopupCode:
		return actionEntries([]actionSpec{
			{"code.language", "Change language", false},
			{"code.copy", "Copy code", false},
			{"code.delete", "Remove code block", false},
		})
	case trigger.PopupMath:
		return actionEntries([]actionSpec{
			{"math.edit", "Edit expression", false},
			{"math.delete", "Remove math", false},
		})
	case trigger.PopupFootnote:
		return actionEntries([]actionSpec{
			{"footnote.edit", "Edit footnote", false},
			{"footnote.delete", "Remove reference", false},
		})
	case trigger.PopupInsert:
		return actionEntries([]actionSpec{
			{"insert.paragraph", "Paragraph", false},
			{"insert.heading", "Heading", false},
			{"insert.list", "List", false},
			{"insert.table", "Table", false},
			{"insert.code", "Code block", false},
			{"insert.quote", "Blockquote", false},
			{"insert.divider", "Divider", false},
		})
	default:
		return nil
	}
}

type actionSpec struct {
	id             string
	label          string
	notImplemented bool
}

func actionEntries(specs []actionSpec) []dropdown.Entry {
	entries := make([]dropdown.Entry, 0, len(specs))
	for _, s := range specs {
		if s.id == "" {
			entries = append(entries, dropdown.Entry{Item: dropdown.Item{Separator: true}})
			continue
		}
		entries = append(entries, dropdown.Entry{
			Item:  dropdown.Item{ID: s.id, Label: s.label},
			State: dropdown.State{NotImplemented: s.notImplemented},
		})
	}
	return entries
}

var formatMenuOrder = []struct {
	kind  models.FormatKind
	label string
}{
	{models.FormatBold, "Bold"},
	{models.FormatItalic, "Italic"},
	{models.FormatCode, "Code"},
	{models.FormatStrikethrough, "Strikethrough"},
	{models.FormatHighlight, "Highlight"},
	{models.FormatLink, "Link"},
	{models.FormatSuperscript, "Superscript"},
	{models.FormatSubscript, "Subscript"},
	{models.FormatUnderline, "Underline"},
}

func formatEntries(ctx *models.CursorContext) []dropdown.Entry {
	entries := make([]dropdown.Entry, 0, len(formatMenuOrder))
	for _, f := range formatMenuOrder {
		entries = append(entries, dropdown.Entry{
			Item: dropdown.Item{
				ID:     "format." + string(f.kind),
				Label:  f.label,
				Toggle: true,
			},
			State: dropdown.State{Active: ctx != nil && ctx.HasFormat(f.kind)},
		})
	}
	return entries
}

func headingEntries(ctx *models.CursorContext) []dropdown.Entry {
	level := 0
	if ctx != nil && ctx.Heading != nil {
		level = ctx.Heading.Level
	}
	entries := []dropdown.Entry{{
		Item:  dropdown.Item{ID: "heading.paragraph", Label: "Paragraph", Group: "heading"},
		State: dropdown.State{Active: level == 0},
	}}
	for l := 1; l <= 6; l++ {
		entries = append(entries, dropdown.Entry{
			Item: dropdown.Item{
				ID:    fmt.Sprintf("heading.h%d", l),
				Label: fmt.Sprintf("Heading %d", l),
				Group: "heading",
			},
			State: dropdown.State{Active: level == l},
		})
	}
	return entries
}
