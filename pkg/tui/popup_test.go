package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillmd/quill-cli/pkg/dropdown"
	"github.com/quillmd/quill-cli/pkg/models"
	"github.com/quillmd/quill-cli/pkg/trigger"
)

func TestMenuKeyTranslation(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want dropdown.Key
		ok   bool
	}{
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, dropdown.KeyDown, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, dropdown.KeyUp, true},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, dropdown.KeyHome, true},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, dropdown.KeyEnd, true},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, dropdown.KeyEscape, true},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, dropdown.KeyLeft, true},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, dropdown.KeyRight, true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, dropdown.KeyTab, true},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, dropdown.KeyShiftTab, true},
		{"vim down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, dropdown.KeyDown, true},
		{"vim up", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, dropdown.KeyUp, true},
		{"unrelated rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := menuKeyFor(tt.msg)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("key = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatEntriesReflectActiveMarks(t *testing.T) {
	ctx := &models.CursorContext{
		ActiveFormats: []models.FormatKind{models.FormatBold, models.FormatLink},
	}

	entries := formatEntries(ctx)
	if len(entries) != 9 {
		t.Fatalf("entries = %d, want 9", len(entries))
	}
	for _, e := range entries {
		if e.Role() != dropdown.RoleToggle {
			t.Errorf("%s role = %q, want toggle", e.Item.ID, e.Role())
		}
		wantActive := e.Item.ID == "format.bold" || e.Item.ID == "format.link"
		if e.State.Active != wantActive {
			t.Errorf("%s active = %v, want %v", e.Item.ID, e.State.Active, wantActive)
		}
	}
}

func TestHeadingEntriesRadioGroup(t *testing.T) {
	ctx := &models.CursorContext{Heading: &models.HeadingContext{Level: 2}}

	entries := headingEntries(ctx)
	if len(entries) != 7 {
		t.Fatalf("entries = %d, want paragraph plus six levels", len(entries))
	}
	for _, e := range entries {
		if e.Role() != dropdown.RoleRadio {
			t.Errorf("%s role = %q, want radio", e.Item.ID, e.Role())
		}
	}
	for _, e := range entries {
		wantActive := e.Item.ID == "heading.h2"
		if e.State.Active != wantActive {
			t.Errorf("%s active = %v, want %v", e.Item.ID, e.State.Active, wantActive)
		}
	}
}

func TestPopupEnterActivatesFocusedEntry(t *testing.T) {
	var selected string
	var closed bool
	ctx := &models.CursorContext{ActiveFormats: []models.FormatKind{models.FormatItalic}}

	p := NewPopupModel(trigger.PopupFormat, models.Rect{}, ctx,
		func(id string) { selected = id },
		func(trigger.PopupKind) { closed = true })

	// Initial focus lands on the active italic entry.
	if !p.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Fatal("enter not consumed")
	}
	if selected != "format.italic" {
		t.Errorf("selected = %q, want format.italic", selected)
	}
	if !closed {
		t.Error("popup did not close after activation")
	}
}

func TestPopupEscapeClosesWithoutSelecting(t *testing.T) {
	var selected string
	var closed bool
	p := NewPopupModel(trigger.PopupList, models.Rect{}, &models.CursorContext{},
		func(id string) { selected = id },
		func(trigger.PopupKind) { closed = true })

	p.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})

	if selected != "" {
		t.Errorf("selected = %q, want nothing", selected)
	}
	if !closed {
		t.Error("escape did not close the popup")
	}
}

func TestTableMenuSkipsNotImplemented(t *testing.T) {
	entries := menuEntries(trigger.PopupTable, &models.CursorContext{})

	var align *dropdown.Entry
	for i := range entries {
		if entries[i].Item.ID == "table.align" {
			align = &entries[i]
		}
	}
	if align == nil {
		t.Fatal("table.align missing from table menu")
	}
	if !align.State.NotImplemented {
		t.Error("table.align should be marked not implemented")
	}
}
