package dropdown

import (
	"testing"
)

func entry(id string, disabled, active bool) Entry {
	return Entry{
		Item:  Item{ID: id, Label: id},
		State: State{Disabled: disabled, Active: active},
	}
}

func separator() Entry {
	return Entry{Item: Item{Separator: true}}
}

func TestOpenInitialFocus(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    int
	}{
		{
			name: "active enabled item wins",
			entries: []Entry{
				entry("a", true, false),
				entry("b", false, true),
				entry("c", false, false),
			},
			want: 1,
		},
		{
			name: "first enabled when none active",
			entries: []Entry{
				entry("a", true, false),
				entry("b", false, false),
				entry("c", false, false),
			},
			want: 1,
		},
		{
			name: "index 0 when all disabled",
			entries: []Entry{
				entry("a", true, false),
				entry("b", true, false),
			},
			want: 0,
		},
		{
			name: "active but disabled item is skipped",
			entries: []Entry{
				entry("a", true, true),
				entry("b", false, false),
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.entries, Callbacks{})
			m.Open()
			if got := m.FocusedIndex(); got != tt.want {
				t.Errorf("initial focus = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestArrowNavigationSkipsDisabledAndWraps(t *testing.T) {
	m := New([]Entry{
		entry("bold", false, false),
		entry("italic", true, false),
		entry("code", false, false),
	}, Callbacks{})
	m.Open()

	if got := m.FocusedIndex(); got != 0 {
		t.Fatalf("initial focus = %d, want 0", got)
	}

	m.HandleKey(KeyDown)
	if got := m.FocusedIndex(); got != 2 {
		t.Errorf("after ArrowDown: focus = %d, want 2 (italic skipped)", got)
	}

	m.HandleKey(KeyDown)
	if got := m.FocusedIndex(); got != 0 {
		t.Errorf("after wrap: focus = %d, want 0", got)
	}

	m.HandleKey(KeyUp)
	if got := m.FocusedIndex(); got != 2 {
		t.Errorf("after ArrowUp from first: focus = %d, want 2 (wrap backwards)", got)
	}
}

func TestHomeEndJumpToEnabledEnds(t *testing.T) {
	m := New([]Entry{
		entry("a", true, false),
		entry("b", false, false),
		entry("c", false, false),
		entry("d", true, false),
	}, Callbacks{})
	m.Open()

	m.HandleKey(KeyEnd)
	if got := m.FocusedIndex(); got != 2 {
		t.Errorf("End: focus = %d, want 2 (last enabled)", got)
	}
	m.HandleKey(KeyHome)
	if got := m.FocusedIndex(); got != 1 {
		t.Errorf("Home: focus = %d, want 1 (first enabled)", got)
	}
}

func TestNavigationWithZeroEnabledIsNoop(t *testing.T) {
	m := New([]Entry{entry("a", true, false)}, Callbacks{})
	m.Open()
	m.HandleKey(KeyDown)
	m.HandleKey(KeyUp)
	m.HandleKey(KeyHome)
	if got := m.FocusedIndex(); got != 0 {
		t.Errorf("focus moved to %d with zero enabled items", got)
	}
}

func TestFocusOnDisabledSnapsToFirstEnabled(t *testing.T) {
	m := New([]Entry{
		entry("a", false, false),
		entry("b", false, false),
	}, Callbacks{})
	m.Open()
	m.HandleKey(KeyDown) // focus b

	// b becomes disabled under the focus; the next move snaps to the
	// first enabled item rather than navigating relative to b.
	m.SetEntries([]Entry{
		entry("a", false, false),
		entry("b", true, false),
	})
	m.HandleKey(KeyDown)
	if got := m.FocusedIndex(); got != 0 {
		t.Errorf("focus = %d, want 0 (snap to first enabled)", got)
	}
}

func TestEscapeClosesWithoutNavigateOut(t *testing.T) {
	var closed, navigated bool
	m := New([]Entry{entry("a", false, false)}, Callbacks{
		OnClose:       func() { closed = true },
		OnNavigateOut: func(Direction) { navigated = true },
	})
	m.Open()
	m.HandleKey(KeyEscape)

	if !closed {
		t.Error("OnClose not called")
	}
	if navigated {
		t.Error("Escape must not signal sibling navigation")
	}
	if m.IsOpen() {
		t.Error("menu still open")
	}
}

func TestArrowLeftRightSignalSiblingNavigation(t *testing.T) {
	var gotDir Direction
	var calls int
	m := New([]Entry{entry("a", false, false)}, Callbacks{
		OnNavigateOut: func(d Direction) { gotDir = d; calls++ },
	})

	m.Open()
	m.HandleKey(KeyRight)
	if calls != 1 || gotDir != Next {
		t.Errorf("ArrowRight: calls=%d dir=%d, want 1/Next", calls, gotDir)
	}
	if m.IsOpen() {
		t.Error("menu should close on navigate-out")
	}

	m.Open()
	m.HandleKey(KeyLeft)
	if calls != 2 || gotDir != Prev {
		t.Errorf("ArrowLeft: calls=%d dir=%d, want 2/Prev", calls, gotDir)
	}
}

func TestUnwiredCallbacksDegradeToClose(t *testing.T) {
	m := New([]Entry{entry("a", false, false)}, Callbacks{})
	m.Open()
	m.HandleKey(KeyLeft)
	if m.IsOpen() {
		t.Error("ArrowLeft with no callback must still close")
	}

	m.Open()
	m.HandleKey(KeyTab)
	if m.IsOpen() {
		t.Error("Tab with no callback must still close")
	}
}

func TestTabOutDirections(t *testing.T) {
	var gotDir Direction
	m := New([]Entry{entry("a", false, false)}, Callbacks{
		OnTabOut: func(d Direction) { gotDir = d },
	})

	m.Open()
	m.HandleKey(KeyTab)
	if gotDir != Next {
		t.Errorf("Tab: dir = %d, want Next", gotDir)
	}

	m.Open()
	m.HandleKey(KeyShiftTab)
	if gotDir != Prev {
		t.Errorf("Shift+Tab: dir = %d, want Prev", gotDir)
	}
}

func TestClickActivatesOnlyEnabled(t *testing.T) {
	var selected string
	m := New([]Entry{
		entry("ok", false, false),
		entry("nope", true, false),
	}, Callbacks{
		OnSelect: func(id string) { selected = id },
	})
	m.Open()

	m.Click(1)
	if selected != "" {
		t.Errorf("disabled item activated: %q", selected)
	}
	m.Click(0)
	if selected != "ok" {
		t.Errorf("selected = %q, want %q", selected, "ok")
	}
	m.Click(99) // out of range: safe no-op
}

func TestEnterSpaceAreKeyboardNoops(t *testing.T) {
	var selected string
	m := New([]Entry{entry("a", false, false)}, Callbacks{
		OnSelect: func(id string) { selected = id },
	})
	m.Open()
	m.HandleKey(KeyEnter)
	m.HandleKey(KeySpace)
	if selected != "" {
		t.Errorf("keyboard layer activated %q; activation belongs to the click handler", selected)
	}
}

func TestSeparatorsDisabledAndRoleless(t *testing.T) {
	m := New([]Entry{
		entry("a", false, false),
		separator(),
		entry("b", false, false),
	}, Callbacks{})
	m.Open()

	entries := m.Entries()
	if !entries[1].State.Disabled {
		t.Error("separator not normalized to disabled")
	}
	if entries[1].Role() != RoleNone {
		t.Errorf("separator role = %q, want none", entries[1].Role())
	}

	m.HandleKey(KeyDown)
	if got := m.FocusedIndex(); got != 2 {
		t.Errorf("focus = %d, want 2 (separator never focused)", got)
	}
}

func TestRoles(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want Role
	}{
		{"radio from group", Item{ID: "h1", Group: "heading"}, RoleRadio},
		{"toggle", Item{ID: "bold", Toggle: true}, RoleToggle},
		{"plain action", Item{ID: "copy"}, RoleAction},
		{"group wins over toggle", Item{ID: "x", Group: "g", Toggle: true}, RoleRadio},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Item: tt.item}
			if got := e.Role(); got != tt.want {
				t.Errorf("role = %q, want %q", got, tt.want)
			}
		})
	}
}
