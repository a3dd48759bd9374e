// Package dropdown implements the keyboard/focus state machine for a
// popup menu of actions with enabled/disabled/active state. It is
// UI-framework-free: callers translate their key events into Key values
// and render from the menu state.
package dropdown

// Role is the ARIA-equivalent role an item exposes. It is chosen by
// static group/toggle membership, never by runtime state.
type Role string

const (
	RoleAction Role = "menuitem"
	RoleToggle Role = "menuitemcheckbox"
	RoleRadio  Role = "menuitemradio"
	RoleNone   Role = "" // separators carry no role
)

// Item is the static identity of a menu entry.
type Item struct {
	ID        string
	Label     string
	Group     string // non-empty: mutually exclusive radio group
	Toggle    bool   // independent on/off
	Separator bool
}

// State is the runtime state of a menu entry.
type State struct {
	Disabled       bool
	Active         bool
	NotImplemented bool
}

// Entry pairs an item with its state. Separators are always disabled and
// never receive focus or a role.
type Entry struct {
	Item  Item
	State State
}

// Role returns the entry's ARIA-equivalent role.
func (e Entry) Role() Role {
	switch {
	case e.Item.Separator:
		return RoleNone
	case e.Item.Group != "":
		return RoleRadio
	case e.Item.Toggle:
		return RoleToggle
	default:
		return RoleAction
	}
}

// focusable reports whether the entry can hold keyboard focus. Disabled
// items stay focusable so keyboard users can discover them; separators
// never do.
func (e Entry) focusable() bool {
	return !e.Item.Separator
}

// enabled reports whether the entry participates in the navigation cycle
// and accepts activation.
func (e Entry) enabled() bool {
	return !e.Item.Separator && !e.State.Disabled && !e.State.NotImplemented
}

// Direction carries which way focus leaves the menu.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Key is a menu-relevant key event.
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
	KeyEscape
	KeyLeft
	KeyRight
	KeyTab
	KeyShiftTab
)

// Callbacks are the menu's outbound signals. Unwired optional callbacks
// degrade to a plain close; none of them may be required for the state
// machine to stay consistent.
type Callbacks struct {
	OnSelect      func(actionID string)
	OnClose       func()
	OnNavigateOut func(Direction) // adjacent sibling control
	OnTabOut      func(Direction) // next/previous control in tab order
}

// Menu is the dropdown state machine: closed, or open with a focused
// index. The enabled-index set is derived on demand, never stored, so it
// is always consistent with the current entries.
type Menu struct {
	entries []Entry
	cb      Callbacks
	open    bool
	focused int
}

// New builds a menu over the given entries. Separator entries are
// normalized to disabled.
func New(entries []Entry, cb Callbacks) *Menu {
	m := &Menu{cb: cb}
	m.SetEntries(entries)
	return m
}

// SetEntries replaces the item list. Focus is re-derived on the next
// Open; an open menu snaps its focus back into the enabled cycle.
func (m *Menu) SetEntries(entries []Entry) {
	normalized := make([]Entry, len(entries))
	copy(normalized, entries)
	for i := range normalized {
		if normalized[i].Item.Separator {
			normalized[i].State.Disabled = true
		}
	}
	m.entries = normalized
	if m.open {
		m.focused = m.clampFocus(m.focused)
	}
}

// Entries returns the current entries.
func (m *Menu) Entries() []Entry {
	return m.entries
}

// IsOpen reports whether the menu is open.
func (m *Menu) IsOpen() bool {
	return m.open
}

// FocusedIndex returns the focused entry index, or -1 when closed or
// empty.
func (m *Menu) FocusedIndex() int {
	if !m.open || len(m.entries) == 0 {
		return -1
	}
	return m.focused
}

// Open opens the menu and places initial focus: the first item that is
// both active and enabled, else the first enabled item, else index 0
// regardless of state.
func (m *Menu) Open() {
	m.open = true
	m.focused = m.initialFocus()
}

func (m *Menu) initialFocus() int {
	for i, e := range m.entries {
		if e.enabled() && e.State.Active {
			return i
		}
	}
	for i, e := range m.entries {
		if e.enabled() {
			return i
		}
	}
	return 0
}

// Close closes the menu. Focus stays with the triggering control; a
// second escape handled by a higher-level controller closes the owning
// toolbar.
func (m *Menu) Close() {
	if !m.open {
		return
	}
	m.open = false
	if m.cb.OnClose != nil {
		m.cb.OnClose()
	}
}

// enabledIndices derives the navigation cycle.
func (m *Menu) enabledIndices() []int {
	var out []int
	for i, e := range m.entries {
		if e.enabled() {
			out = append(out, i)
		}
	}
	return out
}

// clampFocus keeps focus on a focusable entry after the list changed.
func (m *Menu) clampFocus(idx int) int {
	if idx >= 0 && idx < len(m.entries) && m.entries[idx].focusable() {
		return idx
	}
	return m.initialFocus()
}

// move shifts focus to the next/previous enabled item, treating the
// enabled list as circular. Navigation with zero enabled items is a
// no-op; focus resting on a disabled item snaps to the first enabled one.
func (m *Menu) move(dir Direction) {
	enabled := m.enabledIndices()
	if len(enabled) == 0 {
		return
	}
	cur := -1
	for i, idx := range enabled {
		if idx == m.focused {
			cur = i
			break
		}
	}
	if cur == -1 {
		m.focused = enabled[0]
		return
	}
	cur = (cur + int(dir) + len(enabled)) % len(enabled)
	m.focused = enabled[cur]
}

// home jumps to the first enabled item, end to the last.
func (m *Menu) home() {
	if enabled := m.enabledIndices(); len(enabled) > 0 {
		m.focused = enabled[0]
	}
}

func (m *Menu) end() {
	if enabled := m.enabledIndices(); len(enabled) > 0 {
		m.focused = enabled[len(enabled)-1]
	}
}

// Click activates the entry at idx if it is enabled, otherwise does
// nothing. Out-of-range indices are a safe no-op.
func (m *Menu) Click(idx int) {
	if idx < 0 || idx >= len(m.entries) {
		return
	}
	e := m.entries[idx]
	if !e.enabled() {
		return
	}
	if m.cb.OnSelect != nil {
		m.cb.OnSelect(e.Item.ID)
	}
}

// HandleKey applies one key event to the open menu. All transitions are
// total: nothing here can fail.
func (m *Menu) HandleKey(k Key) {
	if !m.open {
		return
	}
	switch k {
	case KeyDown:
		m.move(Next)
	case KeyUp:
		m.move(Prev)
	case KeyHome:
		m.home()
	case KeyEnd:
		m.end()
	case KeyEnter, KeySpace:
		// Delegated to the item's own activation handler; the keyboard
		// layer does not activate.
	case KeyEscape:
		m.Close()
	case KeyLeft:
		m.closeOut(m.cb.OnNavigateOut, Prev)
	case KeyRight:
		m.closeOut(m.cb.OnNavigateOut, Next)
	case KeyTab:
		m.closeOut(m.cb.OnTabOut, Next)
	case KeyShiftTab:
		m.closeOut(m.cb.OnTabOut, Prev)
	}
}

// closeOut closes the menu and signals the direction-carrying callback,
// falling back to a plain close when unwired.
func (m *Menu) closeOut(out func(Direction), dir Direction) {
	m.Close()
	if out != nil {
		out(dir)
	}
}
