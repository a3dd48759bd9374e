package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// PaletteModel is a fuzzy-searchable list over all registered action
// identifiers.
type PaletteModel struct {
	input    textinput.Model
	actions  []string
	matches  []string
	selected int
}

// NewPaletteModel builds a palette over the given action identifiers.
func NewPaletteModel(actions []string) *PaletteModel {
	ti := textinput.New()
	ti.Placeholder = "action..."
	ti.Prompt = "/ "
	ti.Focus()
	ti.CharLimit = 64

	p := &PaletteModel{input: ti, actions: actions}
	p.filter()
	return p
}

// Update handles palette input. It returns the chosen action identifier
// on enter, and done=true when the palette should close.
func (p *PaletteModel) Update(msg tea.Msg) (actionID string, done bool, cmd tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return "", true, nil
		case tea.KeyEnter:
			if p.selected < len(p.matches) {
				return p.matches[p.selected], true, nil
			}
			return "", true, nil
		case tea.KeyDown:
			if p.selected < len(p.matches)-1 {
				p.selected++
			}
			return "", false, nil
		case tea.KeyUp:
			if p.selected > 0 {
				p.selected--
			}
			return "", false, nil
		}
	}

	p.input, cmd = p.input.Update(msg)
	p.filter()
	return "", false, cmd
}

// filter reranks actions against the query. An empty query shows all
// actions in registration order.
func (p *PaletteModel) filter() {
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.matches = p.actions
	} else {
		ranked := fuzzy.Find(query, p.actions)
		p.matches = make([]string, len(ranked))
		for i, m := range ranked {
			p.matches[i] = m.Str
		}
	}
	if p.selected >= len(p.matches) {
		p.selected = 0
	}
}

// Matches returns the current matches, best first.
func (p *PaletteModel) Matches() []string {
	return p.matches
}

// View renders the palette.
func (p *PaletteModel) View() string {
	var sb strings.Builder
	sb.WriteString(p.input.View() + "\n")

	shown := p.matches
	if len(shown) > 8 {
		shown = shown[:8]
	}
	for i, m := range shown {
		if i == p.selected {
			sb.WriteString(menuFocusedStyle.Render("> "+m) + "\n")
		} else {
			sb.WriteString(menuItemStyle.Render("  "+m) + "\n")
		}
	}
	if len(p.matches) == 0 {
		sb.WriteString(menuDisabledStyle.Render("  no matching actions") + "\n")
	}

	return popupStyle.Render(strings.TrimRight(sb.String(), "\n"))
}
