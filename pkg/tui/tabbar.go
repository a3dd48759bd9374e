package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/quillmd/quill-cli/pkg/tabstrip"
)

// renderTabBar renders the tab strip. Pinned tabs carry a pin marker and,
// per the reorder policy, always form the leading run of the strip.
func renderTabBar(tabs []tabstrip.Tab, active, width, tabWidth int) string {
	if tabWidth < 4 {
		tabWidth = 4
	}

	var parts []string
	used := 0
	for i, t := range tabs {
		title := runewidth.Truncate(t.Title, tabWidth, "…")
		if t.IsPinned {
			title = "• " + title
		}
		if t.IsDirty {
			title += " *"
		}

		var part string
		if i == active {
			part = activeTabStyle.Render(title)
		} else {
			part = tabStyle.Render(title)
		}
		w := lipgloss.Width(part)
		if width > 0 && used+w > width {
			break
		}
		parts = append(parts, part)
		used += w
	}

	return strings.Join(parts, "")
}
