// Package tabstrip implements the pure reorder/pin policy for a window's
// tab strip. The invariant it protects: pinned tabs always occupy a
// contiguous prefix of the sequence.
package tabstrip

// Tab is one entry in a window's tab strip.
type Tab struct {
	ID       string `yaml:"id" json:"id"`
	FilePath string `yaml:"file_path,omitempty" json:"filePath,omitempty"`
	Title    string `yaml:"title" json:"title"`
	IsPinned bool   `yaml:"is_pinned" json:"isPinned"`
	IsDirty  bool   `yaml:"is_dirty,omitempty" json:"isDirty,omitempty"`
}

// BlockedReason explains why a reorder was rejected.
type BlockedReason string

const (
	BlockedNone       BlockedReason = ""
	BlockedPinnedZone BlockedReason = "pinned-zone"
	BlockedBadIndex   BlockedReason = "bad-index"
)

// Plan is the outcome of a reorder request. The caller applies the move
// only when Allowed.
type Plan struct {
	Allowed       bool
	ToIndex       int
	BlockedReason BlockedReason
}

// PlanReorder computes whether dragging the tab at fromIndex to the
// visual drop position visualDropIndex is legal, and where it lands. The
// visual index is normalized into a post-removal insertion index and
// clamped; moves that would let an unpinned tab enter the pinned prefix,
// or a pinned tab leave it, are rejected. The function never mutates
// tabs.
func PlanReorder(tabs []Tab, fromIndex, visualDropIndex int) Plan {
	if len(tabs) == 0 || fromIndex < 0 || fromIndex >= len(tabs) {
		return Plan{BlockedReason: BlockedBadIndex}
	}

	toIndex := visualDropIndex
	if toIndex > fromIndex {
		toIndex--
	}
	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(tabs)-1 {
		toIndex = len(tabs) - 1
	}

	lastPinned := -1
	for i, t := range tabs {
		if t.IsPinned {
			lastPinned = i
		}
	}

	if tabs[fromIndex].IsPinned {
		if toIndex > lastPinned {
			return Plan{ToIndex: toIndex, BlockedReason: BlockedPinnedZone}
		}
	} else {
		if toIndex <= lastPinned {
			return Plan{ToIndex: toIndex, BlockedReason: BlockedPinnedZone}
		}
	}

	return Plan{Allowed: true, ToIndex: toIndex}
}

// ApplyReorder returns a new slice with the tab moved per an allowed
// plan. Disallowed plans return the input unchanged.
func ApplyReorder(tabs []Tab, fromIndex int, plan Plan) []Tab {
	if !plan.Allowed || fromIndex < 0 || fromIndex >= len(tabs) {
		return tabs
	}
	out := make([]Tab, 0, len(tabs))
	out = append(out, tabs[:fromIndex]...)
	out = append(out, tabs[fromIndex+1:]...)

	to := plan.ToIndex
	if to > len(out) {
		to = len(out)
	}
	out = append(out[:to], append([]Tab{tabs[fromIndex]}, out[to:]...)...)
	return out
}

// Pin pins the tab at idx and moves it to the end of the pinned prefix.
// Pinning an already pinned tab is a no-op.
func Pin(tabs []Tab, idx int) []Tab {
	if idx < 0 || idx >= len(tabs) || tabs[idx].IsPinned {
		return tabs
	}
	out := remove(tabs, idx)
	tab := tabs[idx]
	tab.IsPinned = true
	insert := pinnedCount(out)
	return insertAt(out, insert, tab)
}

// Unpin unpins the tab at idx and moves it to the front of the unpinned
// region, keeping it as close to its old position as the invariant
// allows.
func Unpin(tabs []Tab, idx int) []Tab {
	if idx < 0 || idx >= len(tabs) || !tabs[idx].IsPinned {
		return tabs
	}
	out := remove(tabs, idx)
	tab := tabs[idx]
	tab.IsPinned = false
	insert := pinnedCount(out)
	return insertAt(out, insert, tab)
}

// PinnedPrefixIntact reports whether pinned tabs form a contiguous
// prefix.
func PinnedPrefixIntact(tabs []Tab) bool {
	seenUnpinned := false
	for _, t := range tabs {
		if t.IsPinned && seenUnpinned {
			return false
		}
		if !t.IsPinned {
			seenUnpinned = true
		}
	}
	return true
}

func pinnedCount(tabs []Tab) int {
	n := 0
	for _, t := range tabs {
		if t.IsPinned {
			n++
		}
	}
	return n
}

func remove(tabs []Tab, idx int) []Tab {
	out := make([]Tab, 0, len(tabs)-1)
	out = append(out, tabs[:idx]...)
	return append(out, tabs[idx+1:]...)
}

func insertAt(tabs []Tab, idx int, tab Tab) []Tab {
	if idx > len(tabs) {
		idx = len(tabs)
	}
	out := make([]Tab, 0, len(tabs)+1)
	out = append(out, tabs[:idx]...)
	out = append(out, tab)
	return append(out, tabs[idx:]...)
}
