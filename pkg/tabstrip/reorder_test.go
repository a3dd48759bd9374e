package tabstrip

import (
	"testing"
)

func strip(pinned int, total int) []Tab {
	tabs := make([]Tab, total)
	for i := range tabs {
		tabs[i] = Tab{ID: string(rune('a' + i)), Title: string(rune('a' + i)), IsPinned: i < pinned}
	}
	return tabs
}

func TestPlanReorder(t *testing.T) {
	tests := []struct {
		name        string
		tabs        []Tab
		from        int
		visualDrop  int
		wantAllowed bool
		wantTo      int
		wantReason  BlockedReason
	}{
		{
			name:        "unpinned among unpinned",
			tabs:        strip(2, 5),
			from:        2,
			visualDrop:  5,
			wantAllowed: true,
			wantTo:      4,
		},
		{
			name:       "unpinned into pinned zone",
			tabs:       strip(2, 5),
			from:       3,
			visualDrop: 0,
			wantReason: BlockedPinnedZone,
		},
		{
			name:        "pinned within pinned zone",
			tabs:        strip(3, 5),
			from:        0,
			visualDrop:  2,
			wantAllowed: true,
			wantTo:      1,
		},
		{
			name:       "pinned out of pinned zone",
			tabs:       strip(2, 5),
			from:       0,
			visualDrop: 4,
			wantReason: BlockedPinnedZone,
		},
		{
			name:        "no pinned tabs anything goes",
			tabs:        strip(0, 4),
			from:        3,
			visualDrop:  0,
			wantAllowed: true,
			wantTo:      0,
		},
		{
			name:        "drop index clamps high",
			tabs:        strip(0, 3),
			from:        0,
			visualDrop:  99,
			wantAllowed: true,
			wantTo:      2,
		},
		{
			name:       "empty strip",
			tabs:       nil,
			from:       0,
			visualDrop: 0,
			wantReason: BlockedBadIndex,
		},
		{
			name:       "from index out of range",
			tabs:       strip(0, 2),
			from:       7,
			visualDrop: 0,
			wantReason: BlockedBadIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanReorder(tt.tabs, tt.from, tt.visualDrop)
			if plan.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", plan.Allowed, tt.wantAllowed)
			}
			if plan.Allowed && plan.ToIndex != tt.wantTo {
				t.Errorf("ToIndex = %d, want %d", plan.ToIndex, tt.wantTo)
			}
			if !plan.Allowed && plan.BlockedReason != tt.wantReason {
				t.Errorf("BlockedReason = %q, want %q", plan.BlockedReason, tt.wantReason)
			}
		})
	}
}

func TestPlanReorderNeverMutates(t *testing.T) {
	tabs := strip(2, 4)
	before := make([]Tab, len(tabs))
	copy(before, tabs)

	PlanReorder(tabs, 3, 0)
	PlanReorder(tabs, 0, 3)

	for i := range tabs {
		if tabs[i] != before[i] {
			t.Fatalf("tabs[%d] changed from %+v to %+v", i, before[i], tabs[i])
		}
	}
}

func TestPinnedPrefixSurvivesAcceptedReorders(t *testing.T) {
	tabs := strip(3, 8)

	// Exercise every (from, drop) pair; apply only accepted plans.
	for from := 0; from < len(tabs); from++ {
		for drop := 0; drop <= len(tabs); drop++ {
			plan := PlanReorder(tabs, from, drop)
			if !plan.Allowed {
				continue
			}
			next := ApplyReorder(tabs, from, plan)
			if !PinnedPrefixIntact(next) {
				t.Fatalf("pinned prefix broken after from=%d drop=%d: %+v", from, drop, next)
			}
			tabs = next
		}
	}

	if got := pinnedCount(tabs); got != 3 {
		t.Errorf("pinned count = %d, want 3", got)
	}
}

func TestApplyReorderMovesTab(t *testing.T) {
	tabs := strip(0, 4) // a b c d
	plan := PlanReorder(tabs, 0, 3)
	if !plan.Allowed {
		t.Fatalf("plan rejected: %+v", plan)
	}
	got := ApplyReorder(tabs, 0, plan)
	want := []string{"b", "c", "a", "d"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestPinMovesToEndOfPinnedPrefix(t *testing.T) {
	tabs := strip(1, 4) // a(pinned) b c d
	got := Pin(tabs, 2) // pin c

	if !PinnedPrefixIntact(got) {
		t.Fatalf("pinned prefix broken: %+v", got)
	}
	if got[1].ID != "c" || !got[1].IsPinned {
		t.Errorf("got[1] = %+v, want pinned c", got[1])
	}
}

func TestUnpinMovesToFrontOfUnpinned(t *testing.T) {
	tabs := strip(3, 5) // a b c pinned, d e
	got := Unpin(tabs, 0)

	if !PinnedPrefixIntact(got) {
		t.Fatalf("pinned prefix broken: %+v", got)
	}
	if got[2].ID != "a" || got[2].IsPinned {
		t.Errorf("got[2] = %+v, want unpinned a", got[2])
	}
}

func TestPinUnpinNoopCases(t *testing.T) {
	tabs := strip(1, 2)
	if got := Pin(tabs, 0); &got[0] != &tabs[0] {
		// Already pinned: same slice back.
		t.Error("Pin on pinned tab should be a no-op")
	}
	if got := Unpin(tabs, 1); &got[0] != &tabs[0] {
		t.Error("Unpin on unpinned tab should be a no-op")
	}
}

func TestTransferRegistry(t *testing.T) {
	r := NewTransferRegistry()
	data := TransferData{TabID: "t1", Title: "notes.md", Content: "# hi", IsDirty: true}

	r.Store("window-2", data)

	got, ok := r.Claim("window-2")
	if !ok {
		t.Fatal("claim failed")
	}
	if got != data {
		t.Errorf("claimed %+v, want %+v", got, data)
	}

	if _, ok := r.Claim("window-2"); ok {
		t.Error("second claim should find nothing")
	}

	r.Store("window-3", data)
	r.ClearUnclaimed("window-3")
	if _, ok := r.Claim("window-3"); ok {
		t.Error("cleared transfer still claimable")
	}
}
