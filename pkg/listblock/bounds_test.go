package listblock

import (
	"strings"
	"testing"
)

func TestIsListLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"dash bullet", "- item", true},
		{"star bullet", "* item", true},
		{"plus bullet", "+ item", true},
		{"ordered dot", "3. item", true},
		{"ordered paren", "12) item", true},
		{"task unchecked", "- [ ] todo", true},
		{"task checked", "- [x] done", true},
		{"indented bullet", "    - nested", true},
		{"plain text", "just text", false},
		{"dash without space", "-item", false},
		{"hr dashes", "---", false},
		{"hr spaced dashes", "- - -", false},
		{"hr stars", "***", false},
		{"hr underscores", "___", false},
		{"empty", "", false},
		{"blank", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsListLine(tt.line); got != tt.want {
				t.Errorf("IsListLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursorLine int
		want       *LineRange
	}{
		{
			name:       "not a list line",
			text:       "plain paragraph",
			cursorLine: 0,
			want:       nil,
		},
		{
			name:       "single item",
			text:       "- only item",
			cursorLine: 0,
			want:       &LineRange{Start: 0, End: 0},
		},
		{
			name:       "tight list",
			text:       "- one\n- two\n- three",
			cursorLine: 1,
			want:       &LineRange{Start: 0, End: 2},
		},
		{
			name:       "loose list bridges blank line",
			text:       "- item one\n\n- item two",
			cursorLine: 0,
			want:       &LineRange{Start: 0, End: 2},
		},
		{
			name:       "blank before paragraph is a boundary",
			text:       "- item one\n\nSome paragraph",
			cursorLine: 0,
			want:       &LineRange{Start: 0, End: 0},
		},
		{
			name:       "paragraph above not included",
			text:       "Some paragraph\n- item one\n- item two",
			cursorLine: 1,
			want:       &LineRange{Start: 1, End: 2},
		},
		{
			name:       "mixed marker styles stay one block",
			text:       "- one\n* two\n3. three\n- [ ] four",
			cursorLine: 2,
			want:       &LineRange{Start: 0, End: 3},
		},
		{
			name:       "nesting is not a boundary",
			text:       "- top\n    - nested\n        - deeper\n- top again",
			cursorLine: 2,
			want:       &LineRange{Start: 0, End: 3},
		},
		{
			name:       "continuation line under item",
			text:       "- item one\n  wrapped text\n- item two",
			cursorLine: 2,
			want:       &LineRange{Start: 0, End: 2},
		},
		{
			name:       "hr ends the block",
			text:       "- one\n- two\n---\n- other list",
			cursorLine: 0,
			want:       &LineRange{Start: 0, End: 1},
		},
		{
			name:       "double blank with list beyond still bridges",
			text:       "- one\n\n\n- two",
			cursorLine: 3,
			want:       &LineRange{Start: 0, End: 3},
		},
		{
			name:       "cursor line out of range",
			text:       "- one",
			cursorLine: 5,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bounds(tt.text, tt.cursorLine)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			case *got != *tt.want:
				t.Errorf("Bounds() = %+v, want %+v", *got, *tt.want)
			}
		})
	}
}

func TestBoundsTrimsEdgeBlanks(t *testing.T) {
	// The scan must not leave the block starting or ending on a blank
	// line even when blanks sit adjacent to it.
	text := "intro\n\n- one\n- two\n\nafter"
	got := Bounds(text, 3)
	want := LineRange{Start: 2, End: 3}
	if got == nil || *got != want {
		t.Fatalf("Bounds() = %v, want %v", got, want)
	}
}

func TestOffsetBounds(t *testing.T) {
	text := "- item one\n\n- item two"
	got := OffsetBounds(text, 0)
	if got == nil {
		t.Fatal("OffsetBounds returned nil")
	}
	if got[0] != 0 || got[1] != len(text) {
		t.Errorf("offsets = %v, want [0,%d] (full string)", *got, len(text))
	}
	if sub := text[got[0]:got[1]]; !strings.HasPrefix(sub, "- item one") || !strings.HasSuffix(sub, "- item two") {
		t.Errorf("slice = %q", sub)
	}
}

func TestOffsetBoundsNotList(t *testing.T) {
	if got := OffsetBounds("nothing here", 0); got != nil {
		t.Errorf("OffsetBounds = %v, want nil", *got)
	}
}
