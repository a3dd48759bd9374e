package cursor

import (
	"testing"

	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

func TestResolveModePriority(t *testing.T) {
	link := doctree.LinkMark("https://example.com", "")

	tests := []struct {
		name     string
		tree     *doctree.Tree
		sel      models.Range
		wantMode models.ContextMode
	}{
		{
			name:     "code beats everything",
			tree:     doctree.Doc(doctree.El(doctree.NodeBlockquote, doctree.CodeBlock("go", "x"))),
			sel:      models.Caret(3),
			wantMode: models.ModeCode,
		},
		{
			name:     "table beats list",
			tree: doctree.Doc(
				doctree.El(doctree.NodeList,
					doctree.El(doctree.NodeListItem,
						doctree.El(doctree.NodeTable,
							doctree.El(doctree.NodeTableRow,
								doctree.El(doctree.NodeTableCell, doctree.Text("x")),
							),
						),
					),
				),
			),
			sel:      models.Caret(5),
			wantMode: models.ModeTable,
		},
		{
			name:     "list beats blockquote",
			tree: doctree.Doc(
				doctree.El(doctree.NodeBlockquote,
					doctree.El(doctree.NodeList,
						doctree.El(doctree.NodeListItem,
							doctree.Paragraph(doctree.Text("x")),
						),
					),
				),
			),
			sel:      models.Caret(4),
			wantMode: models.ModeList,
		},
		{
			name:     "table beats explicit selection",
			tree:     twoByTwoTable(),
			sel:      models.Range{From: 3, To: 5},
			wantMode: models.ModeTable,
		},
		{
			name:     "selection beats link",
			tree:     doctree.Doc(doctree.Paragraph(doctree.Text("linked", link))),
			sel:      models.Range{From: 2, To: 4},
			wantMode: models.ModeFormat,
		},
		{
			name:     "link beats heading",
			tree:     doctree.Doc(doctree.Heading(1, doctree.Text("linked", link))),
			sel:      models.Caret(3),
			wantMode: models.ModeFormat,
		},
		{
			name:     "heading at cursor",
			tree:     doctree.Doc(doctree.Heading(1, doctree.Text("plain title"))),
			sel:      models.Caret(6),
			wantMode: models.ModeHeading,
		},
		{
			name:     "line start of content paragraph offers heading",
			tree:     doctree.Doc(doctree.Paragraph(doctree.Text("convert me"))),
			sel:      models.Caret(1),
			wantMode: models.ModeHeading,
		},
		{
			name:     "word yields format",
			tree:     doctree.Doc(doctree.Paragraph(doctree.Text("some words"))),
			sel:      models.Caret(3),
			wantMode: models.ModeFormat,
		},
		{
			name:     "blank line yields block insert",
			tree:     doctree.Doc(doctree.Paragraph()),
			sel:      models.Caret(1),
			wantMode: models.ModeInsertBlock,
		},
		{
			name:     "bare cursor between words yields inline insert",
			tree:     doctree.Doc(doctree.Paragraph(doctree.Text("some words"))),
			sel:      models.Caret(6),
			wantMode: models.ModeInsertLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := BuildContext(tt.tree, tt.sel)
			if ctx.Mode != tt.wantMode {
				t.Errorf("mode = %s, want %s", ctx.Mode, tt.wantMode)
			}
		})
	}
}

func TestResolveModeAutoSelect(t *testing.T) {
	t.Run("word auto-selects", func(t *testing.T) {
		tree := doctree.Doc(doctree.Paragraph(doctree.Text("hello")))
		ctx := BuildContext(tree, models.Caret(3))
		mode, autoSel := ResolveMode(ctx)
		if mode != models.ModeFormat {
			t.Fatalf("mode = %s, want format", mode)
		}
		want := models.Range{From: 1, To: 6}
		if autoSel == nil || *autoSel != want {
			t.Errorf("auto-select = %v, want %v", autoSel, want)
		}
	})

	t.Run("footnote auto-selects its content", func(t *testing.T) {
		tree := doctree.Doc(doctree.Paragraph(doctree.Text("x"), doctree.FootnoteRef("2")))
		ref := findFirstType(t, tree, doctree.NodeFootnoteRef)
		ctx := BuildContext(tree, models.Caret(ref.Span().From+1))
		mode, autoSel := ResolveMode(ctx)
		if mode != models.ModeFootnote {
			t.Fatalf("mode = %s, want footnote", mode)
		}
		if autoSel == nil || *autoSel != ctx.Footnote.ContentRange {
			t.Errorf("auto-select = %v, want %v", autoSel, ctx.Footnote.ContentRange)
		}
	})

	t.Run("explicit selection needs no auto-select", func(t *testing.T) {
		tree := doctree.Doc(doctree.Paragraph(doctree.Text("hello")))
		ctx := BuildContext(tree, models.Range{From: 2, To: 4})
		_, autoSel := ResolveMode(ctx)
		if autoSel != nil {
			t.Errorf("auto-select = %v, want nil", *autoSel)
		}
	})
}
