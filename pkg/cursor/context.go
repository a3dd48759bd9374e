package cursor

import (
	"github.com/quillmd/quill-cli/internal/system"
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

// BuildContext builds the immutable context snapshot for a selection.
// It is a pure function of the tree and selection and runs on every
// selection-change event.
//
// The snapshot is never partially built: each detector runs behind a
// recovery boundary, and a detector that panics on a malformed tree is
// logged and treated as not-applicable rather than failing the snapshot.
func BuildContext(tree *doctree.Tree, sel models.Range) *models.CursorContext {
	ctx := &models.CursorContext{
		HasSelection: !sel.IsCaret(),
		From:         sel.From,
		To:           sel.To,
	}

	chain := tree.AncestorsAt(sel.From)

	safeDetect("code-block", func() { ctx.CodeBlock = detectCodeBlock(chain) })
	safeDetect("math-block", func() { ctx.MathBlock = detectMathBlock(chain) })
	safeDetect("table", func() { ctx.Table = detectTable(chain) })
	safeDetect("list", func() { ctx.List = detectList(chain) })
	safeDetect("blockquote", func() { ctx.Blockquote = detectBlockquote(chain) })
	safeDetect("heading", func() { ctx.Heading = detectHeading(chain) })

	safeDetect("link", func() { ctx.Link = detectLink(chain, sel.From) })
	safeDetect("image", func() { ctx.Image = detectImage(chain, sel.From) })
	safeDetect("inline-math", func() { ctx.InlineMath = detectInlineMath(chain, sel.From) })
	safeDetect("footnote", func() { ctx.Footnote = detectFootnote(chain, sel.From) })

	safeDetect("formats", func() { ctx.ActiveFormats = ActiveFormats(tree, sel) })
	safeDetect("flags", func() {
		ctx.AtLineStart = atLineStart(tree, chain, sel.From)
		ctx.AtBlankLine = atBlankLine(tree, chain)
		if sel.IsCaret() {
			ctx.WordRange = WordRangeAt(tree, sel.From)
		}
	})

	mode, _ := ResolveMode(ctx)
	ctx.Mode = mode
	return ctx
}

func safeDetect(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			system.Logger.Warn("cursor detector failed", "detector", name, "recovered", r)
		}
	}()
	fn()
}
