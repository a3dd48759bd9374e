package cursor

import (
	"github.com/quillmd/quill-cli/pkg/models"
)

// ResolveMode decides which contextual UI applies to a context snapshot,
// following a strict priority order: structural context beats inline
// context beats bare-cursor context. The second result is the range to
// auto-select before opening the UI, when the match implies one, so the
// format UI can operate uniformly on explicit and inferred selections.
//
// The toggle-close of an already-open UI is the coordinator's concern,
// not part of this pure classification.
func ResolveMode(ctx *models.CursorContext) (models.ContextMode, *models.Range) {
	switch {
	case ctx.CodeBlock != nil:
		return models.ModeCode, nil

	case ctx.MathBlock != nil:
		return models.ModeMath, nil

	case ctx.Table != nil:
		return models.ModeTable, nil

	case ctx.List != nil:
		return models.ModeList, nil

	case ctx.Blockquote != nil:
		return models.ModeBlockquote, nil

	case ctx.HasSelection:
		return models.ModeFormat, nil

	// Images have their own click-triggered editor; the keyboard
	// trigger deliberately shows nothing.
	case ctx.Image != nil:
		return models.ModeNone, nil

	case ctx.Footnote != nil:
		r := ctx.Footnote.ContentRange
		return models.ModeFootnote, &r

	case ctx.Link != nil:
		r := ctx.Link.ContentRange
		return models.ModeFormat, &r

	case ctx.InlineMath != nil:
		r := ctx.InlineMath.ContentRange
		return models.ModeFormat, &r

	case ctx.Heading != nil:
		return models.ModeHeading, nil

	// Start of a plain paragraph with content: offer to convert it to
	// a heading.
	case ctx.AtLineStart:
		return models.ModeHeading, nil

	case ctx.WordRange != nil:
		r := *ctx.WordRange
		return models.ModeFormat, &r

	case ctx.AtBlankLine:
		return models.ModeInsertBlock, nil

	default:
		return models.ModeInsertLine, nil
	}
}
