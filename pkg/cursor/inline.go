package cursor

import (
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

// Inline detectors scan only the siblings within the cursor's immediate
// parent element, never the whole document.

// inlineParent returns the innermost element node in the chain: the node
// whose children are scanned for inline matches.
func inlineParent(chain []*doctree.Node) *doctree.Node {
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		if n.Type != doctree.NodeText && !n.Type.IsAtom() {
			return n
		}
	}
	return nil
}

// detectLink reports the link mark run under the cursor. Adjacent text
// runs carrying the same href are merged into one logical range with a
// single forward pass: an open run is extended while siblings match,
// closed when a non-matching sibling appears, and retained if the cursor
// falls inside it. Runs separated by an unrelated inline node are
// deliberately treated as distinct links.
func detectLink(chain []*doctree.Node, pos models.Position) *models.LinkContext {
	parent := inlineParent(chain)
	if parent == nil {
		return nil
	}

	var (
		open    bool
		run     models.Range
		runMark doctree.Mark
	)
	finish := func() *models.LinkContext {
		if open && run.From <= pos && pos <= run.To {
			return &models.LinkContext{
				Range:        run,
				ContentRange: run,
				Href:         runMark.Href,
				Title:        runMark.Title,
			}
		}
		return nil
	}

	for _, c := range parent.Children {
		var m doctree.Mark
		matched := false
		if c.Type == doctree.NodeText {
			m, matched = c.FindMark(models.FormatLink)
		}
		switch {
		case matched && open && m.SameAs(runMark):
			run.To = c.Span().To
		case matched:
			if ctx := finish(); ctx != nil {
				return ctx
			}
			open = true
			run = c.Span()
			runMark = m
		default:
			if ctx := finish(); ctx != nil {
				return ctx
			}
			open = false
		}
	}
	return finish()
}

// detectImage reports the inline image atom the cursor touches.
func detectImage(chain []*doctree.Node, pos models.Position) *models.ImageContext {
	parent := inlineParent(chain)
	if parent == nil {
		return nil
	}
	for _, c := range parent.Children {
		if c.Type != doctree.NodeImage {
			continue
		}
		span := c.Span()
		if span.From <= pos && pos <= span.To {
			return &models.ImageContext{
				Range: span,
				Src:   c.Attrs.Src,
				Alt:   c.Attrs.Alt,
			}
		}
	}
	return nil
}

// detectInlineMath reports the inline math span containing or touching
// the cursor. The content range excludes the delimiter boundary tokens.
func detectInlineMath(chain []*doctree.Node, pos models.Position) *models.MathContext {
	if n := findInChain(chain, doctree.NodeInlineMath); n != nil {
		return mathContext(n)
	}
	parent := inlineParent(chain)
	if parent == nil {
		return nil
	}
	for _, c := range parent.Children {
		if c.Type == doctree.NodeInlineMath {
			span := c.Span()
			if span.From <= pos && pos <= span.To {
				return mathContext(c)
			}
		}
	}
	return nil
}

func mathContext(n *doctree.Node) *models.MathContext {
	span := n.Span()
	return &models.MathContext{
		Range:        span,
		ContentRange: models.Range{From: span.From + 1, To: span.To - 1},
	}
}

// detectFootnote reports the footnote reference containing or touching
// the cursor.
func detectFootnote(chain []*doctree.Node, pos models.Position) *models.FootnoteContext {
	if n := findInChain(chain, doctree.NodeFootnoteRef); n != nil {
		return footnoteContext(n)
	}
	parent := inlineParent(chain)
	if parent == nil {
		return nil
	}
	for _, c := range parent.Children {
		if c.Type == doctree.NodeFootnoteRef {
			span := c.Span()
			if span.From <= pos && pos <= span.To {
				return footnoteContext(c)
			}
		}
	}
	return nil
}

func footnoteContext(n *doctree.Node) *models.FootnoteContext {
	span := n.Span()
	return &models.FootnoteContext{
		Range:        span,
		ContentRange: models.Range{From: span.From + 1, To: span.To - 1},
		Label:        n.Attrs.Label,
	}
}

func findInChain(chain []*doctree.Node, t doctree.NodeType) *doctree.Node {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Type == t {
			return chain[i]
		}
	}
	return nil
}
