package cursor

import (
	"strings"
	"unicode"

	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

// plainParagraph returns the innermost paragraph whose parent is the
// document root. Paragraphs inside list items, blockquotes, table cells
// or any other container do not count.
func plainParagraph(chain []*doctree.Node) *doctree.Node {
	p := findInChain(chain, doctree.NodeParagraph)
	if p == nil {
		return nil
	}
	if parent := p.Parent(); parent == nil || parent.Type != doctree.NodeRoot {
		return nil
	}
	return p
}

// atLineStart reports whether the cursor sits at the start of a plain
// paragraph that has non-whitespace content, with nothing but whitespace
// before it.
func atLineStart(tree *doctree.Tree, chain []*doctree.Node, pos models.Position) bool {
	p := plainParagraph(chain)
	if p == nil {
		return false
	}
	if strings.TrimSpace(tree.TextOf(p)) == "" {
		return false
	}
	return strings.TrimSpace(textBefore(p, pos)) == ""
}

// atBlankLine reports whether the cursor's paragraph has no visible
// content at all.
func atBlankLine(tree *doctree.Tree, chain []*doctree.Node) bool {
	p := findInChain(chain, doctree.NodeParagraph)
	if p == nil {
		return false
	}
	return strings.TrimSpace(tree.TextOf(p)) == ""
}

// textBefore collects the paragraph's text content preceding pos,
// accounting for inline elements whose width differs from their text.
func textBefore(p *doctree.Node, pos models.Position) string {
	var sb strings.Builder
	for _, c := range p.Children {
		span := c.Span()
		if span.To <= pos {
			if c.Type == doctree.NodeText {
				sb.WriteString(c.Text)
			}
			continue
		}
		if c.Type == doctree.NodeText && span.From < pos {
			runes := []rune(c.Text)
			sb.WriteString(string(runes[:pos-span.From]))
		}
		break
	}
	return sb.String()
}

// WordRangeAt returns the span of the word strictly containing pos, or
// nil when the cursor is not inside a word. Both neighbors must be word
// characters; a cursor at a word edge is not "inside" it.
func WordRangeAt(tree *doctree.Tree, pos models.Position) *models.Range {
	chain := tree.AncestorsAt(pos)
	if len(chain) == 0 {
		return nil
	}
	run := chain[len(chain)-1]
	if run.Type != doctree.NodeText {
		return nil
	}
	runes := []rune(run.Text)
	offset := pos - run.Span().From
	if offset <= 0 || offset >= len(runes) {
		return nil
	}
	if !isWordRune(runes[offset-1]) || !isWordRune(runes[offset]) {
		return nil
	}
	start := offset
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := offset
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	from := run.Span().From
	return &models.Range{From: from + start, To: from + end}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
