package doctree

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/quillmd/quill-cli/pkg/models"
)

// ParseMarkdown parses markdown source into an indexed document tree.
// Footnote definitions are dropped; only the references stay addressable.
func ParseMarkdown(src []byte) *Tree {
	md := goldmark.New(goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extension.Footnote,
	))
	doc := md.Parser().Parse(text.NewReader(src))

	root := &Node{Type: NodeRoot}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if b := convertBlock(n, src); b != nil {
			root.Children = append(root.Children, b)
		}
	}
	return New(root)
}

func convertBlock(n ast.Node, src []byte) *Node {
	switch node := n.(type) {
	case *ast.Heading:
		return ElAttrs(NodeHeading, Attrs{Level: node.Level}, convertInlines(node, src, nil)...)

	case *ast.Paragraph:
		if lit, ok := displayMathLiteral(node, src); ok {
			return MathBlock(lit)
		}
		return El(NodeParagraph, convertInlines(node, src, nil)...)

	case *ast.TextBlock:
		return El(NodeParagraph, convertInlines(node, src, nil)...)

	case *ast.Blockquote:
		return El(NodeBlockquote, convertChildren(node, src)...)

	case *ast.List:
		kind := models.ListBullet
		if node.IsOrdered() {
			kind = models.ListOrdered
		}
		return ElAttrs(NodeList, Attrs{ListKind: kind}, convertChildren(node, src)...)

	case *ast.ListItem:
		attrs := Attrs{}
		if first := node.FirstChild(); first != nil {
			if cb, ok := first.FirstChild().(*east.TaskCheckBox); ok {
				attrs.IsTask = true
				attrs.Checked = cb.IsChecked
			}
		}
		return ElAttrs(NodeListItem, attrs, convertChildren(node, src)...)

	case *ast.FencedCodeBlock:
		lang := string(node.Language(src))
		return CodeBlock(lang, blockLines(node, src))

	case *ast.CodeBlock:
		return CodeBlock("", blockLines(node, src))

	case *ast.ThematicBreak:
		return El(NodeThematicBreak)

	case *east.Table:
		return El(NodeTable, convertChildren(node, src)...)

	case *east.TableHeader:
		return El(NodeTableRow, convertChildren(node, src)...)

	case *east.TableRow:
		return El(NodeTableRow, convertChildren(node, src)...)

	case *east.TableCell:
		return El(NodeTableCell, convertInlines(node, src, nil)...)

	case *east.FootnoteList, *east.Footnote:
		return nil

	default:
		// HTML blocks and anything else without a structural meaning
		// here collapse into a plain paragraph of their text.
		if n.Type() == ast.TypeBlock {
			if t := blockLines(n, src); t != "" {
				return El(NodeParagraph, Text(t))
			}
		}
		return nil
	}
}

func convertChildren(n ast.Node, src []byte) []*Node {
	var out []*Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if b := convertBlock(c, src); b != nil {
			out = append(out, b)
		}
	}
	return out
}

// convertInlines flattens an inline subtree into text runs and inline
// nodes, threading the active mark set down through nested emphasis and
// link wrappers.
func convertInlines(n ast.Node, src []byte, marks []Mark) []*Node {
	var out []*Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			t := string(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				t += "\n"
			}
			out = append(out, splitInlineMath(t, marks)...)

		case *ast.String:
			out = append(out, splitInlineMath(string(node.Value), marks)...)

		case *ast.CodeSpan:
			t := inlineText(node, src)
			out = append(out, Text(t, append(copyMarks(marks), Mark{Kind: models.FormatCode})...))

		case *ast.Emphasis:
			kind := models.FormatItalic
			if node.Level >= 2 {
				kind = models.FormatBold
			}
			out = append(out, convertInlines(node, src, append(copyMarks(marks), Mark{Kind: kind}))...)

		case *east.Strikethrough:
			out = append(out, convertInlines(node, src, append(copyMarks(marks), Mark{Kind: models.FormatStrikethrough}))...)

		case *ast.Link:
			m := LinkMark(string(node.Destination), string(node.Title))
			out = append(out, convertInlines(node, src, append(copyMarks(marks), m))...)

		case *ast.AutoLink:
			url := string(node.URL(src))
			out = append(out, Text(string(node.Label(src)), append(copyMarks(marks), LinkMark(url, ""))...))

		case *ast.Image:
			out = append(out, ElAttrs(NodeImage, Attrs{
				Src: string(node.Destination),
				Alt: inlineText(node, src),
			}))

		case *east.FootnoteLink:
			label := footnoteLabel(node)
			out = append(out, FootnoteRef(label))

		case *east.TaskCheckBox:
			// Recorded as attributes on the enclosing list item.

		default:
			if t := inlineText(c, src); t != "" {
				out = append(out, Text(t, copyMarks(marks)...))
			}
		}
	}
	return out
}

func copyMarks(marks []Mark) []Mark {
	if len(marks) == 0 {
		return nil
	}
	out := make([]Mark, len(marks))
	copy(out, marks)
	return out
}

// splitInlineMath splits a text run on $...$ delimiters. Delimited spans
// become inline-math nodes; code-marked runs are never split.
func splitInlineMath(t string, marks []Mark) []*Node {
	for _, m := range marks {
		if m.Kind == models.FormatCode {
			return []*Node{Text(t, copyMarks(marks)...)}
		}
	}
	var out []*Node
	rest := t
	for {
		open := strings.IndexByte(rest, '$')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open+1:], '$')
		if end < 0 {
			break
		}
		inner := rest[open+1 : open+1+end]
		if inner == "" || strings.ContainsAny(inner, "\n$") {
			break
		}
		if open > 0 {
			out = append(out, Text(rest[:open], copyMarks(marks)...))
		}
		out = append(out, InlineMath(inner))
		rest = rest[open+end+2:]
	}
	if rest != "" || len(out) == 0 {
		out = append(out, Text(rest, copyMarks(marks)...))
	}
	return out
}

// displayMathLiteral recognizes a paragraph that is entirely a $$...$$
// block and returns the inner literal.
func displayMathLiteral(n *ast.Paragraph, src []byte) (string, bool) {
	t := strings.TrimSpace(inlineText(n, src))
	if len(t) < 4 || !strings.HasPrefix(t, "$$") || !strings.HasSuffix(t, "$$") {
		return "", false
	}
	inner := strings.TrimSpace(t[2 : len(t)-2])
	if inner == "" {
		return "", false
	}
	return inner, true
}

func footnoteLabel(n *east.FootnoteLink) string {
	return strconv.Itoa(n.Index)
}

// inlineText collects the raw text of an inline subtree.
func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	var walk func(ast.Node)
	walk = func(c ast.Node) {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(src))
		case *ast.String:
			sb.Write(t.Value)
		default:
			for gc := c.FirstChild(); gc != nil; gc = gc.NextSibling() {
				walk(gc)
			}
		}
	}
	walk(n)
	return sb.String()
}

// blockLines joins the raw source lines of a block node.
func blockLines(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimRight(sb.String(), "\n")
}
