package doctree

import (
	"github.com/quillmd/quill-cli/pkg/models"
)

// Construction helpers used by tests and by the markdown adapter.

// Doc builds and indexes a tree from top-level block nodes.
func Doc(children ...*Node) *Tree {
	return New(&Node{Type: NodeRoot, Children: children})
}

// El builds an element node of the given type.
func El(t NodeType, children ...*Node) *Node {
	return &Node{Type: t, Children: children}
}

// ElAttrs builds an element node with attributes.
func ElAttrs(t NodeType, attrs Attrs, children ...*Node) *Node {
	return &Node{Type: t, Attrs: attrs, Children: children}
}

// Text builds a text run with optional marks.
func Text(s string, marks ...Mark) *Node {
	return &Node{Type: NodeText, Text: s, Marks: marks}
}

// Paragraph builds a paragraph around the given inline nodes.
func Paragraph(children ...*Node) *Node {
	return El(NodeParagraph, children...)
}

// Heading builds a heading of the given level.
func Heading(level int, children ...*Node) *Node {
	return ElAttrs(NodeHeading, Attrs{Level: level}, children...)
}

// CodeBlock builds a fenced code block.
func CodeBlock(language, content string) *Node {
	return ElAttrs(NodeCodeBlock, Attrs{Language: language}, Text(content))
}

// MathBlock builds a display-math block.
func MathBlock(content string) *Node {
	return El(NodeMathBlock, Text(content))
}

// Image builds an inline image atom.
func Image(src, alt string) *Node {
	return ElAttrs(NodeImage, Attrs{Src: src, Alt: alt})
}

// InlineMath builds an inline math span; the delimiters become the
// element's boundary tokens so the content sub-range is interior.
func InlineMath(content string) *Node {
	return El(NodeInlineMath, Text(content))
}

// FootnoteRef builds a footnote reference carrying its label.
func FootnoteRef(label string) *Node {
	return ElAttrs(NodeFootnoteRef, Attrs{Label: label}, Text(label))
}

// LinkMark builds a link mark for a text run.
func LinkMark(href, title string) Mark {
	return Mark{Kind: models.FormatLink, Href: href, Title: title}
}
