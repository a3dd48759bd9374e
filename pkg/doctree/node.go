package doctree

import (
	"github.com/quillmd/quill-cli/pkg/models"
)

// NodeType identifies a node in the document tree.
type NodeType string

const (
	NodeRoot          NodeType = "root"
	NodeParagraph     NodeType = "paragraph"
	NodeHeading       NodeType = "heading"
	NodeList          NodeType = "list"
	NodeListItem      NodeType = "list-item"
	NodeBlockquote    NodeType = "blockquote"
	NodeTable         NodeType = "table"
	NodeTableRow      NodeType = "table-row"
	NodeTableCell     NodeType = "table-cell"
	NodeCodeBlock     NodeType = "code-block"
	NodeMathBlock     NodeType = "math-block"
	NodeThematicBreak NodeType = "thematic-break"
	NodeText          NodeType = "text"
	NodeImage         NodeType = "image"
	NodeInlineMath    NodeType = "inline-math"
	NodeFootnoteRef   NodeType = "footnote-ref"
)

// IsContainer reports whether the type is a meaningful selection boundary
// for progressive expansion. Paragraphs, headings and the root are
// invisible to the classifier.
func (t NodeType) IsContainer() bool {
	switch t {
	case NodeCodeBlock, NodeMathBlock, NodeTableCell, NodeTableRow, NodeTable,
		NodeListItem, NodeList, NodeBlockquote:
		return true
	}
	return false
}

// IsAtom reports whether the node occupies a single position with no
// addressable interior.
func (t NodeType) IsAtom() bool {
	return t == NodeImage || t == NodeThematicBreak
}

// Mark is an inline formatting mark carried by a text run.
type Mark struct {
	Kind  models.FormatKind
	Href  string // link marks only
	Title string // link marks only
}

// SameAs reports whether two marks are interchangeable for the purpose of
// merging adjacent runs: same kind and, for links, same target.
func (m Mark) SameAs(other Mark) bool {
	return m.Kind == other.Kind && m.Href == other.Href && m.Title == other.Title
}

// Attrs holds node-type-specific attributes. Unused fields stay zero.
type Attrs struct {
	Level    int             // heading
	ListKind models.ListKind // list
	IsTask   bool            // list item with a checkbox
	Checked  bool            // checked task item
	Language string          // code block
	Src      string          // image
	Alt      string          // image
	Label    string          // footnote reference
}

// Node is an entity in the document tree. Ownership is strictly
// tree-shaped: a parent owns its children, there is no sharing.
type Node struct {
	Type     NodeType
	Text     string // NodeText only
	Marks    []Mark // NodeText only
	Attrs    Attrs
	Children []*Node

	parent   *Node
	from, to models.Position
}

// Span returns the range of positions the node covers, inclusive of its
// structural boundary tokens. Valid only after the node is part of an
// indexed Tree.
func (n *Node) Span() models.Range {
	return models.Range{From: n.from, To: n.to}
}

// Parent returns the owning node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// HasMark reports whether the text run carries a mark of the given kind.
func (n *Node) HasMark(kind models.FormatKind) bool {
	for _, m := range n.Marks {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

// FindMark returns the run's mark of the given kind, if any.
func (n *Node) FindMark(kind models.FormatKind) (Mark, bool) {
	for _, m := range n.Marks {
		if m.Kind == kind {
			return m, true
		}
	}
	return Mark{}, false
}

// size returns the node's width in the flattened coordinate space.
// Text is one position per rune, atoms are width 1, elements add an
// opening and a closing boundary token around their children.
func (n *Node) size() int {
	switch {
	case n.Type == NodeText:
		return len([]rune(n.Text))
	case n.Type.IsAtom():
		return 1
	default:
		total := 2
		for _, c := range n.Children {
			total += c.size()
		}
		return total
	}
}
