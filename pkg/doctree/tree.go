package doctree

import (
	"strings"

	"github.com/quillmd/quill-cli/pkg/models"
)

// Tree is an indexed document tree. It satisfies the tree-cursor
// capabilities the cursor package consumes: ancestor chains in O(depth)
// and child enumeration in O(children).
type Tree struct {
	root *Node
	size int
}

// New indexes the given root node and returns the tree. The root must be
// a NodeRoot; positions are assigned in a single pass and cached on the
// nodes.
func New(root *Node) *Tree {
	t := &Tree{root: root}
	t.size = index(root, 0)
	return t
}

// index assigns spans depth-first and returns the position just past the
// node. The root carries no boundary tokens; every other element does.
func index(n *Node, pos models.Position) models.Position {
	n.from = pos
	switch {
	case n.Type == NodeText:
		n.to = pos + len([]rune(n.Text))
	case n.Type.IsAtom():
		n.to = pos + 1
	case n.Type == NodeRoot:
		cur := pos
		for _, c := range n.Children {
			c.parent = n
			cur = index(c, cur)
		}
		n.to = cur
	default:
		cur := pos + 1 // opening boundary token
		for _, c := range n.Children {
			c.parent = n
			cur = index(c, cur)
		}
		n.to = cur + 1 // closing boundary token
	}
	return n.to
}

// Root returns the document root.
func (t *Tree) Root() *Node {
	return t.root
}

// Size returns the total width of the document in positions.
func (t *Tree) Size() int {
	return t.size
}

// DocumentRange returns the range covering the whole document.
func (t *Tree) DocumentRange() models.Range {
	return models.Range{From: 0, To: t.size}
}

// AncestorsAt returns the chain of nodes containing pos, ordered from the
// root down to the innermost node. Positions sitting on an element's
// boundary tokens belong to that element but not to its children.
func (t *Tree) AncestorsAt(pos models.Position) []*Node {
	if pos < 0 || pos > t.size {
		return nil
	}
	chain := []*Node{t.root}
	cur := t.root
	for {
		next := childAt(cur, pos)
		if next == nil {
			return chain
		}
		chain = append(chain, next)
		if next.Type == NodeText || next.Type.IsAtom() {
			return chain
		}
		cur = next
	}
}

// childAt finds the child of n whose interior (or, for text, whose run)
// contains pos. Boundary tokens of a child element are treated as part of
// the child itself.
func childAt(n *Node, pos models.Position) *Node {
	for _, c := range n.Children {
		switch {
		case c.Type == NodeText:
			if c.from <= pos && pos <= c.to {
				return c
			}
		case c.Type.IsAtom():
			if c.from == pos {
				return c
			}
		default:
			if c.from <= pos && pos < c.to {
				return c
			}
		}
	}
	return nil
}

// NodeAt returns the innermost node containing pos.
func (t *Tree) NodeAt(pos models.Position) *Node {
	chain := t.AncestorsAt(pos)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}

// ChildrenOf returns the immediate children of a node.
func (t *Tree) ChildrenOf(n *Node) []*Node {
	return n.Children
}

// TextOf returns the concatenated text content of a node's subtree.
func (t *Tree) TextOf(n *Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *Node, sb *strings.Builder) {
	if n.Type == NodeText {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		collectText(c, sb)
	}
}
