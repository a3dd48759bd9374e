package cursor

import (
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

// Block detectors walk the ancestor chain from innermost outward and
// return the first match of their type, with type-specific attributes.
// A nil result is the expected not-applicable case.

func detectCodeBlock(chain []*doctree.Node) *models.CodeBlockContext {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Type == doctree.NodeCodeBlock {
			return &models.CodeBlockContext{
				Range:    chain[i].Span(),
				Language: chain[i].Attrs.Language,
			}
		}
	}
	return nil
}

func detectMathBlock(chain []*doctree.Node) *models.MathBlockContext {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Type == doctree.NodeMathBlock {
			return &models.MathBlockContext{Range: chain[i].Span()}
		}
	}
	return nil
}

func detectHeading(chain []*doctree.Node) *models.HeadingContext {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Type == doctree.NodeHeading {
			return &models.HeadingContext{
				Range: chain[i].Span(),
				Level: chain[i].Attrs.Level,
			}
		}
	}
	return nil
}

func detectBlockquote(chain []*doctree.Node) *models.BlockquoteContext {
	depth := 0
	var innermost *doctree.Node
	for _, n := range chain {
		if n.Type == doctree.NodeBlockquote {
			depth++
			innermost = n
		}
	}
	if innermost == nil {
		return nil
	}
	// Depth counts from the outermost blockquote; the reported range is
	// the innermost one, found last while walking root-down.
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Type == doctree.NodeBlockquote {
			return &models.BlockquoteContext{Range: chain[i].Span(), Depth: depth}
		}
	}
	return nil
}

func detectList(chain []*doctree.Node) *models.ListContext {
	var item, list *doctree.Node
	depth := 0
	for _, n := range chain {
		if n.Type == doctree.NodeList {
			depth++
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Type == doctree.NodeListItem {
			item = chain[i]
			break
		}
	}
	if item == nil {
		return nil
	}
	list = item.Parent()
	if list == nil || list.Type != doctree.NodeList {
		return nil
	}
	kind := list.Attrs.ListKind
	if kind == "" {
		kind = models.ListBullet
	}
	if item.Attrs.IsTask {
		kind = models.ListTask
	}
	return &models.ListContext{
		ItemRange: item.Span(),
		ListRange: list.Span(),
		Kind:      kind,
		Depth:     depth,
		Checked:   item.Attrs.Checked,
	}
}

func detectTable(chain []*doctree.Node) *models.TableContext {
	var cell *doctree.Node
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Type == doctree.NodeTableCell {
			cell = chain[i]
			break
		}
	}
	if cell == nil {
		return nil
	}
	row := cell.Parent()
	if row == nil || row.Type != doctree.NodeTableRow {
		return nil
	}
	table := row.Parent()
	if table == nil || table.Type != doctree.NodeTable {
		return nil
	}
	return &models.TableContext{
		CellRange:  cell.Span(),
		RowRange:   row.Span(),
		TableRange: table.Span(),
		Row:        siblingIndex(row),
		Col:        siblingIndex(cell),
	}
}

// siblingIndex counts the node's preceding same-type siblings.
func siblingIndex(n *doctree.Node) int {
	parent := n.Parent()
	if parent == nil {
		return 0
	}
	idx := 0
	for _, c := range parent.Children {
		if c == n {
			return idx
		}
		if c.Type == n.Type {
			idx++
		}
	}
	return idx
}
