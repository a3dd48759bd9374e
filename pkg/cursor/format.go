package cursor

import (
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

// formatOrder fixes the reporting order of active formats.
var formatOrder = []models.FormatKind{
	models.FormatBold,
	models.FormatItalic,
	models.FormatCode,
	models.FormatStrikethrough,
	models.FormatHighlight,
	models.FormatLink,
	models.FormatSuperscript,
	models.FormatSubscript,
	models.FormatUnderline,
}

// ActiveFormats returns the mark kinds applied at the cursor. For a caret
// these are the marks of the text run under it; for a selection, the
// intersection of marks across every text run the selection touches, so a
// format counts as active only when the whole selection carries it.
func ActiveFormats(tree *doctree.Tree, sel models.Range) []models.FormatKind {
	var active map[models.FormatKind]bool

	if sel.IsCaret() {
		chain := tree.AncestorsAt(sel.From)
		if len(chain) == 0 {
			return nil
		}
		run := chain[len(chain)-1]
		if run.Type != doctree.NodeText {
			return nil
		}
		active = markSet(run)
	} else {
		runs := runsIn(tree.Root(), sel)
		if len(runs) == 0 {
			return nil
		}
		active = markSet(runs[0])
		for _, run := range runs[1:] {
			set := markSet(run)
			for k := range active {
				if !set[k] {
					delete(active, k)
				}
			}
		}
	}

	var out []models.FormatKind
	for _, k := range formatOrder {
		if active[k] {
			out = append(out, k)
		}
	}
	return out
}

func markSet(run *doctree.Node) map[models.FormatKind]bool {
	set := make(map[models.FormatKind]bool, len(run.Marks))
	for _, m := range run.Marks {
		set[m.Kind] = true
	}
	return set
}

// runsIn collects the text runs overlapping r, descending only into
// subtrees that intersect it.
func runsIn(n *doctree.Node, r models.Range) []*doctree.Node {
	span := n.Span()
	if span.To <= r.From || span.From >= r.To {
		return nil
	}
	if n.Type == doctree.NodeText {
		return []*doctree.Node{n}
	}
	var out []*doctree.Node
	for _, c := range n.Children {
		out = append(out, runsIn(c, r)...)
	}
	return out
}
