// Package cursor analyzes a selection inside a document tree and decides
// which contextual UI applies. All functions are pure and cheap enough to
// run on every selection-change event: they walk only the ancestor chain
// plus the innermost container's children, never the whole document.
package cursor

import (
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/models"
)

// NextContainerBounds walks the ancestor chain of the range's start from
// innermost to outermost and returns the span of the first meaningful
// container that strictly contains the range. A nil result means no
// strictly-larger container exists and the caller should treat the whole
// document as the final expansion target. This is the expected terminal
// condition, not a fault.
//
// Strict containment (not contains-or-equals) is what keeps repeated
// calls producing a monotonically growing sequence of selections: a
// container that is already exactly selected never matches itself.
func NextContainerBounds(tree *doctree.Tree, current models.Range) *models.Range {
	chain := tree.AncestorsAt(current.From)
	for i := len(chain) - 1; i >= 0; i-- {
		n := chain[i]
		if !n.Type.IsContainer() {
			continue
		}
		span := n.Span()
		if span.StrictlyContains(current) {
			return &span
		}
	}
	return nil
}

// ExpandSelection returns the next step of progressive selection
// expansion: the innermost strictly-larger container, or the whole
// document once containers are exhausted. The second result is false when
// the document itself is already selected and no further expansion exists.
func ExpandSelection(tree *doctree.Tree, current models.Range) (models.Range, bool) {
	if next := NextContainerBounds(tree, current); next != nil {
		return *next, true
	}
	doc := tree.DocumentRange()
	if doc.StrictlyContains(current) {
		return doc, true
	}
	return current, false
}
