package trigger

import (
	"sort"

	"github.com/quillmd/quill-cli/pkg/models"
)

// Change is the opaque edit the core hands to the editing engine: what
// to do and where, never how.
type Change struct {
	ActionID string
	Target   models.Range
	Args     map[string]string
}

// EditDispatcher applies changes to the document. Out of scope here;
// consumed as a capability.
type EditDispatcher interface {
	DispatchEdit(change Change)
}

// Request is what an action handler receives.
type Request struct {
	Context  *models.CursorContext
	Dispatch EditDispatcher
}

// Handler executes one action.
type Handler func(req Request)

// Registry maps action identifiers to handlers. Dispatching an unknown
// identifier is an explicit Unhandled result, not an error, so callers
// can fall through safely and new actions can be added without touching
// a central switch.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds an action identifier to a handler, replacing any
// previous binding.
func (r *Registry) Register(actionID string, h Handler) {
	r.handlers[actionID] = h
}

// Dispatch runs the handler for actionID. It reports false when no
// handler is registered.
func (r *Registry) Dispatch(actionID string, req Request) bool {
	h, ok := r.handlers[actionID]
	if !ok {
		return false
	}
	h(req)
	return true
}

// ActionIDs returns the registered identifiers in sorted order.
func (r *Registry) ActionIDs() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// formatActions maps format action identifiers to their mark kinds.
var formatActions = map[string]models.FormatKind{
	"format.bold":          models.FormatBold,
	"format.italic":        models.FormatItalic,
	"format.code":          models.FormatCode,
	"format.strikethrough": models.FormatStrikethrough,
	"format.highlight":     models.FormatHighlight,
	"format.link":          models.FormatLink,
	"format.superscript":   models.FormatSuperscript,
	"format.subscript":     models.FormatSubscript,
	"format.underline":     models.FormatUnderline,
}

// RegisterFormatActions registers a toggle handler per format kind: each
// dispatches a change targeting the snapshot's selection.
func RegisterFormatActions(r *Registry) {
	for id, kind := range formatActions {
		id, kind := id, kind
		r.Register(id, func(req Request) {
			req.Dispatch.DispatchEdit(Change{
				ActionID: id,
				Target:   req.Context.Selection(),
				Args:     map[string]string{"mark": string(kind)},
			})
		})
	}
}

// RegisterHeadingActions registers convert-to-heading actions for levels
// 1 through 6 plus paragraph.
func RegisterHeadingActions(r *Registry) {
	levels := map[string]string{
		"heading.paragraph": "0",
		"heading.h1":        "1",
		"heading.h2":        "2",
		"heading.h3":        "3",
		"heading.h4":        "4",
		"heading.h5":        "5",
		"heading.h6":        "6",
	}
	for id, level := range levels {
		id, level := id, level
		r.Register(id, func(req Request) {
			req.Dispatch.DispatchEdit(Change{
				ActionID: id,
				Target:   req.Context.Selection(),
				Args:     map[string]string{"level": level},
			})
		})
	}
}
