package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quillmd/quill-cli/pkg/cursor"
	"github.com/quillmd/quill-cli/pkg/doctree"
	"github.com/quillmd/quill-cli/pkg/files"
	"github.com/quillmd/quill-cli/pkg/listblock"
	"github.com/quillmd/quill-cli/pkg/models"
)

// DocumentModel holds one open document: its parsed tree, the token
// cursor moving through position space, and a separate line cursor used
// for line-oriented queries.
type DocumentModel struct {
	path   string
	title  string
	source []byte
	lines  []string
	tree   *doctree.Tree

	// cursor and anchor span the selection in position space; they are
	// equal for a caret. While selecting, plain movement extends from
	// the anchor.
	cursorPos models.Position
	anchorPos models.Position
	selecting bool

	lineCursor int
	scroll     int
}

// NewDocumentModel loads and parses a markdown file.
func NewDocumentModel(path string) (*DocumentModel, error) {
	data, err := files.ReadDocument(path)
	if err != nil {
		return nil, err
	}
	d := &DocumentModel{path: path, title: baseName(path)}
	d.SetSource(data)
	return d, nil
}

// NewScratchDocument returns an in-memory document with the given
// content.
func NewScratchDocument(title, content string) *DocumentModel {
	d := &DocumentModel{title: title}
	d.SetSource([]byte(content))
	return d
}

// SetSource replaces the document content and reparses, clamping the
// cursors into the new document.
func (d *DocumentModel) SetSource(data []byte) {
	d.source = data
	d.lines = strings.Split(string(data), "\n")
	d.tree = doctree.ParseMarkdown(data)
	d.clamp()
}

// Reload rereads the document from disk. Scratch documents have no
// backing file and reload to themselves.
func (d *DocumentModel) Reload() error {
	if d.path == "" {
		return nil
	}
	data, err := files.ReadDocument(d.path)
	if err != nil {
		return err
	}
	d.SetSource(data)
	return nil
}

func (d *DocumentModel) clamp() {
	size := 0
	if d.tree != nil {
		size = d.tree.Size()
	}
	d.cursorPos = clampInt(d.cursorPos, 0, size)
	d.anchorPos = clampInt(d.anchorPos, 0, size)
	d.lineCursor = clampInt(d.lineCursor, 0, maxInt(len(d.lines)-1, 0))
}

// Path returns the backing file path, empty for scratch documents.
func (d *DocumentModel) Path() string {
	return d.path
}

// Selection returns the current selection in position space.
func (d *DocumentModel) Selection() models.Range {
	if d.anchorPos <= d.cursorPos {
		return models.Range{From: d.anchorPos, To: d.cursorPos}
	}
	return models.Range{From: d.cursorPos, To: d.anchorPos}
}

// SetSelection places both cursor and anchor.
func (d *DocumentModel) SetSelection(r models.Range) {
	d.anchorPos = r.From
	d.cursorPos = r.To
	d.clamp()
}

// MoveCursor shifts the token cursor. Without extend (and outside
// anchor mode) the selection collapses to the new caret.
func (d *DocumentModel) MoveCursor(delta int, extend bool) {
	d.cursorPos += delta
	d.clamp()
	if !extend && !d.selecting {
		d.anchorPos = d.cursorPos
	}
}

// ToggleAnchor enters or leaves anchor mode. Entering drops the anchor
// at the cursor so subsequent movement extends the selection.
func (d *DocumentModel) ToggleAnchor() bool {
	d.selecting = !d.selecting
	if d.selecting {
		d.anchorPos = d.cursorPos
	}
	return d.selecting
}

// MoveLine shifts the line cursor.
func (d *DocumentModel) MoveLine(delta int) {
	d.lineCursor = clampInt(d.lineCursor+delta, 0, maxInt(len(d.lines)-1, 0))
}

// CollapseSelection collapses the selection to the cursor and leaves
// anchor mode.
func (d *DocumentModel) CollapseSelection() {
	d.anchorPos = d.cursorPos
	d.selecting = false
}

// ExpandStep grows the selection to the next enclosing container span.
// It reports whether the selection changed.
func (d *DocumentModel) ExpandStep() bool {
	if d.tree == nil {
		return false
	}
	expanded, grew := cursor.ExpandSelection(d.tree, d.Selection())
	if grew {
		d.SetSelection(expanded)
	}
	return grew
}

// Context builds the cursor context snapshot for the current selection.
func (d *DocumentModel) Context() *models.CursorContext {
	if d.tree == nil {
		return nil
	}
	return cursor.BuildContext(d.tree, d.Selection())
}

// ListBlock returns the list block surrounding the line cursor.
func (d *DocumentModel) ListBlock() *listblock.LineRange {
	return listblock.Bounds(string(d.source), d.lineCursor)
}

// View renders the raw document with the line cursor highlighted and a
// gutter marking the list block around it.
func (d *DocumentModel) View(width, height int) string {
	block := d.ListBlock()

	visible := height - 1 // readout line
	if visible < 1 {
		visible = 1
	}
	if d.lineCursor < d.scroll {
		d.scroll = d.lineCursor
	}
	if d.lineCursor >= d.scroll+visible {
		d.scroll = d.lineCursor - visible + 1
	}

	var sb strings.Builder
	end := minInt(d.scroll+visible, len(d.lines))
	for i := d.scroll; i < end; i++ {
		gutter := "  "
		if block != nil && i >= block.Start && i <= block.End {
			gutter = listGutterStyle.Render("│ ")
		}
		line := truncateLine(d.lines[i], width-2)
		if i == d.lineCursor {
			line = cursorLineStyle.Render(line)
		}
		sb.WriteString(gutter + line + "\n")
	}

	sel := d.Selection()
	size := 0
	if d.tree != nil {
		size = d.tree.Size()
	}
	readout := fmt.Sprintf("pos %d/%d", sel.To, size)
	if !sel.IsCaret() {
		readout = fmt.Sprintf("sel %d-%d/%d", sel.From, sel.To, size)
	}
	readout += fmt.Sprintf("  line %d", d.lineCursor)
	if block != nil {
		readout += fmt.Sprintf("  list %d-%d", block.Start, block.End)
	}
	sb.WriteString(paneTitleStyle.Render(readout))

	return sb.String()
}

func baseName(path string) string {
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) > width {
		runes = runes[:width]
	}
	return string(runes)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
