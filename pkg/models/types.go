package models

// Position is an offset into the document's flattened coordinate space.
// Element nodes contribute an opening and a closing boundary token of
// width 1; text contributes one position per rune.
type Position = int

// Range is a span of positions with From <= To. A degenerate range
// (From == To) represents a caret.
type Range struct {
	From Position `yaml:"from" json:"from"`
	To   Position `yaml:"to" json:"to"`
}

// Caret returns a degenerate range at pos.
func Caret(pos Position) Range {
	return Range{From: pos, To: pos}
}

// IsCaret reports whether the range is degenerate.
func (r Range) IsCaret() bool {
	return r.From == r.To
}

// Contains reports whether r fully covers other (boundaries included).
func (r Range) Contains(other Range) bool {
	return r.From <= other.From && other.To <= r.To
}

// StrictlyContains reports whether r covers other and is larger on at
// least one side. This is what makes progressive expansion monotonic:
// an already-selected container never matches itself.
func (r Range) StrictlyContains(other Range) bool {
	return r.Contains(other) && (r.From < other.From || r.To > other.To)
}

// Rect is a screen-space bounding box used to anchor popups.
type Rect struct {
	Top    int `yaml:"top" json:"top"`
	Left   int `yaml:"left" json:"left"`
	Bottom int `yaml:"bottom" json:"bottom"`
	Right  int `yaml:"right" json:"right"`
}

// ContextMode is the resolved category of contextual UI to show.
type ContextMode string

const (
	ModeNone        ContextMode = "none"
	ModeFormat      ContextMode = "format"
	ModeInsertBlock ContextMode = "insert-block"
	ModeInsertLine  ContextMode = "insert-inline"
	ModeTable       ContextMode = "table"
	ModeList        ContextMode = "list"
	ModeBlockquote  ContextMode = "blockquote"
	ModeCode        ContextMode = "code"
	ModeMath        ContextMode = "math"
	ModeFootnote    ContextMode = "footnote"
	ModeHeading     ContextMode = "heading"
)

// FormatKind is an inline formatting mark applied to text runs.
type FormatKind string

const (
	FormatBold          FormatKind = "bold"
	FormatItalic        FormatKind = "italic"
	FormatCode          FormatKind = "code"
	FormatStrikethrough FormatKind = "strikethrough"
	FormatHighlight     FormatKind = "highlight"
	FormatLink          FormatKind = "link"
	FormatSuperscript   FormatKind = "superscript"
	FormatSubscript     FormatKind = "subscript"
	FormatUnderline     FormatKind = "underline"
)

// ListKind distinguishes the list flavors the cursor can sit in.
type ListKind string

const (
	ListBullet  ListKind = "bullet"
	ListOrdered ListKind = "ordered"
	ListTask    ListKind = "task"
)

// CodeBlockContext describes the code fence surrounding the cursor.
type CodeBlockContext struct {
	Range    Range  `yaml:"range" json:"range"`
	Language string `yaml:"language,omitempty" json:"language,omitempty"`
}

// MathBlockContext describes the display-math block surrounding the cursor.
type MathBlockContext struct {
	Range Range `yaml:"range" json:"range"`
}

// HeadingContext describes the heading surrounding the cursor.
type HeadingContext struct {
	Range Range `yaml:"range" json:"range"`
	Level int   `yaml:"level" json:"level"`
}

// ListContext describes the innermost list item surrounding the cursor.
type ListContext struct {
	ItemRange Range    `yaml:"item_range" json:"itemRange"`
	ListRange Range    `yaml:"list_range" json:"listRange"`
	Kind      ListKind `yaml:"kind" json:"kind"`
	Depth     int      `yaml:"depth" json:"depth"` // 1 = top-level list
	Checked   bool     `yaml:"checked,omitempty" json:"checked,omitempty"`
}

// BlockquoteContext describes the innermost blockquote surrounding the cursor.
type BlockquoteContext struct {
	Range Range `yaml:"range" json:"range"`
	Depth int   `yaml:"depth" json:"depth"`
}

// TableContext describes the table cell surrounding the cursor.
type TableContext struct {
	CellRange  Range `yaml:"cell_range" json:"cellRange"`
	RowRange   Range `yaml:"row_range" json:"rowRange"`
	TableRange Range `yaml:"table_range" json:"tableRange"`
	Row        int   `yaml:"row" json:"row"`
	Col        int   `yaml:"col" json:"col"`
}

// LinkContext describes the link mark run under the cursor. Adjacent text
// runs carrying the same href are reported as one contiguous range.
type LinkContext struct {
	Range        Range  `yaml:"range" json:"range"`
	ContentRange Range  `yaml:"content_range" json:"contentRange"`
	Href         string `yaml:"href" json:"href"`
	Title        string `yaml:"title,omitempty" json:"title,omitempty"`
}

// ImageContext describes the inline image atom under the cursor.
type ImageContext struct {
	Range Range  `yaml:"range" json:"range"`
	Src   string `yaml:"src" json:"src"`
	Alt   string `yaml:"alt,omitempty" json:"alt,omitempty"`
}

// MathContext describes the inline math span under the cursor. The content
// range excludes the delimiter boundary tokens.
type MathContext struct {
	Range        Range `yaml:"range" json:"range"`
	ContentRange Range `yaml:"content_range" json:"contentRange"`
}

// FootnoteContext describes the footnote reference under the cursor.
type FootnoteContext struct {
	Range        Range  `yaml:"range" json:"range"`
	ContentRange Range  `yaml:"content_range" json:"contentRange"`
	Label        string `yaml:"label" json:"label"`
}

// CursorContext is the immutable snapshot built on every selection change.
// At most one of each block slot is populated.
type CursorContext struct {
	CodeBlock  *CodeBlockContext  `yaml:"code_block,omitempty" json:"codeBlock,omitempty"`
	MathBlock  *MathBlockContext  `yaml:"math_block,omitempty" json:"mathBlock,omitempty"`
	Table      *TableContext      `yaml:"table,omitempty" json:"table,omitempty"`
	List       *ListContext       `yaml:"list,omitempty" json:"list,omitempty"`
	Blockquote *BlockquoteContext `yaml:"blockquote,omitempty" json:"blockquote,omitempty"`
	Heading    *HeadingContext    `yaml:"heading,omitempty" json:"heading,omitempty"`

	Link       *LinkContext     `yaml:"link,omitempty" json:"link,omitempty"`
	Image      *ImageContext    `yaml:"image,omitempty" json:"image,omitempty"`
	InlineMath *MathContext     `yaml:"inline_math,omitempty" json:"inlineMath,omitempty"`
	Footnote   *FootnoteContext `yaml:"footnote,omitempty" json:"footnote,omitempty"`

	ActiveFormats []FormatKind `yaml:"active_formats,omitempty" json:"activeFormats,omitempty"`

	AtLineStart bool   `yaml:"at_line_start" json:"atLineStart"`
	AtBlankLine bool   `yaml:"at_blank_line" json:"atBlankLine"`
	WordRange   *Range `yaml:"word_range,omitempty" json:"wordRange,omitempty"`

	Mode ContextMode `yaml:"mode" json:"mode"`

	HasSelection bool     `yaml:"has_selection" json:"hasSelection"`
	From         Position `yaml:"from" json:"from"`
	To           Position `yaml:"to" json:"to"`
}

// Selection returns the snapshot's selection as a Range.
func (c *CursorContext) Selection() Range {
	return Range{From: c.From, To: c.To}
}

// HasFormat reports whether the given mark kind is active at the cursor.
func (c *CursorContext) HasFormat(kind FormatKind) bool {
	for _, f := range c.ActiveFormats {
		if f == kind {
			return true
		}
	}
	return false
}
