// Package letter builds the formal reply-letter document. Composition
// produces a renderer-independent Document; the Exporter interface
// turns that model into file bytes, keeping the layout logic testable
// without touching any document-format serialization.
package letter

// Alignment of a paragraph.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Run is a styled span of text within a paragraph.
type Run struct {
	Text   string
	Bold   bool
	SizePt int
	Color  string // hex RGB without '#', empty for default
}

// Paragraph is one block of the letter. A paragraph with no runs is a
// vertical spacer.
type Paragraph struct {
	Align Alignment
	Runs  []Run
}

// Brand is the letterhead brand mark. If the image at Path cannot be
// loaded the exporter falls back to the bold Fallback label; a missing
// asset never fails the composition.
type Brand struct {
	Path     string
	Fallback string
}

// Document is the full letter: brand row, body paragraphs in reading
// order, and the page-footer boilerplate lines.
type Document struct {
	Brand      Brand
	Subtitle   Paragraph
	Paragraphs []Paragraph
	Footer     []Paragraph
}

// BodyParagraphCount reports how many justified body paragraphs the
// letter carries (the segments of the generated reply).
func (d *Document) BodyParagraphCount() int {
	n := 0
	for _, p := range d.Paragraphs {
		if p.Align == AlignJustify {
			n++
		}
	}
	return n
}
