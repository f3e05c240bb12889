package letter

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	docx "github.com/fumiama/go-docx"
)

// Exporter renders a composed Document to file bytes.
type Exporter interface {
	Export(doc *Document) ([]byte, error)
}

// FileExtension is the extension of exported documents.
const FileExtension = ".docx"

// DocxExporter renders the document model as a Word file, fully in
// memory.
type DocxExporter struct{}

// NewDocxExporter creates a .docx exporter.
func NewDocxExporter() *DocxExporter {
	return &DocxExporter{}
}

// Export renders the letter. An unreadable brand-mark image degrades to
// the bold fallback label; it never fails the export.
func (e *DocxExporter) Export(doc *Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	brand := w.AddParagraph()
	if !addBrandImage(brand, doc.Brand.Path) {
		brand.AddText(doc.Brand.Fallback).Size(halfPoints(14)).Bold().Color(brandColor)
	}
	addParagraph(w, doc.Subtitle)
	w.AddParagraph()

	for _, p := range doc.Paragraphs {
		addParagraph(w, p)
	}

	// No page-footer support in the renderer; the boilerplate lines
	// close the body instead.
	w.AddParagraph()
	for _, p := range doc.Footer {
		addParagraph(w, p)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing docx: %w", err)
	}
	return buf.Bytes(), nil
}

func addBrandImage(p *docx.Paragraph, path string) bool {
	if path == "" {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if _, err := p.AddInlineDrawingFrom(path); err != nil {
		return false
	}
	return true
}

func addParagraph(w *docx.Docx, p Paragraph) {
	para := w.AddParagraph()
	switch p.Align {
	case AlignCenter:
		para.Justification("center")
	case AlignRight:
		para.Justification("right")
	case AlignJustify:
		para.Justification("both")
	}
	for _, r := range p.Runs {
		run := para.AddText(r.Text)
		if r.SizePt > 0 {
			run.Size(halfPoints(r.SizePt))
		}
		if r.Bold {
			run.Bold()
		}
		if r.Color != "" {
			run.Color(r.Color)
		}
	}
}

// halfPoints converts points to the half-point units the docx format
// expects for font sizes.
func halfPoints(pt int) string {
	return strconv.Itoa(pt * 2)
}
