package letter

import (
	"strings"
	"time"

	"github.com/tlogic-co/pqrs-service/internal/pqrs"
	"github.com/tlogic-co/pqrs-service/internal/synth"
)

// Letterhead is the fixed corporate framing of every letter.
type Letterhead struct {
	Company     string
	Subtitle    string
	City        string
	SignerName  string
	SignerRole  string
	FooterLine1 string
	FooterLine2 string
	LogoPath    string
}

const (
	bodySizePt     = 11
	subtitleSizePt = 10
	footerSizePt   = 8
	brandColor     = "004B87"
	accentColor    = "00A982"
)

// Composer assembles reply letters on a fixed letterhead.
type Composer struct {
	head Letterhead
}

// NewComposer creates a composer for the given letterhead.
func NewComposer(head Letterhead) *Composer {
	return &Composer{head: head}
}

// Compose mints a case identifier for (category, now) and builds the
// letter document around the given reply body.
func (c *Composer) Compose(cat pqrs.Category, rec *synth.CustomerRecord, body string, now time.Time) (string, *Document) {
	caseID := pqrs.MintCaseID(cat, now)
	return caseID, c.ComposeWithID(cat, rec, body, caseID, now)
}

// ComposeWithID builds the letter document for an already-minted case
// identifier. The reply body is split into paragraphs on blank-line
// boundaries; every non-empty segment becomes exactly one justified
// paragraph, in order.
func (c *Composer) ComposeWithID(cat pqrs.Category, rec *synth.CustomerRecord, body string, caseID string, now time.Time) *Document {
	doc := &Document{
		Brand: Brand{Path: c.head.LogoPath, Fallback: c.head.Company},
		Subtitle: Paragraph{Align: AlignRight, Runs: []Run{
			{Text: c.head.Subtitle, SizePt: subtitleSizePt, Color: brandColor},
		}},
	}

	add := func(p Paragraph) { doc.Paragraphs = append(doc.Paragraphs, p) }
	spacer := func() { add(Paragraph{}) }
	line := func(align Alignment, r Run) {
		if r.SizePt == 0 {
			r.SizePt = bodySizePt
		}
		add(Paragraph{Align: align, Runs: []Run{r}})
	}

	// Date and case-id block.
	line(AlignRight, Run{Text: c.head.City + ", " + pqrs.FormatLongDate(now)})
	line(AlignRight, Run{Text: "Radicado: " + caseID})
	spacer()

	// Recipient block.
	line(AlignLeft, Run{Text: "Señor(a)"})
	line(AlignLeft, Run{Text: rec.FullName})
	line(AlignLeft, Run{Text: rec.Address})
	line(AlignLeft, Run{Text: c.head.City})
	spacer()

	// Subject and salutation.
	line(AlignLeft, Run{Text: "Asunto: Respuesta a " + cat.Subject() + " radicada", Bold: true})
	spacer()
	line(AlignLeft, Run{Text: "Respetado(a) señor(a):"})
	spacer()

	for _, segment := range SplitParagraphs(body) {
		line(AlignJustify, Run{Text: segment})
	}
	spacer()

	// Closing and signature.
	line(AlignLeft, Run{Text: "Cordialmente,"})
	spacer()
	spacer()
	line(AlignLeft, Run{Text: c.head.SignerName, Bold: true})
	line(AlignLeft, Run{Text: c.head.SignerRole, Bold: true})
	line(AlignLeft, Run{Text: c.head.Company, Bold: true})

	doc.Footer = []Paragraph{
		{Align: AlignCenter, Runs: []Run{{Text: c.head.FooterLine1, SizePt: footerSizePt, Color: accentColor}}},
		{Align: AlignCenter, Runs: []Run{{Text: c.head.FooterLine2, SizePt: footerSizePt}}},
	}
	return doc
}

// SplitParagraphs splits a reply body on blank-line boundaries,
// trimming each segment and dropping the fully blank ones. Paragraph
// count and order are preserved for everything else.
func SplitParagraphs(body string) []string {
	var out []string
	for _, segment := range strings.Split(body, "\n\n") {
		segment = strings.TrimSpace(segment)
		if segment != "" {
			out = append(out, segment)
		}
	}
	return out
}
