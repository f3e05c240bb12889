package letter

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/tlogic-co/pqrs-service/internal/pqrs"
	"github.com/tlogic-co/pqrs-service/internal/synth"
)

var testNow = time.Date(2024, 12, 9, 14, 35, 22, 0, time.UTC)

func testLetterhead() Letterhead {
	return Letterhead{
		Company:     "Veolia Colombia",
		Subtitle:    "Gestión del Agua y Servicios Ambientales",
		City:        "Bogotá D.C.",
		SignerName:  "MARÍA FERNANDA LÓPEZ GARCÍA",
		SignerRole:  "Coordinadora Servicio al Cliente",
		FooterLine1: "Veolia Colombia - Comprometidos con el Medio Ambiente",
		FooterLine2: "Línea gratuita nacional: 01 8000 123 456 - www.veolia.com.co",
	}
}

func testRecord(t *testing.T) *synth.CustomerRecord {
	t.Helper()
	rec, err := synth.Synthesize("1234567890", testNow)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	return rec
}

func TestSplitParagraphs(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   \n\n  ", nil},
		{"uno", []string{"uno"}},
		{"uno\n\ndos", []string{"uno", "dos"}},
		{"uno\n\n\n\ndos", []string{"uno", "dos"}},
		{"  uno  \n\n\t\n\ndos\n\ntres", []string{"uno", "dos", "tres"}},
	}
	for _, c := range cases {
		if got := SplitParagraphs(c.in); !reflect.DeepEqual(got, c.want) {
			t.Errorf("SplitParagraphs(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestComposeParagraphFidelity(t *testing.T) {
	comp := NewComposer(testLetterhead())
	rec := testRecord(t)

	body := "Primer párrafo de la respuesta.\n\nSegundo párrafo.\n\n\n\nTercero y último."
	_, doc := comp.Compose(pqrs.Reclamo, rec, body, testNow)

	if got := doc.BodyParagraphCount(); got != 3 {
		t.Fatalf("expected 3 body paragraphs, got %d", got)
	}

	var bodyParas []string
	for _, p := range doc.Paragraphs {
		if p.Align == AlignJustify {
			bodyParas = append(bodyParas, p.Runs[0].Text)
		}
	}
	want := []string{"Primer párrafo de la respuesta.", "Segundo párrafo.", "Tercero y último."}
	if !reflect.DeepEqual(bodyParas, want) {
		t.Errorf("body paragraphs out of order: %v", bodyParas)
	}
}

func TestComposeSubjectAndBlocks(t *testing.T) {
	comp := NewComposer(testLetterhead())
	rec := testRecord(t)

	caseID, doc := comp.Compose(pqrs.Reclamo, rec, "Cuerpo.", testNow)
	if caseID != "VEO-R-20241209-143522" {
		t.Errorf("case id = %q", caseID)
	}

	var all []string
	for _, p := range doc.Paragraphs {
		for _, r := range p.Runs {
			all = append(all, r.Text)
		}
	}
	joined := strings.Join(all, "\n")

	for _, want := range []string{
		"Asunto: Respuesta a reclamo radicada",
		"Radicado: " + caseID,
		"Bogotá D.C., 9 de diciembre de 2024",
		"Señor(a)",
		rec.FullName,
		rec.Address,
		"Respetado(a) señor(a):",
		"Cordialmente,",
		"MARÍA FERNANDA LÓPEZ GARCÍA",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("letter missing %q", want)
		}
	}

	var subject *Paragraph
	for i := range doc.Paragraphs {
		if len(doc.Paragraphs[i].Runs) > 0 && strings.HasPrefix(doc.Paragraphs[i].Runs[0].Text, "Asunto:") {
			subject = &doc.Paragraphs[i]
			break
		}
	}
	if subject == nil {
		t.Fatal("no subject paragraph")
	}
	if !subject.Runs[0].Bold {
		t.Error("subject line is not bold")
	}

	if len(doc.Footer) != 2 {
		t.Errorf("expected 2 footer lines, got %d", len(doc.Footer))
	}
}

func TestExportWithMissingBrandAsset(t *testing.T) {
	head := testLetterhead()
	head.LogoPath = "/nonexistent/brand.webp"
	comp := NewComposer(head)
	rec := testRecord(t)

	_, doc := comp.Compose(pqrs.Peticion, rec, "Único párrafo.", testNow)

	data, err := NewDocxExporter().Export(doc)
	if err != nil {
		t.Fatalf("Export failed with a missing brand asset: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Export produced no bytes")
	}
	// .docx files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("exported bytes do not look like a docx archive: % x", data[:4])
	}
}

func TestExportInMemory(t *testing.T) {
	comp := NewComposer(testLetterhead())
	rec := testRecord(t)
	_, doc := comp.Compose(pqrs.Sugerencia, rec, "Uno.\n\nDos.", testNow)

	data, err := NewDocxExporter().Export(doc)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty export")
	}
}
