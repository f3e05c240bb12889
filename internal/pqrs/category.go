// Package pqrs holds the complaint-category domain: the four mandated
// PQRS categories, case-identifier minting, prompt assembly for the
// reply generator, and the generation service itself.
package pqrs

import "fmt"

// Category is one of the four legally mandated categories of customer
// correspondence: Petición, Queja, Reclamo, Sugerencia.
type Category string

const (
	Peticion   Category = "P"
	Queja      Category = "Q"
	Reclamo    Category = "R"
	Sugerencia Category = "S"
)

// Categories returns all categories in their canonical order.
func Categories() []Category {
	return []Category{Peticion, Queja, Reclamo, Sugerencia}
}

// ParseCategory converts a single-letter code into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Peticion, Queja, Reclamo, Sugerencia:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown PQRS category %q", s)
}

// Label returns the display label of the category.
func (c Category) Label() string {
	switch c {
	case Peticion:
		return "PETICIÓN"
	case Queja:
		return "QUEJA"
	case Reclamo:
		return "RECLAMO"
	case Sugerencia:
		return "SUGERENCIA"
	}
	return string(c)
}

// Subject returns the lower-cased form used in the letter subject line.
func (c Category) Subject() string {
	switch c {
	case Peticion:
		return "petición"
	case Queja:
		return "queja"
	case Reclamo:
		return "reclamo"
	case Sugerencia:
		return "sugerencia"
	}
	return string(c)
}

// ResponseDays is the legally expected response time in business days
// (Ley 142 de 1994). Narrative only, nothing enforces it.
func (c Category) ResponseDays() int {
	switch c {
	case Peticion:
		return 10
	case Queja, Reclamo:
		return 15
	case Sugerencia:
		return 30
	}
	return 15
}

// Description is a short explanation of the category for the UI.
func (c Category) Description() string {
	switch c {
	case Peticion:
		return "Solicitud de información o documentos"
	case Queja:
		return "Inconformidad con el servicio o atención"
	case Reclamo:
		return "Inconformidad con facturación o cobros"
	case Sugerencia:
		return "Propuestas de mejora del servicio"
	}
	return ""
}
