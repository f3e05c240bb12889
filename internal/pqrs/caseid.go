package pqrs

import (
	"fmt"
	"time"
)

// CasePrefix is the fixed prefix of every case identifier (radicado).
const CasePrefix = "VEO"

// MintCaseID formats a case identifier for the given category and
// moment: VEO-<code>-<YYYYMMDD>-<HHMMSS>. Second resolution means two
// ids minted in the same second for the same category collide; that
// matches the upstream numbering scheme and is accepted.
func MintCaseID(c Category, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s", CasePrefix, c, now.Format("20060102"), now.Format("150405"))
}

var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatLongDate renders a date the way the letterhead wants it:
// "9 de diciembre de 2024". Month names are fixed Spanish tables, not
// runtime locale lookups.
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
