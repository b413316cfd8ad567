package entity

import (
	"github.com/google/uuid"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

// Page is one OCR'd page of a document. Text and quality come from the OCR
// collaborator; quality is opaque and passed through to record metadata.
type Page struct {
	Index   int
	Text    string
	Quality float64 // [0,1]
}

// Document is one source contract PDF after OCR. Immutable once built.
type Document struct {
	ID      uuid.UUID
	Name    string // source file name, used for operation-number fallback
	Bank    constants.BankType
	Subtype constants.DocSubtype // optional hint; empty means undetected
	Pages   []Page
}

// NewDocument assigns a fresh ID and copies the page slice so callers cannot
// mutate the document afterwards.
func NewDocument(name string, bank constants.BankType, pages []Page) *Document {
	ps := make([]Page, len(pages))
	copy(ps, pages)
	return &Document{
		ID:    uuid.New(),
		Name:  name,
		Bank:  bank,
		Pages: ps,
	}
}

// AvgQuality averages the per-page quality scores; 0 for empty documents.
func (d *Document) AvgQuality() float64 {
	if len(d.Pages) == 0 {
		return 0
	}
	var sum float64
	for _, p := range d.Pages {
		sum += p.Quality
	}
	return sum / float64(len(d.Pages))
}
