package entity

import (
	"github.com/google/uuid"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

// CanonicalRecord is the final row for one document: exactly one value
// (possibly empty) per canonical field. Produced once by the assembler and
// immutable afterwards; aliased header lookups resolve to the same storage.
type CanonicalRecord struct {
	DocumentID   uuid.UUID
	DocumentName string
	Bank         constants.BankType
	Subtype      constants.DocSubtype
	AvgQuality   float64

	values   map[constants.Field]string
	warnings []string
}

// NewCanonicalRecord builds a record from resolved values, filling every
// canonical field so none is ever absent.
func NewCanonicalRecord(doc *Document, values map[constants.Field]string, warnings []string) *CanonicalRecord {
	vs := make(map[constants.Field]string, len(constants.CanonicalFields))
	for _, f := range constants.CanonicalFields {
		vs[f] = values[f] // missing keys become ""
	}
	ws := make([]string, len(warnings))
	copy(ws, warnings)
	return &CanonicalRecord{
		DocumentID:   doc.ID,
		DocumentName: doc.Name,
		Bank:         doc.Bank,
		Subtype:      doc.Subtype,
		AvgQuality:   doc.AvgQuality(),
		values:       vs,
		warnings:     ws,
	}
}

// Get returns the value of a canonical field.
func (r *CanonicalRecord) Get(f constants.Field) string {
	return r.values[f]
}

// Lookup resolves header (canonical or aliased, case-insensitive for aliases)
// to its value. The bool result is false for unknown headers.
func (r *CanonicalRecord) Lookup(header string) (string, bool) {
	f, ok := constants.ParseField(header)
	if !ok {
		return "", false
	}
	return r.values[f], true
}

// Row returns the values in canonical column order.
func (r *CanonicalRecord) Row() []string {
	out := make([]string, len(constants.CanonicalFields))
	for i, f := range constants.CanonicalFields {
		out[i] = r.values[f]
	}
	return out
}

// Warnings returns a copy of the non-fatal warnings accumulated while the
// record was built.
func (r *CanonicalRecord) Warnings() []string {
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// FailedDocument identifies a document whose processing failed structurally.
// Sibling documents in the run are unaffected.
type FailedDocument struct {
	DocumentID uuid.UUID
	Name       string
	Reason     string
}

// RunResult is the outcome of one batch run.
type RunResult struct {
	RunID   uuid.UUID
	Records []*CanonicalRecord
	Failed  []FailedDocument
}
