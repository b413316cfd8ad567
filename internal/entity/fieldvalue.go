package entity

import "github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"

// Candidate is a raw match for a field before tie-break resolution. It lives
// only between extraction and resolution.
type Candidate struct {
	Field     constants.Field
	Raw       string
	PageIndex int
	Priority  int // declared on the pattern; higher wins
	Position  int // byte offset of the match on its page
}

// FieldValue is the resolved then normalized value of one canonical field.
type FieldValue struct {
	Field      constants.Field
	Raw        string // winning candidate text, "" when unmatched
	Normalized string
	Status     constants.FieldStatus
	Warnings   []string
}

// ComunaMatch is the outcome of fuzzy-matching a normalized comuna string
// against the gazetteer.
type ComunaMatch struct {
	Input     string
	Canonical string // "" when unresolved
	Score     float64
	Resolved  bool
}
