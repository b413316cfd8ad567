package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

// TraceEntry is one immutable audit record: a single stage transition applied
// to a single field of a single document. Entries form an append-only,
// per-(document, field) ordered sequence; Seq is monotonically increasing
// within that key.
type TraceEntry struct {
	DocumentID uuid.UUID
	Field      constants.Field
	Stage      constants.Stage
	Input      string
	Output     string
	Matched    bool // extraction stage: whether the pattern hit
	Seq        int
	At         time.Time
}
