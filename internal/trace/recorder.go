package trace

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

type key struct {
	doc   uuid.UUID
	field constants.Field
}

// StageCounts aggregates trace activity for one stage.
type StageCounts struct {
	Total     int
	Matched   int
	Unmatched int
}

// Recorder is the run-scoped, append-only transformation log. Appends from
// concurrently processed documents are serialized by a mutex, so entries
// never interleave within a key and per-(document, field) order is the append
// order; no ordering holds across documents.
type Recorder struct {
	mu      sync.Mutex
	entries map[key][]entity.TraceEntry
	counts  map[constants.Stage]StageCounts
}

func NewRecorder() *Recorder {
	return &Recorder{
		entries: make(map[key][]entity.TraceEntry),
		counts:  make(map[constants.Stage]StageCounts),
	}
}

// Record appends one entry. Seq is assigned here and increases monotonically
// within the (document, field) sequence.
func (r *Recorder) Record(docID uuid.UUID, field constants.Field, stage constants.Stage, input, output string, matched bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{doc: docID, field: field}
	e := entity.TraceEntry{
		DocumentID: docID,
		Field:      field,
		Stage:      stage,
		Input:      input,
		Output:     output,
		Matched:    matched,
		Seq:        len(r.entries[k]) + 1,
		At:         time.Now().UTC(),
	}
	r.entries[k] = append(r.entries[k], e)

	c := r.counts[stage]
	c.Total++
	if matched {
		c.Matched++
	} else {
		c.Unmatched++
	}
	r.counts[stage] = c
}

// FieldTrace returns the ordered trace for one (document, field), copied so
// callers cannot mutate the log.
func (r *Recorder) FieldTrace(docID uuid.UUID, field constants.Field) []entity.TraceEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	src := r.entries[key{doc: docID, field: field}]
	out := make([]entity.TraceEntry, len(src))
	copy(out, src)
	return out
}

// Counts returns per-stage aggregates for summary reporting.
func (r *Recorder) Counts() map[constants.Stage]StageCounts {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[constants.Stage]StageCounts, len(r.counts))
	for s, c := range r.counts {
		out[s] = c
	}
	return out
}

// Len returns the total number of entries.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, es := range r.entries {
		n += len(es)
	}
	return n
}

// Snapshot returns every entry in a deterministic order (document, field,
// seq) for persistence at run end.
func (r *Recorder) Snapshot() []entity.TraceEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.TraceEntry, 0, 64)
	for _, es := range r.entries {
		out = append(out, es...)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DocumentID != b.DocumentID {
			return a.DocumentID.String() < b.DocumentID.String()
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.Seq < b.Seq
	})
	return out
}
