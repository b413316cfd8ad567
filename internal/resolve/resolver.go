package resolve

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

// Resolver collapses a field's candidate set into at most one raw value.
// Resolution is a pure function of the candidate set: the input is copied and
// fully sorted before picking, so any ordering of the same candidates yields
// the same winner.
type Resolver struct {
	logger *slog.Logger
}

func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Resolve picks the winning candidate: highest pattern priority, then
// earliest page, then earliest match position. An empty set finalizes the
// field as UNMATCHED with an empty raw value.
func (r *Resolver) Resolve(docID uuid.UUID, field constants.Field, candidates []entity.Candidate, rec *trace.Recorder) entity.FieldValue {
	if len(candidates) == 0 {
		rec.Record(docID, field, constants.StageResolve, "0 candidates", "", false)
		return entity.FieldValue{
			Field:    field,
			Status:   constants.FieldUnmatched,
			Warnings: []string{constants.WarnNoMatch},
		}
	}

	sorted := make([]entity.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.PageIndex != b.PageIndex {
			return a.PageIndex < b.PageIndex
		}
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		return a.Raw < b.Raw // total order even for exotic candidate sets
	})

	winner := sorted[0]
	rec.Record(docID, field, constants.StageResolve,
		fmt.Sprintf("%d candidates", len(candidates)), winner.Raw, true)
	r.logger.Debug("resolve.winner",
		"field", field, "priority", winner.Priority, "page", winner.PageIndex)

	return entity.FieldValue{
		Field:  field,
		Raw:    winner.Raw,
		Status: constants.FieldMatched,
	}
}
