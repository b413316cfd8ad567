package extract

import (
	"fmt"
	"log/slog"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/bankcfg"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

// Engine applies a bank's pattern set to every page of a document. Patterns
// are independent: a field whose patterns never match simply contributes zero
// candidates, it cannot block other fields.
type Engine struct {
	logger *slog.Logger
}

func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Extract collects every candidate for every declared field across all
// pages. One trace entry is recorded per page per field attempt, including
// non-matches, so an empty field can later be explained from the trace.
func (e *Engine) Extract(doc *entity.Document, ps *bankcfg.PatternSet, rec *trace.Recorder) map[constants.Field][]entity.Candidate {
	out := make(map[constants.Field][]entity.Candidate)

	for _, field := range ps.Fields() {
		patterns := ps.Patterns(field)
		for _, page := range doc.Pages {
			pageRef := fmt.Sprintf("page %d", page.Index)
			var found []entity.Candidate
			for _, p := range patterns {
				c, ok := firstMatch(p, field, page)
				if ok {
					found = append(found, c)
				}
			}
			out[field] = append(out[field], found...)

			first := ""
			if len(found) > 0 {
				first = found[0].Raw
			}
			rec.Record(doc.ID, field, constants.StageExtract, pageRef, first, len(found) > 0)
		}
		e.logger.Debug("extract.field",
			"document", doc.Name, "field", field, "candidates", len(out[field]))
	}
	return out
}

// firstMatch applies one pattern to one page and returns the first hit. The
// capture-group text becomes the candidate value; its byte offset is kept for
// same-page tie-breaks.
func firstMatch(p bankcfg.CompiledPattern, field constants.Field, page entity.Page) (entity.Candidate, bool) {
	loc := p.Re.FindStringSubmatchIndex(page.Text)
	if loc == nil {
		return entity.Candidate{}, false
	}
	start, end := loc[2*p.Group], loc[2*p.Group+1]
	if start < 0 || end < 0 {
		return entity.Candidate{}, false
	}
	return entity.Candidate{
		Field:     field,
		Raw:       page.Text[start:end],
		PageIndex: page.Index,
		Priority:  p.Priority,
		Position:  start,
	}, true
}
