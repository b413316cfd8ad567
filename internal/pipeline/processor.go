package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/assemble"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/bankcfg"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/comuna"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/extract"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/normalize"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/resolve"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

// Processor runs one document through extraction, resolution, normalization,
// fuzzy comuna matching and assembly, in that order per field. All engines
// read only the immutable snapshot, so one processor serves every worker.
type Processor struct {
	Logger     *slog.Logger
	Snapshot   *bankcfg.Snapshot
	Extractor  *extract.Engine
	Resolver   *resolve.Resolver
	Normalizer *normalize.Engine
	Matcher    *comuna.Matcher
	Assembler  *assemble.Assembler
	Trace      *trace.Recorder
}

func NewProcessor(logger *slog.Logger, snap *bankcfg.Snapshot, rec *trace.Recorder) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:     logger,
		Snapshot:   snap,
		Extractor:  extract.NewEngine(logger),
		Resolver:   resolve.NewResolver(logger),
		Normalizer: normalize.NewEngine(snap.Dictionary, logger),
		Matcher:    comuna.NewMatcher(snap.Gazetteer, snap.FuzzyThreshold, logger),
		Assembler:  assemble.NewAssembler(logger),
		Trace:      rec,
	}
}

// Process produces the canonical record for one document. Structural
// problems (no pages, unknown bank) fail this document only; per-field
// conditions become record warnings, never errors.
func (p *Processor) Process(ctx context.Context, doc *entity.Document) (*entity.CanonicalRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc.Pages) == 0 {
		return nil, common.NewAppError("DOCUMENT_PROCESSING_FAILURE", doc.Name, common.ErrEmptyDocument)
	}
	ps, err := p.Snapshot.PatternsFor(doc.Bank)
	if err != nil {
		return nil, common.NewAppError("DOCUMENT_PROCESSING_FAILURE", doc.Name, err)
	}

	if doc.Subtype == "" {
		doc.Subtype = extract.DetectSubtype(doc.Pages)
	}
	p.requestLogger(ctx).Info("pipeline.start",
		"document", doc.Name, "bank", doc.Bank, "subtype", doc.Subtype, "pages", len(doc.Pages))

	candidates := p.Extractor.Extract(doc, ps, p.Trace)

	// each field walks the full stage order before the next stage of any
	// consumer runs on it; fields themselves are independent
	values := make(map[constants.Field]entity.FieldValue, len(constants.CanonicalFields))
	for _, field := range constants.CanonicalFields {
		fv := p.Resolver.Resolve(doc.ID, field, candidates[field], p.Trace)

		normalized, warns := p.Normalizer.Normalize(field, fv.Raw)
		fv.Normalized = normalized
		fv.Warnings = append(fv.Warnings, warns...)
		p.Trace.Record(doc.ID, field, constants.StageNormalize, fv.Raw, normalized, normalized != "")

		values[field] = fv
	}

	match := p.matchComuna(doc, values[constants.FieldComuna])

	record := p.Assembler.Assemble(doc, values, match, p.Trace)
	return record, nil
}

// requestLogger annotates the processor logger with the run and document
// identifiers the runner put on the context.
func (p *Processor) requestLogger(ctx context.Context) *slog.Logger {
	logger := p.Logger
	if runID := common.RunIDFromContext(ctx); runID != "" {
		logger = logger.With("run_id", runID)
	}
	if docID := common.DocumentIDFromContext(ctx); docID != "" {
		logger = logger.With("document_id", docID)
	}
	return logger
}

// matchComuna runs the fuzzy matcher on the normalized comuna value and
// traces the outcome with its score.
func (p *Processor) matchComuna(doc *entity.Document, fv entity.FieldValue) entity.ComunaMatch {
	match := p.Matcher.Match(fv.Normalized)

	outcome := "UNRESOLVED"
	if match.Resolved {
		outcome = match.Canonical
	}
	p.Trace.Record(doc.ID, constants.FieldComuna, constants.StageFuzzyComuna,
		fv.Normalized, fmt.Sprintf("%s score=%.2f", outcome, match.Score), match.Resolved)
	return match
}
