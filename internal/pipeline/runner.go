package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/bankcfg"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

// Runner fans a batch of documents over a bounded worker pool. A failing
// document is reported in the result, never propagated as a group error, so
// one bad scan cannot sink the batch.
type Runner struct {
	logger    *slog.Logger
	processor *Processor
	timeout   time.Duration
	workers   int
}

func NewRunner(cfg *common.Config, snap *bankcfg.Snapshot, proc *Processor, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		logger:    logger,
		processor: proc,
		timeout:   cfg.Pipeline.DocumentTimeout,
		workers:   snap.Workers,
	}
}

// Run processes all documents and returns the per-run outcome. Record order
// in the result follows input order regardless of worker scheduling.
func (r *Runner) Run(ctx context.Context, docs []*entity.Document) (*entity.RunResult, error) {
	runID := uuid.New()
	ctx = common.WithRunID(ctx, runID.String())
	r.logger.Info("run.start", "run_id", runID, "documents", len(docs), "workers", r.workers)

	records := make([]*entity.CanonicalRecord, len(docs))

	var mu sync.Mutex
	var failed []entity.FailedDocument

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, doc := range docs {
		if err := gctx.Err(); err != nil {
			return nil, err
		}
		g.Go(func() error {
			rec, err := r.processOne(gctx, doc)
			if err != nil {
				mu.Lock()
				failed = append(failed, entity.FailedDocument{
					DocumentID: doc.ID,
					Name:       doc.Name,
					Reason:     err.Error(),
				})
				mu.Unlock()
				r.logger.Error("run.document.failed", "run_id", runID, "document", doc.Name, "error", err)
				return nil // isolate the failure, keep siblings running
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*entity.CanonicalRecord, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			out = append(out, rec)
		}
	}
	r.logger.Info("run.done", "run_id", runID, "records", len(out), "failed", len(failed))
	return &entity.RunResult{RunID: runID, Records: out, Failed: failed}, nil
}

// processOne bounds a single document by the configured timeout.
func (r *Runner) processOne(ctx context.Context, doc *entity.Document) (*entity.CanonicalRecord, error) {
	ctx = common.WithDocumentID(ctx, doc.ID.String())
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = common.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.processor.Process(ctx, doc)
}
