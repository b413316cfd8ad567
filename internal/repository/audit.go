package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	RecordCount int
	FailedCount int
}

type AuditRepository interface {
	// SaveRun persists a run's records, failures and full trace in one
	// transaction.
	SaveRun(ctx context.Context, result *entity.RunResult, entries []entity.TraceEntry) error
	ListRuns(ctx context.Context) ([]RunSummary, error)
	// GetFieldTrace replays the persisted stage sequence for one field of one
	// document, ordered by seq.
	GetFieldTrace(ctx context.Context, documentID uuid.UUID, field constants.Field) ([]entity.TraceEntry, error)
	GetRecordValues(ctx context.Context, documentID uuid.UUID) (map[constants.Field]string, error)
}

type auditRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewAuditRepository(db *sql.DB, logger *slog.Logger) AuditRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &auditRepository{db: db, logger: logger}
}

func (r *auditRepository) SaveRun(ctx context.Context, result *entity.RunResult, entries []entity.TraceEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", common.ErrDatabase, err)
	}
	defer func() { _ = tx.Rollback() }()

	runID := result.RunID.String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, record_count, failed_count) VALUES (?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339), len(result.Records), len(result.Failed))
	if err != nil {
		return fmt.Errorf("%w: insert run: %v", common.ErrDatabase, err)
	}

	for _, rec := range result.Records {
		if err := insertRecord(ctx, tx, runID, rec); err != nil {
			return err
		}
	}
	for _, f := range result.Failed {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO failed_documents (run_id, document_id, name, reason) VALUES (?, ?, ?, ?)`,
			runID, f.DocumentID.String(), f.Name, f.Reason)
		if err != nil {
			return fmt.Errorf("%w: insert failure: %v", common.ErrDatabase, err)
		}
	}
	if err := insertTrace(ctx, tx, runID, entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", common.ErrDatabase, err)
	}
	r.logger.Info("audit.run.saved",
		"run_id", runID, "records", len(result.Records), "failed", len(result.Failed), "trace_entries", len(entries))
	return nil
}

func insertRecord(ctx context.Context, tx *sql.Tx, runID string, rec *entity.CanonicalRecord) error {
	docID := rec.DocumentID.String()
	_, err := tx.ExecContext(ctx,
		`INSERT INTO records (document_id, run_id, document_name, bank, subtype, avg_quality, warnings)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		docID, runID, rec.DocumentName, string(rec.Bank), string(rec.Subtype),
		rec.AvgQuality, strings.Join(rec.Warnings(), ";"))
	if err != nil {
		return fmt.Errorf("%w: insert record: %v", common.ErrDatabase, err)
	}
	for _, f := range constants.CanonicalFields {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO record_fields (document_id, field, value) VALUES (?, ?, ?)`,
			docID, string(f), rec.Get(f))
		if err != nil {
			return fmt.Errorf("%w: insert field: %v", common.ErrDatabase, err)
		}
	}
	return nil
}

func insertTrace(ctx context.Context, tx *sql.Tx, runID string, entries []entity.TraceEntry) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO trace_entries (run_id, document_id, field, stage, input, output, matched, seq, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: prepare trace: %v", common.ErrDatabase, err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		matched := 0
		if e.Matched {
			matched = 1
		}
		_, err = stmt.ExecContext(ctx,
			runID, e.DocumentID.String(), string(e.Field), string(e.Stage),
			e.Input, e.Output, matched, e.Seq, e.At.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("%w: insert trace: %v", common.ErrDatabase, err)
		}
	}
	return nil
}

func (r *auditRepository) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, record_count, failed_count FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: list runs: %v", common.ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var out []RunSummary
	for rows.Next() {
		var (
			id, created         string
			recCount, failCount int
		)
		if err := rows.Scan(&id, &created, &recCount, &failCount); err != nil {
			return nil, fmt.Errorf("%w: scan run: %v", common.ErrDatabase, err)
		}
		rid, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("%w: run id: %v", common.ErrDatabase, err)
		}
		at, _ := time.Parse(time.RFC3339, created)
		out = append(out, RunSummary{ID: rid, CreatedAt: at, RecordCount: recCount, FailedCount: failCount})
	}
	return out, rows.Err()
}

func (r *auditRepository) GetFieldTrace(ctx context.Context, documentID uuid.UUID, field constants.Field) ([]entity.TraceEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT field, stage, input, output, matched, seq, at
		 FROM trace_entries WHERE document_id = ? AND field = ? ORDER BY seq`,
		documentID.String(), string(field))
	if err != nil {
		return nil, fmt.Errorf("%w: query trace: %v", common.ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var out []entity.TraceEntry
	for rows.Next() {
		var (
			f, stage, input, output, at string
			matched, seq                int
		)
		if err := rows.Scan(&f, &stage, &input, &output, &matched, &seq, &at); err != nil {
			return nil, fmt.Errorf("%w: scan trace: %v", common.ErrDatabase, err)
		}
		ts, _ := time.Parse(time.RFC3339Nano, at)
		out = append(out, entity.TraceEntry{
			DocumentID: documentID,
			Field:      constants.Field(f),
			Stage:      constants.Stage(stage),
			Input:      input,
			Output:     output,
			Matched:    matched != 0,
			Seq:        seq,
			At:         ts,
		})
	}
	return out, rows.Err()
}

func (r *auditRepository) GetRecordValues(ctx context.Context, documentID uuid.UUID) (map[constants.Field]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT field, value FROM record_fields WHERE document_id = ?`, documentID.String())
	if err != nil {
		return nil, fmt.Errorf("%w: query record: %v", common.ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[constants.Field]string)
	for rows.Next() {
		var f, v string
		if err := rows.Scan(&f, &v); err != nil {
			return nil, fmt.Errorf("%w: scan record: %v", common.ErrDatabase, err)
		}
		out[constants.Field(f)] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: record %s", common.ErrNotFound, documentID)
	}
	return out, nil
}
