package repository

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

func testRepo(t *testing.T) AuditRepository {
	t.Helper()
	db, err := Open(context.Background(), Config{Path: filepath.Join(t.TempDir(), "audit.db")}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { Close(db, slog.Default()) })
	return NewAuditRepository(db, nil)
}

func sampleRun(t *testing.T) (*entity.RunResult, []entity.TraceEntry) {
	t.Helper()
	doc := entity.NewDocument("contrato_300", constants.BankItau, []entity.Page{{Index: 1, Text: "t", Quality: 0.8}})
	doc.Subtype = constants.SubtypePagare

	rec := entity.NewCanonicalRecord(doc, map[constants.Field]string{
		constants.FieldRUT:    "12345678",
		constants.FieldComuna: "Ñuñoa",
	}, []string{constants.WarnNoMatch})

	entries := []entity.TraceEntry{
		{DocumentID: doc.ID, Field: constants.FieldRUT, Stage: constants.StageExtract, Input: "page 1", Output: "12.345.678", Matched: true, Seq: 1, At: time.Now().UTC()},
		{DocumentID: doc.ID, Field: constants.FieldRUT, Stage: constants.StageResolve, Input: "1 candidates", Output: "12.345.678", Matched: true, Seq: 2, At: time.Now().UTC()},
		{DocumentID: doc.ID, Field: constants.FieldRUT, Stage: constants.StageNormalize, Input: "12.345.678", Output: "12345678", Matched: true, Seq: 3, At: time.Now().UTC()},
	}

	result := &entity.RunResult{
		RunID:   uuid.New(),
		Records: []*entity.CanonicalRecord{rec},
		Failed:  []entity.FailedDocument{{DocumentID: uuid.New(), Name: "vacio", Reason: "document has no pages"}},
	}
	return result, entries
}

func TestSaveAndReadBackRun(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	result, entries := sampleRun(t)

	require.NoError(t, repo.SaveRun(ctx, result, entries))

	runs, err := repo.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, result.RunID, runs[0].ID)
	assert.Equal(t, 1, runs[0].RecordCount)
	assert.Equal(t, 1, runs[0].FailedCount)

	docID := result.Records[0].DocumentID
	values, err := repo.GetRecordValues(ctx, docID)
	require.NoError(t, err)
	assert.Len(t, values, len(constants.CanonicalFields), "every canonical field persisted")
	assert.Equal(t, "12345678", values[constants.FieldRUT])
	assert.Equal(t, "Ñuñoa", values[constants.FieldComuna])
	assert.Equal(t, "", values[constants.FieldExhorto])
}

func TestGetFieldTraceOrdered(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	result, entries := sampleRun(t)
	require.NoError(t, repo.SaveRun(ctx, result, entries))

	docID := result.Records[0].DocumentID
	got, err := repo.GetFieldTrace(ctx, docID, constants.FieldRUT)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, constants.StageExtract, got[0].Stage)
	assert.Equal(t, constants.StageNormalize, got[2].Stage)
	assert.Equal(t, "12345678", got[2].Output)
	for i, e := range got {
		assert.Equal(t, i+1, e.Seq)
	}
}

func TestGetRecordValuesNotFound(t *testing.T) {
	repo := testRepo(t)
	_, err := repo.GetRecordValues(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
