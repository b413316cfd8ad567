package trace

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

func TestRecordAssignsSequentialSeq(t *testing.T) {
	r := NewRecorder()
	docID := uuid.New()

	r.Record(docID, constants.FieldRUT, constants.StageExtract, "page 1", "12345678", true)
	r.Record(docID, constants.FieldRUT, constants.StageResolve, "2 candidates", "12345678", true)
	r.Record(docID, constants.FieldRUT, constants.StageNormalize, "12345678", "12345678", true)

	entries := r.FieldTrace(docID, constants.FieldRUT)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Equal(t, constants.StageExtract, entries[0].Stage)
	assert.Equal(t, constants.StageNormalize, entries[2].Stage)
}

func TestSeqIsPerDocumentField(t *testing.T) {
	r := NewRecorder()
	docA, docB := uuid.New(), uuid.New()

	r.Record(docA, constants.FieldRUT, constants.StageExtract, "", "", true)
	r.Record(docA, constants.FieldComuna, constants.StageExtract, "", "", true)
	r.Record(docB, constants.FieldRUT, constants.StageExtract, "", "", false)

	assert.Equal(t, 1, r.FieldTrace(docA, constants.FieldComuna)[0].Seq)
	assert.Equal(t, 1, r.FieldTrace(docB, constants.FieldRUT)[0].Seq)
}

func TestConcurrentRecording(t *testing.T) {
	r := NewRecorder()
	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		docID := uuid.New()
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				r.Record(docID, constants.FieldNombre, constants.StageNormalize,
					fmt.Sprintf("in-%d", i), fmt.Sprintf("out-%d", i), true)
			}
			entries := r.FieldTrace(docID, constants.FieldNombre)
			for i, e := range entries {
				if e.Seq != i+1 {
					t.Errorf("seq gap at %d: got %d", i, e.Seq)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, r.Len())
}

func TestCounts(t *testing.T) {
	r := NewRecorder()
	docID := uuid.New()

	r.Record(docID, constants.FieldRUT, constants.StageExtract, "", "x", true)
	r.Record(docID, constants.FieldDV, constants.StageExtract, "", "", false)
	r.Record(docID, constants.FieldRUT, constants.StageResolve, "", "x", true)

	counts := r.Counts()
	assert.Equal(t, StageCounts{Total: 2, Matched: 1, Unmatched: 1}, counts[constants.StageExtract])
	assert.Equal(t, StageCounts{Total: 1, Matched: 1}, counts[constants.StageResolve])
}

func TestSnapshotOrdering(t *testing.T) {
	r := NewRecorder()
	docID := uuid.New()

	r.Record(docID, constants.FieldRUT, constants.StageExtract, "", "", true)
	r.Record(docID, constants.FieldComuna, constants.StageExtract, "", "", true)
	r.Record(docID, constants.FieldRUT, constants.StageResolve, "", "", true)

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, constants.FieldComuna, snap[0].Field, "fields sorted within a document")
	assert.Equal(t, 1, snap[1].Seq)
	assert.Equal(t, 2, snap[2].Seq)
}

func TestFieldTraceReturnsCopy(t *testing.T) {
	r := NewRecorder()
	docID := uuid.New()
	r.Record(docID, constants.FieldRUT, constants.StageExtract, "", "orig", true)

	entries := r.FieldTrace(docID, constants.FieldRUT)
	entries[0].Output = "mutated"

	assert.Equal(t, "orig", r.FieldTrace(docID, constants.FieldRUT)[0].Output)
}
