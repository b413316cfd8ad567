package resolve

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

func TestResolvePicksHighestPriority(t *testing.T) {
	r := NewResolver(nil)
	rec := trace.NewRecorder()
	docID := uuid.New()

	candidates := []entity.Candidate{
		{Field: constants.FieldRUT, Raw: "11111111", PageIndex: 1, Priority: 3, Position: 10},
		{Field: constants.FieldRUT, Raw: "12345678", PageIndex: 2, Priority: 20, Position: 400},
		{Field: constants.FieldRUT, Raw: "22222222", PageIndex: 1, Priority: 10, Position: 5},
	}

	fv := r.Resolve(docID, constants.FieldRUT, candidates, rec)
	assert.Equal(t, constants.FieldMatched, fv.Status)
	assert.Equal(t, "12345678", fv.Raw, "priority beats page and position")
	assert.Empty(t, fv.Warnings)
}

func TestResolveTieBreaks(t *testing.T) {
	r := NewResolver(nil)
	docID := uuid.New()

	// same priority: earlier page wins
	fv := r.Resolve(docID, constants.FieldNombre, []entity.Candidate{
		{Raw: "B", PageIndex: 3, Priority: 5, Position: 0},
		{Raw: "A", PageIndex: 1, Priority: 5, Position: 900},
	}, trace.NewRecorder())
	assert.Equal(t, "A", fv.Raw)

	// same priority and page: earlier position wins
	fv = r.Resolve(docID, constants.FieldNombre, []entity.Candidate{
		{Raw: "B", PageIndex: 1, Priority: 5, Position: 50},
		{Raw: "A", PageIndex: 1, Priority: 5, Position: 10},
	}, trace.NewRecorder())
	assert.Equal(t, "A", fv.Raw)
}

func TestResolveOrderIndependent(t *testing.T) {
	r := NewResolver(nil)
	docID := uuid.New()

	base := []entity.Candidate{
		{Raw: "x", PageIndex: 2, Priority: 8, Position: 30},
		{Raw: "y", PageIndex: 1, Priority: 8, Position: 70},
		{Raw: "z", PageIndex: 1, Priority: 12, Position: 500},
	}
	permutations := [][]entity.Candidate{
		{base[0], base[1], base[2]},
		{base[2], base[0], base[1]},
		{base[1], base[2], base[0]},
	}

	var winners []string
	for _, p := range permutations {
		fv := r.Resolve(docID, constants.FieldDireccion, p, trace.NewRecorder())
		winners = append(winners, fv.Raw)
	}
	assert.Equal(t, []string{"z", "z", "z"}, winners)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	r := NewResolver(nil)
	candidates := []entity.Candidate{
		{Raw: "second", Priority: 1},
		{Raw: "first", Priority: 9},
	}
	_ = r.Resolve(uuid.New(), constants.FieldSucursal, candidates, trace.NewRecorder())
	assert.Equal(t, "second", candidates[0].Raw, "caller slice untouched")
}

func TestResolveEmptySet(t *testing.T) {
	r := NewResolver(nil)
	rec := trace.NewRecorder()
	docID := uuid.New()

	fv := r.Resolve(docID, constants.FieldExhorto, nil, rec)
	assert.Equal(t, constants.FieldUnmatched, fv.Status)
	assert.Empty(t, fv.Raw)
	assert.Contains(t, fv.Warnings, constants.WarnNoMatch)

	entries := rec.FieldTrace(docID, constants.FieldExhorto)
	require.Len(t, entries, 1)
	assert.Equal(t, constants.StageResolve, entries[0].Stage)
	assert.False(t, entries[0].Matched)
}
