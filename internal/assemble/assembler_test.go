package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

func testDoc() *entity.Document {
	doc := entity.NewDocument("contrato_010", constants.BankItau, []entity.Page{
		{Index: 1, Text: "texto", Quality: 0.9},
	})
	doc.Subtype = constants.SubtypeCreditoConsumo
	return doc
}

func values(m map[constants.Field]string) map[constants.Field]entity.FieldValue {
	out := make(map[constants.Field]entity.FieldValue, len(m))
	for f, v := range m {
		out[f] = entity.FieldValue{Field: f, Raw: v, Normalized: v, Status: constants.FieldMatched}
	}
	return out
}

func TestAssembleEveryFieldPresent(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(testDoc(), values(map[constants.Field]string{
		constants.FieldRUT:    "12345678",
		constants.FieldNombre: "Juan Muñoz",
	}), entity.ComunaMatch{}, trace.NewRecorder())

	row := rec.Row()
	require.Len(t, row, len(constants.CanonicalFields))
	assert.Equal(t, "Juan Muñoz", rec.Get(constants.FieldNombre))
	assert.Equal(t, "", rec.Get(constants.FieldSucursal), "absent fields are empty, never missing")
}

func TestAssembleComunaCanonicalSpelling(t *testing.T) {
	a := NewAssembler(nil)
	match := entity.ComunaMatch{Input: "NUNOA", Canonical: "Ñuñoa", Score: 0.95, Resolved: true}

	rec := a.Assemble(testDoc(), values(map[constants.Field]string{
		constants.FieldComuna: "NUNOA",
	}), match, trace.NewRecorder())

	assert.Equal(t, "Ñuñoa", rec.Get(constants.FieldComuna))
	assert.NotContains(t, rec.Warnings(), constants.WarnComunaUnresolved)
}

func TestAssembleComunaUnresolvedKeepsValue(t *testing.T) {
	a := NewAssembler(nil)
	match := entity.ComunaMatch{Input: "XQWZKA", Score: 0.4}

	rec := a.Assemble(testDoc(), values(map[constants.Field]string{
		constants.FieldComuna: "XQWZKA",
	}), match, trace.NewRecorder())

	assert.Equal(t, "XQWZKA", rec.Get(constants.FieldComuna), "normalized spelling kept")
	assert.Contains(t, rec.Warnings(), constants.WarnComunaUnresolved)
}

func TestAssembleFillsMissingCheckDigit(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(testDoc(), values(map[constants.Field]string{
		constants.FieldRUT: "12345678",
	}), entity.ComunaMatch{}, trace.NewRecorder())

	assert.Equal(t, "5", rec.Get(constants.FieldDV))
	assert.NotContains(t, rec.Warnings(), constants.WarnMalformedIdentifier)
}

func TestAssembleFlagsDisagreeingCheckDigit(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(testDoc(), values(map[constants.Field]string{
		constants.FieldRUT: "12345678",
		constants.FieldDV:  "9",
	}), entity.ComunaMatch{}, trace.NewRecorder())

	assert.Equal(t, "9", rec.Get(constants.FieldDV), "OCR value never overwritten")
	assert.Contains(t, rec.Warnings(), constants.WarnMalformedIdentifier)
}

func TestAssembleProductoFallsBackToSubtype(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(testDoc(), values(nil), entity.ComunaMatch{}, trace.NewRecorder())
	assert.Equal(t, "CC", rec.Get(constants.FieldProducto))

	doc := testDoc()
	doc.Subtype = constants.SubtypePagare
	rec = a.Assemble(doc, values(map[constants.Field]string{
		constants.FieldProducto: "CREDITO HIPOTECARIO",
	}), entity.ComunaMatch{}, trace.NewRecorder())
	assert.Equal(t, "CREDITO HIPOTECARIO", rec.Get(constants.FieldProducto), "extracted value wins")
}

func TestAssembleOperationFallsBackToFilename(t *testing.T) {
	a := NewAssembler(nil)

	doc := entity.NewDocument("4191896500082450_PP", constants.BankItau, []entity.Page{
		{Index: 1, Text: "texto", Quality: 0.9},
	})
	rec := a.Assemble(doc, values(nil), entity.ComunaMatch{}, trace.NewRecorder())
	assert.Equal(t, "4191896500082450", rec.Get(constants.FieldOperacion))

	// the longest digit run wins over shorter ones
	doc = entity.NewDocument("op_123_4191896500082450", constants.BankItau, []entity.Page{
		{Index: 1, Text: "texto"},
	})
	rec = a.Assemble(doc, values(nil), entity.ComunaMatch{}, trace.NewRecorder())
	assert.Equal(t, "4191896500082450", rec.Get(constants.FieldOperacion))

	// an extracted operation number is never overridden
	rec = a.Assemble(doc, values(map[constants.Field]string{
		constants.FieldOperacion: "999888777",
	}), entity.ComunaMatch{}, trace.NewRecorder())
	assert.Equal(t, "999888777", rec.Get(constants.FieldOperacion))

	// short digit runs are not operation numbers
	rec = a.Assemble(testDoc(), values(nil), entity.ComunaMatch{}, trace.NewRecorder())
	assert.Empty(t, rec.Get(constants.FieldOperacion))
}

func TestAssembleRecordsTraceAndWarningsSorted(t *testing.T) {
	a := NewAssembler(nil)
	rec := trace.NewRecorder()
	doc := testDoc()

	vs := values(map[constants.Field]string{constants.FieldRUT: "12345678", constants.FieldDV: "9"})
	fv := vs[constants.FieldComuna]
	fv.Warnings = []string{constants.WarnNoMatch}
	vs[constants.FieldComuna] = fv

	out := a.Assemble(doc, vs, entity.ComunaMatch{Input: "X"}, rec)

	warnings := out.Warnings()
	assert.IsIncreasing(t, warnings)
	assert.Contains(t, warnings, constants.WarnNoMatch)

	entries := rec.FieldTrace(doc.ID, constants.FieldRUT)
	require.Len(t, entries, 1)
	assert.Equal(t, constants.StageAssemble, entries[0].Stage)
}

func TestRecordHeaderAliases(t *testing.T) {
	a := NewAssembler(nil)
	rec := a.Assemble(testDoc(), values(map[constants.Field]string{
		constants.FieldDireccion: "Av. Libertad 120",
	}), entity.ComunaMatch{}, trace.NewRecorder())

	v, ok := rec.Lookup("domicilio")
	require.True(t, ok)
	assert.Equal(t, "Av. Libertad 120", v)

	v, ok = rec.Lookup("DIRECCION")
	require.True(t, ok)
	assert.Equal(t, "Av. Libertad 120", v)

	_, ok = rec.Lookup("columna_desconocida")
	assert.False(t, ok)
}
