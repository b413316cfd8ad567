package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

func testResult() *entity.RunResult {
	doc := entity.NewDocument("contrato_200", constants.BankItau, []entity.Page{{Index: 1, Text: "t", Quality: 1}})
	doc.Subtype = constants.SubtypeCreditoConsumo
	rec := entity.NewCanonicalRecord(doc, map[constants.Field]string{
		constants.FieldRUT:    "12345678",
		constants.FieldDV:     "5",
		constants.FieldComuna: "Ñuñoa",
	}, []string{constants.WarnNoMatch})
	return &entity.RunResult{RunID: uuid.New(), Records: []*entity.CanonicalRecord{rec}}
}

func TestXLSXBytesRoundTrip(t *testing.T) {
	s := NewService("Datos_Contratos", nil)
	data, err := s.XLSXBytes(testResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Datos_Contratos")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	require.Len(t, header, len(constants.CanonicalFields)+1)
	assert.Equal(t, "OPERACION_1", header[0])
	assert.Equal(t, "ADVERTENCIAS", header[len(header)-1])

	row := rows[1]
	assert.Equal(t, "12345678", row[1])
	assert.Equal(t, "Ñuñoa", row[5])
	assert.Equal(t, constants.WarnNoMatch, row[len(header)-1])
}

func TestWriteCSV(t *testing.T) {
	s := NewService("", nil)
	dir := t.TempDir()

	path, err := s.WriteCSV(testResult(), dir)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "RUT", records[0][1])
	assert.Equal(t, "5", records[1][2])
}
