package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/bankcfg"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

const itauContractText = `PAGARE CREDITO DE CONSUMO
N° Operación: 123456789
Nombre y Apellidos del deudor: JUAN ANTONIO MUNOZ ACUNA
C.I/RUT N° : 12.345.678 - 5
Domicilio: AV. LAS CONDES 4321
Comuna: NUNOA
En Santiago, a 29 de mayo de 2023, por la suma de $ 5.000.000
pagadero en 48 cuotas mensuales de $ 135.000`

func testSnapshot(t *testing.T) *bankcfg.Snapshot {
	t.Helper()
	snap, err := bankcfg.NewSnapshot(common.LoadConfig(), bankcfg.Options{Workers: 2}, nil)
	require.NoError(t, err)
	return snap
}

func itauDoc(name string) *entity.Document {
	return entity.NewDocument(name, constants.BankItau, []entity.Page{
		{Index: 1, Text: itauContractText, Quality: 0.92},
	})
}

func TestProcessEndToEnd(t *testing.T) {
	rec := trace.NewRecorder()
	p := NewProcessor(nil, testSnapshot(t), rec)

	record, err := p.Process(context.Background(), itauDoc("contrato_100"))
	require.NoError(t, err)

	assert.Equal(t, "123456789", record.Get(constants.FieldOperacion))
	assert.Equal(t, "12345678", record.Get(constants.FieldRUT))
	assert.Equal(t, "5", record.Get(constants.FieldDV))
	assert.Equal(t, "Juan Antonio Muñoz Acuña", record.Get(constants.FieldNombre))
	assert.Equal(t, "Ñuñoa", record.Get(constants.FieldComuna))
	assert.Equal(t, "29-05-2023", record.Get(constants.FieldFechaSuscripcion))
	assert.Equal(t, "5.000.000", record.Get(constants.FieldMontoCredito))
	assert.Equal(t, "48", record.Get(constants.FieldCuotas))
	assert.Equal(t, "CC", record.Get(constants.FieldProducto), "detected subtype fills PRODUCTO")
}

func TestProcessStageOrderInTrace(t *testing.T) {
	rec := trace.NewRecorder()
	p := NewProcessor(nil, testSnapshot(t), rec)
	doc := itauDoc("contrato_101")

	_, err := p.Process(context.Background(), doc)
	require.NoError(t, err)

	entries := rec.FieldTrace(doc.ID, constants.FieldComuna)
	require.Len(t, entries, 5)
	wantStages := []constants.Stage{
		constants.StageExtract,
		constants.StageResolve,
		constants.StageNormalize,
		constants.StageFuzzyComuna,
		constants.StageAssemble,
	}
	for i, e := range entries {
		assert.Equal(t, wantStages[i], e.Stage)
		assert.Equal(t, i+1, e.Seq)
	}
	assert.True(t, entries[3].Matched)
	assert.Contains(t, entries[3].Output, "Ñuñoa")
}

func TestProcessLogsRunAndDocumentIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewProcessor(logger, testSnapshot(t), trace.NewRecorder())

	ctx := common.WithRunID(context.Background(), "run-123")
	ctx = common.WithDocumentID(ctx, "doc-456")

	_, err := p.Process(ctx, itauDoc("contrato_110"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run_id=run-123")
	assert.Contains(t, out, "document_id=doc-456")

	// a bare context logs without the identifiers
	buf.Reset()
	_, err = p.Process(context.Background(), itauDoc("contrato_111"))
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "run_id=")
}

func TestProcessUnmatchedFieldTraced(t *testing.T) {
	rec := trace.NewRecorder()
	p := NewProcessor(nil, testSnapshot(t), rec)
	doc := itauDoc("contrato_102")

	record, err := p.Process(context.Background(), doc)
	require.NoError(t, err)

	// no exhorto clause in the text: field is empty but present, with a trace
	assert.Empty(t, record.Get(constants.FieldExhorto))
	assert.Contains(t, record.Warnings(), constants.WarnNoMatch)

	entries := rec.FieldTrace(doc.ID, constants.FieldExhorto)
	require.NotEmpty(t, entries)
	resolveEntry := entries[0]
	assert.Equal(t, constants.StageResolve, resolveEntry.Stage)
	assert.False(t, resolveEntry.Matched)
}

func TestProcessEmptyDocument(t *testing.T) {
	p := NewProcessor(nil, testSnapshot(t), trace.NewRecorder())
	doc := entity.NewDocument("vacio", constants.BankItau, nil)

	_, err := p.Process(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyDocument)
}

func TestProcessUnknownBank(t *testing.T) {
	p := NewProcessor(nil, testSnapshot(t), trace.NewRecorder())
	doc := entity.NewDocument("raro", constants.BankType("banco_fantasma"), []entity.Page{
		{Index: 1, Text: "algo"},
	})

	_, err := p.Process(context.Background(), doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownBank)
}

func TestRunIsolatesFailures(t *testing.T) {
	cfg := common.LoadConfig()
	snap := testSnapshot(t)
	rec := trace.NewRecorder()
	runner := NewRunner(cfg, snap, NewProcessor(nil, snap, rec), nil)

	good := itauDoc("contrato_103")
	empty := entity.NewDocument("escaneo_fallido", constants.BankItau, nil)

	result, err := runner.Run(context.Background(), []*entity.Document{good, empty})
	require.NoError(t, err, "a failing document never fails the run")

	require.Len(t, result.Records, 1)
	assert.Equal(t, "contrato_103", result.Records[0].DocumentName)

	require.Len(t, result.Failed, 1)
	assert.Equal(t, "escaneo_fallido", result.Failed[0].Name)
	assert.Contains(t, result.Failed[0].Reason, "escaneo_fallido")
	assert.NotEqual(t, result.RunID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestRunPreservesInputOrder(t *testing.T) {
	cfg := common.LoadConfig()
	snap := testSnapshot(t)
	runner := NewRunner(cfg, snap, NewProcessor(nil, snap, trace.NewRecorder()), nil)

	docs := []*entity.Document{
		itauDoc("contrato_a"), itauDoc("contrato_b"), itauDoc("contrato_c"), itauDoc("contrato_d"),
	}
	result, err := runner.Run(context.Background(), docs)
	require.NoError(t, err)

	require.Len(t, result.Records, 4)
	for i, rec := range result.Records {
		assert.Equal(t, docs[i].Name, rec.DocumentName)
	}
}

func TestRunCancelledContext(t *testing.T) {
	cfg := common.LoadConfig()
	snap := testSnapshot(t)
	runner := NewRunner(cfg, snap, NewProcessor(nil, snap, trace.NewRecorder()), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, []*entity.Document{itauDoc("contrato_x")})
	assert.Error(t, err)
}
