package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

// Service turns canonical records into the delivery artifacts: an XLSX
// workbook in canonical column order, plus an optional CSV twin.
type Service struct {
	sheetName string
	logger    *slog.Logger
}

func NewService(sheetName string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sheetName == "" {
		sheetName = "Datos_Contratos"
	}
	return &Service{sheetName: sheetName, logger: logger}
}

// XLSXBytes renders the workbook for a run. Columns follow canonical field
// order; a trailing column carries the record's warning codes.
func (s *Service) XLSXBytes(result *entity.RunResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	sheet := s.sheetName
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	headers := headerRow()
	for i, h := range headers {
		write(i+1, 1, h)
	}

	for i, rec := range result.Records {
		row := i + 2
		for col, v := range rec.Row() {
			write(col+1, row, v)
		}
		write(len(constants.CanonicalFields)+1, row, joinWarnings(rec))
	}

	// name and address columns get most of the width
	_ = f.SetColWidth(sheet, "A", "B", 14)
	_ = f.SetColWidth(sheet, "D", "E", 34)
	_ = f.SetColWidth(sheet, "F", "F", 18)
	_ = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"run_id", result.RunID.String(),
		"rows", len(result.Records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// WriteXLSX writes the workbook to outDir, named after the run.
func (s *Service) WriteXLSX(result *entity.RunResult, outDir string) (string, error) {
	data, err := s.XLSXBytes(result)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outDir, fmt.Sprintf("contratos_%s.xlsx", result.RunID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}
	return path, nil
}

// WriteCSV writes the same rows as a CSV file next to the workbook.
func (s *Service) WriteCSV(result *entity.RunResult, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outDir, fmt.Sprintf("contratos_%s.csv", result.RunID))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(headerRow()); err != nil {
		return "", fmt.Errorf("csv header: %w", err)
	}
	for _, rec := range result.Records {
		row := append(rec.Row(), joinWarnings(rec))
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("csv flush: %w", err)
	}
	s.logger.Info("export.csv.ok", "run_id", result.RunID.String(), "rows", len(result.Records), "path", path)
	return path, nil
}

func headerRow() []string {
	out := make([]string, 0, len(constants.CanonicalFields)+1)
	for _, f := range constants.CanonicalFields {
		out = append(out, string(f))
	}
	return append(out, "ADVERTENCIAS")
}

func joinWarnings(rec *entity.CanonicalRecord) string {
	return strings.Join(rec.Warnings(), ";")
}
