package assemble

import (
	"log/slog"
	"regexp"
	"sort"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/normalize"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/trace"
)

// Assembler merges finalized field values and the comuna match into one
// canonical record. The record always carries every canonical field and is
// produced even when everything failed to match; warnings tell downstream
// consumers what to distrust.
type Assembler struct {
	logger *slog.Logger
}

func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger}
}

// Assemble builds the record for one document. Cross-field repairs happen
// here: a missing check digit is computed from the RUT, a disagreeing one is
// flagged but kept.
func (a *Assembler) Assemble(doc *entity.Document, values map[constants.Field]entity.FieldValue, comunaMatch entity.ComunaMatch, rec *trace.Recorder) *entity.CanonicalRecord {
	finals := make(map[constants.Field]string, len(constants.CanonicalFields))
	warnSet := make(map[string]struct{})

	for _, f := range constants.CanonicalFields {
		fv := values[f]
		finals[f] = fv.Normalized
		for _, w := range fv.Warnings {
			warnSet[w] = struct{}{}
		}
	}

	// comuna: prefer the gazetteer's canonical spelling
	if comunaMatch.Resolved {
		finals[constants.FieldComuna] = comunaMatch.Canonical
	} else if comunaMatch.Input != "" {
		warnSet[constants.WarnComunaUnresolved] = struct{}{}
	}

	a.repairCheckDigit(finals, warnSet)

	// subtype stands in for an unextracted product code, as in the source
	// workbooks ("PP" / "CC")
	if finals[constants.FieldProducto] == "" && doc.Subtype != "" {
		finals[constants.FieldProducto] = string(doc.Subtype)
	}

	// scan batches name files after the operation number, so the file name is
	// the fallback when no pattern matched one
	if finals[constants.FieldOperacion] == "" {
		if op := operationFromName(doc.Name); op != "" {
			finals[constants.FieldOperacion] = op
		}
	}

	for _, f := range constants.CanonicalFields {
		rec.Record(doc.ID, f, constants.StageAssemble, values[f].Normalized, finals[f], finals[f] != "")
	}

	warnings := make([]string, 0, len(warnSet))
	for w := range warnSet {
		warnings = append(warnings, w)
	}
	sort.Strings(warnings)

	record := entity.NewCanonicalRecord(doc, finals, warnings)
	a.logger.Info("assemble.ok",
		"document", doc.Name,
		"rut", finals[constants.FieldRUT],
		"comuna", finals[constants.FieldComuna],
		"warnings", len(warnings),
	)
	return record
}

var reDigitRun = regexp.MustCompile(`\d+`)

// operationFromName recovers the operation number from a file name like
// "4191896500082450_PP": the longest run of six or more digits.
func operationFromName(name string) string {
	best := ""
	for _, run := range reDigitRun.FindAllString(name, -1) {
		if len(run) > len(best) {
			best = run
		}
	}
	if len(best) < 6 {
		return ""
	}
	return best
}

// repairCheckDigit fills an absent DV from the RUT body and flags a present
// one that fails module-11 validation. The OCR'd value is never overwritten.
func (a *Assembler) repairCheckDigit(finals map[constants.Field]string, warnSet map[string]struct{}) {
	rut := finals[constants.FieldRUT]
	dv := finals[constants.FieldDV]
	if rut == "" {
		return
	}
	switch {
	case dv == "":
		finals[constants.FieldDV] = normalize.ComputeDV(rut)
	case !normalize.ValidateRUT(rut, dv):
		warnSet[constants.WarnMalformedIdentifier] = struct{}{}
		a.logger.Warn("assemble.dv.mismatch",
			"rut", rut, "dv", dv, "expected", normalize.ComputeDV(rut))
	}
}
