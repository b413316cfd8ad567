package normalize

import (
	"log/slog"
	"strings"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

// Engine maps raw extracted strings to normalized field values. It is
// stateless apart from the immutable restoration dictionary, so one engine is
// shared by all concurrent document pipelines.
type Engine struct {
	restorer *Restorer
	logger   *slog.Logger
}

func NewEngine(dictionary map[string]string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{restorer: NewRestorer(dictionary), logger: logger}
}

// Normalize rewrites raw according to the field's value kind. The returned
// warnings use the codes of the constants package and never block the value.
func (e *Engine) Normalize(field constants.Field, raw string) (string, []string) {
	var warnings []string
	var out string

	switch field.Kind() {
	case constants.KindText:
		out = e.normalizeText(field, raw)
	case constants.KindIdentifier:
		out, warnings = e.normalizeIdentifier(field, raw)
	case constants.KindMoney:
		out = NormalizeMoney(raw)
	case constants.KindInteger:
		out = NormalizeInteger(raw)
	case constants.KindRate:
		out = NormalizeRate(raw)
	case constants.KindDate:
		out = NormalizeDate(raw)
	default:
		out = CollapseWhitespace(raw)
	}
	return out, warnings
}

// normalizeText cleans whitespace and casing, then runs the Ñ/accent
// restoration pass. Names and addresses are title-cased; comuna strings stay
// upper-case for gazetteer matching.
func (e *Engine) normalizeText(field constants.Field, raw string) string {
	s := CleanToken(CollapseWhitespace(raw))
	if s == "" {
		return ""
	}
	switch field {
	case constants.FieldComuna:
		s = strings.ToUpper(s)
	case constants.FieldNombre, constants.FieldDireccion,
		constants.FieldNombreApoderado, constants.FieldNombreApoderado2:
		s = TitleCase(s)
	default:
		s = CollapseWhitespace(s)
	}
	return e.restorer.Apply(s)
}

// normalizeIdentifier strips separators and validates shape. A malformed
// identifier is flagged but still carried through best-effort.
func (e *Engine) normalizeIdentifier(field constants.Field, raw string) (string, []string) {
	switch field {
	case constants.FieldRUT:
		rut := CleanRUT(raw)
		if rut != "" && !ValidRUTFormat(rut) {
			e.logger.Warn("normalize.rut.malformed", "raw", raw, "cleaned", rut)
			return rut, []string{constants.WarnMalformedIdentifier}
		}
		return rut, nil
	case constants.FieldDV:
		dv := CleanDV(raw)
		if dv != "" && !strings.ContainsAny(dv, "0123456789K") {
			e.logger.Warn("normalize.dv.malformed", "raw", raw)
			return dv, []string{constants.WarnMalformedIdentifier}
		}
		return dv, nil
	default:
		// operation numbers and similar: digits only
		s := CleanRUT(raw)
		if s == "" {
			s = CollapseWhitespace(raw)
		}
		return s, nil
	}
}

// Restore exposes the dictionary pass on its own; used by tests and by the
// comuna matcher's pre-pass.
func (e *Engine) Restore(s string) string {
	return e.restorer.Apply(s)
}
