package bankcfg

import (
	"fmt"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

// Shared pattern fragments. The degraded "N°" glyph frequently OCRs as "N*"
// or "N?", hence the loose character classes.
const (
	spanishLongDate = `(\d{1,2}\s+de\s+[a-záéíóúñ]+\s+de\s+\d{4})`
	numericDate     = `([0-3]?\d[/\-][01]?\d[/\-](?:20)?\d{2})`
)

// defaultSpecs holds the built-in extraction patterns per bank, distilled
// from the per-bank processors of the source material. External JSON configs
// override these wholesale.
var defaultSpecs = map[constants.BankType]map[constants.Field][]PatternSpec{
	constants.BankItau:      itauSpecs(),
	constants.BankSantander: santanderSpecs(),
	constants.BankIndisa:    indisaSpecs(),
}

func itauSpecs() map[constants.Field][]PatternSpec {
	rutLabeled := []PatternSpec{
		// promissory-note identity labels, highest confidence
		{Expr: `(?i)C\.?L\s*[/\\]\s*RUT\s+N[°º*?]?\s*[:\s]+([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 1, Priority: 20},
		{Expr: `(?i)C\.?I\s*[/\\]\s*RUT\s+N[°º*?]?\s*[:\s]+([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 1, Priority: 18},
		{Expr: `(?i)C[eé]dula\s+de\s+Identidad\s*N[°º*?]?\s*:?\s*([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 1, Priority: 12},
		{Expr: `(?i)\bRUT\b[^:\d]{0,10}[:\s]*([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 1, Priority: 10},
		// dotted and bare fallbacks
		{Expr: `([0-9]{1,3}(?:\.[0-9]{3}){1,2})\s*[-\s–—]*([0-9Kk])\b`, Group: 1, Priority: 3},
		{Expr: `\b(\d{7,8})\s*[-–—]\s*([0-9Kk])\b`, Group: 1, Priority: 2},
	}
	dvPatterns := make([]PatternSpec, len(rutLabeled))
	for i, p := range rutLabeled {
		dvPatterns[i] = PatternSpec{Expr: p.Expr, Group: 2, Priority: p.Priority}
	}

	return map[constants.Field][]PatternSpec{
		constants.FieldOperacion: {
			{Expr: `(?i)N[°º*?]?\s*Operaci[oó]n[:\s]*([0-9]{6,})`, Group: 1, Priority: 10},
			{Expr: `(?i)\bOperaci[oó]n\s*N[°º*?]?\s*([0-9]{6,})`, Group: 1, Priority: 9},
			{Expr: `(?i)N[°º*?]?\s*Producto[:\s]*([0-9]{6,})`, Group: 1, Priority: 7},
			{Expr: `(?i)\bProducto\s*N[°º*?]?\s*[:\s]*([0-9]{6,})`, Group: 1, Priority: 6},
		},
		constants.FieldRUT: rutLabeled,
		constants.FieldDV:  dvPatterns,
		constants.FieldNombre: {
			{Expr: `(?im)^\s*Nombre\s+y\s+Apellidos\s+del\s+deudor\s*:\s*(.+)$`, Group: 1, Priority: 10},
			{Expr: `(?im)^\s*(?:Suscriptor(?:\s+o\s+Deudor)?|Deudor|Cliente/Deudor)[:.\s-]+(.+)$`, Group: 1, Priority: 5},
		},
		constants.FieldDireccion: {
			{Expr: `(?im)^\s*Domicilio\s*:\s*([^,\n]+)`, Group: 1, Priority: 10},
			{Expr: `(?im)^\s*Direcci[oó]n\s+Informativa\s*:\s*([^,\n]+)`, Group: 1, Priority: 8},
		},
		constants.FieldComuna: {
			{Expr: `(?im)^\s*Comuna\s*:\s*(.+)$`, Group: 1, Priority: 10},
			{Expr: `(?im)^\s*Direcci[oó]n\s+Informativa\s*:.*,\s*([A-Za-zÁÉÍÓÚÑáéíóúñ ]+)\s*$`, Group: 1, Priority: 5},
		},
		constants.FieldFechaSuscripcion: {
			{Expr: `(?i)\ba\s+` + spanishLongDate, Group: 1, Priority: 10},
			{Expr: `(?i)\bel\s+d[ií]a\s+` + spanishLongDate, Group: 1, Priority: 9},
			{Expr: `(?i)\b` + spanishLongDate, Group: 1, Priority: 5},
			{Expr: `\b` + numericDate + `\b`, Group: 1, Priority: 3},
		},
		constants.FieldMontoCredito: {
			{Expr: `(?i)(?:la\s+suma\s+de|cantidad\s+de)[^$0-9]{0,10}\$?\s*([0-9.,]+)`, Group: 1, Priority: 10},
			{Expr: `\$\s*([0-9.,]+)`, Group: 1, Priority: 3},
		},
		constants.FieldCuotas: {
			{Expr: `(?i)\ben\s+(\d{1,3})\s+cuotas\b`, Group: 1, Priority: 10},
			{Expr: `(?i)\b(\d{1,3})\s+cuotas\s+(?:mensuales|iguales)\b`, Group: 1, Priority: 8},
		},
		constants.FieldTasa: {
			{Expr: `(?i)tasa\s+(?:de\s+)?inter[eé]s[^0-9%]{0,20}(\d+(?:[.,]\d+)?)\s*%`, Group: 1, Priority: 10},
			{Expr: `(?i)inter[eé]s\s+(?:mensual|anual)[^0-9%]{0,15}(\d+(?:[.,]\d+)?)\s*%`, Group: 1, Priority: 8},
		},
		constants.FieldMontoCuota: {
			{Expr: `(?i)cuotas?\s+(?:mensuales\s+)?(?:iguales\s+)?de\s+\$?\s*([0-9.,]+)`, Group: 1, Priority: 8},
		},
		constants.FieldFechaVenc1Cuota: {
			{Expr: `(?i)primera\s+cuota\s+el\s+d[ií]a\s+` + spanishLongDate, Group: 1, Priority: 10},
			{Expr: `(?i)venciendo\s+la\s+primera\s+cuota\s+el\s+d[ií]a\s+` + spanishLongDate, Group: 1, Priority: 9},
			{Expr: `(?i)1[aª]?\s+cuota[:\s]*` + numericDate, Group: 1, Priority: 5},
		},
		constants.FieldFechaVencUltima: {
			{Expr: `(?i)la\s+[uú]ltima\s+el\s+` + spanishLongDate, Group: 1, Priority: 10},
			{Expr: `(?i)[uú]ltima\s+cuota\s+el\s+d[ií]a\s+` + spanishLongDate, Group: 1, Priority: 9},
			{Expr: `(?i)[uú]ltima\s+cuota[:\s]*` + numericDate, Group: 1, Priority: 5},
		},
		constants.FieldCapital: {
			{Expr: `(?i)capital\s+insoluto[^$0-9]{0,20}\$?\s*([0-9.,]+)`, Group: 1, Priority: 8},
		},
		constants.FieldProducto: {
			{Expr: `(?i)\bProducto\s*[:\-]\s*([A-Z]{1,4})\b`, Group: 1, Priority: 5},
		},
		constants.FieldNombreApoderado: {
			{Expr: `(?i)Representante\s*1[:\s.\-]+([^\n]+)`, Group: 1, Priority: 5},
			{Expr: `(?i)\bApoderado\s*[:\-]\s*([^,\n]+)`, Group: 1, Priority: 3},
		},
		constants.FieldNombreApoderado2: {
			{Expr: `(?i)Representante\s*2[:\s.\-]+([^\n]+)`, Group: 1, Priority: 5},
		},
	}
}

// santanderSpecs reuses the Itaú shapes with Santander's identity labels;
// the two banks share most clause wording.
func santanderSpecs() map[constants.Field][]PatternSpec {
	specs := itauSpecs()
	specs[constants.FieldRUT] = append([]PatternSpec{
		{Expr: `(?i)RUT\s+(?:del\s+)?(?:Deudor|Cliente)\s*N[°º*?]?\s*[:\s]+([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 1, Priority: 20},
	}, specs[constants.FieldRUT]...)
	specs[constants.FieldDV] = append([]PatternSpec{
		{Expr: `(?i)RUT\s+(?:del\s+)?(?:Deudor|Cliente)\s*N[°º*?]?\s*[:\s]+([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 2, Priority: 20},
	}, specs[constants.FieldDV]...)
	specs[constants.FieldNombre] = append([]PatternSpec{
		{Expr: `(?im)^\s*Nombre\s+(?:del\s+)?(?:Deudor|Cliente)\s*:\s*(.+)$`, Group: 1, Priority: 12},
	}, specs[constants.FieldNombre]...)
	return specs
}

// indisaSpecs covers the plain labeled layout of Indisa credit notes.
func indisaSpecs() map[constants.Field][]PatternSpec {
	return map[constants.Field][]PatternSpec{
		constants.FieldOperacion: {
			{Expr: `(?i)N[°º*?]?\s*(?:de\s+)?(?:Operaci[oó]n|Cr[eé]dito)[:\s]*([0-9]{5,})`, Group: 1, Priority: 10},
		},
		constants.FieldRUT: {
			{Expr: `(?i)\bRUT\b[^:\d]{0,10}[:\s]*([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 1, Priority: 10},
			{Expr: `\b(\d{7,8})\s*[-–—]\s*([0-9Kk])\b`, Group: 1, Priority: 2},
		},
		constants.FieldDV: {
			{Expr: `(?i)\bRUT\b[^:\d]{0,10}[:\s]*([\d.,]{6,})\s*[-–—]?\s*([0-9Kk])`, Group: 2, Priority: 10},
			{Expr: `\b(\d{7,8})\s*[-–—]\s*([0-9Kk])\b`, Group: 2, Priority: 2},
		},
		constants.FieldNombre: {
			{Expr: `(?im)^\s*(?:Nombre|Paciente|Cliente)\s*:\s*(.+)$`, Group: 1, Priority: 10},
		},
		constants.FieldDireccion: {
			{Expr: `(?im)^\s*(?:Domicilio|Direcci[oó]n)\s*:\s*([^,\n]+)`, Group: 1, Priority: 10},
		},
		constants.FieldComuna: {
			{Expr: `(?im)^\s*Comuna\s*:\s*(.+)$`, Group: 1, Priority: 10},
		},
		constants.FieldFechaSuscripcion: {
			{Expr: `(?i)\b` + spanishLongDate, Group: 1, Priority: 5},
			{Expr: `\b` + numericDate + `\b`, Group: 1, Priority: 3},
		},
		constants.FieldMontoCredito: {
			{Expr: `(?i)monto\s+(?:total|del\s+cr[eé]dito)[^$0-9]{0,10}\$?\s*([0-9.,]+)`, Group: 1, Priority: 10},
			{Expr: `\$\s*([0-9.,]+)`, Group: 1, Priority: 3},
		},
		constants.FieldCuotas: {
			{Expr: `(?i)\ben\s+(\d{1,3})\s+cuotas\b`, Group: 1, Priority: 10},
		},
	}
}

// DefaultPatternSets compiles the built-in per-bank pattern sets.
func DefaultPatternSets() (map[constants.BankType]*PatternSet, error) {
	out := make(map[constants.BankType]*PatternSet, len(defaultSpecs))
	for bank, specs := range defaultSpecs {
		ps, err := CompilePatternSet(bank, specs)
		if err != nil {
			return nil, fmt.Errorf("default patterns %s: %w", bank, err)
		}
		out[bank] = ps
	}
	return out, nil
}
