package extract

import (
	"regexp"
	"strings"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
)

// Indicator phrases for Itaú promissory notes (PP) vs consumer credit (CC).
var (
	ppIndicators = []string{
		"PAGARÉ", "PAGARE", "DOCUMENTO MERCANTIL",
		"VALOR RECIBIDO", "CONTRAVALOR RECIBIDO", "ME OBLIGO A PAGAR",
		"VENCIMIENTO",
	}
	ccIndicators = []string{
		"CRÉDITO DE CONSUMO", "CREDITO DE CONSUMO", "LÍNEA DE CRÉDITO",
		"CONTRATO DE MUTUO", "CUOTAS", "TASA DE INTERÉS", "CRONOGRAMA",
		"TABLA DE DESARROLLO", "PLAN DE PAGOS",
	}

	reCuotasClause  = regexp.MustCompile(`(?i)\ben\s+\d+\s+cuotas\b`)
	rePagareCredito = regexp.MustCompile(`(?i)pagar[ée]?\s+cr[ée]dito\s+de?\s+consumo`)
	reObligoPagar   = regexp.MustCompile(`(?i)pagar[ée]|me\s+obligo\s+a\s+pagar`)
	reIdentityBlock = regexp.MustCompile(`(?i)Nombre\s+y\s+Apellidos\s+del\s+deudor`)
	reCedulaLabel   = regexp.MustCompile(`(?i)C[eé]dula\s+de\s+Identidad`)
)

// DetectSubtype scores PP vs CC indicator phrases across all pages.
// "PAGARE CREDITO CONSUMO" counts heavily as CC despite the word "pagaré".
func DetectSubtype(pages []entity.Page) constants.DocSubtype {
	var combined strings.Builder
	for _, p := range pages {
		combined.WriteString(p.Text)
		combined.WriteByte('\n')
	}
	text := combined.String()
	upper := strings.ToUpper(text)

	ppScore, ccScore := 0, 0
	for _, ind := range ppIndicators {
		if strings.Contains(upper, ind) {
			ppScore++
		}
	}
	for _, ind := range ccIndicators {
		if strings.Contains(upper, ind) {
			ccScore++
		}
	}

	if reCuotasClause.MatchString(text) {
		ccScore += 3
	}
	if rePagareCredito.MatchString(text) {
		ccScore += 10
	}
	if reObligoPagar.MatchString(text) {
		ppScore += 3
	}
	if reIdentityBlock.MatchString(text) && reCedulaLabel.MatchString(text) {
		ccScore += 4
	}

	if ppScore > ccScore {
		return constants.SubtypePagare
	}
	return constants.SubtypeCreditoConsumo
}
