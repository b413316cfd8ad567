package constants

// DefaultRestorations is the built-in Ñ/accent restoration table. Keys are
// the ASCII-folded, upper-cased form of the target word (or phrase), so one
// entry matches every OCR variant of it: "NUNOA", "Nunoa" and the
// already-correct "ÑUÑOA" all fold to the same key, which keeps the
// restoration pass idempotent. Values are the canonical upper-case spelling;
// casing of the matched token is preserved on replacement.
var DefaultRestorations = map[string]string{
	// apellidos
	"PENA":      "PEÑA",
	"MUNOZ":     "MUÑOZ",
	"NUNEZ":     "NÚÑEZ",
	"IBANEZ":    "IBAÑEZ",
	"YANEZ":     "YÁÑEZ",
	"ACUNA":     "ACUÑA",
	"ZUNIGA":    "ZÚÑIGA",
	"VICUNA":    "VICUÑA",
	"NIQUEN":    "ÑIQUÉN",
	"MONTANA":   "MONTAÑA",
	"CASTANEDA": "CASTAÑEDA",

	// nombres
	"NINO":  "NIÑO",
	"NINA":  "NIÑA",
	"INIGO": "IÑIGO",
	"INAKI": "IÑAKI",

	// lugares
	"ESPANA":            "ESPAÑA",
	"VINA DEL MAR":      "VIÑA DEL MAR",
	"PENALOLEN":         "PEÑALOLÉN",
	"PENAFLOR":          "PEÑAFLOR",
	"NUNOA":             "ÑUÑOA",
	"NUBLE":             "ÑUBLE",
	"NANCUL":            "ÑANCUL",
	"CANETE":            "CAÑETE",
	"MAIPU":             "MAIPÚ",
	"VALPARAISO":        "VALPARAÍSO",
	"CONCEPCION":        "CONCEPCIÓN",
	"ESTACION CENTRAL":  "ESTACIÓN CENTRAL",
	"SAN JOAQUIN":       "SAN JOAQUÍN",
	"SAN RAMON":         "SAN RAMÓN",
	"CONCHALI":          "CONCHALÍ",
	"QUILPUE":           "QUILPUÉ",
	"CHILLAN":           "CHILLÁN",
	"CURICO":            "CURICÓ",
	"COPIAPO":           "COPIAPÓ",
	"TOME":              "TOMÉ",
	"HUALPEN":           "HUALPÉN",
	"MACHALI":           "MACHALÍ",
	"REQUINOA":          "REQUÍNOA",
	"CURACAVI":          "CURACAVÍ",
	"ALHUE":             "ALHUÉ",
	"OLMUE":             "OLMUÉ",
	"CONCON":            "CONCÓN",
	"PUERTO AYSEN":      "PUERTO AYSÉN",

	// términos legales y comerciales
	"SENOR":  "SEÑOR",
	"SENORA": "SEÑORA",
	"DUENO":  "DUEÑO",
	"ANO":    "AÑO",
	"ANOS":   "AÑOS",
}
