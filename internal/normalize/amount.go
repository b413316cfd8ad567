package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDigits    = regexp.MustCompile(`\d+`)
	reRateToken = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// NormalizeMoney reduces an OCR amount ("$ 1.234.567", "1,234,567 pesos") to
// its digits and re-formats with thousands dots, the convention of the base
// workbook. Returns "" when no digits are present.
func NormalizeMoney(s string) string {
	digits := strings.Join(reDigits.FindAllString(s, -1), "")
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return ""
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return FormatThousandsDot(n)
}

// FormatThousandsDot renders 1234567 as "1.234.567".
func FormatThousandsDot(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// NormalizeInteger keeps the first run of digits ("en 48 cuotas" -> "48").
func NormalizeInteger(s string) string {
	return reDigits.FindString(s)
}

// NormalizeRate extracts a percentage-like number, standardizing the decimal
// separator to a dot ("1,25 %" -> "1.25").
func NormalizeRate(s string) string {
	tok := reRateToken.FindString(s)
	return strings.ReplaceAll(tok, ",", ".")
}
