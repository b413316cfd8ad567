package normalize

import (
	"regexp"
	"strings"
)

var (
	reNonDigit = regexp.MustCompile(`[^\d]`)
	reRUT      = regexp.MustCompile(`^\d{7,8}$`)
)

// CleanRUT strips dots, commas and any other separators from a RUT body,
// leaving digits only.
func CleanRUT(s string) string {
	return reNonDigit.ReplaceAllString(s, "")
}

// CleanDV normalizes a check digit: trimmed, upper-cased K.
func CleanDV(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 0 {
		return ""
	}
	// take the last character; OCR sometimes prefixes a stray dash
	return s[len(s)-1:]
}

// ValidRUTFormat reports whether a cleaned RUT body has the canonical 7-8
// digit shape.
func ValidRUTFormat(rut string) bool {
	return reRUT.MatchString(rut)
}

// ComputeDV returns the module-11 check digit for a cleaned RUT body, or ""
// when the input is not all digits.
func ComputeDV(rut string) string {
	if rut == "" || reNonDigit.MatchString(rut) {
		return ""
	}
	factors := []int{2, 3, 4, 5, 6, 7}
	total := 0
	for i := 0; i < len(rut); i++ {
		d := int(rut[len(rut)-1-i] - '0')
		total += d * factors[i%len(factors)]
	}
	switch r := 11 - total%11; r {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + r))
	}
}

// ValidateRUT checks a cleaned RUT body against its check digit.
func ValidateRUT(rut, dv string) bool {
	if rut == "" || dv == "" {
		return false
	}
	return ComputeDV(rut) == strings.ToUpper(dv)
}
