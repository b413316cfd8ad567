package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// spanishMonths includes the "setiembre" variant common in scanned contracts.
var spanishMonths = map[string]time.Month{
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August,
	"septiembre": time.September, "setiembre": time.September,
	"octubre": time.October, "noviembre": time.November, "diciembre": time.December,
}

var (
	reNumericDate = regexp.MustCompile(`\b([0-3]?\d)[\/\-\.]([01]?\d)[\/\-\.](\d{2,4})\b`)
	reSpanishDate = regexp.MustCompile(`(?i)\b([0-3]?\d)\s+de\s+([a-záéíóúñ]+)\s+de\s+(\d{4})\b`)
)

// numericDateLayouts are tried in order; first parse wins.
var numericDateLayouts = []string{"2/1/2006", "2/1/06", "2006/1/2", "1/2/2006"}

// NormalizeDate parses the date formats seen in bank contracts: dd/mm/yyyy
// with assorted separators, and the long form "29 de mayo de 2023".
// Renders DD-MM-YYYY, or "" when nothing parses.
func NormalizeDate(s string) string {
	flat := strings.ReplaceAll(s, "\n", " ")

	if m := reNumericDate.FindStringSubmatch(flat); m != nil {
		joined := m[1] + "/" + m[2] + "/" + m[3]
		for _, layout := range numericDateLayouts {
			if t, err := time.Parse(layout, joined); err == nil {
				return t.Format("02-01-2006")
			}
		}
	}

	if m := reSpanishDate.FindStringSubmatch(flat); m != nil {
		if out := formatSpanishDate(m[1], m[2], m[3]); out != "" {
			return out
		}
	}
	return ""
}

// formatSpanishDate converts (day, month name, year) to DD-MM-YYYY,
// validating that the date exists.
func formatSpanishDate(day, monthName, year string) string {
	month, ok := spanishMonths[strings.ToLower(Fold(monthName))]
	if !ok {
		return ""
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return ""
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return ""
	}
	t := time.Date(y, month, d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d || t.Month() != month || t.Year() != y {
		return ""
	}
	return fmt.Sprintf("%02d-%02d-%04d", d, int(month), y)
}
