package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reSpace     = regexp.MustCompile(`\s+`)
	reEdgePunct = regexp.MustCompile(`^[\s.,:;\-]+|[\s.,:;\-]+$`)
)

// CollapseWhitespace folds runs of whitespace (tabs, newlines included) into
// single spaces and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(reSpace.ReplaceAllString(s, " "))
}

// CleanToken trims whitespace and stray edge punctuation left behind by OCR
// line captures ("LAS CONDES.," -> "LAS CONDES").
func CleanToken(s string) string {
	return reEdgePunct.ReplaceAllString(strings.TrimSpace(s), "")
}

// Spanish connectors kept lower-case inside title-cased phrases.
var titleConnectors = map[string]struct{}{
	"de": {}, "del": {}, "la": {}, "las": {}, "los": {}, "el": {}, "y": {}, "e": {},
}

// TitleCase capitalizes each word, keeping connector words lower-case except
// in first position: "VIÑA DEL MAR" -> "Viña del Mar".
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		if i > 0 {
			if _, conn := titleConnectors[w]; conn {
				continue
			}
		}
		words[i] = capitalizeWord(w)
	}
	return strings.Join(words, " ")
}

func capitalizeWord(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// isUpperWord reports whether a token has at least one cased rune and no
// lower-case ones.
func isUpperWord(w string) bool {
	cased := false
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
