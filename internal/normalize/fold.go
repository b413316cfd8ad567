package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold strips diacritics: "Ñuñoa" -> "Nunoa", "Peñalolén" -> "Penalolen".
// Case is preserved; use FoldKey for dictionary/gazetteer lookups.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// FoldKey is the canonical comparison form: diacritics stripped, upper-cased,
// inner whitespace collapsed.
func FoldKey(s string) string {
	return strings.ToUpper(CollapseWhitespace(Fold(s)))
}
