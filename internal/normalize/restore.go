package normalize

import (
	"strings"
	"unicode"
)

// Restorer applies the Ñ/accent restoration dictionary. Entries are keyed by
// the ASCII-folded upper-case form of the corrected word or phrase, so a
// single entry covers the accented, unaccented, and partially mangled OCR
// renderings of it. Because correct text folds back onto its own key and maps
// to itself, applying the pass twice is a no-op.
type Restorer struct {
	entries  map[string]string
	maxWords int
}

// NewRestorer copies the dictionary; keys are re-folded defensively so callers
// may pass accented keys.
func NewRestorer(entries map[string]string) *Restorer {
	m := make(map[string]string, len(entries))
	max := 1
	for k, v := range entries {
		key := FoldKey(k)
		m[key] = strings.ToUpper(CollapseWhitespace(v))
		if n := len(strings.Fields(key)); n > max {
			max = n
		}
	}
	return &Restorer{entries: m, maxWords: max}
}

// Len returns the number of dictionary entries.
func (r *Restorer) Len() int { return len(r.entries) }

type segment struct {
	text string
	word bool
}

// Apply rewrites every dictionary hit in s, longest phrase first, preserving
// the casing style of the matched text. Unmatched text passes through
// untouched.
func (r *Restorer) Apply(s string) string {
	if s == "" || len(r.entries) == 0 {
		return s
	}
	segs := split(s)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(segs); {
		if !segs[i].word {
			b.WriteString(segs[i].text)
			i++
			continue
		}
		replaced := false
		for n := r.maxWords; n >= 1 && !replaced; n-- {
			end, phrase, ok := phraseAt(segs, i, n)
			if !ok {
				continue
			}
			canonical, hit := r.entries[FoldKey(phrase)]
			if !hit {
				continue
			}
			b.WriteString(adaptCase(canonical, segs[i].text))
			i = end
			replaced = true
		}
		if !replaced {
			b.WriteString(segs[i].text)
			i++
		}
	}
	return b.String()
}

// split breaks s into alternating word (letters only) and separator segments.
func split(s string) []segment {
	var segs []segment
	var cur strings.Builder
	curWord := false
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, segment{text: cur.String(), word: curWord})
			cur.Reset()
		}
	}
	for _, r := range s {
		w := unicode.IsLetter(r)
		if cur.Len() > 0 && w != curWord {
			flush()
		}
		curWord = w
		cur.WriteRune(r)
	}
	flush()
	return segs
}

// phraseAt joins n consecutive word segments starting at i when they are
// separated only by whitespace. Returns the index just past the phrase.
func phraseAt(segs []segment, i, n int) (end int, phrase string, ok bool) {
	words := make([]string, 0, n)
	j := i
	for len(words) < n {
		if j >= len(segs) || !segs[j].word {
			return 0, "", false
		}
		words = append(words, segs[j].text)
		j++
		if len(words) < n {
			if j >= len(segs) || segs[j].word || strings.TrimSpace(segs[j].text) != "" {
				return 0, "", false
			}
			j++
		}
	}
	return j, strings.Join(words, " "), true
}

// adaptCase renders the canonical (upper-case) form in the casing style of
// the matched token: upper stays upper, anything else is title-cased.
func adaptCase(canonical, matched string) string {
	if isUpperWord(matched) {
		return canonical
	}
	return TitleCase(canonical)
}
