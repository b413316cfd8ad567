package comuna

import (
	"sort"
	"strings"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/normalize"
)

// Gazetteer is the read-only list of valid comuna names with precomputed
// folded forms. Built once per run; safe for concurrent readers.
type Gazetteer struct {
	names   []string          // canonical spellings, deterministic order
	folds   []string          // folded form of names[i]
	byUpper map[string]string // upper-case exact -> canonical
	byFold  map[string]string // folded form -> canonical
}

// NewGazetteer indexes the canonical names. On folded-form collisions the
// shorter name wins, then the lexically smaller one, so lookups stay
// deterministic regardless of input order.
func NewGazetteer(names []string) *Gazetteer {
	sorted := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = normalize.CollapseWhitespace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		sorted = append(sorted, n)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) < len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	g := &Gazetteer{
		names:   sorted,
		folds:   make([]string, len(sorted)),
		byUpper: make(map[string]string, len(sorted)),
		byFold:  make(map[string]string, len(sorted)),
	}
	for i, n := range sorted {
		up := strings.ToUpper(n)
		if _, ok := g.byUpper[up]; !ok {
			g.byUpper[up] = n
		}
		fold := normalize.FoldKey(n)
		g.folds[i] = fold
		if _, ok := g.byFold[fold]; !ok {
			g.byFold[fold] = n
		}
	}
	return g
}

// Len returns the number of canonical entries.
func (g *Gazetteer) Len() int { return len(g.names) }

// Names returns the canonical entries ordered by length then lexically.
func (g *Gazetteer) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Exact resolves a case-insensitive exact spelling.
func (g *Gazetteer) Exact(s string) (string, bool) {
	c, ok := g.byUpper[strings.ToUpper(normalize.CollapseWhitespace(s))]
	return c, ok
}

// FoldedExact resolves an accent-stripped spelling.
func (g *Gazetteer) FoldedExact(s string) (string, bool) {
	c, ok := g.byFold[normalize.FoldKey(s)]
	return c, ok
}
