package comuna

import (
	"log/slog"

	"github.com/agext/levenshtein"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/entity"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/normalize"
)

// Score constants for the two exact tiers.
const (
	scoreExact       = 1.0
	scoreFoldedExact = 0.95
)

// DefaultThreshold is the fuzzy acceptance cutoff, tuned against the labeled
// comuna set of the source material (difflib cutoff 0.72); tolerates roughly
// two character edits on typical 4-20 rune comuna names.
const DefaultThreshold = 0.72

// Matcher maps noisy comuna strings to canonical gazetteer entries. The three
// tiers trade cost for precision: exact and folded-exact lookups resolve the
// overwhelming majority of inputs before any distance computation runs.
type Matcher struct {
	gazetteer *Gazetteer
	threshold float64
	logger    *slog.Logger
}

func NewMatcher(g *Gazetteer, threshold float64, logger *slog.Logger) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Matcher{gazetteer: g, threshold: threshold, logger: logger}
}

// Match resolves input against the gazetteer. Unresolved inputs keep their
// normalized spelling; the caller attaches the COMUNA_UNRESOLVED warning.
func (m *Matcher) Match(input string) entity.ComunaMatch {
	s := normalize.CollapseWhitespace(input)
	if s == "" {
		return entity.ComunaMatch{Input: input}
	}

	if c, ok := m.gazetteer.Exact(s); ok {
		return entity.ComunaMatch{Input: s, Canonical: c, Score: scoreExact, Resolved: true}
	}
	if c, ok := m.gazetteer.FoldedExact(s); ok {
		return entity.ComunaMatch{Input: s, Canonical: c, Score: scoreFoldedExact, Resolved: true}
	}

	best, score := m.closest(normalize.FoldKey(s))
	if best == "" || score < m.threshold {
		m.logger.Debug("comuna.match.unresolved", "input", s, "best", best, "score", score)
		return entity.ComunaMatch{Input: s, Score: score}
	}
	return entity.ComunaMatch{Input: s, Canonical: best, Score: score, Resolved: true}
}

// closest scans every folded gazetteer entry for the highest edit-distance
// similarity. Gazetteer order (shortest, then lexical) makes ties
// deterministic: the first best seen wins.
func (m *Matcher) closest(foldedInput string) (string, float64) {
	var best string
	var bestScore float64
	for i, name := range m.gazetteer.names {
		sim := levenshtein.Similarity(foldedInput, m.gazetteer.folds[i], nil)
		if sim > bestScore {
			bestScore = sim
			best = name
		}
	}
	return best, bestScore
}
