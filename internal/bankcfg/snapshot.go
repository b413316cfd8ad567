package bankcfg

import (
	"fmt"
	"log/slog"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/common"
	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/internal/comuna"
)

// Snapshot is the immutable per-run configuration: pattern sets, restoration
// dictionary, gazetteer and tunables, assembled once and passed explicitly
// into every pipeline invocation. Parallel document processing shares one
// snapshot with no synchronization.
type Snapshot struct {
	Patterns       map[constants.BankType]*PatternSet
	Dictionary     map[string]string
	Gazetteer      *comuna.Gazetteer
	FuzzyThreshold float64
	Workers        int
}

// Options overrides parts of the built-in defaults.
type Options struct {
	PatternFiles   []string // JSON pattern set files replacing a bank's defaults
	ComunaNames    []string // replaces the built-in gazetteer when non-empty
	Dictionary     map[string]string
	FuzzyThreshold float64
	Workers        int
}

// NewSnapshot builds a validated snapshot from the defaults plus opts.
func NewSnapshot(cfg *common.Config, opts Options, logger *slog.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	patterns, err := DefaultPatternSets()
	if err != nil {
		return nil, err
	}
	for _, path := range opts.PatternFiles {
		ps, err := LoadPatternSet(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		patterns[ps.Bank] = ps
		logger.Info("bankcfg.patterns.loaded", "bank", ps.Bank, "path", path, "fields", len(ps.Fields()))
	}

	names := opts.ComunaNames
	if len(names) == 0 {
		names = constants.DefaultComunas
	}
	dict := opts.Dictionary
	if len(dict) == 0 {
		dict = constants.DefaultRestorations
	}

	threshold := opts.FuzzyThreshold
	if threshold == 0 {
		threshold = cfg.Pipeline.FuzzyThreshold
	}
	workers := opts.Workers
	if workers == 0 {
		workers = cfg.Pipeline.Workers
	}

	snap := &Snapshot{
		Patterns:       patterns,
		Dictionary:     dict,
		Gazetteer:      comuna.NewGazetteer(names),
		FuzzyThreshold: threshold,
		Workers:        workers,
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Validate checks the snapshot's tunables and coverage.
func (s *Snapshot) Validate() error {
	v := common.NewValidator()
	v.Field("fuzzy_threshold", s.FuzzyThreshold, common.UnitInterval)
	v.Field("workers", s.Workers, common.Positive)
	if err := v.Error(); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	if len(s.Patterns) == 0 {
		return fmt.Errorf("%w: no pattern sets", common.ErrInvalidConfig)
	}
	if s.Gazetteer == nil || s.Gazetteer.Len() == 0 {
		return fmt.Errorf("%w: empty gazetteer", common.ErrInvalidConfig)
	}
	return nil
}

// PatternsFor returns the active pattern set for a bank.
func (s *Snapshot) PatternsFor(bank constants.BankType) (*PatternSet, error) {
	ps, ok := s.Patterns[bank]
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownBank, bank)
	}
	return ps, nil
}
