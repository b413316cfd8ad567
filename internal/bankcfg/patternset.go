package bankcfg

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

// PatternSpec is one extraction pattern as declared in configuration.
type PatternSpec struct {
	Expr     string `json:"expr"`
	Group    int    `json:"group"`    // capture group yielding the value; defaults to 1
	Priority int    `json:"priority"` // higher wins at resolution time
}

// CompiledPattern is a PatternSpec after regexp compilation.
type CompiledPattern struct {
	Re       *regexp.Regexp
	Group    int
	Priority int
}

// PatternSet maps every canonical field of one bank to its ordered extraction
// patterns. Immutable after compilation.
type PatternSet struct {
	Bank   constants.BankType
	fields map[constants.Field][]CompiledPattern
}

// CompilePatternSet validates and compiles the specs for one bank. Unknown
// field names and invalid expressions are rejected here, at load time.
func CompilePatternSet(bank constants.BankType, specs map[constants.Field][]PatternSpec) (*PatternSet, error) {
	fields := make(map[constants.Field][]CompiledPattern, len(specs))
	for field, list := range specs {
		if !constants.IsCanonical(string(field)) {
			return nil, fmt.Errorf("pattern set %s: unknown field %q", bank, field)
		}
		compiled := make([]CompiledPattern, 0, len(list))
		for i, spec := range list {
			re, err := regexp.Compile(spec.Expr)
			if err != nil {
				return nil, fmt.Errorf("pattern set %s: field %s pattern %d: %w", bank, field, i, err)
			}
			group := spec.Group
			if group == 0 {
				group = 1
			}
			if group >= re.NumSubexp()+1 {
				return nil, fmt.Errorf("pattern set %s: field %s pattern %d: capture group %d out of range", bank, field, i, group)
			}
			compiled = append(compiled, CompiledPattern{Re: re, Group: group, Priority: spec.Priority})
		}
		fields[field] = compiled
	}
	return &PatternSet{Bank: bank, fields: fields}, nil
}

// Patterns returns the compiled patterns for a field; nil when the bank
// declares none.
func (ps *PatternSet) Patterns(f constants.Field) []CompiledPattern {
	return ps.fields[f]
}

// Fields returns the fields this set declares patterns for, sorted for
// deterministic iteration.
func (ps *PatternSet) Fields() []constants.Field {
	out := make([]constants.Field, 0, len(ps.fields))
	for f := range ps.fields {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
