package bankcfg

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CrissxD-arch/OCR-Automator-Windows-Portable/constants"
)

type patternSetFile struct {
	Bank   string                   `json:"bank"`
	Fields map[string][]PatternSpec `json:"fields"`
}

// ParsePatternSet validates raw JSON against the closed schema, then decodes
// and compiles it.
func ParsePatternSet(raw []byte) (*PatternSet, error) {
	if err := ValidateJSONAgainstSchema(BuildPatternSetJSONSchema(), raw); err != nil {
		return nil, fmt.Errorf("pattern set schema: %w", err)
	}
	var file patternSetFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode pattern set: %w", err)
	}
	bank, ok := constants.ParseBank(file.Bank)
	if !ok {
		return nil, fmt.Errorf("pattern set: unknown bank %q", file.Bank)
	}
	specs := make(map[constants.Field][]PatternSpec, len(file.Fields))
	for name, list := range file.Fields {
		// the schema only admits canonical names; header aliases belong to
		// record projection, not pattern configs
		if !constants.IsCanonical(name) {
			return nil, fmt.Errorf("pattern set %s: unknown field %q", bank, name)
		}
		specs[constants.Field(name)] = list
	}
	return CompilePatternSet(bank, specs)
}

// LoadPatternSet reads and parses one pattern set file.
func LoadPatternSet(path string) (*PatternSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern set: %w", err)
	}
	return ParsePatternSet(raw)
}
