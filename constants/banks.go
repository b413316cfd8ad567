package constants

import "strings"

// BankType identifies which bank's pattern set applies to a document.
type BankType string

const (
	BankItau      BankType = "ITAU"
	BankSantander BankType = "SANTANDER"
	BankIndisa    BankType = "INDISA"
)

var allBanks = []BankType{BankItau, BankSantander, BankIndisa}

// Banks returns the supported bank types in declaration order.
func Banks() []BankType {
	out := make([]BankType, len(allBanks))
	copy(out, allBanks)
	return out
}

// ParseBank resolves a case-insensitive bank name. The bool result is false
// for unknown banks.
func ParseBank(s string) (BankType, bool) {
	up := BankType(strings.ToUpper(strings.TrimSpace(s)))
	for _, b := range allBanks {
		if b == up {
			return b, true
		}
	}
	return "", false
}

// DocSubtype distinguishes Itaú promissory notes (PP) from consumer credit
// contracts (CC); the two carry their field values in different layouts.
type DocSubtype string

const (
	SubtypePagare         DocSubtype = "PP"
	SubtypeCreditoConsumo DocSubtype = "CC"
)

// Stage names the pipeline step a trace entry was recorded at.
type Stage string

// Stable values (stored in the audit database).
const (
	StageExtract     Stage = "extract"
	StageResolve     Stage = "resolve"
	StageNormalize   Stage = "normalize"
	StageFuzzyComuna Stage = "fuzzy_comuna"
	StageAssemble    Stage = "assemble"
)

// FieldStatus tracks a field's lifecycle inside one document.
type FieldStatus string

const (
	FieldUnseen    FieldStatus = "UNSEEN"
	FieldMatched   FieldStatus = "MATCHED"
	FieldUnmatched FieldStatus = "UNMATCHED"
)

// Warning codes attached to assembled records. Non-fatal; the record is
// always produced.
const (
	WarnNoMatch             = "NO_MATCH"
	WarnMalformedIdentifier = "MALFORMED_IDENTIFIER"
	WarnComunaUnresolved    = "COMUNA_UNRESOLVED"
)
