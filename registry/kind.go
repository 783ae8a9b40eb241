// Package registry implements the scoped namespace tree and name
// resolution from SPEC_FULL.md §3.5 and §4.7, plus the Insert-style
// builder (§4.8) that ties the Insert API to a Scope and a diag.Sink.
//
// Grounded on hemanta212-scaf's module/merge.go (deleted after capturing
// its duplicate-declaration-detection shape, which registry.MultiDecl
// checking follows) for the registration-map-by-name discipline, and on
// spec.md §3.5/§4.7 directly for the namespace/using-stack/open-block
// model, which has no counterpart elsewhere in the pack.
package registry

// Kind tags what a registry binding or scripting-host value is, per
// SPEC_FULL.md §6 "Scripting host type tags".
type Kind int

const (
	KindSort Kind = iota
	KindSymbol
	KindVocabulary
	KindStructure
	KindTheory
	KindOptions
	KindNamespace
	KindTable
	KindInterpretation
	KindTuple
	KindCompound
	KindQuery
	KindFormula
	KindTerm
	KindSet
	KindIterator
)

var kindNames = [...]string{
	"Sort", "Symbol", "Vocabulary", "Structure", "Theory", "Options",
	"Namespace", "Table", "Interpretation", "Tuple", "Compound", "Query",
	"Formula", "Term", "Set", "Iterator",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
