// Package diag implements the error-sink / diagnostic-aggregation machinery
// named in SPEC_FULL.md §3.7 and §7: the Insert builder API (see package
// registry) reports errors to a Sink and returns a zero value rather than a
// Go error, matching spec §7's "reported on an error sink and swallowed"
// propagation mode; traversals instead aggregate into Sink.Count() and the
// caller inspects it after a batch.
//
// Grounded on hemanta212-scaf's errors.go sentinel-error style for the
// small number of process-level sentinels, and on original_source/error.hpp
// (the nr_of_errors() global counter plus one function per error shape) for
// the closed ErrorKind enum and per-kind constructors.
package diag

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// Position is the source-provenance type carried by every diagnostic and,
// via the alias in package syntax, by every AST node. Reusing participle's
// lexer.Position means an external parser front end (out of scope for this
// module, per spec §1) can hand positions straight to the Insert builder
// without a conversion step.
type Position = lexer.Position

// ErrorKind is the closed enum from SPEC_FULL.md §7.
type ErrorKind int

const (
	// Structural (sort lattice)
	CyclicHierarchy ErrorKind = iota
	NotSubSort

	// Declaration
	MultiDecl
	UndeclaredSort
	UndeclaredPred
	UndeclaredFunc
	UndeclaredSymb
	UndeclaredVoc
	UndeclaredStruct
	UndeclaredTheory
	UndeclaredSpace
	UndeclaredOption

	// Resolution
	OverloadedSort
	OverloadedPred
	OverloadedFunc
	AmbigCommand
	PredOrFuncSymbol
	Ambiguous

	// Sort derivation
	NoVarSort
	NoPredSort
	NoFuncSort
	NoDomSort
	WrongSort

	// Structure
	WrongArity
	IncompatibleArity
	ExpectedUtf
	SymbolNotInVocabulary
	PredElementNotInSort
	FuncElementNotInSort
	NotAFunction
	NotTotal
	ThreeValSort
	MultiInterpretation

	// I/O and command line
	UnexistingFile
	UnknownOption
	WrongValue
	CyclicInclude
)

// kindNames mirrors the original_source/error.hpp function names, one per
// ErrorKind, so diagnostic text stays recognizable against the system this
// was distilled from.
var kindNames = map[ErrorKind]string{
	CyclicHierarchy:       "CyclicHierarchy",
	NotSubSort:            "NotSubSort",
	MultiDecl:             "MultiDecl",
	UndeclaredSort:        "UndeclaredSort",
	UndeclaredPred:        "UndeclaredPred",
	UndeclaredFunc:        "UndeclaredFunc",
	UndeclaredSymb:        "UndeclaredSymb",
	UndeclaredVoc:         "UndeclaredVoc",
	UndeclaredStruct:      "UndeclaredStruct",
	UndeclaredTheory:      "UndeclaredTheory",
	UndeclaredSpace:       "UndeclaredSpace",
	UndeclaredOption:      "UndeclaredOption",
	OverloadedSort:        "OverloadedSort",
	OverloadedPred:        "OverloadedPred",
	OverloadedFunc:        "OverloadedFunc",
	AmbigCommand:          "AmbigCommand",
	PredOrFuncSymbol:      "PredOrFuncSymbol",
	Ambiguous:             "Ambiguous",
	NoVarSort:             "NoVarSort",
	NoPredSort:            "NoPredSort",
	NoFuncSort:            "NoFuncSort",
	NoDomSort:             "NoDomSort",
	WrongSort:             "WrongSort",
	WrongArity:            "WrongArity",
	IncompatibleArity:     "IncompatibleArity",
	ExpectedUtf:           "ExpectedUtf",
	SymbolNotInVocabulary: "SymbolNotInVocabulary",
	PredElementNotInSort:  "PredElementNotInSort",
	FuncElementNotInSort:  "FuncElementNotInSort",
	NotAFunction:          "NotAFunction",
	NotTotal:              "NotTotal",
	ThreeValSort:          "ThreeValSort",
	MultiInterpretation:   "MultiInterpretation",
	UnexistingFile:        "UnexistingFile",
	UnknownOption:         "UnknownOption",
	WrongValue:            "WrongValue",
	CyclicInclude:         "CyclicInclude",
}

// String renders the kind's name for diagnostics.
func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Entry is a single diagnostic.
type Entry struct {
	Kind    ErrorKind
	Message string
	Pos     Position
}

// Error implements the error interface so an Entry can be wrapped or
// compared with errors.Is/As when a caller does want a Go error (e.g. the
// CLI harness surfacing the first fatal entry).
func (e Entry) Error() string {
	if e.Pos.Filename == "" && e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Pos)
}

// Sink accumulates diagnostics during an Insert-builder session or a
// traversal. The zero value is ready to use.
type Sink struct {
	entries []Entry
}

// Report appends a diagnostic and returns the Sink for chaining.
func (s *Sink) Report(kind ErrorKind, pos Position, format string, args ...any) *Sink {
	s.entries = append(s.entries, Entry{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos})
	return s
}

// Entries returns all reported diagnostics, in report order.
func (s *Sink) Entries() []Entry {
	return s.entries
}

// Count returns the number of diagnostics reported, backing the
// process-wide error counter from spec §7.
func (s *Sink) Count() int {
	return len(s.entries)
}

// HasErrors reports whether any diagnostic was reported.
func (s *Sink) HasErrors() bool {
	return len(s.entries) > 0
}

// Reset clears all accumulated diagnostics, e.g. between CLI batches.
func (s *Sink) Reset() {
	s.entries = nil
}
