// Package syntax implements the L2 layer: terms, formulas, set expressions,
// rules, definitions and theories, plus sort derivation/checking over L1
// (SPEC_FULL.md §3.3, §4.4) and the read-only/mutating traversal traits
// (§4.9, grounded on spec.md §9's "Visitor dispatch" design note).
//
// Grounded on the teacher's deleted ast.go/types.go node shapes (captured
// in DESIGN.md before removal): a small family of tagged interfaces, one
// struct per variant, each variant's position and child set computed
// directly rather than through a generic reflection-based walk.
package syntax

import "github.com/KULeuven-KRR/idp-core/diag"

// Position is the source-provenance type carried by every AST node,
// re-exporting diag.Position (itself an alias of participle's
// lexer.Position) so syntax has no import-cycle risk with diag.
type Position = diag.Position
