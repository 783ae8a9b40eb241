package syntax

import "github.com/KULeuven-KRR/idp-core/vocabulary"

// Node is the common surface of every AST type: a source position and the
// set of variables free within it (spec §3.3 "every node exposes its free
// variable set and its parse-info provenance").
type Node interface {
	Pos() Position
	FreeVars() map[*Variable]bool
}

// Variable is a quantified or rule variable. Its Sort is nil until sort
// derivation assigns one; pointer identity is the variable's identity
// (spec §3.3 VarId), so two occurrences of "the same" variable in an AST
// share a *Variable.
type Variable struct {
	Name string
	Sort *vocabulary.Sort
	P    Position
}

// NewVariable creates a fresh, as-yet-unsorted variable.
func NewVariable(name string, pos Position) *Variable {
	return &Variable{Name: name, P: pos}
}

// CmpOp is the comparator used by equality chains and aggregate comparisons.
type CmpOp int

const (
	CmpEq CmpOp = iota
	CmpLt
	CmpGt
	CmpLe
	CmpGe
	CmpNe
)

// String renders the comparator's conventional symbol.
func (c CmpOp) String() string {
	switch c {
	case CmpEq:
		return "="
	case CmpLt:
		return "<"
	case CmpGt:
		return ">"
	case CmpLe:
		return "=<"
	case CmpGe:
		return ">="
	case CmpNe:
		return "~="
	default:
		return "?"
	}
}

// AggOp is the aggregate function applied to a SetExpr.
type AggOp int

const (
	AggCard AggOp = iota
	AggSum
	AggProd
	AggMin
	AggMax
)

// String renders the aggregate operator name.
func (a AggOp) String() string {
	switch a {
	case AggCard:
		return "#"
	case AggSum:
		return "sum"
	case AggProd:
		return "prod"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	default:
		return "?"
	}
}

func unionVars(dst map[*Variable]bool, sets ...map[*Variable]bool) map[*Variable]bool {
	if dst == nil {
		dst = map[*Variable]bool{}
	}
	for _, s := range sets {
		for v := range s {
			dst[v] = true
		}
	}
	return dst
}

func varSet(vars []*Variable) map[*Variable]bool {
	out := make(map[*Variable]bool, len(vars))
	for _, v := range vars {
		out[v] = true
	}
	return out
}

func subtractVars(s map[*Variable]bool, remove []*Variable) map[*Variable]bool {
	out := map[*Variable]bool{}
	for v := range s {
		out[v] = true
	}
	for _, v := range remove {
		delete(out, v)
	}
	return out
}
