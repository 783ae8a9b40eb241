// Package element implements the L0 layer of the knowledge-base engine: a
// hash-consed factory of typed atomic domain values (int, real, string,
// compound). Two elements produced from equal inputs are the same Go
// pointer, so callers may compare elements by identity.
//
// Grounded on hemanta212-scaf's types.go Type struct (a single tagged
// struct carrying a Kind plus the fields relevant to that kind, rather
// than a Go interface with one implementation per variant) and on
// original_source/internalargument.hpp's tagged InternalArgument union.
package element

import "fmt"

// Kind tags which variant an Element holds.
type Kind int

const (
	KindInt Kind = iota
	KindReal
	KindString
	KindCompound
)

// String renders the kind name, used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// FuncIdentity is implemented by whatever the vocabulary layer uses to name
// a function symbol. The element factory only needs a stable identity to
// intern compound elements by; it never inspects sorts or arity. Kept as a
// minimal interface (rather than importing the vocabulary package) so L0
// has no dependency on L1, per the layering in SPEC_FULL.md §2.
type FuncIdentity interface {
	// ElementFuncIdentity returns a value that is equal, by ==, for two
	// references to the same function symbol, and never equal across
	// distinct symbols.
	ElementFuncIdentity() uintptr
}

// Element is an interned, tagged atomic domain value. The zero value is not
// a valid Element; always obtain one through a Factory.
type Element struct {
	kind Kind

	i int64
	r float64
	s string

	fn   FuncIdentity
	args []*Element
}

// Kind returns which variant this element holds.
func (e *Element) Kind() Kind { return e.kind }

// Int returns the integer payload. Valid only when Kind() == KindInt.
func (e *Element) Int() int64 { return e.i }

// Real returns the floating-point payload. Valid only when Kind() == KindReal.
func (e *Element) Real() float64 { return e.r }

// Str returns the string payload. Valid only when Kind() == KindString.
func (e *Element) Str() string { return e.s }

// Func returns the function identity of a compound element. Valid only when
// Kind() == KindCompound.
func (e *Element) Func() FuncIdentity { return e.fn }

// Args returns the argument elements of a compound element, in order. Valid
// only when Kind() == KindCompound.
func (e *Element) Args() []*Element { return e.args }

// numericValue returns the element's value as a float64 for numeric
// ordering, and whether the element is numeric (Int or Real).
func (e *Element) numericValue() (float64, bool) {
	switch e.kind {
	case KindInt:
		return float64(e.i), true
	case KindReal:
		return e.r, true
	default:
		return 0, false
	}
}

// Less implements the total order over elements required by canonical
// iteration (SPEC_FULL.md §3.4): Int < Real < Str < Compound as variants,
// but numerics compare by numeric value regardless of variant (spec §3.1).
func Less(a, b *Element) bool {
	if a == b {
		return false
	}

	an, aNum := a.numericValue()
	bn, bNum := b.numericValue()
	if aNum && bNum {
		if an != bn {
			return an < bn
		}
		// Equal numeric value across Int/Real: collapsing in the factory
		// (see Factory.CreateReal/CreateStr) means this should not arise
		// for interned elements, but order deterministically by kind as a
		// tie-break so iteration never depends on map order.
		return a.kind < b.kind
	}

	if aNum != bNum {
		// One numeric, one not: numerics sort first (Int/Real < Str < Compound).
		return aNum
	}

	if a.kind != b.kind {
		return a.kind < b.kind
	}

	switch a.kind {
	case KindString:
		return a.s < b.s
	case KindCompound:
		return lessCompound(a, b)
	default:
		return false
	}
}

func lessCompound(a, b *Element) bool {
	if a.fn != b.fn {
		return a.fn.ElementFuncIdentity() < b.fn.ElementFuncIdentity()
	}
	for i := 0; i < len(a.args) && i < len(b.args); i++ {
		if a.args[i] == b.args[i] {
			continue
		}
		return Less(a.args[i], b.args[i])
	}
	return len(a.args) < len(b.args)
}

// String renders an element for diagnostics and YAML persistence.
func (e *Element) String() string {
	switch e.kind {
	case KindInt:
		return fmt.Sprintf("%d", e.i)
	case KindReal:
		return fmt.Sprintf("%g", e.r)
	case KindString:
		return fmt.Sprintf("%q", e.s)
	case KindCompound:
		s := fmt.Sprintf("<%d>(", e.fn.ElementFuncIdentity())
		for i, a := range e.args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		return s + ")"
	default:
		return "<invalid element>"
	}
}
