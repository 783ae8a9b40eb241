package vocabulary

import (
	"fmt"
	"strings"

	"github.com/KULeuven-KRR/idp-core/diag"
)

// OverloadKind tags how an overload wrapper resolves a sort vector to one
// of its concrete symbols (spec §3.2 "Overload", §4.3).
type OverloadKind int

const (
	// OverloadEnumerated wraps a fixed, explicitly declared set of concrete
	// symbols sharing an unqualified name (e.g. two same-named predicates
	// declared over different sorts).
	OverloadEnumerated OverloadKind = iota
	// OverloadComparison is the built-in =, <, > family: P(A, A) for any
	// sort A, instantiated lazily the first time a sort asks for it.
	OverloadComparison
	// OverloadNumeric is the built-in arithmetic family (+, -, *, /, abs,
	// unary -): exactly two fixed concrete variants, over int and real.
	OverloadNumeric
	// OverloadOrder is the built-in MIN/MAX/SUCC/PRED family: one concrete
	// variant per sort that has a built-in or user-declared total order,
	// instantiated lazily.
	OverloadOrder
)

func sortKey(sorts []*Sort) string {
	names := make([]string, len(sorts))
	for i, s := range sorts {
		if s == nil {
			names[i] = "?"
			continue
		}
		names[i] = fmt.Sprintf("%p", s)
	}
	return strings.Join(names, ",")
}

// PredOverload is the overload wrapper for predicate symbols: either a
// fixed enumerated set, or the built-in comparison family.
type PredOverload struct {
	Name  string
	Kind  OverloadKind
	CmpOp string // "=", "<", ">" when Kind == OverloadComparison

	variants []*PredSymbol
	byKey    map[string]*PredSymbol

	lattice *Lattice
}

func newPredOverload(name string, kind OverloadKind, l *Lattice) *PredOverload {
	return &PredOverload{Name: name, Kind: kind, lattice: l, byKey: make(map[string]*PredSymbol)}
}

// Variants returns every concrete symbol instantiated so far, in
// instantiation order.
func (o *PredOverload) Variants() []*PredSymbol {
	out := make([]*PredSymbol, len(o.variants))
	copy(out, o.variants)
	return out
}

func (o *PredOverload) addVariant(sym *PredSymbol) {
	sym.Overload = o
	o.variants = append(o.variants, sym)
	o.byKey[sortKey(sym.Sorts)] = sym
}

// Resolve returns the concrete symbol whose sort vector is exactly sorts.
// For OverloadComparison this instantiates the symbol lazily the first
// time a given sort is asked for (spec §4.3 "resolve").
func (o *PredOverload) Resolve(sorts []*Sort) (*PredSymbol, error) {
	if v, ok := o.byKey[sortKey(sorts)]; ok {
		return v, nil
	}

	switch o.Kind {
	case OverloadComparison:
		if len(sorts) != 2 || sorts[0] != sorts[1] {
			return nil, diag.Entry{Kind: diag.NoPredSort, Message: o.Name + " applies to two arguments of the same sort"}
		}
		sym := newPredSymbol(o.Name, sorts)
		sym.Tag = TagNone
		sym.Infix = true
		o.addVariant(sym)
		return sym, nil
	default:
		return nil, diag.Entry{Kind: diag.OverloadedPred, Message: "no variant of " + o.Name + " over " + sortKey(sorts)}
	}
}

// Disambiguate picks the unique concrete symbol whose sort vector is
// compatible with the (possibly partially unknown) supplied sorts, per
// spec §4.3. A nil entry in sorts means "unknown at this position".
func (o *PredOverload) Disambiguate(sorts []*Sort) (*PredSymbol, error) {
	switch o.Kind {
	case OverloadEnumerated:
		var match *PredSymbol
		for _, v := range o.variants {
			if sortVectorCompatible(o.lattice, v.Sorts, sorts, nil) {
				if match != nil {
					return nil, diag.Entry{Kind: diag.Ambiguous, Message: "ambiguous overload for " + o.Name}
				}
				match = v
			}
		}
		if match == nil {
			return nil, diag.Entry{Kind: diag.NoPredSort, Message: "no matching overload for " + o.Name}
		}
		return match, nil

	case OverloadComparison:
		a := presentSort(sorts)
		if a == nil {
			return nil, diag.Entry{Kind: diag.Ambiguous, Message: o.Name + " needs at least one known sort to disambiguate"}
		}
		if len(sorts) == 2 && sorts[0] != nil && sorts[1] != nil {
			r, err := o.lattice.Resolve(sorts[0], sorts[1], nil)
			if err != nil {
				return nil, err
			}
			if r == nil {
				return nil, diag.Entry{Kind: diag.NoPredSort, Message: o.Name + ": " + sorts[0].Name + " and " + sorts[1].Name + " share no common sort"}
			}
			a = r
		}
		return o.Resolve([]*Sort{a, a})

	default:
		return nil, diag.Entry{Kind: diag.OverloadedPred, Message: o.Name + " is not a predicate overload"}
	}
}

func presentSort(sorts []*Sort) *Sort {
	for _, s := range sorts {
		if s != nil {
			return s
		}
	}
	return nil
}

// sortVectorCompatible reports whether every non-nil entry of want resolves
// (has a defined nearest common ancestor) with the matching entry of have.
func sortVectorCompatible(l *Lattice, have []*Sort, want []*Sort, voc *Vocabulary) bool {
	if len(have) != len(want) {
		return false
	}
	for i, w := range want {
		if w == nil {
			continue
		}
		if have[i] == w {
			continue
		}
		r, err := l.Resolve(have[i], w, voc)
		if err != nil || r == nil {
			return false
		}
	}
	return true
}

// FuncOverload is the overload wrapper for function symbols: an enumerated
// set, the built-in numeric family, or the built-in order family.
type FuncOverload struct {
	Name string
	Kind OverloadKind
	Op   string // "+","-","*","/","abs","-u" (numeric) or "MIN","MAX","SUCC","PRED" (order)

	variants []*FuncSymbol
	byKey    map[string]*FuncSymbol

	intVariant  *FuncSymbol
	realVariant *FuncSymbol

	lattice *Lattice
}

func newFuncOverload(name string, kind OverloadKind, l *Lattice) *FuncOverload {
	return &FuncOverload{Name: name, Kind: kind, lattice: l, byKey: make(map[string]*FuncSymbol)}
}

func (o *FuncOverload) addVariant(sym *FuncSymbol) {
	sym.Overload = o
	o.variants = append(o.variants, sym)
	o.byKey[sortKey(sym.Sorts)] = sym
}

// Variants returns every concrete symbol instantiated so far, in
// instantiation order.
func (o *FuncOverload) Variants() []*FuncSymbol {
	out := make([]*FuncSymbol, len(o.variants))
	copy(out, o.variants)
	return out
}

// Resolve returns the concrete symbol whose sort vector is exactly sorts.
// For OverloadNumeric it returns the int variant when every known
// (non-nil) sort is an int-subsort, and the real variant otherwise (spec
// §4.3 "resolve"). For OverloadOrder it lazily instantiates the variant
// over the requested sort.
func (o *FuncOverload) Resolve(sorts []*Sort) (*FuncSymbol, error) {
	switch o.Kind {
	case OverloadNumeric:
		allInt := true
		for _, s := range sorts {
			if s != nil && !o.lattice.IsSubsort(s, o.intVariant.Sorts[0], nil) {
				allInt = false
				break
			}
		}
		if allInt {
			return o.intVariant, nil
		}
		return o.realVariant, nil

	case OverloadOrder:
		a := presentSort(sorts)
		if a == nil {
			return nil, diag.Entry{Kind: diag.NoFuncSort, Message: o.Name + " needs a known sort to resolve"}
		}
		if v, ok := o.byKey[sortKey([]*Sort{a})]; ok {
			return v, nil
		}
		var out []*Sort
		if o.Op == "MIN" || o.Op == "MAX" {
			out = []*Sort{a} // MIN/MAX are 0-ary, constant of sort a
		} else {
			out = []*Sort{a, a} // SUCC/PRED are unary, a -> a
		}
		sym := newFuncSymbol(o.Name, out)
		o.addVariant(sym)
		return sym, nil

	default:
		if v, ok := o.byKey[sortKey(sorts)]; ok {
			return v, nil
		}
		return nil, diag.Entry{Kind: diag.OverloadedFunc, Message: "no variant of " + o.Name + " over " + sortKey(sorts)}
	}
}

// Disambiguate picks the unique concrete symbol compatible with the
// (possibly partially unknown) supplied input sorts, per spec §4.3.
func (o *FuncOverload) Disambiguate(sorts []*Sort) (*FuncSymbol, error) {
	switch o.Kind {
	case OverloadEnumerated:
		var match *FuncSymbol
		for _, v := range o.variants {
			if sortVectorCompatible(o.lattice, v.InputSorts(), sorts, nil) {
				if match != nil {
					return nil, diag.Entry{Kind: diag.Ambiguous, Message: "ambiguous overload for " + o.Name}
				}
				match = v
			}
		}
		if match == nil {
			return nil, diag.Entry{Kind: diag.NoFuncSort, Message: "no matching overload for " + o.Name}
		}
		return match, nil

	case OverloadNumeric:
		nonNil := 0
		for _, s := range sorts {
			if s != nil {
				nonNil++
			}
		}
		if nonNil == 0 {
			return nil, diag.Entry{Kind: diag.Ambiguous, Message: o.Name + " needs at least one known sort to disambiguate"}
		}
		return o.Resolve(sorts)

	case OverloadOrder:
		distinct := map[*Sort]bool{}
		for _, s := range sorts {
			if s != nil {
				distinct[s] = true
			}
		}
		if len(distinct) != 1 {
			return nil, diag.Entry{Kind: diag.Ambiguous, Message: o.Name + " mentions zero or more than one sort"}
		}
		return o.Resolve(sorts)

	default:
		return nil, diag.Entry{Kind: diag.OverloadedFunc, Message: o.Name + " is not a function overload"}
	}
}
