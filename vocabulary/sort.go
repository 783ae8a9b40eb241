// Package vocabulary implements the L1 layer: sorts with their lattice,
// predicate/function symbols, overload sets, and the Vocabulary that binds
// unqualified names to them (SPEC_FULL.md §3.2, §4.2, §4.3).
//
// Grounded on hemanta212-scaf's types.go Type (a tagged struct is used for
// BuiltinKind exactly the way Type.Kind tags its variant) and on the arena
// design note in spec.md §9: rather than literal arena-plus-integer-index
// (needed in languages without a GC to break reference cycles), sorts and
// symbols are plain Go pointers — a GC'd language has no cycle-collection
// problem. The Lattice keeps its sorts in a slice, so Lattice.Sorts is in
// declaration order; a Vocabulary keeps its names in maps, so its Sorts,
// Preds and Funcs come back in no fixed order.
package vocabulary

import "github.com/KULeuven-KRR/idp-core/diag"

// BuiltinSortKind tags one of the fixed built-in sorts with their own
// infinite/structured extensional interpretation (spec §4.2 "Built-in
// lattice"). The structure layer (L3) switches on this to build the actual
// SortTable; L1 only needs to remember which one a Sort is.
type BuiltinSortKind int

const (
	NotBuiltin BuiltinSortKind = iota
	BuiltinNat
	BuiltinInt
	BuiltinReal
	BuiltinChar
	BuiltinString
)

// Sort is a named domain (type) with a partial order to other sorts
// (spec §3.2 "Sort"). The DAG of sorts is acyclic; Lattice.AddParent
// enforces this.
type Sort struct {
	Name    string
	Builtin BuiltinSortKind

	// CharPred is the auto-generated unary characterising predicate for this
	// sort (spec §3.2: "auto-generated unary characterising predicate").
	// Populated lazily by Vocabulary.CharacteristicPredicate.
	CharPred *PredSymbol

	parents  map[*Sort]bool
	children map[*Sort]bool
	vocs     map[*Vocabulary]bool // reverse index: vocabularies containing this sort
}

func newSort(name string, builtin BuiltinSortKind) *Sort {
	return &Sort{
		Name:     name,
		Builtin:  builtin,
		parents:  make(map[*Sort]bool),
		children: make(map[*Sort]bool),
		vocs:     make(map[*Vocabulary]bool),
	}
}

// Parents returns this sort's immediate parents (non-transitive).
func (s *Sort) Parents() []*Sort { return sortSetToSlice(s.parents) }

// Children returns this sort's immediate children (non-transitive).
func (s *Sort) Children() []*Sort { return sortSetToSlice(s.children) }

// Vocabularies returns the vocabularies currently containing this sort.
func (s *Sort) Vocabularies() []*Vocabulary {
	out := make([]*Vocabulary, 0, len(s.vocs))
	for v := range s.vocs {
		out = append(out, v)
	}
	return out
}

func sortSetToSlice(m map[*Sort]bool) []*Sort {
	out := make([]*Sort, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	return out
}

// Lattice is the arena owning every Sort and the parent/child edges between
// them (spec §3.2, §4.2).
type Lattice struct {
	sorts []*Sort
}

// NewLattice creates an empty sort lattice.
func NewLattice() *Lattice {
	return &Lattice{}
}

// NewSort registers a fresh, parentless sort in the lattice.
func (l *Lattice) NewSort(name string) *Sort {
	s := newSort(name, NotBuiltin)
	l.sorts = append(l.sorts, s)
	return s
}

// newBuiltinSort is used only by the standard-vocabulary bootstrap.
func (l *Lattice) newBuiltinSort(name string, kind BuiltinSortKind) *Sort {
	s := newSort(name, kind)
	l.sorts = append(l.sorts, s)
	return s
}

// Sorts returns every sort ever registered in this lattice, in declaration
// order.
func (l *Lattice) Sorts() []*Sort {
	out := make([]*Sort, len(l.sorts))
	copy(out, l.sorts)
	return out
}

// AddParent declares p as a parent of s. Fails with diag.NotSubSort if a
// declared child of s is not a descendant of p, and diag.CyclicHierarchy if
// s is already an ancestor of p (spec §4.2).
func (l *Lattice) AddParent(s, p *Sort) error {
	if s == p {
		return diag.Entry{Kind: diag.CyclicHierarchy, Message: "sort " + s.Name + " cannot be its own parent"}
	}

	if l.isAncestor(p, s, nil) {
		return diag.Entry{Kind: diag.CyclicHierarchy, Message: "adding " + p.Name + " as parent of " + s.Name + " would create a cycle"}
	}

	for c := range s.children {
		if !l.isAncestor(c, p, nil) && c != p {
			return diag.Entry{Kind: diag.NotSubSort, Message: "declared child " + c.Name + " of " + s.Name + " is not a descendant of " + p.Name}
		}
	}

	s.parents[p] = true
	p.children[s] = true
	return nil
}

// isAncestor reports whether p is an ancestor of s (reflexive: s is its own
// ancestor), optionally restricted to voc.
func (l *Lattice) isAncestor(s, p *Sort, voc *Vocabulary) bool {
	return l.Ancestors(s, voc)[p]
}

// Ancestors returns the transitive closure of s's parents, including s
// itself, optionally restricted to sorts present in voc.
func (l *Lattice) Ancestors(s *Sort, voc *Vocabulary) map[*Sort]bool {
	out := map[*Sort]bool{}
	var visit func(*Sort)
	visit = func(cur *Sort) {
		if out[cur] {
			return
		}
		if voc != nil && !voc.hasSort(cur) {
			return
		}
		out[cur] = true
		for p := range cur.parents {
			visit(p)
		}
	}
	if voc == nil || voc.hasSort(s) {
		visit(s)
	}
	return out
}

// Descendants returns the transitive closure of s's children, including s
// itself, optionally restricted to sorts present in voc.
func (l *Lattice) Descendants(s *Sort, voc *Vocabulary) map[*Sort]bool {
	out := map[*Sort]bool{}
	var visit func(*Sort)
	visit = func(cur *Sort) {
		if out[cur] {
			return
		}
		if voc != nil && !voc.hasSort(cur) {
			return
		}
		out[cur] = true
		for c := range cur.children {
			visit(c)
		}
	}
	if voc == nil || voc.hasSort(s) {
		visit(s)
	}
	return out
}

// Resolve returns the unique nearest common ancestor of a and b within voc,
// if one exists (spec §4.2). Implementation: intersect the ancestor sets
// (each includes the sort itself), remove non-minimal elements by iterated
// ancestor-subtraction, and require the remaining set to be a singleton.
func (l *Lattice) Resolve(a, b *Sort, voc *Vocabulary) (*Sort, error) {
	ancA := l.Ancestors(a, voc)
	ancB := l.Ancestors(b, voc)

	common := map[*Sort]bool{}
	for s := range ancA {
		if ancB[s] {
			common[s] = true
		}
	}
	if len(common) == 0 {
		return nil, nil
	}

	// Remove any candidate that is a proper ancestor of another candidate:
	// what remains are the minimal (nearest) elements.
	minimal := map[*Sort]bool{}
	for s := range common {
		isMinimal := true
		for t := range common {
			if s == t {
				continue
			}
			if common[t] && l.isAncestor(t, s, voc) && s != t {
				// s is an ancestor of t (t is "closer"), so s is not minimal.
				isMinimal = false
				break
			}
		}
		if isMinimal {
			minimal[s] = true
		}
	}

	if len(minimal) == 1 {
		for s := range minimal {
			return s, nil
		}
	}

	return nil, diag.Entry{Kind: diag.Ambiguous, Message: "no unique nearest common ancestor of " + a.Name + " and " + b.Name}
}

// IsSubsort reports whether a is a subsort of b within voc: a's nearest
// common ancestor with b is b itself.
func (l *Lattice) IsSubsort(a, b *Sort, voc *Vocabulary) bool {
	r, err := l.Resolve(a, b, voc)
	return err == nil && r == b
}
