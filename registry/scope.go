package registry

import (
	"strings"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/syntax"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// blockMark records how many using-stack entries of each kind were
// pushed since the matching OpenBlock, so CloseBlock can pop exactly
// that many (spec §4.7 "push/pop counters for how many namespaces/
// vocabularies were added to the using-stack inside the block").
type blockMark struct {
	vocs, namespaces int
}

// Scope is the name-resolution context threaded through a parse/Insert
// session: a home namespace (where new declarations land), a using-stack
// of vocabularies and namespaces imported into scope, and a nested
// open-block counter stack (spec §3.5, §4.7).
type Scope struct {
	Home *Namespace

	usingVocs       []*vocabulary.Vocabulary
	usingNamespaces []*Namespace
	marks           []blockMark
}

// NewScope creates a scope rooted at home.
func NewScope(home *Namespace) *Scope {
	return &Scope{Home: home}
}

// OpenBlock pushes a new block marker (spec §4.7 "open_block").
func (s *Scope) OpenBlock() {
	s.marks = append(s.marks, blockMark{vocs: len(s.usingVocs), namespaces: len(s.usingNamespaces)})
}

// CloseBlock drops every using-stack entry pushed since the matching
// OpenBlock (spec §4.7 "close_block").
func (s *Scope) CloseBlock() {
	if len(s.marks) == 0 {
		return
	}
	m := s.marks[len(s.marks)-1]
	s.marks = s.marks[:len(s.marks)-1]
	s.usingVocs = s.usingVocs[:m.vocs]
	s.usingNamespaces = s.usingNamespaces[:m.namespaces]
}

// UseVocabulary pushes v onto the using-stack.
func (s *Scope) UseVocabulary(v *vocabulary.Vocabulary) {
	s.usingVocs = append(s.usingVocs, v)
}

// UseNamespace pushes ns onto the using-stack: the subspaces,
// vocabularies, structures and theories declared directly in ns become
// visible unqualified; the contents of its subspaces are not searched.
func (s *Scope) UseNamespace(ns *Namespace) {
	s.usingNamespaces = append(s.usingNamespaces, ns)
}

// candidateVocabularies returns every vocabulary visible in scope: those
// used directly, plus those declared in any used namespace.
func (s *Scope) candidateVocabularies() []*vocabulary.Vocabulary {
	out := append([]*vocabulary.Vocabulary(nil), s.usingVocs...)
	for _, ns := range s.usingNamespaces {
		for _, v := range ns.Vocabularies {
			out = append(out, v)
		}
	}
	return out
}

// candidateNamespaces returns every namespace visible for unqualified
// namespace/structure/theory lookup: the home namespace's own subspaces
// plus every used namespace's subspaces.
func (s *Scope) candidateNamespaces() []*Namespace {
	out := []*Namespace{s.Home}
	out = append(out, s.usingNamespaces...)
	return out
}

// SortInScope resolves name to a sort across every vocabulary visible in
// scope, failing OverloadedSort if two distinct vocabularies declare
// distinct sorts under the same name (spec §4.7 "sort_in_scope").
func (s *Scope) SortInScope(name string) (*vocabulary.Sort, error) {
	var found *vocabulary.Sort
	for _, v := range s.candidateVocabularies() {
		if sort, ok := v.Sort(name); ok {
			if found != nil && found != sort {
				return nil, diag.Entry{Kind: diag.OverloadedSort, Message: "sort " + name + " is ambiguous in scope"}
			}
			found = sort
		}
	}
	if found == nil {
		return nil, diag.Entry{Kind: diag.UndeclaredSort, Message: "no sort named " + name + " in scope"}
	}
	return found, nil
}

// PredInScope resolves name to a predicate overload across every
// vocabulary visible in scope (spec §4.7, "analogous lookups for
// predicate, function, ... ").
func (s *Scope) PredInScope(name string) (*vocabulary.PredOverload, error) {
	var found *vocabulary.PredOverload
	for _, v := range s.candidateVocabularies() {
		if ov, ok := v.Pred(name); ok {
			if found != nil && found != ov {
				return nil, diag.Entry{Kind: diag.OverloadedPred, Message: "predicate " + name + " is ambiguous in scope"}
			}
			found = ov
		}
	}
	if found == nil {
		return nil, diag.Entry{Kind: diag.UndeclaredPred, Message: "no predicate named " + name + " in scope"}
	}
	return found, nil
}

// FuncInScope resolves name to a function overload across every
// vocabulary visible in scope.
func (s *Scope) FuncInScope(name string) (*vocabulary.FuncOverload, error) {
	var found *vocabulary.FuncOverload
	for _, v := range s.candidateVocabularies() {
		if ov, ok := v.Func(name); ok {
			if found != nil && found != ov {
				return nil, diag.Entry{Kind: diag.OverloadedFunc, Message: "function " + name + " is ambiguous in scope"}
			}
			found = ov
		}
	}
	if found == nil {
		return nil, diag.Entry{Kind: diag.UndeclaredFunc, Message: "no function named " + name + " in scope"}
	}
	return found, nil
}

// NamespaceInScope resolves an unqualified namespace name.
func (s *Scope) NamespaceInScope(name string) (*Namespace, error) {
	var found *Namespace
	for _, ns := range s.candidateNamespaces() {
		if sub, ok := ns.Subspaces[name]; ok {
			if found != nil && found != sub {
				return nil, diag.Entry{Kind: diag.Ambiguous, Message: "namespace " + name + " is ambiguous in scope"}
			}
			found = sub
		}
	}
	if found == nil {
		return nil, diag.Entry{Kind: diag.UndeclaredSpace, Message: "no namespace named " + name + " in scope"}
	}
	return found, nil
}

// VocabularyInScope resolves an unqualified vocabulary name.
func (s *Scope) VocabularyInScope(name string) (*vocabulary.Vocabulary, error) {
	var found *vocabulary.Vocabulary
	for _, ns := range s.candidateNamespaces() {
		if v, ok := ns.Vocabularies[name]; ok {
			if found != nil && found != v {
				return nil, diag.Entry{Kind: diag.Ambiguous, Message: "vocabulary " + name + " is ambiguous in scope"}
			}
			found = v
		}
	}
	if found == nil {
		return nil, diag.Entry{Kind: diag.UndeclaredVoc, Message: "no vocabulary named " + name + " in scope"}
	}
	return found, nil
}

// StructureInScope resolves an unqualified structure name.
func (s *Scope) StructureInScope(name string) (*structure.Structure, error) {
	var found *structure.Structure
	for _, ns := range s.candidateNamespaces() {
		if st, ok := ns.Structures[name]; ok {
			if found != nil && found != st {
				return nil, diag.Entry{Kind: diag.Ambiguous, Message: "structure " + name + " is ambiguous in scope"}
			}
			found = st
		}
	}
	if found == nil {
		return nil, diag.Entry{Kind: diag.UndeclaredStruct, Message: "no structure named " + name + " in scope"}
	}
	return found, nil
}

// TheoryInScope resolves an unqualified theory name.
func (s *Scope) TheoryInScope(name string) (*syntax.Theory, error) {
	var found *syntax.Theory
	for _, ns := range s.candidateNamespaces() {
		if th, ok := ns.Theories[name]; ok {
			if found != nil && found != th {
				return nil, diag.Entry{Kind: diag.Ambiguous, Message: "theory " + name + " is ambiguous in scope"}
			}
			found = th
		}
	}
	if found == nil {
		return nil, diag.Entry{Kind: diag.UndeclaredTheory, Message: "no theory named " + name + " in scope"}
	}
	return found, nil
}

// ResolveNamespacePath resolves a multi-segment name "A::B::C" by
// resolving the first segment through scope, then descending via plain
// subspace lookup for each remaining segment (spec §4.7 "Multi-segment
// names A::B::C resolve A through using-space lookup then descend via
// subspace").
func (s *Scope) ResolveNamespacePath(path string) (*Namespace, error) {
	segs := strings.Split(path, "::")
	if len(segs) == 0 || segs[0] == "" {
		return nil, diag.Entry{Kind: diag.UndeclaredSpace, Message: "empty namespace path"}
	}
	ns, err := s.NamespaceInScope(segs[0])
	if err != nil {
		return nil, err
	}
	for _, seg := range segs[1:] {
		sub, ok := ns.Subspaces[seg]
		if !ok {
			return nil, diag.Entry{Kind: diag.UndeclaredSpace, Message: "no namespace named " + seg + " under " + ns.Path()}
		}
		ns = sub
	}
	return ns, nil
}
