package registry

import (
	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/syntax"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// Namespace is a named tree node holding the four declaration maps plus
// the auxiliary bindings named in spec §3.5: "A namespace is a named
// tree node holding four maps (subspaces, vocabularies, structures,
// theories) and auxiliary bindings (queries, terms, user procedures,
// fobdds)." Queries/Terms/Procedures/FoBDDs have no fixed type in this
// module (they belong to an external grounder/scripting host), so they
// are held as opaque `any` bindings.
type Namespace struct {
	Name   string
	Parent *Namespace

	Subspaces    map[string]*Namespace
	Vocabularies map[string]*vocabulary.Vocabulary
	Structures   map[string]*structure.Structure
	Theories     map[string]*syntax.Theory

	Queries    map[string]any
	Terms      map[string]any
	Procedures map[string]any
	FoBDDs     map[string]any
}

// NewNamespace creates an empty namespace named name under parent (nil
// for a root namespace).
func NewNamespace(name string, parent *Namespace) *Namespace {
	return &Namespace{
		Name:         name,
		Parent:       parent,
		Subspaces:    make(map[string]*Namespace),
		Vocabularies: make(map[string]*vocabulary.Vocabulary),
		Structures:   make(map[string]*structure.Structure),
		Theories:     make(map[string]*syntax.Theory),
		Queries:      make(map[string]any),
		Terms:        make(map[string]any),
		Procedures:   make(map[string]any),
		FoBDDs:       make(map[string]any),
	}
}

func multiDecl(kind, name string) error {
	return diag.Entry{Kind: diag.MultiDecl, Message: kind + " " + name + " already declared in this namespace"}
}

// AddSubspace declares a child namespace under name.
func (n *Namespace) AddSubspace(name string, sub *Namespace) error {
	if _, exists := n.Subspaces[name]; exists {
		return multiDecl("namespace", name)
	}
	sub.Parent = n
	n.Subspaces[name] = sub
	return nil
}

// AddVocabulary declares a vocabulary under name.
func (n *Namespace) AddVocabulary(name string, v *vocabulary.Vocabulary) error {
	if _, exists := n.Vocabularies[name]; exists {
		return multiDecl("vocabulary", name)
	}
	n.Vocabularies[name] = v
	return nil
}

// AddStructure declares a structure under name.
func (n *Namespace) AddStructure(name string, s *structure.Structure) error {
	if _, exists := n.Structures[name]; exists {
		return multiDecl("structure", name)
	}
	n.Structures[name] = s
	return nil
}

// AddTheory declares a theory under name.
func (n *Namespace) AddTheory(name string, th *syntax.Theory) error {
	if _, exists := n.Theories[name]; exists {
		return multiDecl("theory", name)
	}
	n.Theories[name] = th
	return nil
}

// Path returns the dot-free `::`-joined path from the root namespace to
// n, e.g. "A::B::C".
func (n *Namespace) Path() string {
	if n.Parent == nil {
		return n.Name
	}
	return n.Parent.Path() + "::" + n.Name
}
