package registry

import (
	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/syntax"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// Builder is the Insert-style factory named in SPEC_FULL.md §4.8 /
// spec §6 "Insert builder". Every NewXxx method validates against the
// current Scope, registers the result where the spec's component has a
// home (sorts/symbols into Voc, namespaces/structures/theories into
// Scope.Home), and reports any failure to Sink rather than returning a
// Go error — matching spec §7's "reported on an error sink and
// swallowed" propagation mode.
type Builder struct {
	Scope *Scope
	Voc   *vocabulary.Vocabulary
	Sink  *diag.Sink
}

// NewBuilder creates a Builder operating on voc, registering namespace
// declarations into scope.Home and reporting to sink.
func NewBuilder(scope *Scope, voc *vocabulary.Vocabulary, sink *diag.Sink) *Builder {
	return &Builder{Scope: scope, Voc: voc, Sink: sink}
}

func (b *Builder) failed(before int) bool {
	return b.Sink.Count() > before
}

// NewSort declares a fresh sort named name in Voc.
func (b *Builder) NewSort(name string) (*vocabulary.Sort, bool) {
	before := b.Sink.Count()
	s, err := b.Voc.NewSort(name)
	if err != nil {
		b.report(err)
		return nil, false
	}
	return s, !b.failed(before)
}

// NewPred declares a predicate named name over the sorts found by
// resolving sortNames in scope.
func (b *Builder) NewPred(name string, sortNames []string) (*vocabulary.PredSymbol, bool) {
	before := b.Sink.Count()
	sorts, ok := b.resolveSorts(sortNames)
	if !ok {
		return nil, false
	}
	sym, err := b.Voc.AddPred(name, sorts)
	if err != nil {
		b.report(err)
		return nil, false
	}
	return sym, !b.failed(before)
}

// NewFunc declares a function named name over the sorts found by
// resolving sortNames (input sorts followed by the output sort).
func (b *Builder) NewFunc(name string, sortNames []string) (*vocabulary.FuncSymbol, bool) {
	before := b.Sink.Count()
	sorts, ok := b.resolveSorts(sortNames)
	if !ok {
		return nil, false
	}
	sym, err := b.Voc.AddFunc(name, sorts)
	if err != nil {
		b.report(err)
		return nil, false
	}
	return sym, !b.failed(before)
}

func (b *Builder) resolveSorts(names []string) ([]*vocabulary.Sort, bool) {
	before := b.Sink.Count()
	sorts := make([]*vocabulary.Sort, len(names))
	for i, name := range names {
		s, err := b.Scope.SortInScope(name)
		if err != nil {
			b.report(err)
			continue
		}
		sorts[i] = s
	}
	return sorts, !b.failed(before)
}

// NewRule builds a rule, coerces its head and derives/checks its sorts
// against Voc (spec §4.4), and returns it if derivation produced no
// error.
func (b *Builder) NewRule(vars []*syntax.Variable, head *syntax.PredFormula, body syntax.Formula, pos syntax.Position) (*syntax.Rule, bool) {
	before := b.Sink.Count()
	r := &syntax.Rule{Vars: vars, Head: head, Body: body, P: pos}
	syntax.DeriveRule(b.Voc, r, b.Sink)
	return r, !b.failed(before)
}

// NewDefinition bundles rules into a definition.
func (b *Builder) NewDefinition(rules []*syntax.Rule, pos syntax.Position) (*syntax.Definition, bool) {
	return &syntax.Definition{Rules: rules, P: pos}, true
}

// NewFormula derives and checks f's sorts against Voc, returning it if
// no error was produced.
func (b *Builder) NewFormula(f syntax.Formula) (syntax.Formula, bool) {
	before := b.Sink.Count()
	syntax.DeriveSorts(b.Voc, f, b.Sink)
	syntax.CheckSorts(b.Voc, f, b.Sink)
	return f, !b.failed(before)
}

// NewTheory creates an (initially empty) theory over Voc and registers
// it under name in Scope.Home.
func (b *Builder) NewTheory(name string, pos syntax.Position) (*syntax.Theory, bool) {
	before := b.Sink.Count()
	th := &syntax.Theory{Vocabulary: b.Voc, P: pos}
	if err := b.Scope.Home.AddTheory(name, th); err != nil {
		b.report(err)
		return nil, false
	}
	return th, !b.failed(before)
}

// NewStructure creates a fresh structure over Voc and registers it
// under name in Scope.Home.
func (b *Builder) NewStructure(name string) (*structure.Structure, bool) {
	before := b.Sink.Count()
	s := structure.NewStructure(b.Voc)
	if err := b.Scope.Home.AddStructure(name, s); err != nil {
		b.report(err)
		return nil, false
	}
	return s, !b.failed(before)
}

// NewNamespace creates a subspace of Scope.Home under name.
func (b *Builder) NewNamespace(name string) (*Namespace, bool) {
	before := b.Sink.Count()
	ns := NewNamespace(name, b.Scope.Home)
	if err := b.Scope.Home.AddSubspace(name, ns); err != nil {
		b.report(err)
		return nil, false
	}
	return ns, !b.failed(before)
}

func (b *Builder) report(err error) {
	if entry, ok := err.(diag.Entry); ok {
		b.Sink.Report(entry.Kind, entry.Pos, "%s", entry.Message)
		return
	}
	b.Sink.Report(diag.MultiDecl, diag.Position{}, "%s", err.Error())
}
