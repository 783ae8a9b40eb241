package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KULeuven-KRR/idp-core/registry"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

// renderDetail describes the binding e names within ns: a vocabulary's
// sorts/predicates/functions, a structure's bound sorts, or a theory's
// sentence/definition counts. Namespaces have no detail of their own;
// selecting one descends into it instead.
func renderDetail(ns *registry.Namespace, e entry) string {
	switch e.kind {
	case entryVocabulary:
		return renderVocabulary(ns.Vocabularies[e.name])
	case entryStructure:
		return renderStructure(ns.Structures[e.name])
	case entryTheory:
		return fmt.Sprintf("theory %s: %d sentence(s), %d definition(s), %d fixpoint definition(s)",
			e.name, len(ns.Theories[e.name].Sentences), len(ns.Theories[e.name].Definitions), len(ns.Theories[e.name].FixpointDefs))
	default:
		return ""
	}
}

func renderVocabulary(voc *vocabulary.Vocabulary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "vocabulary %s\n", voc.Name)

	sorts := voc.Sorts()
	sort.Slice(sorts, func(i, j int) bool { return sorts[i].Name < sorts[j].Name })
	fmt.Fprintf(&b, "\nsorts (%d):\n", len(sorts))
	for _, s := range sorts {
		parents := sortNamesOf(s.Parents())
		if len(parents) == 0 {
			fmt.Fprintf(&b, "  %s\n", s.Name)
		} else {
			fmt.Fprintf(&b, "  %s < %s\n", s.Name, strings.Join(parents, ", "))
		}
	}

	preds := voc.Preds()
	sort.Slice(preds, func(i, j int) bool { return preds[i].Name < preds[j].Name })
	fmt.Fprintf(&b, "\npredicates (%d):\n", len(preds))
	for _, ov := range preds {
		for _, sym := range ov.Variants() {
			fmt.Fprintf(&b, "  %s(%s)\n", sym.Name, strings.Join(sortNamesOf(sym.Sorts), ", "))
		}
	}

	funcs := voc.Funcs()
	sort.Slice(funcs, func(i, j int) bool { return funcs[i].Name < funcs[j].Name })
	fmt.Fprintf(&b, "\nfunctions (%d):\n", len(funcs))
	for _, ov := range funcs {
		for _, sym := range ov.Variants() {
			in := sortNamesOf(sym.InputSorts())
			fmt.Fprintf(&b, "  %s(%s): %s\n", sym.Name, strings.Join(in, ", "), sym.OutputSort().Name)
		}
	}

	return b.String()
}

func renderStructure(s *structure.Structure) string {
	var b strings.Builder
	fmt.Fprintf(&b, "structure over vocabulary %s\n", s.Voc.Name)

	sorts := s.Voc.Sorts()
	sort.Slice(sorts, func(i, j int) bool { return sorts[i].Name < sorts[j].Name })
	fmt.Fprintf(&b, "\nsort interpretations (%d declared sorts):\n", len(sorts))
	for _, sort := range sorts {
		if _, ok := s.SortInter(sort); ok {
			fmt.Fprintf(&b, "  %s: bound\n", sort.Name)
		} else {
			fmt.Fprintf(&b, "  %s: unbound\n", sort.Name)
		}
	}

	return b.String()
}

func sortNamesOf(sorts []*vocabulary.Sort) []string {
	out := make([]string, len(sorts))
	for i, s := range sorts {
		out[i] = s.Name
	}
	return out
}
