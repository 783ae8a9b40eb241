package main

import (
	"sort"

	"github.com/KULeuven-KRR/idp-core/registry"
)

// entryKind tags what an entry in a namespace listing refers to.
type entryKind int

const (
	entrySubspace entryKind = iota
	entryVocabulary
	entryStructure
	entryTheory
)

func (k entryKind) label() string {
	switch k {
	case entrySubspace:
		return "namespace"
	case entryVocabulary:
		return "vocabulary"
	case entryStructure:
		return "structure"
	case entryTheory:
		return "theory"
	default:
		return "?"
	}
}

// entry is one row of a namespace listing: a name plus what it binds to.
type entry struct {
	name string
	kind entryKind
}

// listEntries returns every binding directly in ns, namespaces first,
// then vocabularies, structures and theories, each alphabetized.
func listEntries(ns *registry.Namespace) []entry {
	var entries []entry
	addSorted := func(names []string, kind entryKind) {
		sort.Strings(names)
		for _, n := range names {
			entries = append(entries, entry{name: n, kind: kind})
		}
	}
	addSorted(mapKeys(ns.Subspaces), entrySubspace)
	addSorted(mapKeys(ns.Vocabularies), entryVocabulary)
	addSorted(mapKeys(ns.Structures), entryStructure)
	addSorted(mapKeys(ns.Theories), entryTheory)
	return entries
}

func mapKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
