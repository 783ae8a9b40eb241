// Package persist round-trips a vocabulary.Vocabulary and a
// structure.Structure to/from YAML (SPEC_FULL.md §4.10), generalizing
// hemanta212-scaf's analysis/schema.go yamlSchema/LoadSchema/WriteSchema
// round trip from "DB schema" to "vocabulary + structure": map/slice
// intermediate YAML types, names sorted for deterministic output, a
// leading yaml-language-server schema comment, and a yaml.Encoder with
// two-space indent.
package persist

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

const vocabularySchemaComment = "# yaml-language-server: $schema=https://raw.githubusercontent.com/KULeuven-KRR/idp-core/main/.idp-vocabulary.schema.json"

// yamlVocabulary is the YAML representation of a Vocabulary.
type yamlVocabulary struct {
	Name  string      `yaml:"name"`
	Sorts []yamlSort  `yaml:"sorts,omitempty"`
	Preds []yamlPred  `yaml:"preds,omitempty"`
	Funcs []yamlFunc  `yaml:"funcs,omitempty"`
}

type yamlSort struct {
	Name    string   `yaml:"name"`
	Parents []string `yaml:"parents,omitempty"`
}

// yamlPred is one concrete variant of a predicate overload; several
// entries may share Name when the overload has more than one variant.
type yamlPred struct {
	Name  string   `yaml:"name"`
	Sorts []string `yaml:"sorts,omitempty"`
}

// yamlFunc is one concrete variant of a function overload. Sorts holds
// the input sorts followed by the output sort.
type yamlFunc struct {
	Name    string   `yaml:"name"`
	Sorts   []string `yaml:"sorts"`
	Partial bool     `yaml:"partial,omitempty"`
}

// SaveVocabulary writes voc as YAML to w: every declared sort with its
// immediate parents, and every user-declared predicate/function overload
// variant. Built-in overloads (comparison, numeric, order) are not
// declarations of voc and are never written; they are rebuilt by the
// standard-vocabulary bootstrap on load.
func SaveVocabulary(w io.Writer, voc *vocabulary.Vocabulary) (err error) {
	if _, err := fmt.Fprintln(w, vocabularySchemaComment); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	y := &yamlVocabulary{Name: voc.Name}

	sorts := voc.Sorts()
	sort.Slice(sorts, func(i, j int) bool { return sorts[i].Name < sorts[j].Name })
	for _, s := range sorts {
		parents := sortNames(s.Parents())
		sort.Strings(parents)
		y.Sorts = append(y.Sorts, yamlSort{Name: s.Name, Parents: parents})
	}

	preds := voc.Preds()
	sort.Slice(preds, func(i, j int) bool { return preds[i].Name < preds[j].Name })
	for _, ov := range preds {
		if ov.Kind != vocabulary.OverloadEnumerated {
			continue
		}
		variants := ov.Variants()
		sort.Slice(variants, func(i, j int) bool {
			return sortKeyString(variants[i].Sorts) < sortKeyString(variants[j].Sorts)
		})
		for _, sym := range variants {
			y.Preds = append(y.Preds, yamlPred{Name: sym.Name, Sorts: sortNames(sym.Sorts)})
		}
	}

	funcs := voc.Funcs()
	sort.Slice(funcs, func(i, j int) bool { return funcs[i].Name < funcs[j].Name })
	for _, ov := range funcs {
		if ov.Kind != vocabulary.OverloadEnumerated {
			continue
		}
		variants := ov.Variants()
		sort.Slice(variants, func(i, j int) bool {
			return sortKeyString(variants[i].Sorts) < sortKeyString(variants[j].Sorts)
		})
		for _, sym := range variants {
			y.Funcs = append(y.Funcs, yamlFunc{Name: sym.Name, Sorts: sortNames(sym.Sorts), Partial: sym.Partial})
		}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer func() {
		if cerr := encoder.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return encoder.Encode(y)
}

// LoadVocabulary reads a vocabulary previously written by SaveVocabulary
// from path, rebuilding its sort lattice, sorts, parents, and
// user-declared predicate/function overload variants.
func LoadVocabulary(path string) (*vocabulary.Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file: %w", err)
	}

	var y yamlVocabulary
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}

	lattice := vocabulary.NewLattice()
	voc := vocabulary.NewVocabulary(y.Name, lattice)

	byName := make(map[string]*vocabulary.Sort, len(y.Sorts))
	for _, ys := range y.Sorts {
		s, err := voc.NewSort(ys.Name)
		if err != nil {
			return nil, fmt.Errorf("sort %s: %w", ys.Name, err)
		}
		byName[ys.Name] = s
	}
	for _, ys := range y.Sorts {
		for _, pname := range ys.Parents {
			parent, ok := byName[pname]
			if !ok {
				return nil, fmt.Errorf("sort %s: undeclared parent %s", ys.Name, pname)
			}
			if err := lattice.AddParent(byName[ys.Name], parent); err != nil {
				return nil, fmt.Errorf("sort %s: %w", ys.Name, err)
			}
		}
	}

	for _, yp := range y.Preds {
		sorts, err := resolveSortNames(byName, yp.Sorts)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: %w", yp.Name, err)
		}
		if _, err := voc.AddPred(yp.Name, sorts); err != nil {
			return nil, fmt.Errorf("predicate %s: %w", yp.Name, err)
		}
	}

	for _, yf := range y.Funcs {
		sorts, err := resolveSortNames(byName, yf.Sorts)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", yf.Name, err)
		}
		sym, err := voc.AddFunc(yf.Name, sorts)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", yf.Name, err)
		}
		sym.Partial = yf.Partial
	}

	return voc, nil
}

func sortNames(sorts []*vocabulary.Sort) []string {
	out := make([]string, len(sorts))
	for i, s := range sorts {
		out[i] = s.Name
	}
	return out
}

func sortKeyString(sorts []*vocabulary.Sort) string {
	s := ""
	for i, sort := range sorts {
		if i > 0 {
			s += ","
		}
		s += sort.Name
	}
	return s
}

func resolveSortNames(byName map[string]*vocabulary.Sort, names []string) ([]*vocabulary.Sort, error) {
	out := make([]*vocabulary.Sort, len(names))
	for i, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("undeclared sort %s", name)
		}
		out[i] = s
	}
	return out, nil
}
