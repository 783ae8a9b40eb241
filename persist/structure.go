package persist

import (
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/structure"
	"github.com/KULeuven-KRR/idp-core/vocabulary"
)

const structureSchemaComment = "# yaml-language-server: $schema=https://raw.githubusercontent.com/KULeuven-KRR/idp-core/main/.idp-structure.schema.json"

// yamlStructure is the YAML representation of a Structure.
type yamlStructure struct {
	Vocabulary string              `yaml:"vocabulary"`
	Sorts      map[string]yamlSortTable `yaml:"sorts,omitempty"`
	Preds      []yamlPredInter     `yaml:"preds,omitempty"`
	Funcs      []yamlFuncInter     `yaml:"funcs,omitempty"`
}

// yamlSortTable is either an explicit range or an explicit element list;
// at most one of the two is populated. This is the only SortTable shape
// the round trip supports: an EnumeratedSortTable (Elements) or an
// IntRangeSortTable (Range). An EmptySortTable is written with neither
// field and loads back as an empty enumerated table.
type yamlSortTable struct {
	Range    *yamlRange `yaml:"range,omitempty"`
	Elements []any      `yaml:"elements,omitempty"`
}

type yamlRange struct {
	Lo int64 `yaml:"lo"`
	Hi int64 `yaml:"hi"`
}

type yamlPredInter struct {
	Name  string   `yaml:"name"`
	Sorts []string `yaml:"sorts,omitempty"`
	CT    [][]any  `yaml:"ct,omitempty"`
	CF    [][]any  `yaml:"cf,omitempty"`
}

type yamlFuncInter struct {
	Name  string        `yaml:"name"`
	Sorts []string      `yaml:"sorts"`
	Rows  []yamlFuncRow `yaml:"rows,omitempty"`
}

type yamlFuncRow struct {
	Inputs []any `yaml:"inputs"`
	Value  any   `yaml:"value"`
}

// SaveStructure writes s as YAML to w: every enumerated or int-range
// sort table, every predicate's ct/cf tuple sets held as a concrete
// EnumeratedPredTable, and every function's two-valued FuncTable graph.
// Interpretations held as any other internal table variant (builtin or
// union sort tables; inverse, union, process, comparison, sort-derived
// or function-graph predicate tables; graph-only function
// interpretations) are not round-trippable and are skipped, each
// reported once to sink (spec §4.10 "skipped with a diag warning").
func SaveStructure(w io.Writer, voc *vocabulary.Vocabulary, s *structure.Structure, sink *diag.Sink) (err error) {
	if _, err := fmt.Fprintln(w, structureSchemaComment); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	y := &yamlStructure{Vocabulary: voc.Name, Sorts: make(map[string]yamlSortTable)}

	sorts := voc.Sorts()
	sort.Slice(sorts, func(i, j int) bool { return sorts[i].Name < sorts[j].Name })
	for _, so := range sorts {
		table, ok := s.SortInter(so)
		if !ok {
			continue
		}
		yt, ok := encodeSortTable(table)
		if !ok {
			sink.Report(diag.WrongValue, diag.Position{}, "sort %s: interpretation is not round-trippable, skipped", so.Name)
			continue
		}
		y.Sorts[so.Name] = yt
	}

	preds := voc.Preds()
	sort.Slice(preds, func(i, j int) bool { return preds[i].Name < preds[j].Name })
	for _, ov := range preds {
		variants := ov.Variants()
		sort.Slice(variants, func(i, j int) bool {
			return sortKeyString(variants[i].Sorts) < sortKeyString(variants[j].Sorts)
		})
		for _, sym := range variants {
			pi, ok := s.PredInter(sym)
			if !ok {
				continue
			}
			ct, ctOK := encodeTuples(pi.CT())
			cf, cfOK := encodeTuples(pi.CF())
			if !ctOK || !cfOK {
				sink.Report(diag.WrongValue, diag.Position{}, "predicate %s: interpretation is not round-trippable, skipped", sym.Name)
				continue
			}
			y.Preds = append(y.Preds, yamlPredInter{Name: sym.Name, Sorts: sortNames(sym.Sorts), CT: ct, CF: cf})
		}
	}

	funcs := voc.Funcs()
	sort.Slice(funcs, func(i, j int) bool { return funcs[i].Name < funcs[j].Name })
	for _, ov := range funcs {
		variants := ov.Variants()
		sort.Slice(variants, func(i, j int) bool {
			return sortKeyString(variants[i].Sorts) < sortKeyString(variants[j].Sorts)
		})
		for _, sym := range variants {
			fi, ok := s.FuncInter(sym)
			if !ok {
				continue
			}
			if fi.Table == nil {
				sink.Report(diag.WrongValue, diag.Position{}, "function %s: graph-only interpretation is not round-trippable, skipped", sym.Name)
				continue
			}
			var rows []yamlFuncRow
			skipped := false
			for it := fi.Table.Iterate(); it.HasNext(); {
				row := it.Next()
				inputs, ok := encodeTuple(row[:len(row)-1])
				if !ok {
					sink.Report(diag.WrongValue, diag.Position{}, "function %s: a row contains a compound element and is not round-trippable, skipped", sym.Name)
					skipped = true
					break
				}
				value, ok := encodeElement(row[len(row)-1])
				if !ok {
					sink.Report(diag.WrongValue, diag.Position{}, "function %s: a row contains a compound element and is not round-trippable, skipped", sym.Name)
					skipped = true
					break
				}
				rows = append(rows, yamlFuncRow{Inputs: inputs, Value: value})
			}
			if skipped {
				continue
			}
			y.Funcs = append(y.Funcs, yamlFuncInter{Name: sym.Name, Sorts: sortNames(sym.Sorts), Rows: rows})
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

// LoadStructure reads a structure previously written by SaveStructure
// from path, over the already-loaded voc: it must name the same
// vocabulary SaveStructure was given.
func LoadStructure(path string, voc *vocabulary.Vocabulary) (*structure.Structure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading structure file: %w", err)
	}

	var y yamlStructure
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("parsing structure: %w", err)
	}
	if y.Vocabulary != voc.Name {
		return nil, fmt.Errorf("structure was saved for vocabulary %q, not %q", y.Vocabulary, voc.Name)
	}

	factory := element.NewFactory()
	s := structure.NewStructure(voc)

	for name, yt := range y.Sorts {
		so, ok := voc.Sort(name)
		if !ok {
			return nil, fmt.Errorf("sort %s: not declared in vocabulary", name)
		}
		table, err := decodeSortTable(factory, yt)
		if err != nil {
			return nil, fmt.Errorf("sort %s: %w", name, err)
		}
		s.SetSortInter(so, table)
	}

	for _, yp := range y.Preds {
		ov, ok := voc.Pred(yp.Name)
		if !ok {
			return nil, fmt.Errorf("predicate %s: not declared in vocabulary", yp.Name)
		}
		sorts, err := resolveSortNames(sortsByName(voc), yp.Sorts)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: %w", yp.Name, err)
		}
		sym, err := ov.Resolve(sorts)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: %w", yp.Name, err)
		}
		ct, err := decodeTuples(factory, yp.CT)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: ct: %w", yp.Name, err)
		}
		cf, err := decodeTuples(factory, yp.CF)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: cf: %w", yp.Name, err)
		}
		universe := s.UniverseOfPred(sym)
		ctTable := structure.NewEnumeratedPredTable(sym.Arity(), ct)
		cfTable := structure.NewEnumeratedPredTable(sym.Arity(), cf)
		s.SetPredInter(sym, structure.NewPredInterFromBound(ctTable, cfTable, true, true, universe))
	}

	for _, yf := range y.Funcs {
		ov, ok := voc.Func(yf.Name)
		if !ok {
			return nil, fmt.Errorf("function %s: not declared in vocabulary", yf.Name)
		}
		sorts, err := resolveSortNames(sortsByName(voc), yf.Sorts)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", yf.Name, err)
		}
		sym, err := ov.Resolve(sorts)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", yf.Name, err)
		}
		var rows []structure.Tuple
		for _, r := range yf.Rows {
			inputs, err := decodeTuple(factory, r.Inputs)
			if err != nil {
				return nil, fmt.Errorf("function %s: %w", yf.Name, err)
			}
			value, err := decodeElement(factory, r.Value)
			if err != nil {
				return nil, fmt.Errorf("function %s: %w", yf.Name, err)
			}
			rows = append(rows, append(inputs, value))
		}
		table := structure.NewFuncTable(sym.Arity(), rows)
		universe := s.UniverseOfFunc(sym)
		s.SetFuncInter(sym, structure.NewFuncInterFromTable(table, universe))
	}

	return s, nil
}

func sortsByName(voc *vocabulary.Vocabulary) map[string]*vocabulary.Sort {
	out := make(map[string]*vocabulary.Sort)
	for _, so := range voc.Sorts() {
		out[so.Name] = so
	}
	return out
}

func encodeSortTable(t structure.SortTable) (yamlSortTable, bool) {
	switch tt := t.(type) {
	case *structure.EnumeratedSortTable:
		elems, ok := encodeTuple(iterateElements(tt))
		if !ok {
			return yamlSortTable{}, false
		}
		return yamlSortTable{Elements: elems}, true
	case *structure.IntRangeSortTable:
		return yamlSortTable{Range: &yamlRange{Lo: tt.Lo, Hi: tt.Hi}}, true
	case structure.EmptySortTable:
		return yamlSortTable{Elements: []any{}}, true
	default:
		return yamlSortTable{}, false
	}
}

func iterateElements(t structure.SortTable) []*element.Element {
	var out []*element.Element
	for it := t.Iterate(); it.HasNext(); {
		out = append(out, it.Next())
	}
	return out
}

func decodeSortTable(factory *element.Factory, yt yamlSortTable) (structure.SortTable, error) {
	if yt.Range != nil {
		return structure.NewIntRangeSortTable(factory, yt.Range.Lo, yt.Range.Hi), nil
	}
	elems := make([]*element.Element, len(yt.Elements))
	for i, v := range yt.Elements {
		e, err := decodeElement(factory, v)
		if err != nil {
			return nil, err
		}
		elems[i] = e
	}
	return structure.NewEnumeratedSortTable(elems), nil
}

func encodeTuples(t structure.PredTable) ([][]any, bool) {
	enum, ok := t.(*structure.EnumeratedPredTable)
	if !ok {
		return nil, false
	}
	var out [][]any
	for it := enum.Iterate(); it.HasNext(); {
		tup, ok := encodeTuple(it.Next())
		if !ok {
			return nil, false
		}
		out = append(out, tup)
	}
	return out, true
}

func encodeTuple(tup []*element.Element) ([]any, bool) {
	out := make([]any, len(tup))
	for i, e := range tup {
		v, ok := encodeElement(e)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func encodeElement(e *element.Element) (any, bool) {
	switch e.Kind() {
	case element.KindInt:
		return e.Int(), true
	case element.KindReal:
		return e.Real(), true
	case element.KindString:
		return e.Str(), true
	default:
		return nil, false
	}
}

func decodeTuples(factory *element.Factory, rows [][]any) ([]structure.Tuple, error) {
	var out []structure.Tuple
	for _, r := range rows {
		tup, err := decodeTuple(factory, r)
		if err != nil {
			return nil, err
		}
		out = append(out, tup)
	}
	return out, nil
}

func decodeTuple(factory *element.Factory, values []any) (structure.Tuple, error) {
	out := make(structure.Tuple, len(values))
	for i, v := range values {
		e, err := decodeElement(factory, v)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeElement(factory *element.Factory, v any) (*element.Element, error) {
	switch val := v.(type) {
	case int:
		return factory.CreateInt(int64(val)), nil
	case int64:
		return factory.CreateInt(val), nil
	case float64:
		return factory.CreateReal(val, true), nil
	case string:
		return factory.CreateStr(val, true), nil
	default:
		return nil, fmt.Errorf("unsupported persisted element value %v (%T)", v, v)
	}
}
