package vocabulary

// SymbolTag marks a predicate/function symbol as a derived CT/CF/PT/PF
// projection of some parent symbol, or as an ordinary (non-derived) symbol
// (spec §3.2, used by the three/four-valued machinery in package structure).
type SymbolTag int

const (
	TagNone SymbolTag = iota
	TagCT             // certainly-true projection
	TagCF             // certainly-false projection
	TagPT             // possibly-true projection
	TagPF             // possibly-false projection
)

// PredSymbol is a predicate symbol with a fixed-arity sort vector (spec
// §3.2 "PFSymbol"). A PredSymbol produced by overload resolution carries a
// back-reference to the PredOverload it was specialised from.
type PredSymbol struct {
	Name     string
	Sorts    []*Sort // arity = len(Sorts)
	Infix    bool
	Tag      SymbolTag
	Parent   *PredSymbol // set when Tag != TagNone
	Overload *PredOverload

	vocs map[*Vocabulary]bool
}

func newPredSymbol(name string, sorts []*Sort) *PredSymbol {
	return &PredSymbol{Name: name, Sorts: sorts, vocs: make(map[*Vocabulary]bool)}
}

// Arity returns the number of arguments this predicate takes.
func (p *PredSymbol) Arity() int { return len(p.Sorts) }

// SymbolName implements Symbol.
func (p *PredSymbol) SymbolName() string { return p.Name }

// SymbolSorts implements Symbol.
func (p *PredSymbol) SymbolSorts() []*Sort { return p.Sorts }

// IsFunction implements Symbol.
func (p *PredSymbol) IsFunction() bool { return false }

// FuncSymbol is a function symbol: Sorts holds the k argument sorts
// followed by the output sort, so Arity() == len(Sorts)-1 (spec §3.2).
// FuncSymbol implements element.FuncIdentity so compound elements can be
// interned by the function that produced them without L0 depending on L1.
type FuncSymbol struct {
	Name     string
	Sorts    []*Sort
	Infix    bool
	Partial  bool // declared as partial; total-ness is also checked at the structure layer
	Overload *FuncOverload

	vocs map[*Vocabulary]bool
}

func newFuncSymbol(name string, sorts []*Sort) *FuncSymbol {
	return &FuncSymbol{Name: name, Sorts: sorts, vocs: make(map[*Vocabulary]bool)}
}

// Arity returns the number of input arguments (excluding the output sort).
func (f *FuncSymbol) Arity() int { return len(f.Sorts) - 1 }

// OutputSort returns the function's result sort.
func (f *FuncSymbol) OutputSort() *Sort { return f.Sorts[len(f.Sorts)-1] }

// InputSorts returns the function's argument sorts.
func (f *FuncSymbol) InputSorts() []*Sort { return f.Sorts[:len(f.Sorts)-1] }

// SymbolName implements Symbol.
func (f *FuncSymbol) SymbolName() string { return f.Name }

// SymbolSorts implements Symbol.
func (f *FuncSymbol) SymbolSorts() []*Sort { return f.Sorts }

// IsFunction implements Symbol.
func (f *FuncSymbol) IsFunction() bool { return true }

// ElementFuncIdentity implements element.FuncIdentity: each FuncSymbol is a
// distinct, stable Go pointer, so its address works directly as the
// identity element.Factory.CreateCompound needs.
func (f *FuncSymbol) ElementFuncIdentity() uintptr {
	return funcSymbolAddr(f)
}

// Symbol is the common read surface of PredSymbol and FuncSymbol, used by
// code (overload resolution, diagnostics) that does not care which kind it
// has.
type Symbol interface {
	SymbolName() string
	SymbolSorts() []*Sort
	IsFunction() bool
}
