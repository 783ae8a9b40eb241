package syntax

// Visitor is the read-only traversal trait handed to printers and other
// consumers (spec §4.9, §6 "to printers"). Walk provides the default that
// visits every child once in declaration order; a Visitor only needs to
// decide, per node, whether to keep descending.
type Visitor interface {
	// Visit is called once per node in declaration order. Returning false
	// skips n's children.
	Visit(n Node) bool
}

// Walk traverses n and its children in declaration order, calling
// v.Visit on each (spec §6 "a visitor trait with a default that traverses
// every child once in declaration order").
func Walk(v Visitor, n Node) {
	if n == nil || isNilNode(n) {
		return
	}
	if !v.Visit(n) {
		return
	}

	switch x := n.(type) {
	case *VarTerm, *DomainTerm:
		// leaves

	case *FuncTerm:
		for _, a := range x.Args {
			Walk(v, a)
		}
	case *AggTerm:
		Walk(v, x.Set)

	case *EnumSet:
		for _, p := range x.Pairs {
			Walk(v, p.Cond)
			Walk(v, p.Term)
		}
	case *QuantSet:
		Walk(v, x.Cond)
		Walk(v, x.Term)

	case *PredFormula:
		for _, a := range x.Args {
			Walk(v, a)
		}
	case *EquivFormula:
		Walk(v, x.Left)
		Walk(v, x.Right)
	case *BoolFormula:
		for _, s := range x.Subs {
			Walk(v, s)
		}
	case *QuantFormula:
		Walk(v, x.Sub)
	case *EqChainFormula:
		for _, t := range x.Terms {
			Walk(v, t)
		}
	case *AggFormula:
		Walk(v, x.Agg)
		Walk(v, x.Bound)

	case *Rule:
		Walk(v, x.Head)
		Walk(v, x.Body)
	case *Definition:
		for _, r := range x.Rules {
			Walk(v, r)
		}
	case *Theory:
		for _, s := range x.Sentences {
			Walk(v, s)
		}
		for _, d := range x.Definitions {
			Walk(v, d)
		}
		for _, d := range x.FixpointDefs {
			Walk(v, d)
		}
	}
}

// Mutator is the transforming trait (spec §6 "a separate traversing-
// mutator trait whose visit methods return the possibly new replacement
// node"). Transform descends into whatever Mutate returns, not into n's
// original children, so a Mutator that swaps in a differently-shaped
// subtree is still walked correctly.
type Mutator interface {
	// Mutate is called once per node in declaration order, before its
	// children are transformed. It returns the node to keep descending
	// into (n itself, or a replacement) and whether Transform should
	// descend into that node's children at all.
	Mutate(n Node) (replacement Node, descend bool)
}

// Transform rewrites n and its children per m, returning the (possibly
// new) tree.
func Transform(m Mutator, n Node) Node {
	if n == nil || isNilNode(n) {
		return n
	}

	repl, descend := m.Mutate(n)
	if !descend {
		return repl
	}

	switch x := repl.(type) {
	case *VarTerm, *DomainTerm:
		return x

	case *FuncTerm:
		for i, a := range x.Args {
			x.Args[i] = Transform(m, a).(Term)
		}
		return x
	case *AggTerm:
		x.Set = Transform(m, x.Set).(SetExpr)
		return x

	case *EnumSet:
		for i, p := range x.Pairs {
			x.Pairs[i].Cond = Transform(m, p.Cond).(Formula)
			x.Pairs[i].Term = Transform(m, p.Term).(Term)
		}
		return x
	case *QuantSet:
		x.Cond = Transform(m, x.Cond).(Formula)
		x.Term = Transform(m, x.Term).(Term)
		return x

	case *PredFormula:
		for i, a := range x.Args {
			x.Args[i] = Transform(m, a).(Term)
		}
		return x
	case *EquivFormula:
		x.Left = Transform(m, x.Left).(Formula)
		x.Right = Transform(m, x.Right).(Formula)
		return x
	case *BoolFormula:
		for i, s := range x.Subs {
			x.Subs[i] = Transform(m, s).(Formula)
		}
		return x
	case *QuantFormula:
		x.Sub = Transform(m, x.Sub).(Formula)
		return x
	case *EqChainFormula:
		for i, t := range x.Terms {
			x.Terms[i] = Transform(m, t).(Term)
		}
		return x
	case *AggFormula:
		x.Agg = Transform(m, x.Agg).(*AggTerm)
		x.Bound = Transform(m, x.Bound).(Term)
		return x

	case *Rule:
		x.Head = Transform(m, x.Head).(*PredFormula)
		x.Body = Transform(m, x.Body).(Formula)
		return x
	case *Definition:
		for i, r := range x.Rules {
			x.Rules[i] = Transform(m, r).(*Rule)
		}
		return x
	case *Theory:
		for i, s := range x.Sentences {
			x.Sentences[i] = Transform(m, s).(Formula)
		}
		for i, d := range x.Definitions {
			x.Definitions[i] = Transform(m, d).(*Definition)
		}
		for i, d := range x.FixpointDefs {
			x.FixpointDefs[i] = Transform(m, d).(*Definition)
		}
		return x
	}

	return repl
}

// isNilNode guards against a typed-nil interface (e.g. a nil *FuncTerm
// boxed into the Term interface), which is non-nil by == but panics on
// any field access.
func isNilNode(n Node) bool {
	switch x := n.(type) {
	case *VarTerm:
		return x == nil
	case *FuncTerm:
		return x == nil
	case *DomainTerm:
		return x == nil
	case *AggTerm:
		return x == nil
	case *EnumSet:
		return x == nil
	case *QuantSet:
		return x == nil
	case *PredFormula:
		return x == nil
	case *EquivFormula:
		return x == nil
	case *BoolFormula:
		return x == nil
	case *QuantFormula:
		return x == nil
	case *EqChainFormula:
		return x == nil
	case *AggFormula:
		return x == nil
	case *Rule:
		return x == nil
	case *Definition:
		return x == nil
	case *Theory:
		return x == nil
	default:
		return false
	}
}
