package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KULeuven-KRR/idp-core/diag"
	"github.com/KULeuven-KRR/idp-core/element"
	"github.com/KULeuven-KRR/idp-core/registry"
	"github.com/KULeuven-KRR/idp-core/syntax"
)

// sexprParser reads the tiny s-expression surface syntax idpctl accepts
// for a formula: predicate/function application by juxtaposition,
// (and ...)/(or ...)/(not F)/(equiv A B), (forall (x Sort) F)/(exists
// (x Sort) F), and chained comparisons (= t1 t2 ...)/(< t1 t2)/etc. It
// covers the propositional, quantified and comparison core of spec
// §3.3; aggregate terms are out of scope for this CLI surface (the
// module itself derives and checks them fine, see syntax/derive.go).
type sexprParser struct {
	toks  []string
	pos   int
	scope *registry.Scope
	vars  []map[string]*syntax.Variable
	elems *element.Factory
}

func newSexprParser(src string, scope *registry.Scope, elems *element.Factory) *sexprParser {
	return &sexprParser{toks: tokenizeSexpr(src), scope: scope, elems: elems}
}

func tokenizeSexpr(src string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range src {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}

func (p *sexprParser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *sexprParser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *sexprParser) expect(tok string) error {
	if p.peek() != tok {
		return fmt.Errorf("expected %q, got %q", tok, p.peek())
	}
	p.next()
	return nil
}

func (p *sexprParser) lookupVar(name string) *syntax.Variable {
	for i := len(p.vars) - 1; i >= 0; i-- {
		if v, ok := p.vars[i][name]; ok {
			return v
		}
	}
	return nil
}

// ParseFormula parses a single top-level formula from the whole input.
func (p *sexprParser) ParseFormula() (syntax.Formula, error) {
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected trailing input at %q", strings.Join(p.toks[p.pos:], " "))
	}
	return f, nil
}

func (p *sexprParser) parseFormula() (syntax.Formula, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	head := p.next()
	var f syntax.Formula
	var err error
	switch head {
	case "and", "or":
		f, err = p.parseBool(head == "and")
	case "not":
		f, err = p.parseNot()
	case "equiv":
		f, err = p.parseEquiv()
	case "forall", "exists":
		f, err = p.parseQuant(head == "forall")
	case "=", "<", ">", "=<", ">=", "~=":
		f, err = p.parseEqChain(head)
	default:
		f, err = p.parsePred(head)
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *sexprParser) parseBool(conj bool) (syntax.Formula, error) {
	var subs []syntax.Formula
	for p.peek() != ")" {
		sub, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return &syntax.BoolFormula{Conj: conj, Subs: subs}, nil
}

func (p *sexprParser) parseNot() (syntax.Formula, error) {
	sub, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	sub.SetSign(!sub.Sign())
	return sub, nil
}

func (p *sexprParser) parseEquiv() (syntax.Formula, error) {
	left, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	right, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	return &syntax.EquivFormula{Left: left, Right: right}, nil
}

func (p *sexprParser) parseQuant(univ bool) (syntax.Formula, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	name := p.next()
	sortName := p.next()
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	sort, err := p.scope.SortInScope(sortName)
	if err != nil {
		return nil, err
	}
	v := syntax.NewVariable(name, diag.Position{})
	v.Sort = sort

	p.vars = append(p.vars, map[string]*syntax.Variable{name: v})
	defer func() { p.vars = p.vars[:len(p.vars)-1] }()

	sub, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	return &syntax.QuantFormula{Univ: univ, Vars: []*syntax.Variable{v}, Sub: sub}, nil
}

func (p *sexprParser) parseEqChain(op string) (syntax.Formula, error) {
	cmp, err := parseCmpOp(op)
	if err != nil {
		return nil, err
	}
	var terms []syntax.Term
	for p.peek() != ")" {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if len(terms) < 2 {
		return nil, fmt.Errorf("%s needs at least two terms", op)
	}
	cmps := make([]syntax.CmpOp, len(terms)-1)
	for i := range cmps {
		cmps[i] = cmp
	}
	return &syntax.EqChainFormula{Conj: true, Terms: terms, Cmps: cmps}, nil
}

func parseCmpOp(op string) (syntax.CmpOp, error) {
	switch op {
	case "=":
		return syntax.CmpEq, nil
	case "<":
		return syntax.CmpLt, nil
	case ">":
		return syntax.CmpGt, nil
	case "=<":
		return syntax.CmpLe, nil
	case ">=":
		return syntax.CmpGe, nil
	case "~=":
		return syntax.CmpNe, nil
	default:
		return 0, fmt.Errorf("unknown comparator %q", op)
	}
}

func (p *sexprParser) parsePred(name string) (syntax.Formula, error) {
	ov, err := p.scope.PredInScope(name)
	if err != nil {
		return nil, err
	}
	var args []syntax.Term
	for p.peek() != ")" {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
	}
	return &syntax.PredFormula{Ref: syntax.NewOverloadedPredRef(ov), Args: args}, nil
}

func (p *sexprParser) parseTerm() (syntax.Term, error) {
	if p.peek() == "(" {
		return p.parseFuncTerm()
	}
	tok := p.next()
	if v := p.lookupVar(tok); v != nil {
		return &syntax.VarTerm{Var: v}, nil
	}
	if ov, err := p.scope.FuncInScope(tok); err == nil {
		return &syntax.FuncTerm{Ref: syntax.NewOverloadedFuncRef(ov)}, nil
	}
	return p.literalTerm(tok)
}

func (p *sexprParser) parseFuncTerm() (syntax.Term, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	name := p.next()
	ov, err := p.scope.FuncInScope(name)
	if err != nil {
		return nil, err
	}
	var args []syntax.Term
	for p.peek() != ")" {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, t)
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return &syntax.FuncTerm{Ref: syntax.NewOverloadedFuncRef(ov), Args: args}, nil
}

// literalTerm parses a bare token as a domain literal: an integer, a
// real, or else a string. Sort stays nil for DeriveSorts to assign.
func (p *sexprParser) literalTerm(tok string) (syntax.Term, error) {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return &syntax.DomainTerm{Elem: p.elems.CreateInt(i)}, nil
	}
	if x, err := strconv.ParseFloat(tok, 64); err == nil {
		return &syntax.DomainTerm{Elem: p.elems.CreateReal(x, false)}, nil
	}
	return &syntax.DomainTerm{Elem: p.elems.CreateStr(tok, true)}, nil
}
