package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KULeuven-KRR/idp-core/syntax"
)

func TestFreeVarsOfQuantFormulaExcludesBoundVar(t *testing.T) {
	x := syntax.NewVariable("x", syntax.Position{})
	y := syntax.NewVariable("y", syntax.Position{})

	likes := syntax.NewOverloadedPredRef(nil) // unresolved is fine; FreeVars doesn't need a symbol
	pf := &syntax.PredFormula{
		Ref:  likes,
		Args: []syntax.Term{&syntax.VarTerm{Var: x}, &syntax.VarTerm{Var: y}},
	}
	q := &syntax.QuantFormula{Univ: true, Vars: []*syntax.Variable{x}, Sub: pf}

	free := q.FreeVars()
	assert.False(t, free[x])
	assert.True(t, free[y])
}

func TestFreeVarsOfEqChain(t *testing.T) {
	x := syntax.NewVariable("x", syntax.Position{})
	f := &syntax.EqChainFormula{
		Conj:  true,
		Terms: []syntax.Term{&syntax.VarTerm{Var: x}, &syntax.VarTerm{Var: x}},
		Cmps:  []syntax.CmpOp{syntax.CmpEq},
	}
	free := f.FreeVars()
	assert.Len(t, free, 1)
	assert.True(t, free[x])
}

func TestCmpOpString(t *testing.T) {
	assert.Equal(t, "=", syntax.CmpEq.String())
	assert.Equal(t, "<", syntax.CmpLt.String())
}
