package cek_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/builtins"
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/uplc"
)

func newMachine(t *testing.T, logger cek.Logger) *cek.Machine {
	t.Helper()
	model, err := costmodel.DefaultV3()
	require.NoError(t, err)
	registry := builtins.NewRegistry(model, logger)
	return cek.NewMachine(model, registry, cek.ExBudget{CPU: 10_000_000_000, Mem: 10_000_000}, logger)
}

func intConst(n int64) uplc.Term {
	return uplc.Const{Value: uplc.ConstInteger{Value: big.NewInt(n)}}
}

func TestRunAddsTwoIntegers(t *testing.T) {
	m := newMachine(t, cek.NopLogger{})
	term := uplc.Apply{
		Function: uplc.Apply{
			Function: uplc.Builtin{Name: uplc.AddInteger},
			Argument: intConst(2),
		},
		Argument: intConst(3),
	}
	result, err := m.Run(term)
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(5).Cmp(v))
}

func TestRunAppliesIdentityLambda(t *testing.T) {
	m := newMachine(t, cek.NopLogger{})
	// (\x -> x) 42, already in De Bruijn form.
	term := uplc.Apply{
		Function: uplc.LamAbs{Body: uplc.Var{Index: 0}},
		Argument: intConst(42),
	}
	result, err := m.Run(term)
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(42).Cmp(v))
}

func TestRunErrorTermFails(t *testing.T) {
	m := newMachine(t, cek.NopLogger{})
	_, err := m.Run(uplc.TermError{})
	require.Error(t, err)
	require.ErrorIs(t, err, cek.ErrEvaluationFailure)
}

func TestRunOutOfBudget(t *testing.T) {
	model, err := costmodel.DefaultV3()
	require.NoError(t, err)
	logger := cek.NopLogger{}
	registry := builtins.NewRegistry(model, logger)
	m := cek.NewMachine(model, registry, cek.ExBudget{CPU: 1, Mem: 1}, logger)
	_, err = m.Run(intConst(1))
	require.Error(t, err)
	require.ErrorIs(t, err, cek.ErrOutOfBudget)
}

func TestRunForceDelay(t *testing.T) {
	m := newMachine(t, cek.NopLogger{})
	term := uplc.Force{Term: uplc.Delay{Term: intConst(7)}}
	result, err := m.Run(term)
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(7).Cmp(v))
}

func TestRunConstrAndCase(t *testing.T) {
	m := newMachine(t, cek.NopLogger{})
	// Constr 1 [40, 2], Case over two branches that each add their two
	// fields; branch 1 fires.
	addBody := uplc.LamAbs{Body: uplc.LamAbs{Body: uplc.Apply{
		Function: uplc.Apply{Function: uplc.Builtin{Name: uplc.AddInteger}, Argument: uplc.Var{Index: 1}},
		Argument: uplc.Var{Index: 0},
	}}}
	term := uplc.CaseTerm{
		Scrutinee: uplc.ConstrTerm{Tag: 1, Fields: []uplc.Term{intConst(40), intConst(2)}},
		Branches:  []uplc.Term{addBody, addBody},
	}
	result, err := m.Run(term)
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(42).Cmp(v))
}

func TestRunCaseMissingBranch(t *testing.T) {
	m := newMachine(t, cek.NopLogger{})
	term := uplc.CaseTerm{
		Scrutinee: uplc.ConstrTerm{Tag: 5},
		Branches:  []uplc.Term{uplc.Const{Value: uplc.ConstUnit{}}},
	}
	_, err := m.Run(term)
	require.Error(t, err)
	require.ErrorIs(t, err, cek.ErrMissingCaseBranch)
}

func TestRunTraceLogsMessage(t *testing.T) {
	logger := &cek.SliceLogger{}
	m := newMachine(t, logger)
	term := uplc.Apply{
		Function: uplc.Apply{
			Function: uplc.Force{Term: uplc.Builtin{Name: uplc.Trace}},
			Argument: uplc.Const{Value: uplc.ConstString{Value: "hello"}},
		},
		Argument: intConst(1),
	}
	result, err := m.Run(term)
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(1).Cmp(v))
	require.Equal(t, []string{"hello"}, logger.Messages())
}
