package uplc_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/uplc"
)

func TestFlatRoundTripConstTrue(t *testing.T) {
	prog := uplc.Program{
		Version: uplc.DefaultVersion,
		Term:    uplc.Const{Value: uplc.ConstBool{Value: true}},
	}
	encoded, err := uplc.FlatEncode(prog)
	require.NoError(t, err)
	decoded, err := uplc.FlatDecode(encoded)
	require.NoError(t, err)
	require.Equal(t, prog.Version, decoded.Version)
	require.Equal(t, prog.Term, decoded.Term)
}

func TestFlatRoundTripAddition(t *testing.T) {
	term := uplc.Apply{
		Function: uplc.Apply{
			Function: uplc.Builtin{Name: uplc.AddInteger},
			Argument: uplc.Const{Value: uplc.ConstInteger{Value: big.NewInt(2)}},
		},
		Argument: uplc.Const{Value: uplc.ConstInteger{Value: big.NewInt(3)}},
	}
	prog := uplc.Program{Version: uplc.DefaultVersion, Term: term}
	encoded, err := uplc.FlatEncode(prog)
	require.NoError(t, err)
	decoded, err := uplc.FlatDecode(encoded)
	require.NoError(t, err)
	require.Equal(t, term, decoded.Term)
}

func TestFlatRoundTripLargeInteger(t *testing.T) {
	n, ok := new(big.Int).SetString("-123456789012345678901234567890", 10)
	require.True(t, ok)
	prog := uplc.Program{
		Version: uplc.DefaultVersion,
		Term:    uplc.Const{Value: uplc.ConstInteger{Value: n}},
	}
	encoded, err := uplc.FlatEncode(prog)
	require.NoError(t, err)
	decoded, err := uplc.FlatDecode(encoded)
	require.NoError(t, err)
	got := decoded.Term.(uplc.Const).Value.(uplc.ConstInteger).Value
	require.Equal(t, 0, n.Cmp(got))
}

func TestToDeBruijn(t *testing.T) {
	// \x -> x, applied to unit
	named := uplc.Apply{
		Function: uplc.LamAbs{
			ParamName: "x",
			Body:      uplc.Var{Name: "x"},
		},
		Argument: uplc.Const{Value: uplc.ConstUnit{}},
	}
	converted, err := uplc.ToDeBruijn(named)
	require.NoError(t, err)
	apply := converted.(uplc.Apply)
	lam := apply.Function.(uplc.LamAbs)
	v := lam.Body.(uplc.Var)
	require.Equal(t, 0, v.Index)
}

func TestToDeBruijnUnbound(t *testing.T) {
	_, err := uplc.ToDeBruijn(uplc.Var{Name: "free"})
	require.Error(t, err)
}
