package scriptcontext_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/scriptcontext"
)

func h32(b byte) ledger.Hash32 {
	var h ledger.Hash32
	for i := range h {
		h[i] = b
	}
	return h
}

func h28(b byte) ledger.Hash28 {
	var h ledger.Hash28
	for i := range h {
		h[i] = b
	}
	return h
}

func TestBuildSpendContextV2(t *testing.T) {
	in := ledger.TransactionInput{TransactionID: h32(0x01), Index: 0}
	out := ledger.TransactionOutput{
		Address: ledger.NewEnterpriseAddress(ledger.NetworkMainnet, ledger.KeyHashCredential(h28(0xAA))),
		Value:   ledger.NewValue(5_000_000),
	}
	ctx := scriptcontext.Context{
		Tx: ledger.Transaction{
			Body: ledger.TransactionBody{
				Inputs:  []ledger.TransactionInput{in},
				Outputs: []ledger.TransactionOutput{out},
				Fee:     200_000,
			},
		},
		TxID:   h32(0xFF),
		Inputs: []scriptcontext.ResolvedInput{{Input: in, Output: out}},
	}
	result, err := ctx.Build(ledger.PlutusV2, scriptcontext.Purpose{Tag: ledger.RedeemerSpend, Input: &in}, data.NewI(0))
	require.NoError(t, err)

	constr, ok := result.(data.Constr)
	require.True(t, ok)
	require.Equal(t, uint64(0), constr.Tag)
	require.Len(t, constr.Args, 2)
}

func TestBuildMintContextV3HasScriptInfo(t *testing.T) {
	policy := []byte{0x01, 0x02}
	ctx := scriptcontext.Context{
		Tx: ledger.Transaction{Body: ledger.TransactionBody{Fee: 100_000}},
		TxID: h32(0x02),
	}
	result, err := ctx.Build(ledger.PlutusV3, scriptcontext.Purpose{Tag: ledger.RedeemerMint, PolicyOrCredential: policy}, data.NewI(0))
	require.NoError(t, err)
	constr := result.(data.Constr)
	scriptInfo := constr.Args[1].(data.Constr)
	require.Equal(t, uint64(0), scriptInfo.Tag)
}

func TestValueDataFiltersZeroQuantities(t *testing.T) {
	policy := h28(0x10)
	v := ledger.Value{Coin: 10, Assets: map[ledger.PolicyID]map[ledger.AssetName]int64{
		policy: {"zero": 0, "nonzero": 7},
	}}
	ctx := scriptcontext.Context{Tx: ledger.Transaction{Body: ledger.TransactionBody{
		Outputs: []ledger.TransactionOutput{{
			Address: ledger.NewEnterpriseAddress(ledger.NetworkMainnet, ledger.KeyHashCredential(h28(0x11))),
			Value:   v,
		}},
	}}, TxID: h32(0x03)}
	result, err := ctx.Build(ledger.PlutusV2, scriptcontext.Purpose{Tag: ledger.RedeemerMint, PolicyOrCredential: []byte{0x01}}, data.NewI(0))
	require.NoError(t, err)
	require.NotNil(t, result)

	txInfo := result.(data.Constr).Args[0].(data.Constr)
	outValue := txInfo.Args[1].(data.List).Items[0].(data.Constr).Args[1].(data.Map)
	require.Len(t, outValue.Pairs, 2) // ada entry plus the one policy
	require.Len(t, outValue.Pairs[1].Value.(data.Map).Pairs, 1)
}
