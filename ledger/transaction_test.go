package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/ledger"
)

func sampleBody() ledger.TransactionBody {
	return ledger.TransactionBody{
		Inputs: []ledger.TransactionInput{
			{TransactionID: hash32(0x01), Index: 0},
		},
		Outputs: []ledger.TransactionOutput{
			{
				Address: ledger.NewEnterpriseAddress(ledger.NetworkMainnet, ledger.KeyHashCredential(hash28(0xAA))),
				Value:   ledger.NewValue(2_000_000),
			},
		},
		Fee: 200_000,
	}
}

func hash32(b byte) ledger.Hash32 {
	var h ledger.Hash32
	for i := range h {
		h[i] = b
	}
	return h
}

func TestTransactionBodyHashIsDeterministic(t *testing.T) {
	b := sampleBody()
	h1, err := b.Hash()
	require.NoError(t, err)
	h2, err := b.Hash()
	require.NoError(t, err)
	require.Equal(t, h1, h2)
}

func TestTransactionBodyHashChangesWithFee(t *testing.T) {
	b1 := sampleBody()
	b2 := sampleBody()
	b2.Fee = 300_000
	h1, err := b1.Hash()
	require.NoError(t, err)
	h2, err := b2.Hash()
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}

func TestScriptIntegrityHashNilWithoutRedeemersOrDatums(t *testing.T) {
	h, err := ledger.ComputeScriptIntegrityHash(nil, nil, nil)
	require.NoError(t, err)
	require.Nil(t, h)
}

func TestScriptIntegrityHashPresentWithRedeemers(t *testing.T) {
	redeemers := []ledger.Redeemer{
		{Tag: ledger.RedeemerSpend, Index: 0, Data: []byte{0x00}, ExUnits: ledger.ExUnits{Mem: 100, Steps: 200}},
	}
	costModels := []ledger.CostModelView{{Language: ledger.PlutusV3, Params: []int64{1, 2, 3}}}
	h, err := ledger.ComputeScriptIntegrityHash(redeemers, nil, costModels)
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestNativeScriptAllRequiresEverySigner(t *testing.T) {
	ns := ledger.NativeScript{
		Kind: ledger.NativeScriptAll,
		Scripts: []ledger.NativeScript{
			{Kind: ledger.NativeScriptSig, KeyHash: hash28(0x01)},
			{Kind: ledger.NativeScriptSig, KeyHash: hash28(0x02)},
		},
	}
	require.False(t, ns.IsSatisfied(map[ledger.Hash28]bool{hash28(0x01): true}, nil, nil))
	require.True(t, ns.IsSatisfied(map[ledger.Hash28]bool{hash28(0x01): true, hash28(0x02): true}, nil, nil))
}

func TestNativeScriptAtLeastThreshold(t *testing.T) {
	ns := ledger.NativeScript{
		Kind:     ledger.NativeScriptAtLeast,
		Required: 2,
		Scripts: []ledger.NativeScript{
			{Kind: ledger.NativeScriptSig, KeyHash: hash28(0x01)},
			{Kind: ledger.NativeScriptSig, KeyHash: hash28(0x02)},
			{Kind: ledger.NativeScriptSig, KeyHash: hash28(0x03)},
		},
	}
	require.True(t, ns.IsSatisfied(map[ledger.Hash28]bool{hash28(0x01): true, hash28(0x03): true}, nil, nil))
	require.False(t, ns.IsSatisfied(map[ledger.Hash28]bool{hash28(0x01): true}, nil, nil))
}
