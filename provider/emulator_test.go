package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/provider"
	"github.com/blinklabs-io/gouplc/txbuilder"
)

func addr(tag byte) ledger.Address {
	var h ledger.Hash28
	for i := range h {
		h[i] = tag
	}
	return ledger.NewEnterpriseAddress(ledger.NetworkTestnet, ledger.KeyHashCredential(h))
}

func TestEmulatorFindUTxOsByAddress(t *testing.T) {
	a := addr(0x01)
	in := ledger.TransactionInput{TransactionID: ledger.Blake2b256Hash([]byte("seed")), Index: 0}
	out := ledger.TransactionOutput{Address: a, Value: ledger.NewValue(5_000_000)}

	emu := provider.NewEmulator([]txbuilder.ResolvedUTxO{{Input: in, Output: out}}, ledger.ProtocolParams{})

	found, err := emu.FindUTxOs(context.Background(), a)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, in, found[0].Input)
}

func TestEmulatorSubmitConsumesAndCreatesUTxOs(t *testing.T) {
	a := addr(0x02)
	b := addr(0x03)
	in := ledger.TransactionInput{TransactionID: ledger.Blake2b256Hash([]byte("seed2")), Index: 0}
	out := ledger.TransactionOutput{Address: a, Value: ledger.NewValue(5_000_000)}

	emu := provider.NewEmulator([]txbuilder.ResolvedUTxO{{Input: in, Output: out}}, ledger.ProtocolParams{})

	tx := ledger.Transaction{Body: ledger.TransactionBody{
		Inputs:  []ledger.TransactionInput{in},
		Outputs: []ledger.TransactionOutput{{Address: b, Value: ledger.NewValue(5_000_000)}},
		Fee:     0,
	}}

	txID, err := emu.Submit(context.Background(), tx)
	require.NoError(t, err)

	_, err = emu.FindUTxOsByInputs(context.Background(), []ledger.TransactionInput{in})
	require.Error(t, err, "consumed input must no longer resolve")

	resolved, err := emu.FindUTxOsByInputs(context.Background(), []ledger.TransactionInput{{TransactionID: txID, Index: 0}})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
}

func TestEmulatorSetSlot(t *testing.T) {
	emu := provider.NewEmulator(nil, ledger.ProtocolParams{})
	emu.SetSlot(12345)
	slot, err := emu.CurrentSlot(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(12345), slot)
}
