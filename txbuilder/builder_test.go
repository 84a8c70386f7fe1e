package txbuilder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/txbuilder"
)

func hash28(b byte) ledger.Hash28 {
	var h ledger.Hash28
	for i := range h {
		h[i] = b
	}
	return h
}

func testParams() ledger.ProtocolParams {
	return ledger.ProtocolParams{
		MinFeeA:              44,
		MinFeeB:              155381,
		PriceCPU:             ledger.Rational{Numerator: 577, Denominator: 10000},
		PriceMem:             ledger.Rational{Numerator: 721, Denominator: 10000000},
		MaxTxExUnits:         ledger.ExUnits{Mem: 14000000, Steps: 10000000000},
		CoinsPerUTxOByte:     4310,
		CollateralPercentage: 150,
	}
}

func keyAddress(tag byte) ledger.Address {
	return ledger.NewEnterpriseAddress(ledger.NetworkTestnet, ledger.KeyHashCredential(hash28(tag)))
}

func TestBuildSimplePayment(t *testing.T) {
	params := testParams()
	builder := txbuilder.NewBuilder(costmodel.Model{}, params)

	change := keyAddress(0x01)
	payee := keyAddress(0x02)
	sourceInput := ledger.TransactionInput{TransactionID: ledger.Blake2b256Hash([]byte("utxo")), Index: 0}
	source := txbuilder.ResolvedUTxO{
		Input:  sourceInput,
		Output: ledger.TransactionOutput{Address: change, Value: ledger.NewValue(10_000_000)},
	}

	intents := txbuilder.Intents{
		Pays: []txbuilder.PayIntent{
			{Address: payee, Value: ledger.NewValue(3_000_000)},
		},
		ChangeAddress:  change,
		AvailableUTxOs: []txbuilder.ResolvedUTxO{source},
	}

	tx, err := builder.Build(intents)
	require.NoError(t, err)
	require.Contains(t, tx.Body.Inputs, sourceInput)
	require.True(t, tx.Body.Fee > 0)

	var total ledger.Value
	for _, out := range tx.Body.Outputs {
		total = total.Add(out.Value)
	}
	total = total.Add(ledger.NewValue(tx.Body.Fee))
	require.Equal(t, ledger.Coin(10_000_000), total.Coin)
}

func TestBuildFailsWhenUTxOsInsufficient(t *testing.T) {
	params := testParams()
	builder := txbuilder.NewBuilder(costmodel.Model{}, params)

	change := keyAddress(0x03)
	payee := keyAddress(0x04)
	source := txbuilder.ResolvedUTxO{
		Input:  ledger.TransactionInput{TransactionID: ledger.Blake2b256Hash([]byte("small")), Index: 0},
		Output: ledger.TransactionOutput{Address: change, Value: ledger.NewValue(1_000_000)},
	}

	intents := txbuilder.Intents{
		Pays: []txbuilder.PayIntent{
			{Address: payee, Value: ledger.NewValue(50_000_000)},
		},
		ChangeAddress:  change,
		AvailableUTxOs: []txbuilder.ResolvedUTxO{source},
	}

	_, err := builder.Build(intents)
	require.Error(t, err)
}
