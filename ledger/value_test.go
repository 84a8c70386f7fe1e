package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/ledger"
)

func TestValueAddSub(t *testing.T) {
	policy := hash28(0x10)
	a := ledger.Value{Coin: 1_000_000, Assets: map[ledger.PolicyID]map[ledger.AssetName]int64{
		policy: {"token": 5},
	}}
	b := ledger.NewValue(500_000)

	sum := a.Add(b)
	require.Equal(t, ledger.Coin(1_500_000), sum.Coin)
	require.Equal(t, int64(5), sum.AssetQuantity(policy, "token"))

	diff := sum.Sub(a)
	require.True(t, diff.IsZero() == false)
	require.Equal(t, ledger.Coin(500_000), diff.Coin)
	require.Equal(t, int64(0), diff.AssetQuantity(policy, "token"))
}

func TestValueHasNegativeForMintBurn(t *testing.T) {
	policy := hash28(0x20)
	v := ledger.Value{Assets: map[ledger.PolicyID]map[ledger.AssetName]int64{
		policy: {"burned": -3},
	}}
	require.True(t, v.HasNegative())
}
