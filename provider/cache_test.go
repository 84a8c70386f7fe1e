package provider_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/internal/config"
	"github.com/blinklabs-io/gouplc/internal/storage"
	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/provider"
	"github.com/blinklabs-io/gouplc/txbuilder"
)

func TestCachingProviderMirrorsFindUTxOs(t *testing.T) {
	cfg := config.GetConfig()
	cfg.Storage.Directory = t.TempDir()

	cache := &storage.Storage{}
	require.NoError(t, cache.Load())
	t.Cleanup(func() { _ = cache.Close() })

	a := addr(0x01)
	seed := txbuilder.ResolvedUTxO{
		Input:  ledger.TransactionInput{TransactionID: ledger.Blake2b256Hash([]byte("cache-seed")), Index: 0},
		Output: ledger.TransactionOutput{Address: a, Value: ledger.NewValue(5_000_000)},
	}
	emulator := provider.NewEmulator([]txbuilder.ResolvedUTxO{seed}, ledger.ProtocolParams{})
	caching := provider.NewCachingProvider(emulator, cache)

	found, err := caching.FindUTxOs(context.Background(), a)
	require.NoError(t, err)
	require.Len(t, found, 1)

	addrHex, err := a.Bech32()
	require.NoError(t, err)
	cached, err := cache.GetUTxOs(addrHex)
	require.NoError(t, err)
	require.Len(t, cached, 1)
}
