package provider

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gouplc/internal/storage"
	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/txbuilder"
)

// CachingProvider wraps a Provider with a BadgerDB-backed local UTxO
// mirror (internal/storage): FindUTxOs writes every UTxO the upstream
// returns into the cache, and Submit evicts the inputs it spends.
// FindUTxOs still queries the upstream on every call; it does not serve
// results from the cache.
type CachingProvider struct {
	upstream Provider
	cache    *storage.Storage
}

// NewCachingProvider wraps upstream with a cache backed by an already-Load-ed
// storage.Storage.
func NewCachingProvider(upstream Provider, cache *storage.Storage) *CachingProvider {
	return &CachingProvider{upstream: upstream, cache: cache}
}

func (c *CachingProvider) FindUTxOs(ctx context.Context, address ledger.Address) ([]txbuilder.ResolvedUTxO, error) {
	addrHex, err := address.Bech32()
	if err != nil {
		addrHex = hex.EncodeToString(address.Bytes())
	}

	resolved, err := c.upstream.FindUTxOs(ctx, address)
	if err != nil {
		return nil, err
	}

	for _, u := range resolved {
		outputCBOR, err := u.Output.MarshalCBOR()
		if err != nil {
			return nil, fmt.Errorf("provider: encoding cached output: %w", err)
		}
		if err := c.cache.PutUTxO(addrHex, u.Input.TransactionID.String(), u.Input.Index, outputCBOR); err != nil {
			return nil, fmt.Errorf("provider: caching UTxO: %w", err)
		}
	}
	return resolved, nil
}

func (c *CachingProvider) FindUTxOsByInputs(ctx context.Context, inputs []ledger.TransactionInput) ([]txbuilder.ResolvedUTxO, error) {
	return c.upstream.FindUTxOsByInputs(ctx, inputs)
}

func (c *CachingProvider) ProtocolParams(ctx context.Context) (ledger.ProtocolParams, error) {
	return c.upstream.ProtocolParams(ctx)
}

func (c *CachingProvider) Submit(ctx context.Context, tx ledger.Transaction) (ledger.Hash32, error) {
	txID, err := c.upstream.Submit(ctx, tx)
	if err != nil {
		return ledger.Hash32{}, err
	}
	for _, in := range tx.Body.Inputs {
		if err := c.cache.RemoveUTxO(in.TransactionID.String(), in.Index); err != nil {
			return txID, fmt.Errorf("provider: evicting spent UTxO from cache: %w", err)
		}
	}
	return txID, nil
}

func (c *CachingProvider) CurrentSlot(ctx context.Context) (uint64, error) {
	return c.upstream.CurrentSlot(ctx)
}

var _ Provider = (*CachingProvider)(nil)
