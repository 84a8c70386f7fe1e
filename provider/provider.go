// Package provider defines the abstract blockchain read/submit surface the
// transaction builder depends on (§4.8). No provider implementation is
// part of the core contract — callers plug in a real node/indexer client;
// Emulator exists only as an in-memory reference/test harness.
package provider

import (
	"context"

	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/txbuilder"
)

// Provider is the minimal surface a transaction builder needs from a
// blockchain backend.
type Provider interface {
	// FindUTxOs resolves every UTxO currently sitting at address.
	FindUTxOs(ctx context.Context, address ledger.Address) ([]txbuilder.ResolvedUTxO, error)

	// FindUTxOsByInputs resolves a specific, caller-known set of inputs
	// (e.g. reference inputs, or collateral the caller already tracks).
	FindUTxOsByInputs(ctx context.Context, inputs []ledger.TransactionInput) ([]txbuilder.ResolvedUTxO, error)

	// ProtocolParams returns the current protocol parameter snapshot.
	ProtocolParams(ctx context.Context) (ledger.ProtocolParams, error)

	// Submit broadcasts tx and returns its transaction hash.
	Submit(ctx context.Context, tx ledger.Transaction) (ledger.Hash32, error)

	// CurrentSlot returns the chain tip's current slot number.
	CurrentSlot(ctx context.Context) (uint64, error)
}
