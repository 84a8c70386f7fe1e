package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/txbuilder"
)

// Emulator is an in-memory Provider for tests and local development: it
// holds a UTxO set, a protocol parameter snapshot, and a mutable slot
// counter, and "submits" a transaction by consuming its inputs and
// creating its outputs directly, with no script/balance validation of its
// own (the builder already validated both before calling Submit).
type Emulator struct {
	mu sync.Mutex

	utxos  map[ledger.TransactionInput]ledger.TransactionOutput
	params ledger.ProtocolParams
	slot   uint64
}

// NewEmulator creates an Emulator seeded with an initial UTxO set and
// protocol parameters.
func NewEmulator(initial []txbuilder.ResolvedUTxO, params ledger.ProtocolParams) *Emulator {
	e := &Emulator{
		utxos:  make(map[ledger.TransactionInput]ledger.TransactionOutput, len(initial)),
		params: params,
	}
	for _, u := range initial {
		e.utxos[u.Input] = u.Output
	}
	return e
}

// SetSlot forces the emulator's current slot, per §4.8's emulator-only
// setSlot operation (advancing validity-interval-dependent logic in tests
// without waiting on real time).
func (e *Emulator) SetSlot(n uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.slot = n
}

func (e *Emulator) FindUTxOs(_ context.Context, address ledger.Address) ([]txbuilder.ResolvedUTxO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	addrBytes := address.Bytes()
	var out []txbuilder.ResolvedUTxO
	for input, output := range e.utxos {
		if string(output.Address.Bytes()) == string(addrBytes) {
			out = append(out, txbuilder.ResolvedUTxO{Input: input, Output: output})
		}
	}
	return out, nil
}

func (e *Emulator) FindUTxOsByInputs(_ context.Context, inputs []ledger.TransactionInput) ([]txbuilder.ResolvedUTxO, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]txbuilder.ResolvedUTxO, 0, len(inputs))
	for _, in := range inputs {
		output, ok := e.utxos[in]
		if !ok {
			return nil, fmt.Errorf("provider: no such UTxO %s#%d", in.TransactionID, in.Index)
		}
		out = append(out, txbuilder.ResolvedUTxO{Input: in, Output: output})
	}
	return out, nil
}

func (e *Emulator) ProtocolParams(_ context.Context) (ledger.ProtocolParams, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.params, nil
}

// SetProtocolParams replaces the emulator's protocol parameter snapshot.
func (e *Emulator) SetProtocolParams(params ledger.ProtocolParams) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.params = params
}

func (e *Emulator) Submit(_ context.Context, tx ledger.Transaction) (ledger.Hash32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	txID, err := tx.ID()
	if err != nil {
		return ledger.Hash32{}, err
	}

	for _, in := range tx.Body.Inputs {
		if _, ok := e.utxos[in]; !ok {
			return ledger.Hash32{}, fmt.Errorf("provider: input %s#%d not found", in.TransactionID, in.Index)
		}
	}
	for _, in := range tx.Body.Inputs {
		delete(e.utxos, in)
	}
	for i, out := range tx.Body.Outputs {
		ref := ledger.TransactionInput{TransactionID: txID, Index: uint32(i)}
		e.utxos[ref] = out
	}

	return txID, nil
}

func (e *Emulator) CurrentSlot(_ context.Context) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.slot, nil
}

var _ Provider = (*Emulator)(nil)
