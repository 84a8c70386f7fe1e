// Package txbuilder assembles high-level spend/pay/mint/delegate intents
// into a balanced, fee-accurate, properly-signed Conway transaction,
// running the CEK evaluator over each attached script to size its redeemer
// budget (§4.5).
package txbuilder

import (
	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/ledger"
)

// ResolvedUTxO is a UTxO the builder knows both the reference and the
// contents of — what a provider's findUtxos returns.
type ResolvedUTxO struct {
	Input  ledger.TransactionInput
	Output ledger.TransactionOutput
}

// SpendIntent consumes a UTxO, optionally running a Plutus script against a
// redeemer and (for script-locked UTxOs) a datum.
type SpendIntent struct {
	UTxO     ResolvedUTxO
	Script   *ledger.Script // nil for a key-locked input
	Redeemer data.Data
	Datum    data.Data // only needed when the UTxO's datum is hash-only
}

// PayIntent creates a new output.
type PayIntent struct {
	Address ledger.Address
	Value   ledger.Value
	Datum   data.Data // inline datum; nil for none
}

// MintIntent mints or burns assets under one policy.
type MintIntent struct {
	Policy   ledger.PolicyID
	Script   *ledger.Script
	Assets   map[ledger.AssetName]int64 // negative entries burn
	Redeemer data.Data
}

// DelegateIntent delegates a stake credential to a pool. The builder adds
// only a delegation certificate for it; no stake registration certificate
// is added.
type DelegateIntent struct {
	Stake ledger.Credential
	Pool  ledger.Hash28
}

// RegisterDRepIntent registers a DRep credential with a deposit and anchor.
type RegisterDRepIntent struct {
	DRep    ledger.Credential
	Deposit ledger.Coin
	Anchor  *ledger.Anchor
}

// VoteIntent casts a vote on a governance action.
type VoteIntent struct {
	Voter  ledger.Voter
	Action ledger.GovActionID
	Choice ledger.VoteChoice
}

// ProposeIntent submits a governance-action proposal.
type ProposeIntent struct {
	Procedure ledger.ProposalProcedure
}

// Intents is the complete set of high-level operations a caller wants
// folded into one transaction.
type Intents struct {
	Spends    []SpendIntent
	Pays      []PayIntent
	Mints     []MintIntent
	Delegates []DelegateIntent
	DRepRegs  []RegisterDRepIntent
	Votes     []VoteIntent
	Proposals []ProposeIntent

	ChangeAddress   ledger.Address
	AvailableUTxOs  []ResolvedUTxO
	RequiredSigners []ledger.Hash28
	ValidityInterval ledger.ValidityInterval
}
