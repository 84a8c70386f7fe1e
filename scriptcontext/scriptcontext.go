// Package scriptcontext reconstructs the Plutus ScriptContext a validator
// sees for a given redeemer: one shape for PlutusV1 and PlutusV2, another
// for PlutusV3 (§4.6). The reconstructed context is itself Plutus Data:
// it is serialized and passed to the evaluator as the validator's final
// argument, so byte-for-byte determinism here feeds directly into the
// script-integrity hash.
package scriptcontext

import (
	"fmt"
	"sort"

	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/ledger"
)

// Purpose identifies why a script is being run: which part of the
// transaction its redeemer applies to.
type Purpose struct {
	Tag   ledger.RedeemerTag
	Index uint32
	// Input is set only for RedeemerSpend, naming the UTxO being spent.
	Input *ledger.TransactionInput
	// PolicyOrCredential names the minting policy / certificate credential /
	// reward account the redeemer applies to, for Mint/Cert/Reward.
	PolicyOrCredential []byte
}

// ResolvedInput pairs a transaction input with the output it actually
// spends, which the reconstructed context's input list must carry (the
// ledger itself cannot be inferred from the transaction alone).
type ResolvedInput struct {
	Input  ledger.TransactionInput
	Output ledger.TransactionOutput
}

// Context holds everything needed to reconstruct a ScriptContext for any
// redeemer in a transaction.
type Context struct {
	Tx              ledger.Transaction
	TxID            ledger.Hash32
	Inputs          []ResolvedInput
	ReferenceInputs []ResolvedInput
	Datums          map[ledger.Hash32][]byte // hash -> raw Plutus Data, for Spend's datum lookup
}

// Build renders the Plutus Data ScriptContext for one purpose. PlutusV3
// gets a ScriptInfo field and the governance and treasury TxInfo fields;
// PlutusV1 and PlutusV2 share one shape (TxInfo plus ScriptPurpose), so a
// V1 context is rendered exactly like a V2 one.
func (c Context) Build(language ledger.ScriptLanguage, purpose Purpose, redeemerData data.Data) (data.Data, error) {
	txInfo, err := c.buildTxInfo(language)
	if err != nil {
		return nil, err
	}
	purposeData, err := c.buildPurpose(language, purpose)
	if err != nil {
		return nil, err
	}

	if language == ledger.PlutusV3 {
		scriptInfo, err := c.buildScriptInfo(purpose, redeemerData)
		if err != nil {
			return nil, err
		}
		return data.Constr{Tag: 0, Args: []data.Data{txInfo, scriptInfo}}, nil
	}
	return data.Constr{Tag: 0, Args: []data.Data{txInfo, purposeData}}, nil
}

// buildScriptInfo constructs V3's ScriptInfo field, which replaces
// ScriptPurpose and additionally carries the spent datum inline for
// spending scripts (§4.6).
func (c Context) buildScriptInfo(purpose Purpose, redeemerData data.Data) (data.Data, error) {
	switch purpose.Tag {
	case ledger.RedeemerSpend:
		if purpose.Input == nil {
			return nil, fmt.Errorf("scriptcontext: spend purpose missing input reference")
		}
		var datum data.Data = data.Constr{Tag: 1} // Nothing
		for _, in := range c.Inputs {
			if in.Input == *purpose.Input && in.Output.Datum.Kind == ledger.DatumInline {
				d, _, err := data.Decode(in.Output.Datum.Data)
				if err != nil {
					return nil, err
				}
				datum = data.Constr{Tag: 0, Args: []data.Data{d}} // Just d
			}
		}
		return data.Constr{Tag: 1, Args: []data.Data{txInRef(*purpose.Input), datum}}, nil
	case ledger.RedeemerMint:
		return data.Constr{Tag: 0, Args: []data.Data{data.NewB(purpose.PolicyOrCredential)}}, nil
	case ledger.RedeemerCert:
		return data.Constr{Tag: 2, Args: []data.Data{data.NewI(int64(purpose.Index))}}, nil
	case ledger.RedeemerReward:
		return data.Constr{Tag: 3, Args: []data.Data{data.NewB(purpose.PolicyOrCredential)}}, nil
	case ledger.RedeemerVoting:
		return data.Constr{Tag: 4, Args: []data.Data{data.NewB(purpose.PolicyOrCredential)}}, nil
	default:
		return data.Constr{Tag: 5, Args: []data.Data{data.NewI(int64(purpose.Index))}}, nil
	}
}

func (c Context) buildPurpose(language ledger.ScriptLanguage, purpose Purpose) (data.Data, error) {
	switch purpose.Tag {
	case ledger.RedeemerSpend:
		if purpose.Input == nil {
			return nil, fmt.Errorf("scriptcontext: spend purpose missing input reference")
		}
		return data.Constr{Tag: 1, Args: []data.Data{txInRef(*purpose.Input)}}, nil
	case ledger.RedeemerMint:
		return data.Constr{Tag: 0, Args: []data.Data{data.NewB(purpose.PolicyOrCredential)}}, nil
	case ledger.RedeemerCert:
		return data.Constr{Tag: 2, Args: []data.Data{data.NewI(int64(purpose.Index))}}, nil
	default:
		return data.Constr{Tag: 3, Args: []data.Data{data.NewB(purpose.PolicyOrCredential)}}, nil
	}
}

func txInRef(in ledger.TransactionInput) data.Data {
	return data.Constr{Tag: 0, Args: []data.Data{
		data.NewB(in.TransactionID[:]),
		data.NewI(int64(in.Index)),
	}}
}

// buildTxInfo renders the transaction-wide TxInfo fields common to every
// purpose: sorted inputs, outputs in list order, fee, mint (with
// zero-quantity entries filtered), validity interval, signatories, and (for
// V3) voting/proposal procedures and the current treasury value (§4.6).
func (c Context) buildTxInfo(language ledger.ScriptLanguage) (data.Data, error) {
	inputs := append([]ResolvedInput(nil), c.Inputs...)
	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Input.Less(inputs[j].Input) })

	inputItems := make([]data.Data, len(inputs))
	for i, in := range inputs {
		d, err := txOutData(in.Input, in.Output)
		if err != nil {
			return nil, err
		}
		inputItems[i] = d
	}

	outputItems := make([]data.Data, len(c.Tx.Body.Outputs))
	for i, out := range c.Tx.Body.Outputs {
		d, err := outputData(out)
		if err != nil {
			return nil, err
		}
		outputItems[i] = d
	}

	mintData, err := valueData(c.Tx.Body.Mint, true)
	if err != nil {
		return nil, err
	}

	signatories := make([]data.Data, len(c.Tx.Body.RequiredSigners))
	for i, s := range c.Tx.Body.RequiredSigners {
		signatories[i] = data.NewB(s[:])
	}

	fields := []data.Data{
		data.List{Items: inputItems},
		data.List{Items: outputItems},
		data.NewI(int64(c.Tx.Body.Fee)),
	}
	fields = append(fields, mintData)
	fields = append(fields, data.List{}) // dcert: certificates omitted from fine detail
	fields = append(fields, data.Map{})  // withdrawals: omitted from fine detail
	fields = append(fields, validityRangeData(c.Tx.Body.ValidityInterval))
	fields = append(fields, data.List{Items: signatories})
	fields = append(fields, data.Map{}) // redeemers map, filled by the caller per-purpose in practice
	fields = append(fields, data.Map{}) // datums
	fields = append(fields, data.NewB(c.TxID[:]))

	if language == ledger.PlutusV3 {
		fields = append(fields, votingProceduresData(c.Tx.Body.VotingProcedures))
		fields = append(fields, proposalProceduresData(c.Tx.Body.ProposalProcedures))
		if c.Tx.Body.CurrentTreasury != nil {
			fields = append(fields, data.Constr{Tag: 0, Args: []data.Data{data.NewI(int64(*c.Tx.Body.CurrentTreasury))}})
		} else {
			fields = append(fields, data.Constr{Tag: 1})
		}
		if c.Tx.Body.TreasuryDonation != nil {
			fields = append(fields, data.Constr{Tag: 0, Args: []data.Data{data.NewI(int64(*c.Tx.Body.TreasuryDonation))}})
		} else {
			fields = append(fields, data.Constr{Tag: 1})
		}
	}

	return data.Constr{Tag: 0, Args: fields}, nil
}

func txOutData(in ledger.TransactionInput, out ledger.TransactionOutput) (data.Data, error) {
	outData, err := outputData(out)
	if err != nil {
		return nil, err
	}
	return data.Constr{Tag: 0, Args: []data.Data{txInRef(in), outData}}, nil
}

func outputData(out ledger.TransactionOutput) (data.Data, error) {
	val, err := valueData(out.Value, false)
	if err != nil {
		return nil, err
	}
	var datum data.Data
	switch out.Datum.Kind {
	case ledger.DatumHash:
		datum = data.Constr{Tag: 1, Args: []data.Data{data.NewB(out.Datum.Hash[:])}}
	case ledger.DatumInline:
		inner, _, derr := data.Decode(out.Datum.Data)
		if derr != nil {
			return nil, derr
		}
		datum = data.Constr{Tag: 2, Args: []data.Data{inner}}
	default:
		datum = data.Constr{Tag: 0}
	}
	var refScript data.Data = data.Constr{Tag: 1}
	if out.ReferenceScript != nil {
		refScript = data.Constr{Tag: 0, Args: []data.Data{data.NewB(out.ReferenceScript.Hash().Bytes())}}
	}
	return data.Constr{Tag: 0, Args: []data.Data{
		data.NewB(out.Address.Bytes()),
		val,
		datum,
		refScript,
	}}, nil
}

// valueData renders a Value as Plutus's Map PolicyID (Map AssetName
// Integer) shape, filtering zero-quantity entries (§4.6). When
// isMint is true (for the mint field, which never contains lovelace) the
// ada entry is skipped.
func valueData(v ledger.Value, isMint bool) (data.Data, error) {
	var pairs []data.Pair
	if !isMint {
		pairs = append(pairs, data.Pair{
			Key:   data.NewB(nil),
			Value: data.Map{Pairs: []data.Pair{{Key: data.NewB(nil), Value: data.NewI(int64(v.Coin))}}},
		})
	}

	policies := make([]ledger.PolicyID, 0, len(v.Assets))
	for p := range v.Assets {
		policies = append(policies, p)
	}
	sort.Slice(policies, func(i, j int) bool {
		return string(policies[i][:]) < string(policies[j][:])
	})

	for _, p := range policies {
		var assetPairs []data.Pair
		names := make([]ledger.AssetName, 0, len(v.Assets[p]))
		for n := range v.Assets[p] {
			names = append(names, n)
		}
		sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
		for _, n := range names {
			qty := v.Assets[p][n]
			if qty == 0 {
				continue
			}
			assetPairs = append(assetPairs, data.Pair{Key: data.NewB(n.Bytes()), Value: data.NewI(qty)})
		}
		if len(assetPairs) == 0 {
			continue
		}
		pairs = append(pairs, data.Pair{Key: data.NewB(p[:]), Value: data.Map{Pairs: assetPairs}})
	}
	return data.Map{Pairs: pairs}, nil
}

func validityRangeData(vi ledger.ValidityInterval) data.Data {
	lower := data.Data(data.Constr{Tag: 0}) // NegInf
	if vi.InvalidBefore != nil {
		lower = data.Constr{Tag: 1, Args: []data.Data{data.NewI(int64(*vi.InvalidBefore))}}
	}
	upper := data.Data(data.Constr{Tag: 2}) // PosInf
	if vi.InvalidAfter != nil {
		upper = data.Constr{Tag: 1, Args: []data.Data{data.NewI(int64(*vi.InvalidAfter))}}
	}
	closure := data.Constr{Tag: 1} // True
	return data.Constr{Tag: 0, Args: []data.Data{
		data.Constr{Tag: 0, Args: []data.Data{lower, closure}},
		data.Constr{Tag: 0, Args: []data.Data{upper, closure}},
	}}
}

func votingProceduresData(procs []ledger.VotingProcedure) data.Data {
	var pairs []data.Pair
	for _, p := range procs {
		pairs = append(pairs, data.Pair{
			Key:   data.NewB(p.Voter.Credential.Hash[:]),
			Value: data.NewI(int64(p.Vote)),
		})
	}
	return data.Map{Pairs: pairs}
}

func proposalProceduresData(procs []ledger.ProposalProcedure) data.Data {
	items := make([]data.Data, len(procs))
	for i, p := range procs {
		items[i] = data.Constr{Tag: 0, Args: []data.Data{
			data.NewI(int64(p.Deposit)),
			data.NewB(p.RewardAccount.Bytes()),
			data.NewI(int64(p.Kind)),
		}}
	}
	return data.List{Items: items}
}
