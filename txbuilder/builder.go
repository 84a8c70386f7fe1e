package txbuilder

import (
	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/scriptcontext"
)

// maxFixpointIterations bounds §4.5 step 6's repeat-until-stable loop. Real
// fee/input-set fixpoints settle in 2-3 passes; this is a generous ceiling
// against a pathological protocol-parameter/script combination that never
// converges.
const maxFixpointIterations = 8

// Builder turns Intents into a balanced Conway transaction.
type Builder struct {
	Model  costmodel.Model
	Params ledger.ProtocolParams
}

// NewBuilder constructs a Builder priced against model and params.
func NewBuilder(model costmodel.Model, params ledger.ProtocolParams) *Builder {
	return &Builder{Model: model, Params: params}
}

// draft is the builder's working state across fixpoint iterations.
type draft struct {
	body       ledger.TransactionBody
	selected   []ResolvedUTxO
	redeemers  []ledger.Redeemer
	logs       map[int][]string
}

// Build runs §4.5's full algorithm: input selection, script-context
// reconstruction, redeemer evaluation, fee computation, and the fixpoint
// loop tying them together, then computes the script-integrity hash. The
// returned transaction carries no vkey witnesses; call AttachSignatures
// next.
func (b *Builder) Build(intents Intents) (ledger.Transaction, error) {
	d := &draft{body: b.initialBody(intents)}

	var prevFee = ^ledger.Coin(0)
	var prevInputCount = -1
	var prevBudgets []ledger.ExUnits

	for iter := 0; iter < maxFixpointIterations; iter++ {
		if err := b.selectAndAttachChange(intents, d); err != nil {
			return ledger.Transaction{}, err
		}

		redeemers, logs, err := b.evaluateAllRedeemers(intents, d)
		if err != nil {
			return ledger.Transaction{}, err
		}
		d.redeemers = redeemers
		d.logs = logs

		size, err := b.bodySize(d.body)
		if err != nil {
			return ledger.Transaction{}, err
		}
		fee := computeFee(size, d.redeemers, b.Params)
		d.body.Fee = fee

		budgets := make([]ledger.ExUnits, len(redeemers))
		for i, r := range redeemers {
			budgets[i] = r.ExUnits
		}

		stable := fee == prevFee && len(d.selected) == prevInputCount && sameBudgets(budgets, prevBudgets)
		prevFee, prevInputCount, prevBudgets = fee, len(d.selected), budgets
		if stable {
			break
		}
	}

	if err := b.checkExUnitsCeiling(d.redeemers); err != nil {
		return ledger.Transaction{}, err
	}

	datums, costModels := b.integrityInputs(intents, d)
	integrityHash, err := ledger.ComputeScriptIntegrityHash(d.redeemers, datums, costModels)
	if err != nil {
		return ledger.Transaction{}, err
	}
	d.body.ScriptIntegrityHash = integrityHash
	d.body.RequiredSigners = intents.RequiredSigners

	witnessSet := ledger.WitnessSet{Redeemers: d.redeemers, PlutusData: datums}
	for _, s := range intents.Spends {
		if s.Script != nil {
			addScriptToWitnessSet(&witnessSet, *s.Script)
		}
	}
	for _, m := range intents.Mints {
		if m.Script != nil {
			addScriptToWitnessSet(&witnessSet, *m.Script)
		}
	}

	return ledger.Transaction{Body: d.body, WitnessSet: witnessSet, IsValid: true}, nil
}

func addScriptToWitnessSet(ws *ledger.WitnessSet, s ledger.Script) {
	if ws.PlutusScripts == nil {
		ws.PlutusScripts = make(map[ledger.ScriptLanguage][][]byte)
	}
	ws.PlutusScripts[s.Language] = append(ws.PlutusScripts[s.Language], s.Bytes)
}

func sameBudgets(a, b []ledger.ExUnits) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// initialBody folds every non-UTxO-selection intent into a draft body:
// explicit spend inputs, outputs, mint, certificates, votes, and proposals.
func (b *Builder) initialBody(intents Intents) ledger.TransactionBody {
	var body ledger.TransactionBody
	for _, s := range intents.Spends {
		body.Inputs = append(body.Inputs, s.UTxO.Input)
	}
	for _, p := range intents.Pays {
		out := ledger.TransactionOutput{Address: p.Address, Value: p.Value}
		if p.Datum != nil {
			encoded, err := data.Encode(p.Datum)
			if err == nil {
				out.Datum = ledger.DatumOption{Kind: ledger.DatumInline, Data: encoded}
			}
		}
		body.Outputs = append(body.Outputs, out)
	}
	for _, m := range intents.Mints {
		for name, qty := range m.Assets {
			body.Mint.Assets = addMint(body.Mint.Assets, m.Policy, name, qty)
		}
	}
	for _, dl := range intents.Delegates {
		body.Certificates = append(body.Certificates, ledger.Cert{
			Kind: ledger.CertStakeDelegation, Credential: dl.Stake, PoolKeyHash: dl.Pool,
		})
	}
	for _, r := range intents.DRepRegs {
		body.Certificates = append(body.Certificates, ledger.Cert{
			Kind: ledger.CertRegisterDRep, Credential: r.DRep, Deposit: r.Deposit, Anchor: r.Anchor,
		})
	}
	for _, v := range intents.Votes {
		body.VotingProcedures = append(body.VotingProcedures, ledger.VotingProcedure{
			Voter: v.Voter, Action: v.Action, Vote: v.Choice,
		})
	}
	for _, p := range intents.Proposals {
		body.ProposalProcedures = append(body.ProposalProcedures, p.Procedure)
	}
	body.ValidityInterval = intents.ValidityInterval
	return body
}

func addMint(assets map[ledger.PolicyID]map[ledger.AssetName]int64, policy ledger.PolicyID, name ledger.AssetName, qty int64) map[ledger.PolicyID]map[ledger.AssetName]int64 {
	if assets == nil {
		assets = make(map[ledger.PolicyID]map[ledger.AssetName]int64)
	}
	if assets[policy] == nil {
		assets[policy] = make(map[ledger.AssetName]int64)
	}
	assets[policy][name] += qty
	return assets
}

// selectAndAttachChange runs input selection against the current fee/output
// requirement and replaces any previously-added change output with a fresh
// one (§4.5 step 2, re-run each fixpoint pass since the fee shifts the
// requirement).
func (b *Builder) selectAndAttachChange(intents Intents, d *draft) error {
	explicitInputs := make([]ResolvedUTxO, 0, len(intents.Spends))
	for _, s := range intents.Spends {
		explicitInputs = append(explicitInputs, s.UTxO)
	}

	payOutputsTotal := sumOutputValues(d.body.Outputs)
	required := payOutputsTotal.Add(ledger.NewValue(d.body.Fee)).Sub(sumValues(explicitInputs)).Add(negateMint(d.body.Mint))

	extra, change, err := selectInputs(intents.AvailableUTxOs, d.selected, positiveOnly(required), b.Params)
	if err != nil {
		return err
	}
	d.selected = extra

	allInputs := append(append([]ledger.TransactionInput(nil), explicitInputsRefs(intents)...), utxoRefs(extra)...)
	d.body.Inputs = allInputs

	outputs := intents.Pays
	body := d.body
	body.Outputs = body.Outputs[:0]
	for _, p := range outputs {
		out := ledger.TransactionOutput{Address: p.Address, Value: p.Value}
		if p.Datum != nil {
			encoded, err := data.Encode(p.Datum)
			if err == nil {
				out.Datum = ledger.DatumOption{Kind: ledger.DatumInline, Data: encoded}
			}
		}
		body.Outputs = append(body.Outputs, out)
	}
	if !change.IsZero() {
		body.Outputs = append(body.Outputs, ledger.TransactionOutput{Address: intents.ChangeAddress, Value: change})
	}
	d.body = body
	return nil
}

func explicitInputsRefs(intents Intents) []ledger.TransactionInput {
	refs := make([]ledger.TransactionInput, len(intents.Spends))
	for i, s := range intents.Spends {
		refs[i] = s.UTxO.Input
	}
	return refs
}

func utxoRefs(utxos []ResolvedUTxO) []ledger.TransactionInput {
	refs := make([]ledger.TransactionInput, len(utxos))
	for i, u := range utxos {
		refs[i] = u.Input
	}
	return refs
}

func sumOutputValues(outs []ledger.TransactionOutput) ledger.Value {
	var total ledger.Value
	for _, o := range outs {
		total = total.Add(o.Value)
	}
	return total
}

// negateMint returns a Value representing -mint, so a positive mint (new
// tokens) reduces the lovelace/inputs the builder must otherwise source,
// and a burn (negative mint) increases it.
func negateMint(mint ledger.Value) ledger.Value {
	return ledger.Value{}.Sub(mint)
}

// positiveOnly clamps every negative entry of v to zero: a negative
// requirement (the sponsor is owed more than they need to pay) needs no
// additional input selection.
func positiveOnly(v ledger.Value) ledger.Value {
	out := ledger.Value{Coin: v.Coin}
	if int64(out.Coin) < 0 {
		out.Coin = 0
	}
	for policy, assets := range v.Assets {
		for name, qty := range assets {
			if qty > 0 {
				out = out.Add(ledger.Value{Assets: map[ledger.PolicyID]map[ledger.AssetName]int64{policy: {name: qty}}})
			}
		}
	}
	return out
}

func (b *Builder) bodySize(body ledger.TransactionBody) (int64, error) {
	encoded, err := body.MarshalCBOR()
	if err != nil {
		return 0, err
	}
	return int64(len(encoded)), nil
}

// evaluateAllRedeemers builds a ScriptContext for each scripted spend/mint
// intent against the current draft body and runs it through the CEK
// machine, producing this iteration's redeemer set (§4.5 steps 3-4).
func (b *Builder) evaluateAllRedeemers(intents Intents, d *draft) ([]ledger.Redeemer, map[int][]string, error) {
	resolvedInputs := make([]scriptcontext.ResolvedInput, 0, len(intents.Spends)+len(d.selected))
	for _, s := range intents.Spends {
		resolvedInputs = append(resolvedInputs, scriptcontext.ResolvedInput{Input: s.UTxO.Input, Output: s.UTxO.Output})
	}
	for _, u := range d.selected {
		resolvedInputs = append(resolvedInputs, scriptcontext.ResolvedInput{Input: u.Input, Output: u.Output})
	}

	tx := ledger.Transaction{Body: d.body}
	txID, err := tx.ID()
	if err != nil {
		return nil, nil, err
	}
	sctx := scriptcontext.Context{Tx: tx, TxID: txID, Inputs: resolvedInputs}

	var redeemers []ledger.Redeemer
	logs := make(map[int][]string)

	for i, s := range intents.Spends {
		if s.Script == nil {
			continue
		}
		purpose := scriptcontext.Purpose{Tag: ledger.RedeemerSpend, Index: uint32(i), Input: &s.UTxO.Input}
		ctxData, err := sctx.Build(s.Script.Language, purpose, s.Redeemer)
		if err != nil {
			return nil, nil, err
		}
		res, err := evaluateRedeemer(b.Model, *s.Script, s.Redeemer, s.Datum, ctxData, b.Params.MaxTxExUnits)
		if err != nil {
			return nil, nil, newBalancingError(len(redeemers), res.Logs, "%s", err)
		}
		redeemers = append(redeemers, ledger.Redeemer{
			Tag: ledger.RedeemerSpend, Index: uint32(i), Data: mustDataBytes(s.Redeemer), ExUnits: res.Spent,
		})
		logs[len(redeemers)-1] = res.Logs
	}

	for i, m := range intents.Mints {
		if m.Script == nil {
			continue
		}
		purpose := scriptcontext.Purpose{Tag: ledger.RedeemerMint, Index: uint32(i), PolicyOrCredential: m.Policy[:]}
		ctxData, err := sctx.Build(m.Script.Language, purpose, m.Redeemer)
		if err != nil {
			return nil, nil, err
		}
		res, err := evaluateRedeemer(b.Model, *m.Script, m.Redeemer, nil, ctxData, b.Params.MaxTxExUnits)
		if err != nil {
			return nil, nil, newBalancingError(len(redeemers), res.Logs, "%s", err)
		}
		redeemers = append(redeemers, ledger.Redeemer{
			Tag: ledger.RedeemerMint, Index: uint32(i), Data: mustDataBytes(m.Redeemer), ExUnits: res.Spent,
		})
		logs[len(redeemers)-1] = res.Logs
	}

	return redeemers, logs, nil
}

func mustDataBytes(d data.Data) []byte {
	b, err := data.Encode(d)
	if err != nil {
		return nil
	}
	return b
}

func (b *Builder) checkExUnitsCeiling(redeemers []ledger.Redeemer) error {
	var total ledger.ExUnits
	for _, r := range redeemers {
		total.Mem += r.ExUnits.Mem
		total.Steps += r.ExUnits.Steps
	}
	if total.Mem > b.Params.MaxTxExUnits.Mem || total.Steps > b.Params.MaxTxExUnits.Steps {
		return newBalancingError(-1, nil, "total execution units (mem=%d, steps=%d) exceed protocol maximum (mem=%d, steps=%d)",
			total.Mem, total.Steps, b.Params.MaxTxExUnits.Mem, b.Params.MaxTxExUnits.Steps)
	}
	return nil
}

func (b *Builder) integrityInputs(intents Intents, d *draft) ([][]byte, []ledger.CostModelView) {
	var datums [][]byte
	for _, s := range intents.Spends {
		if s.Datum != nil {
			datums = append(datums, mustDataBytes(s.Datum))
		}
	}

	languages := make(map[ledger.ScriptLanguage]bool)
	for _, s := range intents.Spends {
		if s.Script != nil {
			languages[s.Script.Language] = true
		}
	}
	for _, m := range intents.Mints {
		if m.Script != nil {
			languages[m.Script.Language] = true
		}
	}
	var views []ledger.CostModelView
	for lang := range languages {
		views = append(views, ledger.CostModelView{Language: lang, Params: b.Params.CostModels[lang]})
	}
	return datums, views
}
