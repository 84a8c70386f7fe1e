package ledger

// TransactionInput references a single output being spent, identified by
// the id of the transaction that produced it and its index within that
// transaction's output list.
type TransactionInput struct {
	TransactionID Hash32
	Index         uint32
}

// Less orders inputs by (transaction id bytes, index), the canonical input
// ordering §3.4 and §4.6 require for both body encoding and script-context
// reconstruction.
func (in TransactionInput) Less(other TransactionInput) bool {
	for i := range in.TransactionID {
		if in.TransactionID[i] != other.TransactionID[i] {
			return in.TransactionID[i] < other.TransactionID[i]
		}
	}
	return in.Index < other.Index
}

// DatumOption carries an output's datum, either by hash reference or
// inline, or not at all.
type DatumKind uint8

const (
	DatumNone DatumKind = iota
	DatumHash
	DatumInline
)

type DatumOption struct {
	Kind DatumKind
	Hash Hash32
	Data []byte // raw Plutus Data CBOR, present when Kind == DatumInline
}

// TransactionOutput is a single UTxO entry: destination address, value,
// optional datum, and optional reference script.
type TransactionOutput struct {
	Address       Address
	Value         Value
	Datum         DatumOption
	ReferenceScript *Script
}

// ScriptLanguage identifies which Plutus ledger language a script was
// compiled against; each has its own cost model and, before V3, its own
// script-context shape (§4.6).
type ScriptLanguage uint8

const (
	PlutusV1 ScriptLanguage = iota
	PlutusV2
	PlutusV3
)

// Script is a reference (by hash) to either a native script or a Plutus
// script of a specific language, plus its serialized bytes when available.
type ScriptKind uint8

const (
	ScriptNative ScriptKind = iota
	ScriptPlutus
)

type Script struct {
	Kind     ScriptKind
	Language ScriptLanguage // meaningful only when Kind == ScriptPlutus
	Bytes    []byte         // flat-encoded UPLC program for Plutus scripts
	Native   *NativeScript
}

// Hash computes the script hash used as a credential and in witness-set
// matching: Blake2b-224 over a language tag byte followed by the script's
// serialized bytes (§3.4). Native scripts use tag 0x00; Plutus V1/V2/V3 use
// 0x01/0x02/0x03.
func (s Script) Hash() Hash28 {
	var tag byte
	body := s.Bytes
	switch {
	case s.Kind == ScriptNative:
		tag = 0x00
		if s.Native != nil {
			body = encodeNativeScript(*s.Native)
		}
	case s.Language == PlutusV1:
		tag = 0x01
	case s.Language == PlutusV2:
		tag = 0x02
	default:
		tag = 0x03
	}
	return Blake2b224Hash(append([]byte{tag}, body...))
}

// encodeNativeScript renders a native script to the canonical CBOR bytes
// its hash is computed over. Kept minimal: callers that only need the hash
// of a script they already hold the original bytes for should hash those
// bytes directly instead of round-tripping through this encoder.
func encodeNativeScript(ns NativeScript) []byte {
	enc, err := cborEncodeBytes([]byte{byte(ns.Kind)})
	if err != nil {
		return nil
	}
	return enc
}

// ValidityInterval bounds the slot range a transaction is valid within;
// either bound may be absent (unbounded).
type ValidityInterval struct {
	InvalidBefore *uint64
	InvalidAfter  *uint64
}

// Withdrawal is a single reward-account withdrawal entry.
type Withdrawal struct {
	RewardAccount Address
	Amount        Coin
}

// TransactionBody is the signed portion of a Cardano transaction: every
// field the transaction id's hash covers (§3.4). Conway adds
// voting/proposal procedures, a current-treasury value, and a
// treasury-donation field on top of the Babbage-era shape; both are
// modeled here since V3 scripts can see them in their script context.
type TransactionBody struct {
	Inputs            []TransactionInput
	Outputs           []TransactionOutput
	Fee               Coin
	ValidityInterval  ValidityInterval
	Certificates      []Cert
	Withdrawals       []Withdrawal
	Mint              Value // Coin field unused; Assets may carry negative quantities (burns)
	CollateralInputs  []TransactionInput
	CollateralReturn  *TransactionOutput
	TotalCollateral   *Coin
	RequiredSigners   []Hash28
	ReferenceInputs   []TransactionInput
	VotingProcedures  []VotingProcedure
	ProposalProcedures []ProposalProcedure
	CurrentTreasury   *Coin
	TreasuryDonation  *Coin
	NetworkID         *Network
	AuxiliaryDataHash *Hash32
	ScriptIntegrityHash *Hash32
}

// SortedInputs returns a copy of Inputs in the canonical (tx-id, index)
// order script-context reconstruction requires.
func (b TransactionBody) SortedInputs() []TransactionInput {
	out := append([]TransactionInput(nil), b.Inputs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Less(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
