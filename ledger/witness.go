package ledger

import "github.com/blinklabs-io/gouroboros/cbor"

// VKeyWitness is one Ed25519 signature over the transaction id, paired with
// the verification key it was produced by.
type VKeyWitness struct {
	VKey      [32]byte
	Signature [64]byte
}

// RedeemerTag identifies which validation purpose a redeemer is attached
// to. Conway adds Voting and Proposing on top of Babbage's four.
type RedeemerTag uint8

const (
	RedeemerSpend RedeemerTag = iota
	RedeemerMint
	RedeemerCert
	RedeemerReward
	RedeemerVoting
	RedeemerProposing
)

// ExUnits is a budget of Plutus execution resources.
type ExUnits struct {
	Mem   int64
	Steps int64
}

// Redeemer supplies a script's argument and execution budget for one
// validation purpose at one index into that purpose's list (the input
// being spent, the policy being minted under, and so on).
type Redeemer struct {
	Tag     RedeemerTag
	Index   uint32
	Data    []byte // raw Plutus Data CBOR
	ExUnits ExUnits
}

// WitnessSet carries everything needed to validate a transaction's
// signatures and run its scripts, keyed (in the real CDDL) the same way the
// transaction body is.
type WitnessSet struct {
	VKeyWitnesses []VKeyWitness
	NativeScripts []NativeScript
	PlutusScripts map[ScriptLanguage][][]byte
	PlutusData    [][]byte // raw Plutus Data CBOR, referenced by datum hash
	Redeemers     []Redeemer
}

// MarshalCBOR encodes the witness set as its CDDL map:
// {0: vkeywitnesses, 1: native_scripts, 3: plutus_v1_scripts, 4: plutus_data,
//  5: redeemers, 6: plutus_v2_scripts, 7: plutus_v3_scripts}.
func (w WitnessSet) MarshalCBOR() ([]byte, error) {
	var fields []cborField

	if len(w.VKeyWitnesses) > 0 {
		items := make([][]byte, len(w.VKeyWitnesses))
		for i, vk := range w.VKeyWitnesses {
			enc := encodeDefiniteArray(mustEncodeAll(vk.VKey[:], vk.Signature[:]))
			items[i] = enc
		}
		fields = append(fields, rawField(0, encodeDefiniteArray(items)))
	}

	if len(w.NativeScripts) > 0 {
		items := make([][]byte, len(w.NativeScripts))
		for i := range w.NativeScripts {
			items[i] = encodeNativeScript(w.NativeScripts[i])
		}
		fields = append(fields, rawField(1, encodeDefiniteArray(items)))
	}

	if len(w.PlutusData) > 0 {
		fields = append(fields, rawField(4, encodeDefiniteArray(w.PlutusData)))
	}

	if len(w.Redeemers) > 0 {
		items := make([][]byte, len(w.Redeemers))
		for i, r := range w.Redeemers {
			enc, err := encodeRedeemer(r)
			if err != nil {
				return nil, err
			}
			items[i] = enc
		}
		fields = append(fields, rawField(5, encodeDefiniteArray(items)))
	}

	langKeys := map[ScriptLanguage]uint64{PlutusV1: 3, PlutusV2: 6, PlutusV3: 7}
	for lang, key := range langKeys {
		scripts := w.PlutusScripts[lang]
		if len(scripts) == 0 {
			continue
		}
		fields = append(fields, rawField(key, encodeDefiniteArray(scripts)))
	}

	return encodeCanonicalMap(fields)
}

func mustEncodeAll(items ...[]byte) [][]byte {
	out := make([][]byte, len(items))
	for i, it := range items {
		enc, err := cbor.Encode(it)
		if err != nil {
			// Encoding a plain []byte never fails.
			panic(err)
		}
		out[i] = enc
	}
	return out
}

// encodeRedeemer renders one redeemer as its CDDL array form:
// [tag, index, data, ex_units].
func encodeRedeemer(r Redeemer) ([]byte, error) {
	tagField, err := cbor.Encode(uint64(r.Tag))
	if err != nil {
		return nil, err
	}
	idxField, err := cbor.Encode(uint64(r.Index))
	if err != nil {
		return nil, err
	}
	exField, err := cbor.Encode(&exUnitsPair{Mem: uint64(r.ExUnits.Mem), Steps: uint64(r.ExUnits.Steps)})
	if err != nil {
		return nil, err
	}
	return encodeDefiniteArray([][]byte{tagField, idxField, r.Data, exField}), nil
}

type exUnitsPair struct {
	cbor.StructAsArray
	Mem   uint64
	Steps uint64
}
