package ledger

import "github.com/blinklabs-io/gouroboros/cbor"

// AuxiliaryData is the auxiliary-data payload: transaction metadata keyed
// by a 64-bit label, plus any native/Plutus scripts distributed alongside
// the transaction rather than referenced by hash. Only the metadata map is
// modeled in detail; this module does not construct metadata-carrying
// transactions itself; it's here so a reconstructed script context can
// report the correct auxiliary-data hash.
type AuxiliaryData struct {
	Metadata map[uint64][]byte // raw CBOR metadatum per label
}

// MarshalCBOR encodes auxiliary data as a bare metadata map — the simplest
// of the three legal top-level aux-data shapes (map / [metadata, scripts] /
// a further post-Alonzo tagged map).
func (a AuxiliaryData) MarshalCBOR() ([]byte, error) {
	var fields []cborField
	for label, raw := range a.Metadata {
		fields = append(fields, rawField(label, raw))
	}
	return encodeCanonicalMap(fields)
}

// Hash returns the Blake2b-256 hash of the auxiliary data's CBOR encoding.
func (a AuxiliaryData) Hash() (Hash32, error) {
	enc, err := a.MarshalCBOR()
	if err != nil {
		return Hash32{}, err
	}
	return Blake2b256Hash(enc), nil
}

// Transaction is a complete, submittable Cardano transaction.
type Transaction struct {
	Body          TransactionBody
	WitnessSet    WitnessSet
	AuxiliaryData *AuxiliaryData
	IsValid       bool
}

// ID returns the transaction id: the Blake2b-256 hash of the body's exact
// CBOR bytes. Witnesses, auxiliary data, and the IsValid flag never affect
// it (§3.4).
func (t Transaction) ID() (Hash32, error) {
	return t.Body.Hash()
}

// MarshalCBOR encodes the full transaction as its top-level CDDL array:
// [body, witness_set, is_valid, auxiliary_data / null].
func (t Transaction) MarshalCBOR() ([]byte, error) {
	bodyBytes, err := t.Body.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	witBytes, err := t.WitnessSet.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	validBytes, err := cbor.Encode(t.IsValid)
	if err != nil {
		return nil, err
	}
	var auxBytes []byte
	if t.AuxiliaryData != nil {
		auxBytes, err = t.AuxiliaryData.MarshalCBOR()
		if err != nil {
			return nil, err
		}
	} else {
		auxBytes, err = cbor.Encode(nil)
		if err != nil {
			return nil, err
		}
	}
	return encodeDefiniteArray([][]byte{bodyBytes, witBytes, validBytes, auxBytes}), nil
}

// CostModelView is one Plutus language's cost-model parameter list, in the
// fixed order the protocol publishes them — the shape the script-integrity
// hash commits to for each language actually exercised by a transaction's
// redeemers.
type CostModelView struct {
	Language ScriptLanguage
	Params   []int64
}

// ComputeScriptIntegrityHash reproduces the ledger's script_data_hash rule:
// Blake2b-256 over the concatenation of the encoded redeemers, the encoded
// datums (omitted entirely when there are none), and the encoded cost-model
// view for each language actually used (§3.4, §4.5). A transaction with no
// redeemers and no datums has no script-integrity hash at all.
func ComputeScriptIntegrityHash(redeemers []Redeemer, datums [][]byte, costModels []CostModelView) (*Hash32, error) {
	if len(redeemers) == 0 && len(datums) == 0 {
		return nil, nil
	}

	redeemerItems := make([][]byte, len(redeemers))
	for i, r := range redeemers {
		enc, err := encodeRedeemer(r)
		if err != nil {
			return nil, err
		}
		redeemerItems[i] = enc
	}
	buf := append([]byte(nil), encodeDefiniteArray(redeemerItems)...)

	if len(datums) > 0 {
		buf = append(buf, encodeDefiniteArray(datums)...)
	}

	var cmFields []cborField
	for _, cm := range costModels {
		items := make([][]byte, len(cm.Params))
		for i, p := range cm.Params {
			enc, err := cbor.Encode(p)
			if err != nil {
				return nil, err
			}
			items[i] = enc
		}
		cmFields = append(cmFields, rawField(uint64(cm.Language), encodeDefiniteArray(items)))
	}
	cmBytes, err := encodeCanonicalMap(cmFields)
	if err != nil {
		return nil, err
	}
	buf = append(buf, cmBytes...)

	h := Blake2b256Hash(buf)
	return &h, nil
}
