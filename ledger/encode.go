package ledger

import "github.com/blinklabs-io/gouroboros/cbor"

// MarshalCBOR encodes a TransactionInput as the definite-length 2-element
// array the CDDL transaction_input rule specifies: [transaction_id, index].
func (in TransactionInput) MarshalCBOR() ([]byte, error) {
	idField, err := cbor.Encode(in.TransactionID[:])
	if err != nil {
		return nil, err
	}
	idxField, err := cbor.Encode(in.Index)
	if err != nil {
		return nil, err
	}
	return encodeDefiniteArray([][]byte{idField, idxField}), nil
}

// MarshalCBOR encodes a Value as either a bare coin integer (when the
// transaction carries no native assets) or the 2-element
// [coin, multiasset] array form, matching the CDDL value rule.
func (v Value) MarshalCBOR() ([]byte, error) {
	if len(v.Assets) == 0 {
		return cbor.Encode(uint64(v.Coin))
	}
	coinField, err := cbor.Encode(uint64(v.Coin))
	if err != nil {
		return nil, err
	}
	maField, err := encodeMultiAsset(v.Assets)
	if err != nil {
		return nil, err
	}
	return encodeDefiniteArray([][]byte{coinField, maField}), nil
}

// encodeMultiAsset renders the policy_id -> asset_name -> quantity map as
// a canonical nested CBOR map, sorted by key bytes at both levels so the
// encoding is deterministic regardless of Go's randomized map iteration.
func encodeMultiAsset(assets map[PolicyID]map[AssetName]int64) ([]byte, error) {
	policies := make([]PolicyID, 0, len(assets))
	for p := range assets {
		policies = append(policies, p)
	}
	sortHash28(policies)

	out := encodeMapHeader(uint64(len(policies)))
	for _, p := range policies {
		pField, err := cbor.Encode(p[:])
		if err != nil {
			return nil, err
		}
		out = append(out, pField...)

		names := make([]AssetName, 0, len(assets[p]))
		for n := range assets[p] {
			names = append(names, n)
		}
		sortAssetNames(names)

		inner := encodeMapHeader(uint64(len(names)))
		for _, n := range names {
			nField, err := cbor.Encode([]byte(n))
			if err != nil {
				return nil, err
			}
			qField, err := cbor.Encode(assets[p][n])
			if err != nil {
				return nil, err
			}
			inner = append(inner, nField...)
			inner = append(inner, qField...)
		}
		out = append(out, inner...)
	}
	return out, nil
}

func sortHash28(hs []Hash28) {
	for i := 1; i < len(hs); i++ {
		for j := i; j > 0 && lessBytes(hs[j][:], hs[j-1][:]); j-- {
			hs[j], hs[j-1] = hs[j-1], hs[j]
		}
	}
}

func sortAssetNames(ns []AssetName) {
	for i := 1; i < len(ns); i++ {
		for j := i; j > 0 && ns[j] < ns[j-1]; j-- {
			ns[j], ns[j-1] = ns[j-1], ns[j]
		}
	}
}

func lessBytes(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// MarshalCBOR encodes a TransactionOutput using the post-Alonzo map-format
// CDDL: {0: address, 1: value, 2?: datum_option, 3?: script_ref}.
func (out TransactionOutput) MarshalCBOR() ([]byte, error) {
	var fields []cborField

	addrField, err := field(0, out.Address.Bytes())
	if err != nil {
		return nil, err
	}
	fields = append(fields, addrField)

	valBytes, err := out.Value.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	fields = append(fields, rawField(1, valBytes))

	if out.Datum.Kind != DatumNone {
		datumBytes, err := out.Datum.encode()
		if err != nil {
			return nil, err
		}
		fields = append(fields, rawField(2, datumBytes))
	}

	if out.ReferenceScript != nil {
		scriptField, err := field(3, out.ReferenceScript.Bytes)
		if err != nil {
			return nil, err
		}
		fields = append(fields, scriptField)
	}

	return encodeCanonicalMap(fields)
}

// encode renders a DatumOption as its CDDL datum_option = [0, $hash32] /
// [1, data] form.
func (d DatumOption) encode() ([]byte, error) {
	tagField, err := cbor.Encode(uint64(0))
	if err != nil {
		return nil, err
	}
	if d.Kind == DatumInline {
		tagField, err = cbor.Encode(uint64(1))
		if err != nil {
			return nil, err
		}
		return encodeDefiniteArray([][]byte{tagField, d.Data}), nil
	}
	hashField, err := cbor.Encode(d.Hash[:])
	if err != nil {
		return nil, err
	}
	return encodeDefiniteArray([][]byte{tagField, hashField}), nil
}
