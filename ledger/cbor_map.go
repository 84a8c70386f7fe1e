package ledger

import (
	"fmt"
	"sort"

	"github.com/blinklabs-io/gouroboros/cbor"
)

// The Conway transaction body and witness set are CBOR *maps* keyed by
// small integers, with absent optional fields simply omitted from the map
// (CDDL transaction_body = {0: ..., 1: ..., ...}) — not the definite-length
// arrays cbor.StructAsArray/cbor.Constructor model. Hashing a transaction
// correctly means reproducing that map shape byte-for-byte, so this file
// builds canonical CBOR maps directly: a small, deterministic (ascending
// integer key) encoder layered on top of cbor.Encode for each field's
// value. This is the same category of exception as the hand-rolled Plutus
// Data codec and the hand-rolled bech32 codec: no third-party helper in the
// corpus exposes keyed-map-with-omitted-fields encoding, only
// array/constructor encoding.

// cborField is one entry of a canonical CBOR map: a small integer key and
// an already-CBOR-encoded value.
type cborField struct {
	key   uint64
	value []byte
}

// encodeCanonicalMap writes a definite-length CBOR map with the given
// fields in ascending key order, which is both Conway's wire format and
// canonical CBOR's required ordering.
func encodeCanonicalMap(fields []cborField) ([]byte, error) {
	sort.Slice(fields, func(i, j int) bool { return fields[i].key < fields[j].key })
	out := encodeMapHeader(uint64(len(fields)))
	for _, f := range fields {
		out = append(out, encodeUint(f.key)...)
		out = append(out, f.value...)
	}
	return out, nil
}

// encodeUint writes n as a canonical CBOR unsigned integer (major type 0).
func encodeUint(n uint64) []byte {
	return encodeMajor(0, n)
}

func encodeMapHeader(n uint64) []byte {
	return encodeMajor(5, n)
}

func encodeArrayHeader(n uint64) []byte {
	return encodeMajor(4, n)
}

// encodeMajor writes a CBOR major-type/argument pair using the shortest
// valid form, per the canonical CBOR encoding rules.
func encodeMajor(major byte, n uint64) []byte {
	m := major << 5
	switch {
	case n < 24:
		return []byte{m | byte(n)}
	case n <= 0xFF:
		return []byte{m | 24, byte(n)}
	case n <= 0xFFFF:
		return []byte{m | 25, byte(n >> 8), byte(n)}
	case n <= 0xFFFFFFFF:
		return []byte{m | 26, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	default:
		return []byte{
			m | 27,
			byte(n >> 56), byte(n >> 48), byte(n >> 40), byte(n >> 32),
			byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n),
		}
	}
}

// field encodes v with cbor.Encode and pairs it with key, for use building
// an encodeCanonicalMap call.
func field(key uint64, v any) (cborField, error) {
	b, err := cbor.Encode(v)
	if err != nil {
		return cborField{}, fmt.Errorf("ledger: encoding field %d: %w", key, err)
	}
	return cborField{key: key, value: b}, nil
}

// rawField pairs key with an already-encoded CBOR value.
func rawField(key uint64, raw []byte) cborField {
	return cborField{key: key, value: raw}
}

// encodeDefiniteArray concatenates pre-encoded items under a definite-length
// array header.
func encodeDefiniteArray(items [][]byte) []byte {
	out := encodeArrayHeader(uint64(len(items)))
	for _, it := range items {
		out = append(out, it...)
	}
	return out
}
