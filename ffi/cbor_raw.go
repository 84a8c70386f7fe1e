package ffi

import (
	"github.com/blinklabs-io/gouroboros/cbor"

	"github.com/blinklabs-io/gouplc/data"
)

func cborDecodeByteString(raw []byte) ([]byte, error) {
	var b []byte
	if _, err := cbor.Decode(raw, &b); err != nil {
		return nil, err
	}
	return b, nil
}

func cborEncodeByteString(b []byte) ([]byte, error) {
	return cbor.Encode(b)
}

// decodePlutusData decodes a redeemer/datum's raw Plutus Data CBOR bytes.
func decodePlutusData(raw []byte) (data.Data, int, error) {
	return data.Decode(raw)
}
