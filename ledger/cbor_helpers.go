package ledger

import "github.com/blinklabs-io/gouroboros/cbor"

// cborEncodeBytes and cborDecodeBytes give the fixed-width hash types a CBOR
// byte-string representation without promoting []byte handling into a type
// that embeds cbor.StructAsArray (that marker only applies to struct
// fields).
func cborEncodeBytes(b []byte) ([]byte, error) {
	return cbor.Encode(b)
}

func cborDecodeBytes(data []byte) ([]byte, error) {
	var b []byte
	if _, err := cbor.Decode(data, &b); err != nil {
		return nil, err
	}
	return b, nil
}
