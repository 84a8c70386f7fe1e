// Package ledger implements the Cardano (Conway-era) on-chain data model:
// addresses, multi-asset values, transaction bodies and witness sets, and
// the hashes that bind them together. It defines its own types rather than
// reusing a full node-facing ledger library, since reconstructing that model
// is the point of this module.
package ledger

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gouplc/primitives"
)

// Hash28 is a 28-byte Blake2b-224 digest: key hashes, script hashes, pool
// IDs.
type Hash28 [28]byte

// Hash32 is a 32-byte Blake2b-256 digest: transaction IDs, script-integrity
// hashes, auxiliary-data hashes.
type Hash32 [32]byte

func (h Hash28) Bytes() []byte { return h[:] }
func (h Hash32) Bytes() []byte { return h[:] }

func (h Hash28) String() string { return hex.EncodeToString(h[:]) }
func (h Hash32) String() string { return hex.EncodeToString(h[:]) }

// MarshalCBOR encodes the hash as a plain CBOR byte string.
func (h Hash28) MarshalCBOR() ([]byte, error) { return cborEncodeBytes(h[:]) }
func (h Hash32) MarshalCBOR() ([]byte, error) { return cborEncodeBytes(h[:]) }

// UnmarshalCBOR decodes a plain CBOR byte string into the fixed-width hash.
func (h *Hash28) UnmarshalCBOR(data []byte) error {
	b, err := cborDecodeBytes(data)
	if err != nil {
		return err
	}
	if len(b) != 28 {
		return fmt.Errorf("ledger: Hash28 expects 28 bytes, got %d", len(b))
	}
	copy(h[:], b)
	return nil
}

func (h *Hash32) UnmarshalCBOR(data []byte) error {
	b, err := cborDecodeBytes(data)
	if err != nil {
		return err
	}
	if len(b) != 32 {
		return fmt.Errorf("ledger: Hash32 expects 32 bytes, got %d", len(b))
	}
	copy(h[:], b)
	return nil
}

// NewHash28FromHex parses a hex-encoded 28-byte hash.
func NewHash28FromHex(s string) (Hash28, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash28{}, err
	}
	if len(b) != 28 {
		return Hash28{}, fmt.Errorf("ledger: expected 28 bytes, got %d", len(b))
	}
	var h Hash28
	copy(h[:], b)
	return h, nil
}

// NewHash32FromHex parses a hex-encoded 32-byte hash.
func NewHash32FromHex(s string) (Hash32, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash32{}, err
	}
	if len(b) != 32 {
		return Hash32{}, fmt.Errorf("ledger: expected 32 bytes, got %d", len(b))
	}
	var h Hash32
	copy(h[:], b)
	return h, nil
}

// Blake2b224Hash hashes b with Blake2b-224, the ledger's key/script hash
// function.
func Blake2b224Hash(b []byte) Hash28 {
	var h Hash28
	copy(h[:], primitives.Blake2b_224(b))
	return h
}

// Blake2b256Hash hashes b with Blake2b-256, the ledger's transaction-id hash
// function.
func Blake2b256Hash(b []byte) Hash32 {
	var h Hash32
	copy(h[:], primitives.Blake2b_256(b))
	return h
}

// Coin is a quantity of lovelace (1 ADA = 1,000,000 lovelace).
type Coin uint64

// PolicyID identifies a minting policy by its script hash.
type PolicyID = Hash28

// AssetName is the name half of a multi-asset identifier, up to 32 bytes.
type AssetName string

func (a AssetName) Bytes() []byte { return []byte(a) }
