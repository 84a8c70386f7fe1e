package primitives

import (
	stded25519 "crypto/ed25519"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// VerifyEd25519Signature checks an Ed25519 signature against a 32-byte
// public key and an arbitrary-length message.
func VerifyEd25519Signature(pubKey, msg, sig []byte) (bool, error) {
	if len(pubKey) != stded25519.PublicKeySize {
		return false, fmt.Errorf(
			"invalid Ed25519 public key length: %d",
			len(pubKey),
		)
	}
	if len(sig) != stded25519.SignatureSize {
		return false, fmt.Errorf(
			"invalid Ed25519 signature length: %d",
			len(sig),
		)
	}
	return stded25519.Verify(stded25519.PublicKey(pubKey), msg, sig), nil
}

// VerifyEcdsaSecp256k1Signature checks a DER-less, low-S ECDSA signature
// over a 32-byte message digest against a compressed secp256k1 public key,
// matching the Plutus `verifyEcdsaSecp256k1Signature` builtin.
func VerifyEcdsaSecp256k1Signature(pubKey, msg, sig []byte) (bool, error) {
	if len(msg) != 32 {
		return false, fmt.Errorf("ECDSA message must be a 32-byte digest")
	}
	pk, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return false, fmt.Errorf("invalid secp256k1 public key: %w", err)
	}
	if len(sig) != 64 {
		return false, fmt.Errorf("invalid ECDSA signature length: %d", len(sig))
	}
	r := new(secp256k1.ModNScalar)
	r.SetByteSlice(sig[:32])
	s := new(secp256k1.ModNScalar)
	s.SetByteSlice(sig[32:])
	parsed := ecdsa.NewSignature(r, s)
	return parsed.Verify(msg, pk), nil
}

// VerifySchnorrSecp256k1Signature checks a BIP-340 Schnorr signature against
// a 32-byte x-only secp256k1 public key.
func VerifySchnorrSecp256k1Signature(pubKey, msg, sig []byte) (bool, error) {
	pk, err := schnorr.ParsePubKey(pubKey)
	if err != nil {
		return false, fmt.Errorf("invalid Schnorr public key: %w", err)
	}
	parsed, err := schnorr.ParseSignature(sig)
	if err != nil {
		return false, fmt.Errorf("invalid Schnorr signature: %w", err)
	}
	return parsed.Verify(msg, pk), nil
}
