// Package primitives implements the hashing and signature-verification
// building blocks that the builtin registry and the ledger codec depend on.
package primitives

import (
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for the ripemd_160 builtin
	"golang.org/x/crypto/sha3"
)

// Sha2_256 returns the SHA2-256 digest of msg.
func Sha2_256(msg []byte) []byte {
	sum := sha256.Sum256(msg)
	return sum[:]
}

// Sha2_512 returns the SHA2-512 digest of msg.
func Sha2_512(msg []byte) []byte {
	sum := sha512.Sum512(msg)
	return sum[:]
}

// Sha3_256 returns the SHA3-256 digest of msg.
func Sha3_256(msg []byte) []byte {
	sum := sha3.Sum256(msg)
	return sum[:]
}

// Keccak_256 returns the Keccak-256 (pre-standardization SHA3) digest of msg.
func Keccak_256(msg []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	return h.Sum(nil)
}

// Blake2b_256 returns the 32-byte Blake2b digest of msg.
func Blake2b_256(msg []byte) []byte {
	sum := blake2b.Sum256(msg)
	return sum[:]
}

// Blake2b_224 returns the 28-byte Blake2b digest of msg, used throughout the
// ledger for key hashes and script hashes.
func Blake2b_224(msg []byte) []byte {
	h, err := blake2b.New(28, nil)
	if err != nil {
		// blake2b.New only fails for out-of-range sizes or malformed keys;
		// 28 bytes with no key is always valid.
		panic(err)
	}
	h.Write(msg)
	return h.Sum(nil)
}

// Ripemd_160 returns the 20-byte RIPEMD-160 digest of msg.
func Ripemd_160(msg []byte) []byte {
	h := ripemd160.New()
	h.Write(msg)
	return h.Sum(nil)
}
