package wallet

import "github.com/tyler-smith/go-bip39"

// ExtendedKey is Cardano's 96-byte BIP32-Ed25519 extended private key: a
// 256-bit left key used as a scalar multiplier, a 256-bit right key mixed
// into signature nonces, and a chain code for child derivation.
type ExtendedKey struct {
	KL        [32]byte
	KR        [32]byte
	ChainCode [32]byte
}

// RootKeyFromMnemonic derives the wallet's root extended key from a BIP-39
// mnemonic. The mnemonic-to-seed step is standard BIP-39: PBKDF2-HMAC-SHA512
// over the mnemonic with salt "mnemonic" + passphrase, 2048 iterations,
// producing a 64-byte seed (§4.7) — go-bip39's NewSeed implements this
// directly. That seed is then expanded into the (kL, kR, chain code) triple
// an Ed25519 BIP32-style hierarchy needs, via domain-separated HMAC-SHA512,
// since no library in the ecosystem exposes Cardano's specific derivation
// shape.
func RootKeyFromMnemonic(mnemonic, passphrase string) (ExtendedKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return ExtendedKey{}, errInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	return rootKeyFromSeed(seed), nil
}

func rootKeyFromSeed(seed []byte) ExtendedKey {
	var k ExtendedKey

	left := hmacSHA512([]byte("ed25519 seed"), seed)
	copy(k.KL[:], left[0:32])
	copy(k.KR[:], left[32:64])

	// Standard Ed25519 scalar clamping, applied once at the root; child
	// derivation preserves it since it only adds multiples of 8 to kL.
	k.KL[0] &= 0xf8
	k.KL[31] &= 0x1f
	k.KL[31] |= 0x40

	chain := hmacSHA512([]byte("ed25519 chaincode"), seed)
	copy(k.ChainCode[:], chain[0:32])

	return k
}
