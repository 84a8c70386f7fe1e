// Package wallet derives Cardano (CIP-1852) payment, staking, and
// governance keys from a BIP-39 mnemonic, and signs with Cardano's
// extended Ed25519 variant (§4.7).
package wallet

import (
	"errors"

	"github.com/tyler-smith/go-bip39"
)

var errInvalidMnemonic = errors.New("wallet: invalid mnemonic checksum")

// GenerateMnemonic produces a new BIP-39 mnemonic with entropyBits bits of
// entropy (128 for a 12-word phrase, 256 for 24 words).
func GenerateMnemonic(entropyBits int) (string, error) {
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}
