package wallet

import "github.com/blinklabs-io/gouplc/ledger"

// Wallet is an HD wallet rooted at one BIP-39 mnemonic, deriving CIP-1852
// payment, change, staking, and governance keys on demand.
type Wallet struct {
	root ExtendedKey
}

// NewWalletFromMnemonic derives the wallet's root key from mnemonic and an
// optional BIP-39 passphrase.
func NewWalletFromMnemonic(mnemonic, passphrase string) (*Wallet, error) {
	root, err := RootKeyFromMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return &Wallet{root: root}, nil
}

func (w *Wallet) deriveKey(path []uint32) ExtendedKey {
	k := w.root
	for _, i := range path {
		k = k.Derive(i)
	}
	return k
}

// PaymentKey derives the external (role 0) spending key at account/index.
func (w *Wallet) PaymentKey(account, index uint32) SigningKey {
	return SigningKey{Extended: w.deriveKey(AccountPath(account, RoleExternal, index))}
}

// ChangeKey derives the internal (role 1) change key at account/index.
func (w *Wallet) ChangeKey(account, index uint32) SigningKey {
	return SigningKey{Extended: w.deriveKey(AccountPath(account, RoleChange, index))}
}

// StakingKey derives the account's staking key (role 2, index 0).
func (w *Wallet) StakingKey(account uint32) SigningKey {
	return SigningKey{Extended: w.deriveKey(AccountPath(account, RoleStaking, 0))}
}

// DRepKey derives the account's DRep governance key (role 3, index 0).
func (w *Wallet) DRepKey(account uint32) SigningKey {
	return SigningKey{Extended: w.deriveKey(AccountPath(account, RoleDRep, 0))}
}

func credentialFor(sk SigningKey) ledger.Credential {
	pub := sk.PublicKey()
	return ledger.KeyHashCredential(ledger.Blake2b224Hash(pub[:]))
}

// EnterpriseAddress derives account/index's payment key and builds its
// enterprise (no staking rights) address.
func (w *Wallet) EnterpriseAddress(network ledger.Network, account, index uint32) ledger.Address {
	return ledger.NewEnterpriseAddress(network, credentialFor(w.PaymentKey(account, index)))
}

// BaseAddress derives account/index's payment key and the account's
// staking key and builds a base address combining both.
func (w *Wallet) BaseAddress(network ledger.Network, account, index uint32) ledger.Address {
	payment := credentialFor(w.PaymentKey(account, index))
	staking := credentialFor(w.StakingKey(account))
	return ledger.NewBaseAddress(network, payment, staking)
}

// RewardAddress derives the account's staking key and builds its reward
// address.
func (w *Wallet) RewardAddress(network ledger.Network, account uint32) ledger.Address {
	return ledger.NewRewardAddress(network, credentialFor(w.StakingKey(account)))
}
