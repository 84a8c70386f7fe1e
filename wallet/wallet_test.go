package wallet_test

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/wallet"
)

const testMnemonic = "test walk nut penalty hip pave soap entry language right filter choice"

func TestDeriveAddressesAreStable(t *testing.T) {
	w, err := wallet.NewWalletFromMnemonic(testMnemonic, "")
	require.NoError(t, err)

	addr1, err := w.EnterpriseAddress(ledger.NetworkTestnet, 0, 0).Bech32()
	require.NoError(t, err)
	addr2, err := w.EnterpriseAddress(ledger.NetworkTestnet, 0, 0).Bech32()
	require.NoError(t, err)
	require.Equal(t, addr1, addr2, "deriving the same path twice must yield the same address")

	other, err := w.EnterpriseAddress(ledger.NetworkTestnet, 0, 1).Bech32()
	require.NoError(t, err)
	require.NotEqual(t, addr1, other)
}

func TestBaseAddressCombinesPaymentAndStaking(t *testing.T) {
	w, err := wallet.NewWalletFromMnemonic(testMnemonic, "")
	require.NoError(t, err)

	addr := w.BaseAddress(ledger.NetworkMainnet, 0, 0)
	require.NotNil(t, addr.Staking)
	require.Equal(t, ledger.AddrKindBasePaymentKeyStakeKey, addr.Kind)
}

func TestSignatureVerifiesUnderEd25519(t *testing.T) {
	w, err := wallet.NewWalletFromMnemonic(testMnemonic, "")
	require.NoError(t, err)

	key := w.PaymentKey(0, 0)
	msg := []byte("txid-placeholder-32-bytes-long!!")
	vkey, sig, err := key.Sign(msg)
	require.NoError(t, err)
	require.Equal(t, key.PublicKey(), vkey)
	require.Len(t, sig, 64)

	// Cardano's extended-key scheme produces a signature verifiable under
	// plain Ed25519, since kL is used as the standard signing scalar.
	require.True(t, ed25519.Verify(vkey[:], msg, sig[:]))
}
