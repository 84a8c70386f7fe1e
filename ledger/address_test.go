package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/ledger"
)

func hash28(b byte) ledger.Hash28 {
	var h ledger.Hash28
	for i := range h {
		h[i] = b
	}
	return h
}

func TestEnterpriseAddressRoundTrip(t *testing.T) {
	addr := ledger.NewEnterpriseAddress(ledger.NetworkMainnet, ledger.KeyHashCredential(hash28(0xAB)))
	s, err := addr.Bech32()
	require.NoError(t, err)
	require.Regexp(t, "^addr1", s)

	parsed, err := ledger.ParseAddress(s)
	require.NoError(t, err)
	require.Equal(t, addr, parsed)
}

func TestBaseAddressRoundTrip(t *testing.T) {
	addr := ledger.NewBaseAddress(
		ledger.NetworkTestnet,
		ledger.ScriptHashCredential(hash28(0x01)),
		ledger.KeyHashCredential(hash28(0x02)),
	)
	s, err := addr.Bech32()
	require.NoError(t, err)
	require.Regexp(t, "^addr_test1", s)

	parsed, err := ledger.ParseAddress(s)
	require.NoError(t, err)
	require.Equal(t, addr, parsed)
}

func TestRewardAddressRoundTrip(t *testing.T) {
	addr := ledger.NewRewardAddress(ledger.NetworkMainnet, ledger.KeyHashCredential(hash28(0x7F)))
	s, err := addr.Bech32()
	require.NoError(t, err)
	require.Regexp(t, "^stake1", s)

	parsed, err := ledger.ParseAddress(s)
	require.NoError(t, err)
	require.Equal(t, addr, parsed)
}
