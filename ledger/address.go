package ledger

import (
	"fmt"
)

// Network selects which Cardano network an address or transaction targets.
type Network uint8

const (
	NetworkTestnet Network = 0
	NetworkMainnet Network = 1
)

// CredentialKind distinguishes a key-hash credential from a script-hash
// credential, per CIP-19's address header byte.
type CredentialKind uint8

const (
	CredentialKeyHash CredentialKind = iota
	CredentialScriptHash
)

// Credential is a payment or stake credential: either a verification-key
// hash or a script hash, both represented as Hash28.
type Credential struct {
	Kind CredentialKind
	Hash Hash28
}

func KeyHashCredential(h Hash28) Credential    { return Credential{Kind: CredentialKeyHash, Hash: h} }
func ScriptHashCredential(h Hash28) Credential { return Credential{Kind: CredentialScriptHash, Hash: h} }

func (c Credential) isScript() bool { return c.Kind == CredentialScriptHash }

// AddrKind enumerates the eight Shelley address shapes CIP-19 defines, plus
// the separate reward-account (stake address) shape. Byron-era bootstrap
// addresses are out of scope: this module only builds and spends
// Shelley-era outputs.
type AddrKind uint8

const (
	AddrKindBasePaymentKeyStakeKey AddrKind = iota
	AddrKindBasePaymentScriptStakeKey
	AddrKindBasePaymentKeyStakeScript
	AddrKindBasePaymentScriptStakeScript
	AddrKindPointerKey
	AddrKindPointerScript
	AddrKindEnterpriseKey
	AddrKindEnterpriseScript
	AddrKindReward
)

// Pointer is a certificate-index pointer used by pointer addresses (CIP-19
// header 0x4-0x5), a now-legacy address shape this module only needs to be
// able to parse.
type Pointer struct {
	Slot           uint64
	TxIndex        uint64
	CertIndex      uint64
}

// Address is a Shelley-era Cardano address: a payment credential, an
// optional staking credential or pointer, and the network it targets.
type Address struct {
	Network    Network
	Kind       AddrKind
	Payment    Credential
	Staking    *Credential // nil for enterprise and reward addresses
	StakingPtr *Pointer    // set only for pointer addresses
}

// NewEnterpriseAddress builds an address carrying only a payment
// credential, with no staking rights.
func NewEnterpriseAddress(network Network, payment Credential) Address {
	kind := AddrKindEnterpriseKey
	if payment.isScript() {
		kind = AddrKindEnterpriseScript
	}
	return Address{Network: network, Kind: kind, Payment: payment}
}

// NewBaseAddress builds an address carrying both a payment and a staking
// credential.
func NewBaseAddress(network Network, payment, staking Credential) Address {
	kind := AddrKindBasePaymentKeyStakeKey
	switch {
	case payment.isScript() && staking.isScript():
		kind = AddrKindBasePaymentScriptStakeScript
	case payment.isScript():
		kind = AddrKindBasePaymentScriptStakeKey
	case staking.isScript():
		kind = AddrKindBasePaymentKeyStakeScript
	}
	return Address{Network: network, Kind: kind, Payment: payment, Staking: &staking}
}

// NewRewardAddress builds a stake (reward) address.
func NewRewardAddress(network Network, staking Credential) Address {
	return Address{Network: network, Kind: AddrKindReward, Payment: staking}
}

// headerByte computes the CIP-19 address header: top nibble identifies the
// address shape, bottom nibble the network id.
func (a Address) headerByte() byte {
	var top byte
	switch a.Kind {
	case AddrKindBasePaymentKeyStakeKey:
		top = 0x0
	case AddrKindBasePaymentScriptStakeKey:
		top = 0x1
	case AddrKindBasePaymentKeyStakeScript:
		top = 0x2
	case AddrKindBasePaymentScriptStakeScript:
		top = 0x3
	case AddrKindPointerKey:
		top = 0x4
	case AddrKindPointerScript:
		top = 0x5
	case AddrKindEnterpriseKey:
		top = 0x6
	case AddrKindEnterpriseScript:
		top = 0x7
	case AddrKindReward:
		top = 0xE
		if a.Payment.isScript() {
			top = 0xF
		}
	}
	return top<<4 | byte(a.Network&0x0F)
}

// Bytes encodes the address to its raw binary form (header byte followed by
// one or two 28-byte credential hashes, or a pointer encoding).
func (a Address) Bytes() []byte {
	header := a.headerByte()
	switch a.Kind {
	case AddrKindReward:
		return append([]byte{header}, a.Payment.Hash[:]...)
	case AddrKindEnterpriseKey, AddrKindEnterpriseScript:
		return append([]byte{header}, a.Payment.Hash[:]...)
	case AddrKindPointerKey, AddrKindPointerScript:
		out := append([]byte{header}, a.Payment.Hash[:]...)
		if a.StakingPtr != nil {
			out = append(out, encodeVariableLength(a.StakingPtr.Slot)...)
			out = append(out, encodeVariableLength(a.StakingPtr.TxIndex)...)
			out = append(out, encodeVariableLength(a.StakingPtr.CertIndex)...)
		}
		return out
	default:
		out := append([]byte{header}, a.Payment.Hash[:]...)
		if a.Staking != nil {
			out = append(out, a.Staking.Hash[:]...)
		}
		return out
	}
}

// encodeVariableLength encodes n as Cardano's 7-bit-per-byte big-endian
// varint (continuation bit set on all but the last byte), used by pointer
// addresses.
func encodeVariableLength(n uint64) []byte {
	if n == 0 {
		return []byte{0}
	}
	var groups []byte
	for n > 0 {
		groups = append([]byte{byte(n & 0x7F)}, groups...)
		n >>= 7
	}
	for i := 0; i < len(groups)-1; i++ {
		groups[i] |= 0x80
	}
	return groups
}

func decodeVariableLength(b []byte) (uint64, int, error) {
	var n uint64
	for i, by := range b {
		n = n<<7 | uint64(by&0x7F)
		if by&0x80 == 0 {
			return n, i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("ledger: truncated variable-length integer")
}

// hrp returns the bech32 human-readable part for this address, per CIP-5.
func (a Address) hrp() string {
	prefix := "addr"
	if a.Kind == AddrKindReward {
		prefix = "stake"
	}
	if a.Network == NetworkTestnet {
		return prefix + "_test"
	}
	return prefix
}

// Bech32 renders the address in its canonical bech32 string form.
func (a Address) Bech32() (string, error) {
	return bech32Encode(a.hrp(), a.Bytes())
}

// ParseAddress decodes a bech32-encoded Cardano address.
func ParseAddress(s string) (Address, error) {
	_, raw, err := bech32Decode(s)
	if err != nil {
		return Address{}, err
	}
	return DecodeAddress(raw)
}

// DecodeAddress parses an address from its raw binary form.
func DecodeAddress(raw []byte) (Address, error) {
	if len(raw) < 1 {
		return Address{}, fmt.Errorf("ledger: empty address")
	}
	header := raw[0]
	network := Network(header & 0x0F)
	top := header >> 4
	body := raw[1:]

	mk := func(kind AddrKind, scriptPayment bool) (Address, int, error) {
		if len(body) < 28 {
			return Address{}, 0, fmt.Errorf("ledger: address payment credential truncated")
		}
		var h Hash28
		copy(h[:], body[:28])
		cred := KeyHashCredential(h)
		if scriptPayment {
			cred = ScriptHashCredential(h)
		}
		return Address{Network: network, Kind: kind, Payment: cred}, 28, nil
	}

	switch top {
	case 0x0, 0x1, 0x2, 0x3:
		if len(body) < 56 {
			return Address{}, fmt.Errorf("ledger: base address truncated")
		}
		var ph, sh Hash28
		copy(ph[:], body[:28])
		copy(sh[:], body[28:56])
		payment := KeyHashCredential(ph)
		if top == 0x1 || top == 0x3 {
			payment = ScriptHashCredential(ph)
		}
		staking := KeyHashCredential(sh)
		if top == 0x2 || top == 0x3 {
			staking = ScriptHashCredential(sh)
		}
		kind := [4]AddrKind{AddrKindBasePaymentKeyStakeKey, AddrKindBasePaymentScriptStakeKey, AddrKindBasePaymentKeyStakeScript, AddrKindBasePaymentScriptStakeScript}[top]
		return Address{Network: network, Kind: kind, Payment: payment, Staking: &staking}, nil
	case 0x4, 0x5:
		kind := AddrKindPointerKey
		if top == 0x5 {
			kind = AddrKindPointerScript
		}
		addr, n, err := mk(kind, top == 0x5)
		if err != nil {
			return Address{}, err
		}
		rest := body[n:]
		slot, adv1, err := decodeVariableLength(rest)
		if err != nil {
			return Address{}, err
		}
		rest = rest[adv1:]
		txIdx, adv2, err := decodeVariableLength(rest)
		if err != nil {
			return Address{}, err
		}
		rest = rest[adv2:]
		certIdx, _, err := decodeVariableLength(rest)
		if err != nil {
			return Address{}, err
		}
		addr.StakingPtr = &Pointer{Slot: slot, TxIndex: txIdx, CertIndex: certIdx}
		return addr, nil
	case 0x6, 0x7:
		kind := AddrKindEnterpriseKey
		if top == 0x7 {
			kind = AddrKindEnterpriseScript
		}
		addr, _, err := mk(kind, top == 0x7)
		return addr, err
	case 0xE, 0xF:
		if len(body) < 28 {
			return Address{}, fmt.Errorf("ledger: reward address truncated")
		}
		var h Hash28
		copy(h[:], body[:28])
		cred := KeyHashCredential(h)
		if top == 0xF {
			cred = ScriptHashCredential(h)
		}
		return Address{Network: network, Kind: AddrKindReward, Payment: cred}, nil
	default:
		return Address{}, fmt.Errorf("ledger: unrecognized address header 0x%02x", header)
	}
}
