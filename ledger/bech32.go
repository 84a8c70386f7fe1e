package ledger

import (
	"fmt"
	"strings"
)

// bech32 implements BIP-0173 encoding/decoding. No dependency in the
// retrieval corpus exposes bech32 as a standalone codec — every corpus user
// of it buries the call inside a full address/wallet library (apollo,
// cardano-go) that this module deliberately does not depend on, since those
// are the exact domain this module builds instead. This is the same
// category of exception as the hand-rolled Plutus Data CBOR codec: an
// ambient encoding with no ungrounded third-party home, built directly
// against the published algorithm.
const bech32Charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var bech32CharsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i, c := range bech32Charset {
		rev[c] = int8(i)
	}
	return rev
}()

func bech32Polymod(values []byte) uint32 {
	gen := []uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := uint32(1)
	for _, v := range values {
		b := byte(chk >> 25)
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= gen[i]
			}
		}
	}
	return chk
}

func bech32HrpExpand(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for _, c := range hrp {
		out = append(out, byte(c)>>5)
	}
	out = append(out, 0)
	for _, c := range hrp {
		out = append(out, byte(c)&31)
	}
	return out
}

func bech32CreateChecksum(hrp string, data []byte) []byte {
	values := append(bech32HrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := bech32Polymod(values) ^ 1
	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 31)
	}
	return checksum
}

// bech32ConvertBits repacks a byte slice of fromBits-wide groups into
// toBits-wide groups, used for the 8-bit payload <-> 5-bit bech32 alphabet
// conversion.
func bech32ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	acc, bits := uint32(0), uint(0)
	maxv := uint32(1)<<toBits - 1
	var out []byte
	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, fmt.Errorf("bech32: invalid data byte %d", b)
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits)&byte(maxv))
		}
	}
	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits))&byte(maxv))
		}
	} else if bits >= fromBits || (acc<<(toBits-bits))&uint32(maxv) != 0 {
		return nil, fmt.Errorf("bech32: invalid padding")
	}
	return out, nil
}

// bech32Encode encodes hrp and an arbitrary byte payload as a bech32
// string.
func bech32Encode(hrp string, payload []byte) (string, error) {
	data, err := bech32ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", err
	}
	checksum := bech32CreateChecksum(hrp, data)
	combined := append(data, checksum...)
	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, b := range combined {
		sb.WriteByte(bech32Charset[b])
	}
	return sb.String(), nil
}

// bech32Decode decodes a bech32 string, returning its human-readable part
// and byte payload.
func bech32Decode(s string) (string, []byte, error) {
	if len(s) < 8 || len(s) > 1023 {
		return "", nil, fmt.Errorf("bech32: invalid length %d", len(s))
	}
	lower, upper := strings.ToLower(s), strings.ToUpper(s)
	if s != lower && s != upper {
		return "", nil, fmt.Errorf("bech32: mixed case")
	}
	s = lower
	sep := strings.LastIndexByte(s, '1')
	if sep < 1 || sep+7 > len(s) {
		return "", nil, fmt.Errorf("bech32: separator not found")
	}
	hrp := s[:sep]
	data := make([]byte, len(s)-sep-1)
	for i, c := range s[sep+1:] {
		if c > 127 || bech32CharsetRev[c] == -1 {
			return "", nil, fmt.Errorf("bech32: invalid character %q", c)
		}
		data[i] = byte(bech32CharsetRev[c])
	}
	values := append(bech32HrpExpand(hrp), data...)
	if bech32Polymod(values) != 1 {
		return "", nil, fmt.Errorf("bech32: invalid checksum")
	}
	payload, err := bech32ConvertBits(data[:len(data)-6], 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, payload, nil
}
