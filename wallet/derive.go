package wallet

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"filippo.io/edwards25519"
)

const hardenedOffset = uint32(0x80000000)

// Harden marks a path component as hardened, per BIP-32.
func Harden(i uint32) uint32 { return i + hardenedOffset }

// Role enumerates the CIP-1852 derivation roles under an account.
type Role uint32

const (
	RoleExternal Role = 0
	RoleChange   Role = 1
	RoleStaking  Role = 2
	RoleDRep     Role = 3
	RoleCCCold   Role = 4
	RoleCCHot    Role = 5
)

// AccountPath builds m/1852'/1815'/account'/role/index.
func AccountPath(account uint32, role Role, index uint32) []uint32 {
	return []uint32{Harden(1852), Harden(1815), Harden(account), uint32(role), index}
}

var mod256 = new(big.Int).Lsh(big.NewInt(1), 256)

func leToBigInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}
	return new(big.Int).SetBytes(be)
}

func bigIntToLE32(n *big.Int) [32]byte {
	be := n.Bytes()
	var out [32]byte
	for i, v := range be {
		out[len(be)-1-i] = v
	}
	return out
}

func ser32(i uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, i)
	return b
}

func hmacSHA512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// scalarFromExtended reduces a raw 256-bit extended private key mod the
// Ed25519 group order for use in scalar multiplication. Cardano keeps kL
// un-reduced at rest; only scalar operations reduce it.
func scalarFromExtended(kl [32]byte) *edwards25519.Scalar {
	buf := make([]byte, 64)
	copy(buf, kl[:])
	s, err := edwards25519.NewScalar().SetUniformBytes(buf)
	if err != nil {
		panic("wallet: invalid extended key scalar: " + err.Error())
	}
	return s
}

func (k ExtendedKey) publicKey() [32]byte {
	p := (&edwards25519.Point{}).ScalarBaseMult(scalarFromExtended(k.KL))
	var out [32]byte
	copy(out[:], p.Bytes())
	return out
}

// Derive computes the BIP32-Ed25519 (Khovratovich) child key at index i:
// hardened indices (i >= 2^31) mix in the parent's private key material,
// soft indices mix in only the parent's public key so a public chain code
// can derive soft children without the private key.
func (k ExtendedKey) Derive(i uint32) ExtendedKey {
	var zData, iData []byte
	if i >= hardenedOffset {
		zData = append([]byte{0x00}, k.KL[:]...)
		zData = append(zData, k.KR[:]...)
		zData = append(zData, ser32(i)...)

		iData = append([]byte{0x01}, k.KL[:]...)
		iData = append(iData, k.KR[:]...)
		iData = append(iData, ser32(i)...)
	} else {
		pub := k.publicKey()
		zData = append([]byte{0x02}, pub[:]...)
		zData = append(zData, ser32(i)...)

		iData = append([]byte{0x03}, pub[:]...)
		iData = append(iData, ser32(i)...)
	}

	z := hmacSHA512(k.ChainCode[:], zData)
	iMac := hmacSHA512(k.ChainCode[:], iData)

	zl := z[0:28]
	zr := z[32:64]

	klInt := leToBigInt(k.KL[:])
	zlInt := leToBigInt(zl)
	zlInt.Mul(zlInt, big.NewInt(8))
	newKL := new(big.Int).Add(klInt, zlInt)
	newKL.Mod(newKL, mod256)

	krInt := leToBigInt(k.KR[:])
	zrInt := leToBigInt(zr)
	newKR := new(big.Int).Add(krInt, zrInt)
	newKR.Mod(newKR, mod256)

	var child ExtendedKey
	child.KL = bigIntToLE32(newKL)
	child.KR = bigIntToLE32(newKR)
	copy(child.ChainCode[:], iMac[32:64])
	return child
}
