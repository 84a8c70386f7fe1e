package wallet

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
)

// SigningKey wraps one derived extended private key. It satisfies
// txbuilder.Signer structurally, so the transaction builder never needs to
// import this package.
type SigningKey struct {
	Extended ExtendedKey
}

// PublicKey returns the Ed25519 verification key for this signing key.
func (s SigningKey) PublicKey() [32]byte {
	return s.Extended.publicKey()
}

// Sign produces Cardano's extended-Ed25519 signature over message:
//
//	r = SHA512(kR || m) mod L
//	R = r*G
//	k = SHA512(R || A || m) mod L
//	S = (r + k*kL) mod L
//	signature = R || S
func (s SigningKey) Sign(message []byte) (vkey [32]byte, signature [64]byte, err error) {
	a := s.Extended.publicKey()
	klScalar := scalarFromExtended(s.Extended.KL)

	rHash := sha512.Sum512(append(append([]byte{}, s.Extended.KR[:]...), message...))
	rScalar, err := edwards25519.NewScalar().SetUniformBytes(rHash[:])
	if err != nil {
		return vkey, signature, err
	}

	R := (&edwards25519.Point{}).ScalarBaseMult(rScalar)
	var rBytes [32]byte
	copy(rBytes[:], R.Bytes())

	kInput := append(append([]byte{}, rBytes[:]...), a[:]...)
	kInput = append(kInput, message...)
	kHash := sha512.Sum512(kInput)
	kScalar, err := edwards25519.NewScalar().SetUniformBytes(kHash[:])
	if err != nil {
		return vkey, signature, err
	}

	kkl := edwards25519.NewScalar().Multiply(kScalar, klScalar)
	sScalar := edwards25519.NewScalar().Add(rScalar, kkl)

	copy(signature[0:32], rBytes[:])
	copy(signature[32:64], sScalar.Bytes())
	vkey = a
	return vkey, signature, nil
}
