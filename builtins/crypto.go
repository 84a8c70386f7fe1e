package builtins

import (
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/primitives"
)

func verifyEd25519Signature(args []cek.Value) (cek.Value, error) {
	pk, msg, sig, err := threeByteStrings(args)
	if err != nil {
		return nil, err
	}
	ok, err := primitives.VerifyEd25519Signature(pk, msg, sig)
	if err != nil {
		return nil, err
	}
	return mkBool(ok), nil
}

func verifyEcdsaSecp256k1Signature(args []cek.Value) (cek.Value, error) {
	pk, msg, sig, err := threeByteStrings(args)
	if err != nil {
		return nil, err
	}
	ok, err := primitives.VerifyEcdsaSecp256k1Signature(pk, msg, sig)
	if err != nil {
		return nil, err
	}
	return mkBool(ok), nil
}

func verifySchnorrSecp256k1Signature(args []cek.Value) (cek.Value, error) {
	pk, msg, sig, err := threeByteStrings(args)
	if err != nil {
		return nil, err
	}
	ok, err := primitives.VerifySchnorrSecp256k1Signature(pk, msg, sig)
	if err != nil {
		return nil, err
	}
	return mkBool(ok), nil
}

func threeByteStrings(args []cek.Value) ([]byte, []byte, []byte, error) {
	a, err := asByteString(args[0])
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := asByteString(args[1])
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := asByteString(args[2])
	if err != nil {
		return nil, nil, nil, err
	}
	return a, b, c, nil
}
