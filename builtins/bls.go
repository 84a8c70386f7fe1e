package builtins

import (
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/primitives"
)

func blsG1Add(args []cek.Value) (cek.Value, error) {
	a, err := asG1(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG1(args[1])
	if err != nil {
		return nil, err
	}
	return mkG1(primitives.G1Add(a, b)), nil
}

func blsG1Neg(args []cek.Value) (cek.Value, error) {
	a, err := asG1(args[0])
	if err != nil {
		return nil, err
	}
	return mkG1(primitives.G1Neg(a)), nil
}

func blsG1ScalarMul(args []cek.Value) (cek.Value, error) {
	scalar, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	a, err := asG1(args[1])
	if err != nil {
		return nil, err
	}
	return mkG1(primitives.G1ScalarMul(scalar, a)), nil
}

func blsG1Equal(args []cek.Value) (cek.Value, error) {
	a, err := asG1(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG1(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(primitives.G1Equal(a, b)), nil
}

func blsG1Compress(args []cek.Value) (cek.Value, error) {
	a, err := asG1(args[0])
	if err != nil {
		return nil, err
	}
	return mkByteString(primitives.G1Compress(a)), nil
}

func blsG1Uncompress(args []cek.Value) (cek.Value, error) {
	b, err := asByteString(args[0])
	if err != nil {
		return nil, err
	}
	g, err := primitives.G1Uncompress(b)
	if err != nil {
		return nil, err
	}
	return mkG1(g), nil
}

func blsG2Add(args []cek.Value) (cek.Value, error) {
	a, err := asG2(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG2(args[1])
	if err != nil {
		return nil, err
	}
	return mkG2(primitives.G2Add(a, b)), nil
}

func blsG2Neg(args []cek.Value) (cek.Value, error) {
	a, err := asG2(args[0])
	if err != nil {
		return nil, err
	}
	return mkG2(primitives.G2Neg(a)), nil
}

func blsG2ScalarMul(args []cek.Value) (cek.Value, error) {
	scalar, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	a, err := asG2(args[1])
	if err != nil {
		return nil, err
	}
	return mkG2(primitives.G2ScalarMul(scalar, a)), nil
}

func blsG2Equal(args []cek.Value) (cek.Value, error) {
	a, err := asG2(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG2(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(primitives.G2Equal(a, b)), nil
}

func blsG2Compress(args []cek.Value) (cek.Value, error) {
	a, err := asG2(args[0])
	if err != nil {
		return nil, err
	}
	return mkByteString(primitives.G2Compress(a)), nil
}

func blsG2Uncompress(args []cek.Value) (cek.Value, error) {
	b, err := asByteString(args[0])
	if err != nil {
		return nil, err
	}
	g, err := primitives.G2Uncompress(b)
	if err != nil {
		return nil, err
	}
	return mkG2(g), nil
}

func blsMillerLoop(args []cek.Value) (cek.Value, error) {
	a, err := asG1(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asG2(args[1])
	if err != nil {
		return nil, err
	}
	res, err := primitives.MillerLoop(a, b)
	if err != nil {
		return nil, err
	}
	return mkMlResult(res), nil
}

func blsMulMlResult(args []cek.Value) (cek.Value, error) {
	a, err := asMlResult(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asMlResult(args[1])
	if err != nil {
		return nil, err
	}
	return mkMlResult(primitives.MulMlResult(a, b)), nil
}

func blsFinalVerify(args []cek.Value) (cek.Value, error) {
	a, err := asMlResult(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asMlResult(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(primitives.FinalVerify(a, b)), nil
}
