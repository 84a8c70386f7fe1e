package builtins

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gouplc/cek"
)

func addInteger(args []cek.Value) (cek.Value, error) {
	a, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger(args[1])
	if err != nil {
		return nil, err
	}
	return mkInteger(new(big.Int).Add(a, b)), nil
}

func subtractInteger(args []cek.Value) (cek.Value, error) {
	a, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger(args[1])
	if err != nil {
		return nil, err
	}
	return mkInteger(new(big.Int).Sub(a, b)), nil
}

func multiplyInteger(args []cek.Value) (cek.Value, error) {
	a, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger(args[1])
	if err != nil {
		return nil, err
	}
	return mkInteger(new(big.Int).Mul(a, b)), nil
}

// divideInteger and modInteger round toward negative infinity (floor
// division), matching the Plutus builtin semantics; quotientInteger
// and remainderInteger truncate toward zero, matching Go's native
// big.Int.QuoRem.
func divideInteger(args []cek.Value) (cek.Value, error) {
	a, b, err := twoIntegers(args)
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	q, r := new(big.Int), new(big.Int)
	q.DivMod(a, b, r)
	if b.Sign() < 0 && r.Sign() != 0 {
		q.Sub(q, big.NewInt(1))
	}
	return mkInteger(q), nil
}

func modInteger(args []cek.Value) (cek.Value, error) {
	a, b, err := twoIntegers(args)
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	r := new(big.Int).Mod(a, b)
	if b.Sign() < 0 && r.Sign() != 0 {
		r.Add(r, b)
	}
	return mkInteger(r), nil
}

func quotientInteger(args []cek.Value) (cek.Value, error) {
	a, b, err := twoIntegers(args)
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	q := new(big.Int)
	q.Quo(a, b)
	return mkInteger(q), nil
}

func remainderInteger(args []cek.Value) (cek.Value, error) {
	a, b, err := twoIntegers(args)
	if err != nil {
		return nil, err
	}
	if b.Sign() == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	r := new(big.Int)
	r.Rem(a, b)
	return mkInteger(r), nil
}

func equalsInteger(args []cek.Value) (cek.Value, error) {
	a, b, err := twoIntegers(args)
	if err != nil {
		return nil, err
	}
	return mkBool(a.Cmp(b) == 0), nil
}

func lessThanInteger(args []cek.Value) (cek.Value, error) {
	a, b, err := twoIntegers(args)
	if err != nil {
		return nil, err
	}
	return mkBool(a.Cmp(b) < 0), nil
}

func lessThanEqualsInteger(args []cek.Value) (cek.Value, error) {
	a, b, err := twoIntegers(args)
	if err != nil {
		return nil, err
	}
	return mkBool(a.Cmp(b) <= 0), nil
}

func twoIntegers(args []cek.Value) (*big.Int, *big.Int, error) {
	a, err := asInteger(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asInteger(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}
