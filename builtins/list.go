package builtins

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/uplc"
)

func mkCons(args []cek.Value) (cek.Value, error) {
	elemC, err := constOf(args[0])
	if err != nil {
		return nil, err
	}
	elemType, items, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	if typeOf(elemC) != elemType {
		return nil, fmt.Errorf("mkCons: element type %v does not match list type %v", typeOf(elemC), elemType)
	}
	out := make([]uplc.Constant, 0, len(items)+1)
	out = append(out, elemC)
	out = append(out, items...)
	return mkList(elemType, out), nil
}

func headList(args []cek.Value) (cek.Value, error) {
	_, items, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("headList: empty list")
	}
	return cek.VConst{Constant: items[0]}, nil
}

func tailList(args []cek.Value) (cek.Value, error) {
	elemType, items, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("tailList: empty list")
	}
	return mkList(elemType, items[1:]), nil
}

func nullList(args []cek.Value) (cek.Value, error) {
	_, items, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	return mkBool(len(items) == 0), nil
}

func chooseList(args []cek.Value) (cek.Value, error) {
	_, items, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return args[1], nil
	}
	return args[2], nil
}

func dropList(args []cek.Value) (cek.Value, error) {
	n, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	elemType, items, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("dropList: negative count %s", n)
	}
	k := clampToLen(n, int64(len(items)))
	return mkList(elemType, items[k:]), nil
}

func lengthOfArray(args []cek.Value) (cek.Value, error) {
	_, items, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	return mkInteger(big.NewInt(int64(len(items)))), nil
}

// typeOf recovers a Constant's ConstantType tag without relying on its
// unexported constantType() method, so builtins outside package uplc (like
// mkCons's element-type check) can still type-check against it.
func typeOf(c uplc.Constant) uplc.ConstantType {
	switch c.(type) {
	case uplc.ConstInteger:
		return uplc.TypeInteger
	case uplc.ConstByteString:
		return uplc.TypeByteString
	case uplc.ConstString:
		return uplc.TypeString
	case uplc.ConstUnit:
		return uplc.TypeUnit
	case uplc.ConstBool:
		return uplc.TypeBool
	case uplc.ConstData:
		return uplc.TypeData
	case uplc.ConstList:
		return uplc.TypeList
	case uplc.ConstPair:
		return uplc.TypePair
	case uplc.ConstBls12_381_G1:
		return uplc.TypeBls12_381_G1_Element
	case uplc.ConstBls12_381_G2:
		return uplc.TypeBls12_381_G2_Element
	default:
		return uplc.TypeUnit
	}
}
