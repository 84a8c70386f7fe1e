// Package builtins implements the ~80 UPLC builtin functions (§4.2) as a
// Registry satisfying cek.BuiltinDispatcher. Semantics are grouped by
// category, one file per category, mirroring how the cost-model JSON groups
// them.
package builtins

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/primitives"
	"github.com/blinklabs-io/gouplc/uplc"
)

func constOf(v cek.Value) (uplc.Constant, error) {
	c, ok := v.(cek.VConst)
	if !ok {
		return nil, fmt.Errorf("expected a constant value, got %T", v)
	}
	return c.Constant, nil
}

func asInteger(v cek.Value) (*big.Int, error) {
	c, err := constOf(v)
	if err != nil {
		return nil, err
	}
	i, ok := c.(uplc.ConstInteger)
	if !ok {
		return nil, fmt.Errorf("expected integer, got %T", c)
	}
	return i.Value, nil
}

func asByteString(v cek.Value) ([]byte, error) {
	c, err := constOf(v)
	if err != nil {
		return nil, err
	}
	b, ok := c.(uplc.ConstByteString)
	if !ok {
		return nil, fmt.Errorf("expected bytestring, got %T", c)
	}
	return b.Value, nil
}

func asString(v cek.Value) (string, error) {
	c, err := constOf(v)
	if err != nil {
		return "", err
	}
	s, ok := c.(uplc.ConstString)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", c)
	}
	return s.Value, nil
}

func asBool(v cek.Value) (bool, error) {
	c, err := constOf(v)
	if err != nil {
		return false, err
	}
	b, ok := c.(uplc.ConstBool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", c)
	}
	return b.Value, nil
}

func asUnit(v cek.Value) error {
	c, err := constOf(v)
	if err != nil {
		return err
	}
	if _, ok := c.(uplc.ConstUnit); !ok {
		return fmt.Errorf("expected unit, got %T", c)
	}
	return nil
}

func asData(v cek.Value) (data.Data, error) {
	c, err := constOf(v)
	if err != nil {
		return nil, err
	}
	d, ok := c.(uplc.ConstData)
	if !ok {
		return nil, fmt.Errorf("expected data, got %T", c)
	}
	return d.Value, nil
}

func asList(v cek.Value) (uplc.ConstantType, []uplc.Constant, error) {
	c, err := constOf(v)
	if err != nil {
		return 0, nil, err
	}
	l, ok := c.(uplc.ConstList)
	if !ok {
		return 0, nil, fmt.Errorf("expected list, got %T", c)
	}
	return l.ElemType, l.Items, nil
}

func asPair(v cek.Value) (uplc.ConstPair, error) {
	c, err := constOf(v)
	if err != nil {
		return uplc.ConstPair{}, err
	}
	p, ok := c.(uplc.ConstPair)
	if !ok {
		return uplc.ConstPair{}, fmt.Errorf("expected pair, got %T", c)
	}
	return p, nil
}

func asG1(v cek.Value) (primitives.G1Element, error) {
	c, err := constOf(v)
	if err != nil {
		return primitives.G1Element{}, err
	}
	g, ok := c.(uplc.ConstBls12_381_G1)
	if !ok {
		return primitives.G1Element{}, fmt.Errorf("expected bls12_381 G1 element, got %T", c)
	}
	return g.Value, nil
}

func asG2(v cek.Value) (primitives.G2Element, error) {
	c, err := constOf(v)
	if err != nil {
		return primitives.G2Element{}, err
	}
	g, ok := c.(uplc.ConstBls12_381_G2)
	if !ok {
		return primitives.G2Element{}, fmt.Errorf("expected bls12_381 G2 element, got %T", c)
	}
	return g.Value, nil
}

func asMlResult(v cek.Value) (primitives.MlResult, error) {
	m, ok := v.(cek.VMlResult)
	if !ok {
		return primitives.MlResult{}, fmt.Errorf("expected bls12_381 Miller-loop result, got %T", v)
	}
	return m.Value, nil
}

func mkBool(b bool) cek.Value    { return cek.VConst{Constant: uplc.ConstBool{Value: b}} }
func mkUnit() cek.Value          { return cek.VConst{Constant: uplc.ConstUnit{}} }
func mkInteger(i *big.Int) cek.Value {
	return cek.VConst{Constant: uplc.ConstInteger{Value: i}}
}
func mkByteString(b []byte) cek.Value {
	return cek.VConst{Constant: uplc.ConstByteString{Value: b}}
}
func mkString(s string) cek.Value { return cek.VConst{Constant: uplc.ConstString{Value: s}} }
func mkData(d data.Data) cek.Value {
	return cek.VConst{Constant: uplc.ConstData{Value: d}}
}
func mkList(elemType uplc.ConstantType, items []uplc.Constant) cek.Value {
	return cek.VConst{Constant: uplc.ConstList{ElemType: elemType, Items: items}}
}
func mkPair(p uplc.ConstPair) cek.Value { return cek.VConst{Constant: p} }
func mkG1(v primitives.G1Element) cek.Value {
	return cek.VConst{Constant: uplc.ConstBls12_381_G1{Value: v}}
}
func mkG2(v primitives.G2Element) cek.Value {
	return cek.VConst{Constant: uplc.ConstBls12_381_G2{Value: v}}
}
func mkMlResult(v primitives.MlResult) cek.Value { return cek.VMlResult{Value: v} }

// memOf is a shorthand the cost-argument selectors below use so each entry
// reads as "cost scales with the memory of arg N".
func memOf(v cek.Value) int64 { return cek.MemoryUsage(v) }
