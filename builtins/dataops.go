package builtins

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/uplc"
)

func constrData(args []cek.Value) (cek.Value, error) {
	tag, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	_, items, err := asList(args[1])
	if err != nil {
		return nil, err
	}
	fields := make([]data.Data, len(items))
	for i, c := range items {
		d, ok := c.(uplc.ConstData)
		if !ok {
			return nil, fmt.Errorf("constrData: list element %d is not Data", i)
		}
		fields[i] = d.Value
	}
	return mkData(data.Constr{Tag: tag.Uint64(), Args: fields}), nil
}

func mapData(args []cek.Value) (cek.Value, error) {
	_, items, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	pairs := make([]data.Pair, len(items))
	for i, c := range items {
		p, ok := c.(uplc.ConstPair)
		if !ok {
			return nil, fmt.Errorf("mapData: list element %d is not a pair", i)
		}
		k, ok := p.Fst.(uplc.ConstData)
		if !ok {
			return nil, fmt.Errorf("mapData: pair key %d is not Data", i)
		}
		v, ok := p.Snd.(uplc.ConstData)
		if !ok {
			return nil, fmt.Errorf("mapData: pair value %d is not Data", i)
		}
		pairs[i] = data.Pair{Key: k.Value, Value: v.Value}
	}
	return mkData(data.Map{Pairs: pairs}), nil
}

func listData(args []cek.Value) (cek.Value, error) {
	_, items, err := asList(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]data.Data, len(items))
	for i, c := range items {
		d, ok := c.(uplc.ConstData)
		if !ok {
			return nil, fmt.Errorf("listData: list element %d is not Data", i)
		}
		out[i] = d.Value
	}
	return mkData(data.List{Items: out}), nil
}

func iData(args []cek.Value) (cek.Value, error) {
	i, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	return mkData(data.I{Value: i}), nil
}

func bData(args []cek.Value) (cek.Value, error) {
	b, err := asByteString(args[0])
	if err != nil {
		return nil, err
	}
	return mkData(data.B{Value: b}), nil
}

func unConstrData(args []cek.Value) (cek.Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	c, ok := d.(data.Constr)
	if !ok {
		return nil, fmt.Errorf("unConstrData: not a Constr")
	}
	items := make([]uplc.Constant, len(c.Args))
	for i, a := range c.Args {
		items[i] = uplc.ConstData{Value: a}
	}
	return mkPair(uplc.ConstPair{
		FstType: uplc.TypeInteger, SndType: uplc.TypeList,
		Fst: uplc.ConstInteger{Value: new(big.Int).SetUint64(c.Tag)},
		Snd: uplc.ConstList{ElemType: uplc.TypeData, Items: items},
	}), nil
}

func unMapData(args []cek.Value) (cek.Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	m, ok := d.(data.Map)
	if !ok {
		return nil, fmt.Errorf("unMapData: not a Map")
	}
	items := make([]uplc.Constant, len(m.Pairs))
	for i, p := range m.Pairs {
		items[i] = uplc.ConstPair{
			FstType: uplc.TypeData, SndType: uplc.TypeData,
			Fst: uplc.ConstData{Value: p.Key}, Snd: uplc.ConstData{Value: p.Value},
		}
	}
	return mkList(uplc.TypePair, items), nil
}

func unListData(args []cek.Value) (cek.Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	l, ok := d.(data.List)
	if !ok {
		return nil, fmt.Errorf("unListData: not a List")
	}
	items := make([]uplc.Constant, len(l.Items))
	for i, a := range l.Items {
		items[i] = uplc.ConstData{Value: a}
	}
	return mkList(uplc.TypeData, items), nil
}

func unIData(args []cek.Value) (cek.Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	i, ok := d.(data.I)
	if !ok {
		return nil, fmt.Errorf("unIData: not an I")
	}
	return mkInteger(i.Value), nil
}

func unBData(args []cek.Value) (cek.Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	b, ok := d.(data.B)
	if !ok {
		return nil, fmt.Errorf("unBData: not a B")
	}
	return mkByteString(b.Value), nil
}

func equalsData(args []cek.Value) (cek.Value, error) {
	a, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asData(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(a.Equal(b)), nil
}

// chooseData dispatches on the scrutinee's concrete shape, one of the five
// branch arguments chosen by which Data variant it is (§4.2).
func chooseData(args []cek.Value) (cek.Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	switch d.(type) {
	case data.Constr:
		return args[1], nil
	case data.Map:
		return args[2], nil
	case data.List:
		return args[3], nil
	case data.I:
		return args[4], nil
	case data.B:
		return args[5], nil
	default:
		return nil, fmt.Errorf("chooseData: unrecognized Data variant %T", d)
	}
}

func serialiseData(args []cek.Value) (cek.Value, error) {
	d, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	b, err := data.Encode(d)
	if err != nil {
		return nil, fmt.Errorf("serialiseData: %w", err)
	}
	return mkByteString(b), nil
}
