package builtins

import (
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/uplc"
)

func fstPair(args []cek.Value) (cek.Value, error) {
	p, err := asPair(args[0])
	if err != nil {
		return nil, err
	}
	return cek.VConst{Constant: p.Fst}, nil
}

func sndPair(args []cek.Value) (cek.Value, error) {
	p, err := asPair(args[0])
	if err != nil {
		return nil, err
	}
	return cek.VConst{Constant: p.Snd}, nil
}

func mkPairData(args []cek.Value) (cek.Value, error) {
	a, err := asData(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asData(args[1])
	if err != nil {
		return nil, err
	}
	return mkPair(uplc.ConstPair{
		FstType: uplc.TypeData, SndType: uplc.TypeData,
		Fst: uplc.ConstData{Value: a}, Snd: uplc.ConstData{Value: b},
	}), nil
}

func mkNilData(args []cek.Value) (cek.Value, error) {
	if err := asUnit(args[0]); err != nil {
		return nil, err
	}
	return mkList(uplc.TypeData, nil), nil
}

func mkNilPairData(args []cek.Value) (cek.Value, error) {
	if err := asUnit(args[0]); err != nil {
		return nil, err
	}
	return mkList(uplc.TypePair, nil), nil
}
