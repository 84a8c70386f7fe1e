package builtins_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/builtins"
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/primitives"
	"github.com/blinklabs-io/gouplc/uplc"
)

func newRegistry(t *testing.T) *builtins.Registry {
	t.Helper()
	model, err := costmodel.DefaultV3()
	require.NoError(t, err)
	return builtins.NewRegistry(model, cek.NopLogger{})
}

func constInt(n int64) cek.Value {
	return cek.VConst{Constant: uplc.ConstInteger{Value: big.NewInt(n)}}
}

func constBytes(b []byte) cek.Value {
	return cek.VConst{Constant: uplc.ConstByteString{Value: b}}
}

func constIntList(ns ...int64) cek.Value {
	items := make([]uplc.Constant, len(ns))
	for i, n := range ns {
		items[i] = uplc.ConstInteger{Value: big.NewInt(n)}
	}
	return cek.VConst{Constant: uplc.ConstList{ElemType: uplc.TypeInteger, Items: items}}
}

func TestAddIntegerArityAndCost(t *testing.T) {
	r := newRegistry(t)
	forces, arity, ok := r.Arity(uplc.AddInteger)
	require.True(t, ok)
	require.Equal(t, 0, forces)
	require.Equal(t, 2, arity)

	args := []cek.Value{constInt(2), constInt(3)}
	cost, err := r.Cost(uplc.AddInteger, args)
	require.NoError(t, err)
	require.Positive(t, cost.CPU)

	result, err := r.Apply(uplc.AddInteger, args)
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(5).Cmp(v))
}

func TestDivideIntegerFloorsTowardNegativeInfinity(t *testing.T) {
	r := newRegistry(t)
	result, err := r.Apply(uplc.DivideInteger, []cek.Value{constInt(-7), constInt(2)})
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(-4).Cmp(v))
}

func TestQuotientIntegerTruncatesTowardZero(t *testing.T) {
	r := newRegistry(t)
	result, err := r.Apply(uplc.QuotientInteger, []cek.Value{constInt(-7), constInt(2)})
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(-3).Cmp(v))
}

func TestSha2_256(t *testing.T) {
	r := newRegistry(t)
	result, err := r.Apply(uplc.Sha2_256, []cek.Value{constBytes([]byte("abc"))})
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstByteString).Value
	require.Equal(t, primitives.Sha2_256([]byte("abc")), v)
}

func TestUnknownBuiltinErrors(t *testing.T) {
	r := newRegistry(t)
	_, _, ok := r.Arity(uplc.BuiltinName("notARealBuiltin"))
	require.False(t, ok)
}

func TestConstrDataAndUnConstrDataRoundTrip(t *testing.T) {
	r := newRegistry(t)
	fields := cek.VConst{Constant: uplc.ConstList{ElemType: uplc.TypeData, Items: []uplc.Constant{
		uplc.ConstData{Value: data.NewI(1)},
		uplc.ConstData{Value: data.NewB([]byte{0xAB})},
	}}}
	constrVal, err := r.Apply(uplc.ConstrData, []cek.Value{constInt(3), fields})
	require.NoError(t, err)
	d := constrVal.(cek.VConst).Constant.(uplc.ConstData).Value
	require.True(t, d.Equal(data.Constr{Tag: 3, Args: []data.Data{data.NewI(1), data.NewB([]byte{0xAB})}}))

	pairVal, err := r.Apply(uplc.UnConstrData, []cek.Value{constrVal})
	require.NoError(t, err)
	p := pairVal.(cek.VConst).Constant.(uplc.ConstPair)
	tag := p.Fst.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(3).Cmp(tag))
}

func TestBlsG1AddAndCompress(t *testing.T) {
	r := newRegistry(t)
	g1 := cek.VConst{Constant: uplc.ConstBls12_381_G1{Value: primitives.G1Generator()}}
	sum, err := r.Apply(uplc.Bls12_381_G1_Add, []cek.Value{g1, g1})
	require.NoError(t, err)
	compressed, err := r.Apply(uplc.Bls12_381_G1_Compress, []cek.Value{sum})
	require.NoError(t, err)
	b := compressed.(cek.VConst).Constant.(uplc.ConstByteString).Value
	require.Len(t, b, 48)
}

func TestHeadListOnEmptyFails(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Apply(uplc.HeadList, []cek.Value{constIntList()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty list")
}

func TestDropListNegativeCountFails(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Apply(uplc.DropList, []cek.Value{constInt(-1), constIntList(1, 2, 3)})
	require.Error(t, err)
}

func TestDropListSaturatesHugeCount(t *testing.T) {
	r := newRegistry(t)
	huge := new(big.Int).Lsh(big.NewInt(1), 64)
	result, err := r.Apply(uplc.DropList, []cek.Value{
		cek.VConst{Constant: uplc.ConstInteger{Value: huge}},
		constIntList(1, 2, 3),
	})
	require.NoError(t, err)
	items := result.(cek.VConst).Constant.(uplc.ConstList).Items
	require.Empty(t, items)
}

func TestIntegerToByteStringNegativeWidthFails(t *testing.T) {
	r := newRegistry(t)
	_, err := r.Apply(uplc.IntegerToByteString, []cek.Value{
		cek.VConst{Constant: uplc.ConstBool{Value: true}},
		constInt(-1),
		constInt(5),
	})
	require.Error(t, err)
}

func TestChooseDataDispatchesOnVariant(t *testing.T) {
	r := newRegistry(t)
	branches := []cek.Value{constInt(100), constInt(200), constInt(300), constInt(400), constInt(500)}
	args := append([]cek.Value{cek.VConst{Constant: uplc.ConstData{Value: data.NewI(7)}}}, branches...)
	result, err := r.Apply(uplc.ChooseData, args)
	require.NoError(t, err)
	v := result.(cek.VConst).Constant.(uplc.ConstInteger).Value
	require.Equal(t, 0, big.NewInt(400).Cmp(v))
}
