package builtins

import (
	"fmt"

	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/uplc"
)

// argsSelector maps a builtin's already-evaluated arguments onto the X/Y/Z
// slots a costmodel.Function expects, per the convention fixed for that
// builtin (§4.4).
type argsSelector func(args []cek.Value) costmodel.Args

func selectX(args []cek.Value) costmodel.Args      { return costmodel.Args{X: memOf(args[0])} }
func selectXY(args []cek.Value) costmodel.Args      { return costmodel.Args{X: memOf(args[0]), Y: memOf(args[1])} }
func selectXYZ(args []cek.Value) costmodel.Args {
	return costmodel.Args{X: memOf(args[0]), Y: memOf(args[1]), Z: memOf(args[2])}
}
func selectNone(args []cek.Value) costmodel.Args { return costmodel.Args{} }

// entry is one builtin's complete wiring: how many Force wrappers and term
// arguments it expects, how to shape its cost-function arguments, and its
// semantic implementation.
type entry struct {
	forces   int
	arity    int
	selector argsSelector
	fn       func(args []cek.Value) (cek.Value, error)
}

// Registry implements cek.BuiltinDispatcher over the full builtin set,
// priced against one costmodel.Model.
type Registry struct {
	model   costmodel.Model
	entries map[uplc.BuiltinName]entry
}

// NewRegistry builds a Registry. logger receives messages from the `trace`
// builtin; pass cek.NopLogger{} to discard them.
func NewRegistry(model costmodel.Model, logger cek.Logger) *Registry {
	r := &Registry{model: model, entries: make(map[uplc.BuiltinName]entry, 80)}
	r.register(uplc.AddInteger, 0, 2, selectXY, addInteger)
	r.register(uplc.SubtractInteger, 0, 2, selectXY, subtractInteger)
	r.register(uplc.MultiplyInteger, 0, 2, selectXY, multiplyInteger)
	r.register(uplc.DivideInteger, 0, 2, selectXY, divideInteger)
	r.register(uplc.QuotientInteger, 0, 2, selectXY, quotientInteger)
	r.register(uplc.RemainderInteger, 0, 2, selectXY, remainderInteger)
	r.register(uplc.ModInteger, 0, 2, selectXY, modInteger)
	r.register(uplc.EqualsInteger, 0, 2, selectXY, equalsInteger)
	r.register(uplc.LessThanInteger, 0, 2, selectXY, lessThanInteger)
	r.register(uplc.LessThanEqualsInteger, 0, 2, selectXY, lessThanEqualsInteger)

	r.register(uplc.AppendByteString, 0, 2, selectXY, appendByteString)
	r.register(uplc.ConsByteString, 0, 2, selectXY, consByteString)
	r.register(uplc.SliceByteString, 0, 3, selectXYZ, sliceByteString)
	r.register(uplc.LengthOfByteString, 0, 1, selectX, lengthOfByteString)
	r.register(uplc.IndexByteString, 0, 2, selectXY, indexByteString)
	r.register(uplc.EqualsByteString, 0, 2, selectXY, equalsByteString)
	r.register(uplc.LessThanByteString, 0, 2, selectXY, lessThanByteString)
	r.register(uplc.LessThanEqualsByteString, 0, 2, selectXY, lessThanEqualsByteString)

	r.register(uplc.Sha2_256, 0, 1, selectX, sha2_256)
	r.register(uplc.Sha3_256, 0, 1, selectX, sha3_256)
	r.register(uplc.Blake2b_256, 0, 1, selectX, blake2b256)
	r.register(uplc.Blake2b_224, 0, 1, selectX, blake2b224)
	r.register(uplc.Keccak_256, 0, 1, selectX, keccak256)
	r.register(uplc.Ripemd_160, 0, 1, selectX, ripemd160)

	r.register(uplc.VerifyEd25519Signature, 0, 3, selectXYZ, verifyEd25519Signature)
	r.register(uplc.VerifyEcdsaSecp256k1Signature, 0, 3, selectXYZ, verifyEcdsaSecp256k1Signature)
	r.register(uplc.VerifySchnorrSecp256k1Signature, 0, 3, selectXYZ, verifySchnorrSecp256k1Signature)

	r.register(uplc.IfThenElse, 1, 3, selectNone, ifThenElse)
	r.register(uplc.AppendString, 0, 2, selectXY, appendString)
	r.register(uplc.EqualsString, 0, 2, selectXY, equalsString)
	r.register(uplc.EncodeUtf8, 0, 1, selectX, encodeUtf8)
	r.register(uplc.DecodeUtf8, 0, 1, selectX, decodeUtf8)
	r.register(uplc.ChooseUnit, 1, 2, selectNone, chooseUnit)
	r.register(uplc.Trace, 1, 2, selectNone, trace(logger))

	r.register(uplc.FstPair, 2, 1, selectX, fstPair)
	r.register(uplc.SndPair, 2, 1, selectX, sndPair)

	r.register(uplc.ChooseList, 2, 3, selectNone, chooseList)
	r.register(uplc.MkCons, 1, 2, selectXY, mkCons)
	r.register(uplc.HeadList, 1, 1, selectX, headList)
	r.register(uplc.TailList, 1, 1, selectX, tailList)
	r.register(uplc.NullList, 1, 1, selectX, nullList)
	r.register(uplc.DropList, 1, 2, selectXY, dropList)
	r.register(uplc.LengthOfArray, 1, 1, selectX, lengthOfArray)

	r.register(uplc.ChooseData, 1, 6, selectNone, chooseData)
	r.register(uplc.ConstrData, 0, 2, selectXY, constrData)
	r.register(uplc.MapData, 0, 1, selectX, mapData)
	r.register(uplc.ListData, 0, 1, selectX, listData)
	r.register(uplc.IData, 0, 1, selectX, iData)
	r.register(uplc.BData, 0, 1, selectX, bData)
	r.register(uplc.UnConstrData, 0, 1, selectX, unConstrData)
	r.register(uplc.UnMapData, 0, 1, selectX, unMapData)
	r.register(uplc.UnListData, 0, 1, selectX, unListData)
	r.register(uplc.UnIData, 0, 1, selectX, unIData)
	r.register(uplc.UnBData, 0, 1, selectX, unBData)
	r.register(uplc.EqualsData, 0, 2, selectXY, equalsData)
	r.register(uplc.MkPairData, 0, 2, selectXY, mkPairData)
	r.register(uplc.MkNilData, 0, 1, selectX, mkNilData)
	r.register(uplc.MkNilPairData, 0, 1, selectX, mkNilPairData)
	r.register(uplc.SerialiseData, 0, 1, selectX, serialiseData)

	r.register(uplc.Bls12_381_G1_Add, 0, 2, selectXY, blsG1Add)
	r.register(uplc.Bls12_381_G1_Neg, 0, 1, selectX, blsG1Neg)
	r.register(uplc.Bls12_381_G1_ScalarMul, 0, 2, selectXY, blsG1ScalarMul)
	r.register(uplc.Bls12_381_G1_Equal, 0, 2, selectXY, blsG1Equal)
	r.register(uplc.Bls12_381_G1_Compress, 0, 1, selectX, blsG1Compress)
	r.register(uplc.Bls12_381_G1_Uncompress, 0, 1, selectX, blsG1Uncompress)
	r.register(uplc.Bls12_381_G2_Add, 0, 2, selectXY, blsG2Add)
	r.register(uplc.Bls12_381_G2_Neg, 0, 1, selectX, blsG2Neg)
	r.register(uplc.Bls12_381_G2_ScalarMul, 0, 2, selectXY, blsG2ScalarMul)
	r.register(uplc.Bls12_381_G2_Equal, 0, 2, selectXY, blsG2Equal)
	r.register(uplc.Bls12_381_G2_Compress, 0, 1, selectX, blsG2Compress)
	r.register(uplc.Bls12_381_G2_Uncompress, 0, 1, selectX, blsG2Uncompress)
	r.register(uplc.Bls12_381_MillerLoop, 0, 2, selectXY, blsMillerLoop)
	r.register(uplc.Bls12_381_MulMlResult, 0, 2, selectXY, blsMulMlResult)
	r.register(uplc.Bls12_381_FinalVerify, 0, 2, selectXY, blsFinalVerify)

	r.register(uplc.IntegerToByteString, 0, 3, selectXYZ, integerToByteString)
	r.register(uplc.ByteStringToInteger, 0, 2, selectXY, byteStringToInteger)

	return r
}

func (r *Registry) register(name uplc.BuiltinName, forces, arity int, sel argsSelector, fn func([]cek.Value) (cek.Value, error)) {
	r.entries[name] = entry{forces: forces, arity: arity, selector: sel, fn: fn}
}

// Arity implements cek.BuiltinDispatcher.
func (r *Registry) Arity(name uplc.BuiltinName) (int, int, bool) {
	e, ok := r.entries[name]
	if !ok {
		return 0, 0, false
	}
	return e.forces, e.arity, true
}

// Cost implements cek.BuiltinDispatcher.
func (r *Registry) Cost(name uplc.BuiltinName, args []cek.Value) (cek.ExBudget, error) {
	e, ok := r.entries[name]
	if !ok {
		return cek.ExBudget{}, fmt.Errorf("builtins: unknown builtin %s", name)
	}
	bc, err := r.model.CostOf(string(name))
	if err != nil {
		return cek.ExBudget{}, err
	}
	costArgs := e.selector(args)
	return cek.ExBudget{
		CPU: bc.CPU.Cost(costArgs),
		Mem: bc.Mem.Cost(costArgs),
	}, nil
}

// Apply implements cek.BuiltinDispatcher.
func (r *Registry) Apply(name uplc.BuiltinName, args []cek.Value) (cek.Value, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("builtins: unknown builtin %s", name)
	}
	if len(args) != e.arity {
		return nil, fmt.Errorf("builtins: %s expects %d arguments, got %d", name, e.arity, len(args))
	}
	return e.fn(args)
}

var _ cek.BuiltinDispatcher = (*Registry)(nil)
