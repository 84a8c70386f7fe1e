package uplc

// Builtin name constants, in the order the reference implementation
// assigns their 7-bit flat ids. Not every builtin the ledger has ever
// shipped is represented here; the set below covers every category
// described for the registry (arithmetic, bytestring, comparison, hashing,
// signature verification, control, list, pair, data, BLS12-381, and
// integer/bytestring conversion) and is extended in the same pattern as
// protocol upgrades add builtins.
const (
	AddInteger                    BuiltinName = "addInteger"
	SubtractInteger                BuiltinName = "subtractInteger"
	MultiplyInteger                BuiltinName = "multiplyInteger"
	DivideInteger                  BuiltinName = "divideInteger"
	QuotientInteger                BuiltinName = "quotientInteger"
	RemainderInteger                BuiltinName = "remainderInteger"
	ModInteger                      BuiltinName = "modInteger"
	EqualsInteger                   BuiltinName = "equalsInteger"
	LessThanInteger                 BuiltinName = "lessThanInteger"
	LessThanEqualsInteger           BuiltinName = "lessThanEqualsInteger"
	AppendByteString                BuiltinName = "appendByteString"
	ConsByteString                  BuiltinName = "consByteString"
	SliceByteString                 BuiltinName = "sliceByteString"
	LengthOfByteString              BuiltinName = "lengthOfByteString"
	IndexByteString                 BuiltinName = "indexByteString"
	EqualsByteString                BuiltinName = "equalsByteString"
	LessThanByteString              BuiltinName = "lessThanByteString"
	LessThanEqualsByteString        BuiltinName = "lessThanEqualsByteString"
	Sha2_256                        BuiltinName = "sha2_256"
	Sha3_256                        BuiltinName = "sha3_256"
	Blake2b_256                     BuiltinName = "blake2b_256"
	VerifyEd25519Signature          BuiltinName = "verifyEd25519Signature"
	IfThenElse                      BuiltinName = "ifThenElse"
	AppendString                    BuiltinName = "appendString"
	EqualsString                    BuiltinName = "equalsString"
	EncodeUtf8                      BuiltinName = "encodeUtf8"
	DecodeUtf8                      BuiltinName = "decodeUtf8"
	ChooseUnit                      BuiltinName = "chooseUnit"
	Trace                           BuiltinName = "trace"
	FstPair                         BuiltinName = "fstPair"
	SndPair                         BuiltinName = "sndPair"
	ChooseList                      BuiltinName = "chooseList"
	MkCons                          BuiltinName = "mkCons"
	HeadList                        BuiltinName = "headList"
	TailList                        BuiltinName = "tailList"
	NullList                        BuiltinName = "nullList"
	ChooseData                      BuiltinName = "chooseData"
	ConstrData                      BuiltinName = "constrData"
	MapData                         BuiltinName = "mapData"
	ListData                        BuiltinName = "listData"
	IData                           BuiltinName = "iData"
	BData                           BuiltinName = "bData"
	UnConstrData                    BuiltinName = "unConstrData"
	UnMapData                       BuiltinName = "unMapData"
	UnListData                      BuiltinName = "unListData"
	UnIData                         BuiltinName = "unIData"
	UnBData                         BuiltinName = "unBData"
	EqualsData                      BuiltinName = "equalsData"
	MkPairData                      BuiltinName = "mkPairData"
	MkNilData                       BuiltinName = "mkNilData"
	MkNilPairData                   BuiltinName = "mkNilPairData"
	SerialiseData                   BuiltinName = "serialiseData"
	VerifyEcdsaSecp256k1Signature   BuiltinName = "verifyEcdsaSecp256k1Signature"
	VerifySchnorrSecp256k1Signature BuiltinName = "verifySchnorrSecp256k1Signature"
	Blake2b_224                     BuiltinName = "blake2b_224"
	Keccak_256                      BuiltinName = "keccak_256"
	Ripemd_160                      BuiltinName = "ripemd_160"
	Bls12_381_G1_Add                BuiltinName = "bls12_381_G1_add"
	Bls12_381_G1_Neg                BuiltinName = "bls12_381_G1_neg"
	Bls12_381_G1_ScalarMul           BuiltinName = "bls12_381_G1_scalarMul"
	Bls12_381_G1_Equal               BuiltinName = "bls12_381_G1_equal"
	Bls12_381_G1_Compress             BuiltinName = "bls12_381_G1_compress"
	Bls12_381_G1_Uncompress            BuiltinName = "bls12_381_G1_uncompress"
	Bls12_381_G2_Add                 BuiltinName = "bls12_381_G2_add"
	Bls12_381_G2_Neg                 BuiltinName = "bls12_381_G2_neg"
	Bls12_381_G2_ScalarMul            BuiltinName = "bls12_381_G2_scalarMul"
	Bls12_381_G2_Equal                BuiltinName = "bls12_381_G2_equal"
	Bls12_381_G2_Compress              BuiltinName = "bls12_381_G2_compress"
	Bls12_381_G2_Uncompress             BuiltinName = "bls12_381_G2_uncompress"
	Bls12_381_MillerLoop                BuiltinName = "bls12_381_millerLoop"
	Bls12_381_MulMlResult                BuiltinName = "bls12_381_mulMlResult"
	Bls12_381_FinalVerify                 BuiltinName = "bls12_381_finalVerify"
	IntegerToByteString                  BuiltinName = "integerToByteString"
	ByteStringToInteger                  BuiltinName = "byteStringToInteger"
	DropList                             BuiltinName = "dropList"
	LengthOfArray                         BuiltinName = "lengthOfArray"
)

// allBuiltins lists every name above in flat-id assignment order. Order
// must never change once a script has been signed against it; new
// builtins are appended.
var allBuiltins = []BuiltinName{
	AddInteger, SubtractInteger, MultiplyInteger, DivideInteger,
	QuotientInteger, RemainderInteger, ModInteger, EqualsInteger,
	LessThanInteger, LessThanEqualsInteger, AppendByteString,
	ConsByteString, SliceByteString, LengthOfByteString, IndexByteString,
	EqualsByteString, LessThanByteString, LessThanEqualsByteString,
	Sha2_256, Sha3_256, Blake2b_256, VerifyEd25519Signature, IfThenElse,
	AppendString, EqualsString, EncodeUtf8, DecodeUtf8, ChooseUnit, Trace,
	FstPair, SndPair, ChooseList, MkCons, HeadList, TailList, NullList,
	ChooseData, ConstrData, MapData, ListData, IData, BData, UnConstrData,
	UnMapData, UnListData, UnIData, UnBData, EqualsData, MkPairData,
	MkNilData, MkNilPairData, SerialiseData, VerifyEcdsaSecp256k1Signature,
	VerifySchnorrSecp256k1Signature, Blake2b_224, Keccak_256, Ripemd_160,
	Bls12_381_G1_Add, Bls12_381_G1_Neg, Bls12_381_G1_ScalarMul,
	Bls12_381_G1_Equal, Bls12_381_G1_Compress, Bls12_381_G1_Uncompress,
	Bls12_381_G2_Add, Bls12_381_G2_Neg, Bls12_381_G2_ScalarMul,
	Bls12_381_G2_Equal, Bls12_381_G2_Compress, Bls12_381_G2_Uncompress,
	Bls12_381_MillerLoop, Bls12_381_MulMlResult, Bls12_381_FinalVerify,
	IntegerToByteString, ByteStringToInteger, DropList, LengthOfArray,
}

var builtinIDs map[BuiltinName]byte
var builtinNames map[byte]BuiltinName

func init() {
	builtinIDs = make(map[BuiltinName]byte, len(allBuiltins))
	builtinNames = make(map[byte]BuiltinName, len(allBuiltins))
	for i, name := range allBuiltins {
		builtinIDs[name] = byte(i)
		builtinNames[byte(i)] = name
	}
}
