package uplc

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gouplc/data"
)

// Program pairs a De-Bruijn term with the (major,minor,patch) version it
// was compiled against (§3.3). The current default is 1.1.0.
type Program struct {
	Version [3]int
	Term    Term
}

// DefaultVersion is the version stamped on newly built programs.
var DefaultVersion = [3]int{1, 1, 0}

// termTag is the 4-bit flat discriminant for each Term variant, in the
// order the reference Plutus Core flat encoding assigns them.
const (
	tagVar byte = iota
	tagDelay
	tagLambda
	tagApply
	tagConst
	tagForce
	tagError
	tagBuiltin
	tagConstr
	tagCase
)

// constTag is the flat type-tag for each Constant variant.
const (
	ctInteger byte = iota
	ctByteString
	ctString
	ctUnit
	ctBool
	ctList
	ctPair
	ctData
	ctBls12_381_G1
	ctBls12_381_G2
	ctBls12_381_MlResult
)

// FlatEncode serializes a Program to the bit-packed wire format (§6.2).
func FlatEncode(p Program) ([]byte, error) {
	w := newBitWriter()
	for _, v := range p.Version {
		w.writeUnary(v)
	}
	if err := encodeTerm(w, p.Term); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// FlatDecode parses the bit-packed wire format back into a Program. It
// rejects a program whose major version differs from DefaultVersion's, per
// §9's note that a future bit-layout change is a fork, not a patch; the
// minor and patch numbers are accepted as read.
func FlatDecode(b []byte) (Program, error) {
	r := newBitReader(b)
	major := r.readUnary()
	minor := r.readUnary()
	patch := r.readUnary()
	if r.err != nil {
		return Program{}, r.err
	}
	if major != DefaultVersion[0] {
		return Program{}, fmt.Errorf(
			"uplc: unsupported program version %d.%d.%d",
			major, minor, patch,
		)
	}
	t, err := decodeTerm(r)
	if err != nil {
		return Program{}, err
	}
	return Program{Version: [3]int{major, minor, patch}, Term: t}, nil
}

func encodeTerm(w *bitWriter, t Term) error {
	switch v := t.(type) {
	case Var:
		w.writeBits(uint64(tagVar), 4)
		w.writeUnary(v.Index)
	case Delay:
		w.writeBits(uint64(tagDelay), 4)
		return encodeTerm(w, v.Term)
	case LamAbs:
		w.writeBits(uint64(tagLambda), 4)
		return encodeTerm(w, v.Body)
	case Apply:
		w.writeBits(uint64(tagApply), 4)
		if err := encodeTerm(w, v.Function); err != nil {
			return err
		}
		return encodeTerm(w, v.Argument)
	case Const:
		w.writeBits(uint64(tagConst), 4)
		return encodeConstant(w, v.Value)
	case Force:
		w.writeBits(uint64(tagForce), 4)
		return encodeTerm(w, v.Term)
	case TermError:
		w.writeBits(uint64(tagError), 4)
	case Builtin:
		w.writeBits(uint64(tagBuiltin), 4)
		id, ok := builtinIDs[v.Name]
		if !ok {
			return fmt.Errorf("uplc: unknown builtin %q", v.Name)
		}
		w.writeBits(uint64(id), 7)
	case ConstrTerm:
		w.writeBits(uint64(tagConstr), 4)
		w.writeVarlenNat(v.Tag)
		w.writeUnary(len(v.Fields))
		for _, f := range v.Fields {
			if err := encodeTerm(w, f); err != nil {
				return err
			}
		}
	case CaseTerm:
		w.writeBits(uint64(tagCase), 4)
		if err := encodeTerm(w, v.Scrutinee); err != nil {
			return err
		}
		w.writeUnary(len(v.Branches))
		for _, b := range v.Branches {
			if err := encodeTerm(w, b); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("uplc: cannot flat-encode %T", t)
	}
	return nil
}

func decodeTerm(r *bitReader) (Term, error) {
	tag := byte(r.readBits(4))
	if r.err != nil {
		return nil, r.err
	}
	switch tag {
	case tagVar:
		idx := r.readUnary()
		return Var{Index: idx}, r.err
	case tagDelay:
		inner, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return Delay{Term: inner}, nil
	case tagLambda:
		body, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return LamAbs{Body: body}, nil
	case tagApply:
		f, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		a, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return Apply{Function: f, Argument: a}, nil
	case tagConst:
		c, err := decodeConstant(r)
		if err != nil {
			return nil, err
		}
		return Const{Value: c}, nil
	case tagForce:
		inner, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		return Force{Term: inner}, nil
	case tagError:
		return TermError{}, nil
	case tagBuiltin:
		id := byte(r.readBits(7))
		name, ok := builtinNames[id]
		if !ok {
			return nil, fmt.Errorf("uplc: unknown builtin id %d", id)
		}
		return Builtin{Name: name}, nil
	case tagConstr:
		tagN := r.readVarlenNat()
		n := r.readUnary()
		fields := make([]Term, n)
		for i := range fields {
			f, err := decodeTerm(r)
			if err != nil {
				return nil, err
			}
			fields[i] = f
		}
		return ConstrTerm{Tag: tagN, Fields: fields}, r.err
	case tagCase:
		scrut, err := decodeTerm(r)
		if err != nil {
			return nil, err
		}
		n := r.readUnary()
		branches := make([]Term, n)
		for i := range branches {
			b, err := decodeTerm(r)
			if err != nil {
				return nil, err
			}
			branches[i] = b
		}
		return CaseTerm{Scrutinee: scrut, Branches: branches}, r.err
	default:
		return nil, fmt.Errorf("uplc: unknown term tag %d", tag)
	}
}

func encodeConstant(w *bitWriter, c Constant) error {
	types := constantTypeTags(c)
	w.writeUnary(len(types))
	for _, ty := range types {
		w.writeBits(uint64(ty), 4)
	}
	return encodeConstantValue(w, c)
}

// constantTypeTags flattens a (possibly nested, for list/pair) constant
// type into the sequence of 4-bit type tags the flat format expects.
func constantTypeTags(c Constant) []byte {
	switch v := c.(type) {
	case ConstList:
		return append([]byte{ctList}, elemTypeTags(v.ElemType)...)
	case ConstPair:
		tags := []byte{ctPair}
		tags = append(tags, elemTypeTags(v.FstType)...)
		tags = append(tags, elemTypeTags(v.SndType)...)
		return tags
	default:
		return []byte{constTag(c.constantType())}
	}
}

func elemTypeTags(t ConstantType) []byte {
	return []byte{constTagFromType(t)}
}

func constTag(t ConstantType) byte { return constTagFromType(t) }

func constTagFromType(t ConstantType) byte {
	switch t {
	case TypeInteger:
		return ctInteger
	case TypeByteString:
		return ctByteString
	case TypeString:
		return ctString
	case TypeUnit:
		return ctUnit
	case TypeBool:
		return ctBool
	case TypeData:
		return ctData
	case TypeList:
		return ctList
	case TypePair:
		return ctPair
	case TypeBls12_381_G1_Element:
		return ctBls12_381_G1
	case TypeBls12_381_G2_Element:
		return ctBls12_381_G2
	case TypeBls12_381_MlResult:
		return ctBls12_381_MlResult
	default:
		return ctUnit
	}
}

func encodeConstantValue(w *bitWriter, c Constant) error {
	switch v := c.(type) {
	case ConstInteger:
		w.writeVarlenInt(v.Value)
	case ConstByteString:
		w.writeByteStringChunked(v.Value)
	case ConstString:
		w.writeByteStringChunked([]byte(v.Value))
	case ConstUnit:
		// no payload
	case ConstBool:
		if v.Value {
			w.writeBits(1, 1)
		} else {
			w.writeBits(0, 1)
		}
	case ConstData:
		encoded, err := data.Encode(v.Value)
		if err != nil {
			return err
		}
		w.writeByteStringChunked(encoded)
	case ConstList:
		w.writeUnary(len(v.Items))
		for _, item := range v.Items {
			if err := encodeConstantValue(w, item); err != nil {
				return err
			}
		}
	case ConstPair:
		if err := encodeConstantValue(w, v.Fst); err != nil {
			return err
		}
		return encodeConstantValue(w, v.Snd)
	case ConstBls12_381_G1:
		return fmt.Errorf("uplc: BLS12-381 constants are not flat-serializable")
	case ConstBls12_381_G2:
		return fmt.Errorf("uplc: BLS12-381 constants are not flat-serializable")
	default:
		return fmt.Errorf("uplc: cannot flat-encode constant %T", c)
	}
	return nil
}

func decodeConstant(r *bitReader) (Constant, error) {
	n := r.readUnary()
	tags := make([]byte, n)
	for i := range tags {
		tags[i] = byte(r.readBits(4))
	}
	if r.err != nil {
		return nil, r.err
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("uplc: empty constant type sequence")
	}
	return decodeConstantValue(r, tags)
}

func decodeConstantValue(r *bitReader, tags []byte) (Constant, error) {
	head := tags[0]
	rest := tags[1:]
	switch head {
	case ctInteger:
		return ConstInteger{Value: r.readVarlenInt()}, r.err
	case ctByteString:
		return ConstByteString{Value: r.readByteStringChunked()}, r.err
	case ctString:
		return ConstString{Value: string(r.readByteStringChunked())}, r.err
	case ctUnit:
		return ConstUnit{}, nil
	case ctBool:
		return ConstBool{Value: r.readBits(1) == 1}, r.err
	case ctData:
		raw := r.readByteStringChunked()
		if r.err != nil {
			return nil, r.err
		}
		d, _, err := data.Decode(raw)
		if err != nil {
			return nil, err
		}
		return ConstData{Value: d}, nil
	case ctList:
		if len(rest) == 0 {
			return nil, fmt.Errorf("uplc: list constant missing element type")
		}
		elemType := typeFromTag(rest[0])
		count := r.readUnary()
		items := make([]Constant, count)
		for i := range items {
			item, err := decodeConstantValue(r, rest)
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return ConstList{ElemType: elemType, Items: items}, nil
	case ctPair:
		if len(rest) < 2 {
			return nil, fmt.Errorf("uplc: pair constant missing element types")
		}
		fst, err := decodeConstantValue(r, rest[0:1])
		if err != nil {
			return nil, err
		}
		snd, err := decodeConstantValue(r, rest[1:2])
		if err != nil {
			return nil, err
		}
		return ConstPair{
			FstType: typeFromTag(rest[0]),
			SndType: typeFromTag(rest[1]),
			Fst:     fst,
			Snd:     snd,
		}, nil
	default:
		return nil, fmt.Errorf("uplc: unsupported constant type tag %d", head)
	}
}

func typeFromTag(tag byte) ConstantType {
	switch tag {
	case ctInteger:
		return TypeInteger
	case ctByteString:
		return TypeByteString
	case ctString:
		return TypeString
	case ctUnit:
		return TypeUnit
	case ctBool:
		return TypeBool
	case ctData:
		return TypeData
	case ctList:
		return TypeList
	case ctPair:
		return TypePair
	case ctBls12_381_G1:
		return TypeBls12_381_G1_Element
	case ctBls12_381_G2:
		return TypeBls12_381_G2_Element
	case ctBls12_381_MlResult:
		return TypeBls12_381_MlResult
	default:
		return TypeUnit
	}
}

// zigzag is used by writeVarlenInt/readVarlenInt to map signed integers
// onto the unsigned varlen-nat encoding.
func zigzagEncode(n *big.Int) *big.Int {
	if n.Sign() >= 0 {
		return new(big.Int).Lsh(n, 1)
	}
	abs := new(big.Int).Neg(n)
	shifted := new(big.Int).Lsh(abs, 1)
	return shifted.Sub(shifted, big.NewInt(1))
}

func zigzagDecode(n *big.Int) *big.Int {
	if n.Bit(0) == 0 {
		return new(big.Int).Rsh(n, 1)
	}
	shifted := new(big.Int).Add(n, big.NewInt(1))
	shifted.Rsh(shifted, 1)
	return shifted.Neg(shifted)
}
