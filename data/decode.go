package data

import (
	"fmt"
	"math/big"
)

// decoder walks a canonical Plutus-Data CBOR byte slice. It rejects
// non-canonical encodings (e.g. a definite-length empty list, or an integer
// that could have fit in a smaller head) since those would change the bytes
// re-produced by Encode and therefore the transaction's integrity hash.
type decoder struct {
	buf []byte
	pos int
}

// Decode parses a single canonical Plutus-Data CBOR value and returns the
// number of bytes consumed.
func Decode(b []byte) (Data, int, error) {
	dec := &decoder{buf: b}
	d, err := dec.decodeValue()
	if err != nil {
		return nil, 0, err
	}
	return d, dec.pos, nil
}

func (d *decoder) byteAt(i int) (byte, error) {
	if i >= len(d.buf) {
		return 0, fmt.Errorf("data: unexpected end of input at offset %d", i)
	}
	return d.buf[i], nil
}

func (d *decoder) readHead() (major byte, info byte, arg uint64, err error) {
	b, err := d.byteAt(d.pos)
	if err != nil {
		return 0, 0, 0, err
	}
	d.pos++
	major = b >> 5
	info = b & 0x1f
	switch {
	case info < 24:
		arg = uint64(info)
	case info == 24:
		v, err := d.byteAt(d.pos)
		if err != nil {
			return 0, 0, 0, err
		}
		d.pos++
		if v < 24 {
			return 0, 0, 0, fmt.Errorf("data: non-canonical single-byte length")
		}
		arg = uint64(v)
	case info == 25:
		arg, err = d.readBigEndian(2)
		if err != nil {
			return 0, 0, 0, err
		}
		if arg <= 0xff {
			return 0, 0, 0, fmt.Errorf("data: non-canonical 2-byte length")
		}
	case info == 26:
		arg, err = d.readBigEndian(4)
		if err != nil {
			return 0, 0, 0, err
		}
		if arg <= 0xffff {
			return 0, 0, 0, fmt.Errorf("data: non-canonical 4-byte length")
		}
	case info == 27:
		arg, err = d.readBigEndian(8)
		if err != nil {
			return 0, 0, 0, err
		}
		if arg <= 0xffffffff {
			return 0, 0, 0, fmt.Errorf("data: non-canonical 8-byte length")
		}
	case info == 31:
		// indefinite length marker; arg unused
	default:
		return 0, 0, 0, fmt.Errorf("data: reserved additional info %d", info)
	}
	return major, info, arg, nil
}

func (d *decoder) readBigEndian(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		b, err := d.byteAt(d.pos)
		if err != nil {
			return 0, err
		}
		d.pos++
		v = v<<8 | uint64(b)
	}
	return v, nil
}

func (d *decoder) decodeValue() (Data, error) {
	startPos := d.pos
	major, info, arg, err := d.readHead()
	if err != nil {
		return nil, err
	}
	switch major {
	case majorUnsigned:
		return I{Value: new(big.Int).SetUint64(arg)}, nil
	case majorNegative:
		n := new(big.Int).SetUint64(arg)
		n.Add(n, big.NewInt(1))
		n.Neg(n)
		return I{Value: n}, nil
	case majorByteStr:
		return d.decodeByteString(info, arg)
	case majorArray:
		return d.decodeArray(info, arg)
	case majorMap:
		return d.decodeMap(arg)
	case majorTag:
		return d.decodeTagged(arg)
	default:
		d.pos = startPos
		return nil, fmt.Errorf("data: unsupported major type %d", major)
	}
}

func (d *decoder) decodeByteString(info byte, arg uint64) (Data, error) {
	if info == 31 {
		var out []byte
		for {
			b, err := d.byteAt(d.pos)
			if err != nil {
				return nil, err
			}
			if b == cborBreak {
				d.pos++
				break
			}
			chunkMajor, chunkInfo, chunkArg, err := d.readHead()
			if err != nil {
				return nil, err
			}
			if chunkMajor != majorByteStr || chunkInfo == 31 {
				return nil, fmt.Errorf("data: malformed chunked byte string")
			}
			if chunkArg > byteChunkSize && d.pos+int(chunkArg) < len(d.buf) {
				// Non-canonical: reference chunking always uses 64-byte
				// pieces except possibly the final chunk.
				return nil, fmt.Errorf("data: oversized byte-string chunk")
			}
			chunk, err := d.readBytes(int(chunkArg))
			if err != nil {
				return nil, err
			}
			out = append(out, chunk...)
		}
		return B{Value: out}, nil
	}
	b, err := d.readBytes(int(arg))
	if err != nil {
		return nil, err
	}
	return B{Value: b}, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if d.pos+n > len(d.buf) {
		return nil, fmt.Errorf("data: truncated byte string")
	}
	out := append([]byte(nil), d.buf[d.pos:d.pos+n]...)
	d.pos += n
	return out, nil
}

func (d *decoder) decodeArray(info byte, arg uint64) (Data, error) {
	var items []Data
	if info == 31 {
		for {
			b, err := d.byteAt(d.pos)
			if err != nil {
				return nil, err
			}
			if b == cborBreak {
				d.pos++
				break
			}
			item, err := d.decodeValue()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if len(items) != 0 {
			return nil, fmt.Errorf(
				"data: non-canonical indefinite array with elements",
			)
		}
		return List{Items: nil}, nil
	}
	if arg == 0 {
		return nil, fmt.Errorf("data: non-canonical definite-length empty array")
	}
	items = make([]Data, 0, arg)
	for i := uint64(0); i < arg; i++ {
		item, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return List{Items: items}, nil
}

func (d *decoder) decodeMap(arg uint64) (Data, error) {
	pairs := make([]Pair, 0, arg)
	for i := uint64(0); i < arg; i++ {
		k, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		v, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return Map{Pairs: pairs}, nil
}

func (d *decoder) decodeTagged(tag uint64) (Data, error) {
	switch {
	case tag >= tagConstrBase && tag <= tagConstrBase+6:
		return d.decodeConstrArgs(tag - tagConstrBase)
	case tag >= tagConstrWide && tag <= tagConstrWide+(127-7):
		return d.decodeConstrArgs(tag - tagConstrWide + 7)
	case tag == tagConstrGenly:
		return d.decodeGeneralConstr()
	case tag == tagBignumPos:
		return d.decodeBignum(false)
	case tag == tagBignumNeg:
		return d.decodeBignum(true)
	default:
		return nil, fmt.Errorf("data: unsupported CBOR tag %d", tag)
	}
}

func (d *decoder) decodeConstrArgs(tag uint64) (Data, error) {
	args, err := d.decodeValue()
	if err != nil {
		return nil, err
	}
	l, ok := args.(List)
	if !ok {
		return nil, fmt.Errorf("data: constructor args must be a list")
	}
	return Constr{Tag: tag, Args: l.Items}, nil
}

func (d *decoder) decodeGeneralConstr() (Data, error) {
	pair, err := d.decodeValue()
	if err != nil {
		return nil, err
	}
	l, ok := pair.(List)
	if !ok || len(l.Items) != 2 {
		return nil, fmt.Errorf("data: malformed generic constructor wrapper")
	}
	tagData, ok := l.Items[0].(I)
	if !ok {
		return nil, fmt.Errorf("data: constructor tag must be an integer")
	}
	argsData, ok := l.Items[1].(List)
	if !ok {
		return nil, fmt.Errorf("data: constructor args must be a list")
	}
	return Constr{Tag: tagData.Value.Uint64(), Args: argsData.Items}, nil
}

func (d *decoder) decodeBignum(neg bool) (Data, error) {
	b, err := d.decodeValue()
	if err != nil {
		return nil, err
	}
	bs, ok := b.(B)
	if !ok {
		return nil, fmt.Errorf("data: bignum payload must be a byte string")
	}
	n := new(big.Int).SetBytes(bs.Value)
	if neg {
		n.Add(n, big.NewInt(1))
		n.Neg(n)
	}
	return I{Value: n}, nil
}
