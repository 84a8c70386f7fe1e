package builtins

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/gouplc/cek"
)

func appendByteString(args []cek.Value) (cek.Value, error) {
	a, err := asByteString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString(args[1])
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return mkByteString(out), nil
}

func consByteString(args []cek.Value) (cek.Value, error) {
	n, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString(args[1])
	if err != nil {
		return nil, err
	}
	if n.Sign() < 0 || n.Cmp(big.NewInt(255)) > 0 {
		return nil, fmt.Errorf("consByteString: byte value %s out of range", n)
	}
	out := make([]byte, 0, len(b)+1)
	out = append(out, byte(n.Int64()))
	out = append(out, b...)
	return mkByteString(out), nil
}

func sliceByteString(args []cek.Value) (cek.Value, error) {
	start, err := asInteger(args[0])
	if err != nil {
		return nil, err
	}
	length, err := asInteger(args[1])
	if err != nil {
		return nil, err
	}
	b, err := asByteString(args[2])
	if err != nil {
		return nil, err
	}
	n := int64(len(b))
	from := clampToLen(start, n)
	to := n
	if length.Sign() < 0 {
		to = from
	} else {
		end := new(big.Int).Add(big.NewInt(from), length)
		if end.IsInt64() && end.Int64() < to {
			to = end.Int64()
		}
	}
	if to < from {
		to = from
	}
	return mkByteString(append([]byte(nil), b[from:to]...)), nil
}

// clampToLen saturates a Plutus Integer index to [0, n], per spec.md §4.2's
// "an integer larger than Long.MaxValue costs as if it were Long.MaxValue"
// rule: values outside the int64 range clamp to n rather than wrapping.
func clampToLen(v *big.Int, n int64) int64 {
	if v.Sign() < 0 {
		return 0
	}
	if !v.IsInt64() || v.Int64() > n {
		return n
	}
	return v.Int64()
}

func lengthOfByteString(args []cek.Value) (cek.Value, error) {
	b, err := asByteString(args[0])
	if err != nil {
		return nil, err
	}
	return mkInteger(big.NewInt(int64(len(b)))), nil
}

func indexByteString(args []cek.Value) (cek.Value, error) {
	b, err := asByteString(args[0])
	if err != nil {
		return nil, err
	}
	idx, err := asInteger(args[1])
	if err != nil {
		return nil, err
	}
	if !idx.IsInt64() || idx.Sign() < 0 || idx.Int64() >= int64(len(b)) {
		return nil, fmt.Errorf("indexByteString: index %s out of range (length %d)", idx, len(b))
	}
	return mkInteger(big.NewInt(int64(b[idx.Int64()]))), nil
}

func equalsByteString(args []cek.Value) (cek.Value, error) {
	a, b, err := twoByteStrings(args)
	if err != nil {
		return nil, err
	}
	return mkBool(bytes.Equal(a, b)), nil
}

func lessThanByteString(args []cek.Value) (cek.Value, error) {
	a, b, err := twoByteStrings(args)
	if err != nil {
		return nil, err
	}
	return mkBool(bytes.Compare(a, b) < 0), nil
}

func lessThanEqualsByteString(args []cek.Value) (cek.Value, error) {
	a, b, err := twoByteStrings(args)
	if err != nil {
		return nil, err
	}
	return mkBool(bytes.Compare(a, b) <= 0), nil
}

func twoByteStrings(args []cek.Value) ([]byte, []byte, error) {
	a, err := asByteString(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := asByteString(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// integerToByteString and byteStringToInteger implement the builtins added
// for Plutus V3 (CIP-0121): an endianness flag, a width, and an integer.
func integerToByteString(args []cek.Value) (cek.Value, error) {
	endianness, err := asBool(args[0])
	if err != nil {
		return nil, err
	}
	width, err := asInteger(args[1])
	if err != nil {
		return nil, err
	}
	value, err := asInteger(args[2])
	if err != nil {
		return nil, err
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("integerToByteString: negative integers are unsupported")
	}
	const maxWidth = 8192 // CIP-0121's builtinSizeLimit, in bytes
	if width.Sign() < 0 {
		return nil, fmt.Errorf("integerToByteString: negative width %s", width)
	}
	if !width.IsInt64() || width.Int64() > maxWidth {
		return nil, fmt.Errorf("integerToByteString: width %s exceeds maximum of %d bytes", width, maxWidth)
	}
	w := int(width.Int64())
	raw := value.Bytes()
	if w == 0 {
		w = len(raw)
	}
	if len(raw) > w {
		return nil, fmt.Errorf("integerToByteString: value does not fit in %d bytes", w)
	}
	out := make([]byte, w)
	copy(out[w-len(raw):], raw)
	if !endianness {
		reverse(out)
	}
	return mkByteString(out), nil
}

func byteStringToInteger(args []cek.Value) (cek.Value, error) {
	endianness, err := asBool(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asByteString(args[1])
	if err != nil {
		return nil, err
	}
	buf := append([]byte(nil), b...)
	if !endianness {
		reverse(buf)
	}
	return mkInteger(new(big.Int).SetBytes(buf)), nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
