package builtins

import (
	"unicode/utf8"

	"github.com/blinklabs-io/gouplc/cek"
)

func appendString(args []cek.Value) (cek.Value, error) {
	a, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return mkString(a + b), nil
}

func equalsString(args []cek.Value) (cek.Value, error) {
	a, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	b, err := asString(args[1])
	if err != nil {
		return nil, err
	}
	return mkBool(a == b), nil
}

func encodeUtf8(args []cek.Value) (cek.Value, error) {
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	return mkByteString([]byte(s)), nil
}

func decodeUtf8(args []cek.Value) (cek.Value, error) {
	b, err := asByteString(args[0])
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, errInvalidUtf8
	}
	return mkString(string(b)), nil
}
