package builtins

import (
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/primitives"
)

func hashBuiltin(fn func([]byte) []byte) func([]cek.Value) (cek.Value, error) {
	return func(args []cek.Value) (cek.Value, error) {
		b, err := asByteString(args[0])
		if err != nil {
			return nil, err
		}
		return mkByteString(fn(b)), nil
	}
}

var (
	sha2_256   = hashBuiltin(primitives.Sha2_256)
	sha3_256   = hashBuiltin(primitives.Sha3_256)
	blake2b256 = hashBuiltin(primitives.Blake2b_256)
	blake2b224 = hashBuiltin(primitives.Blake2b_224)
	keccak256  = hashBuiltin(primitives.Keccak_256)
	ripemd160  = hashBuiltin(primitives.Ripemd_160)
)
