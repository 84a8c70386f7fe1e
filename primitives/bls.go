package primitives

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

// G1Element wraps a BLS12-381 G1 affine point.
type G1Element struct {
	p bls12381.G1Affine
}

// G2Element wraps a BLS12-381 G2 affine point.
type G2Element struct {
	p bls12381.G2Affine
}

// MlResult is the opaque accumulator produced by a Miller-loop evaluation.
// It is never serialized; only equality and further pairing operations are
// defined on it.
type MlResult struct {
	v bls12381.GT
}

// G1Generator returns the canonical BLS12-381 G1 generator point.
func G1Generator() G1Element {
	_, _, g1, _ := bls12381.Generators()
	return G1Element{p: g1}
}

// G2Generator returns the canonical BLS12-381 G2 generator point.
func G2Generator() G2Element {
	_, _, _, g2 := bls12381.Generators()
	return G2Element{p: g2}
}

// G1Add adds two G1 points.
func G1Add(a, b G1Element) G1Element {
	var out bls12381.G1Jac
	var aj, bj bls12381.G1Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	out.Set(&aj).AddAssign(&bj)
	var r G1Element
	r.p.FromJacobian(&out)
	return r
}

// G1Neg negates a G1 point.
func G1Neg(a G1Element) G1Element {
	var r G1Element
	r.p.Neg(&a.p)
	return r
}

// G1ScalarMul reduces scalar mod the group order and multiplies the point.
func G1ScalarMul(scalar *big.Int, a G1Element) G1Element {
	var r G1Element
	reduced := reduceScalar(scalar)
	r.p.ScalarMultiplication(&a.p, reduced)
	return r
}

// G1Equal reports whether two G1 points are equal.
func G1Equal(a, b G1Element) bool { return a.p.Equal(&b.p) }

// G1Compress returns the 48-byte compressed serialization of a G1 point.
func G1Compress(a G1Element) []byte {
	b := a.p.Bytes()
	return b[:]
}

// G1Uncompress decodes a 48-byte compressed G1 point.
func G1Uncompress(data []byte) (G1Element, error) {
	if len(data) != 48 {
		return G1Element{}, fmt.Errorf("invalid G1 point length: %d", len(data))
	}
	var p bls12381.G1Affine
	var arr [48]byte
	copy(arr[:], data)
	if _, err := p.SetBytes(arr[:]); err != nil {
		return G1Element{}, fmt.Errorf("invalid G1 point: %w", err)
	}
	return G1Element{p: p}, nil
}

// G2Add adds two G2 points.
func G2Add(a, b G2Element) G2Element {
	var out bls12381.G2Jac
	var aj, bj bls12381.G2Jac
	aj.FromAffine(&a.p)
	bj.FromAffine(&b.p)
	out.Set(&aj).AddAssign(&bj)
	var r G2Element
	r.p.FromJacobian(&out)
	return r
}

// G2Neg negates a G2 point.
func G2Neg(a G2Element) G2Element {
	var r G2Element
	r.p.Neg(&a.p)
	return r
}

// G2ScalarMul reduces scalar mod the group order and multiplies the point.
func G2ScalarMul(scalar *big.Int, a G2Element) G2Element {
	var r G2Element
	reduced := reduceScalar(scalar)
	r.p.ScalarMultiplication(&a.p, reduced)
	return r
}

// G2Equal reports whether two G2 points are equal.
func G2Equal(a, b G2Element) bool { return a.p.Equal(&b.p) }

// G2Compress returns the 96-byte compressed serialization of a G2 point.
func G2Compress(a G2Element) []byte {
	b := a.p.Bytes()
	return b[:]
}

// G2Uncompress decodes a 96-byte compressed G2 point.
func G2Uncompress(data []byte) (G2Element, error) {
	if len(data) != 96 {
		return G2Element{}, fmt.Errorf("invalid G2 point length: %d", len(data))
	}
	var p bls12381.G2Affine
	var arr [96]byte
	copy(arr[:], data)
	if _, err := p.SetBytes(arr[:]); err != nil {
		return G2Element{}, fmt.Errorf("invalid G2 point: %w", err)
	}
	return G2Element{p: p}, nil
}

// MillerLoop evaluates the Miller loop pairing a G1 point with a G2 point,
// producing an opaque accumulator that can be composed with MulMlResult and
// finalized with FinalVerify.
func MillerLoop(a G1Element, b G2Element) (MlResult, error) {
	res, err := bls12381.MillerLoop(
		[]bls12381.G1Affine{a.p},
		[]bls12381.G2Affine{b.p},
	)
	if err != nil {
		return MlResult{}, fmt.Errorf("miller loop failed: %w", err)
	}
	return MlResult{v: res}, nil
}

// MulMlResult multiplies two Miller-loop accumulators in the target group.
func MulMlResult(a, b MlResult) MlResult {
	var r MlResult
	r.v.Mul(&a.v, &b.v)
	return r
}

// FinalVerify applies the final exponentiation to both accumulators and
// reports whether the results are equal, i.e. whether the two pairings
// matched.
func FinalVerify(a, b MlResult) bool {
	fa := bls12381.FinalExponentiation(&a.v)
	fb := bls12381.FinalExponentiation(&b.v)
	return fa.Equal(&fb)
}

func reduceScalar(scalar *big.Int) *big.Int {
	order := fr()
	reduced := new(big.Int).Mod(scalar, order)
	if reduced.Sign() < 0 {
		reduced.Add(reduced, order)
	}
	return reduced
}

func fr() *big.Int {
	// The scalar field order of BLS12-381 (same for G1 and G2).
	r, _ := new(big.Int).SetString(
		"52435875175126190479447740508185965837690552500527637822603658699938581184513",
		10,
	)
	return r
}

// Keeps the fp import referenced; nothing in this module reads fp.Bytes.
var _ = fp.Bytes
