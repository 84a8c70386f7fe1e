// Package costmodel implements the cost functions that price CEK machine
// steps and builtin invocations (§4.4), parameterized by coefficients
// loaded from a JSON snapshot of a Cardano protocol parameter set.
package costmodel

import "fmt"

// Arguments a cost function may be evaluated against: the memory usage of
// up to three builtin arguments. Each builtin selects which of its
// argument(s) feed X/Y/Z by a convention fixed per builtin, not by this
// package.
type Args struct {
	X, Y, Z int64
}

// Function is a cost function: given the memory usage of a builtin's
// arguments, it returns the cost in the function's own units (CPU steps or
// memory words).
type Function interface {
	Cost(a Args) int64
}

type ConstantCost struct{ C int64 }

func (f ConstantCost) Cost(Args) int64 { return f.C }

type LinearInX struct{ A, B int64 }

func (f LinearInX) Cost(a Args) int64 { return f.A*a.X + f.B }

type LinearInY struct{ A, B int64 }

func (f LinearInY) Cost(a Args) int64 { return f.A*a.Y + f.B }

type LinearInZ struct{ A, B int64 }

func (f LinearInZ) Cost(a Args) int64 { return f.A*a.Z + f.B }

// LinearInMaxYZ charges linearly in whichever of Y, Z is larger, used by
// builtins like appendByteString where cost depends on the longer operand.
type LinearInMaxYZ struct{ A, B int64 }

func (f LinearInMaxYZ) Cost(a Args) int64 {
	m := a.Y
	if a.Z > m {
		m = a.Z
	}
	return f.A*m + f.B
}

// LinearOnDiagonal charges CDiag when X == Y (the common case for
// addition-like ops operating on same-sized operands) and COff*max(X,Y)+B
// otherwise.
type LinearOnDiagonal struct {
	CDiag   int64
	COff, B int64
}

func (f LinearOnDiagonal) Cost(a Args) int64 {
	if a.X == a.Y {
		return f.CDiag
	}
	m := a.X
	if a.Y > m {
		m = a.Y
	}
	return f.COff*m + f.B
}

// LiteralInYOrLinearInZ charges a constant when Y indicates a "literal"
// fast path (Y == 0) and otherwise charges linearly in Z; used by
// bytestring-to-integer conversions where one argument selects a mode.
type LiteralInYOrLinearInZ struct {
	Literal int64
	A, B    int64
}

func (f LiteralInYOrLinearInZ) Cost(a Args) int64 {
	if a.Y == 0 {
		return f.Literal
	}
	return f.A*a.Z + f.B
}

type QuadraticInY struct{ A, B, C int64 }

func (f QuadraticInY) Cost(a Args) int64 {
	return f.A*a.Y*a.Y + f.B*a.Y + f.C
}

// QuadraticInZ mirrors QuadraticInY for the Z argument slot, used by some
// BLS12-381 scalar multiplication cost functions.
type QuadraticInZ struct{ A, B, C int64 }

func (f QuadraticInZ) Cost(a Args) int64 {
	return f.A*a.Z*a.Z + f.B*a.Z + f.C
}

// BuiltinCost is the (cpu-fn, mem-fn) pair assigned to one builtin.
type BuiltinCost struct {
	CPU Function
	Mem Function
}

// MachineCosts prices the per-step CEK transitions that are charged
// independent of any builtin (§4.1's "exactly one charge per transition").
type MachineCosts struct {
	Startup, Var, LamAbs, Apply, Force, Delay, Const, Builtin, Constr, Case int64
}

// Model bundles the per-builtin costs with the machine step costs for one
// semantic variant (a Plutus language version x protocol era).
type Model struct {
	Machine  MachineCosts
	Builtins map[string]BuiltinCost
}

// CostOf looks up a builtin's cost pair, erroring if the model has no
// entry (e.g. the builtin postdates this model's protocol version).
func (m Model) CostOf(name string) (BuiltinCost, error) {
	c, ok := m.Builtins[name]
	if !ok {
		return BuiltinCost{}, fmt.Errorf("costmodel: no cost entry for builtin %q", name)
	}
	return c, nil
}
