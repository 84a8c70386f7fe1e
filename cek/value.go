// Package cek implements the CEK-machine UPLC evaluator: the runtime value
// representation, the explicit stack of continuation frames, and the
// metered reduction loop (§4.1).
package cek

import (
	"github.com/blinklabs-io/gouplc/primitives"
	"github.com/blinklabs-io/gouplc/uplc"
)

// Value is a fully- or partially-reduced runtime value (§3.1). Closures,
// partially-applied builtins, and delayed computations are evaluator
// internals with no Constant counterpart; everything else wraps a
// uplc.Constant.
type Value interface {
	isValue()
}

// VConst wraps a fully-evaluated constant (Integer, ByteString, String,
// Unit, Bool, Data, List, Pair, or a BLS group element).
type VConst struct{ Constant uplc.Constant }

func (VConst) isValue() {}

// VMlResult is the opaque BLS12-381 Miller-loop accumulator; it is never
// constructed from a Constant since it has no Data/flat representation.
type VMlResult struct{ Value primitives.MlResult }

func (VMlResult) isValue() {}

// VConstr is a fully-evaluated tagged tuple (Plutus V3+ sum-of-products).
type VConstr struct {
	Tag    uint64
	Fields []Value
}

func (VConstr) isValue() {}

// VClosure pairs a lambda's body with its captured environment.
type VClosure struct {
	Body Uplc
	Env  *Env
}

func (VClosure) isValue() {}

// Uplc is a thin alias kept distinct from uplc.Term so value.go reads
// standalone; it is always a uplc.Term.
type Uplc = uplc.Term

// VDelayed is a suspended term paired with the environment it closed over.
type VDelayed struct {
	Term Uplc
	Env  *Env
}

func (VDelayed) isValue() {}

// VBuiltinApp is a partially-applied builtin: Args holds the fully
// evaluated arguments supplied so far, ForcesRemaining the number of Force
// wrappers still required before the next argument can be supplied (or the
// builtin fires once args reaches its arity).
type VBuiltinApp struct {
	Name            uplc.BuiltinName
	ForcesRemaining int
	Args            []Value
}

func (VBuiltinApp) isValue() {}

// Env is a persistent, shared linked list mapping De Bruijn indices (depth
// from the head) to values. Closures co-own their captured environment by
// holding a pointer into this structure; no copy is ever needed because
// cells are immutable once constructed (§3.5).
type Env struct {
	Value  Value
	Parent *Env
}

// Extend returns a new environment with v bound at index 0, shifting all
// of e's existing bindings up by one — the usual "cons" used when entering
// a lambda body.
func (e *Env) Extend(v Value) *Env {
	return &Env{Value: v, Parent: e}
}

// Lookup returns the value bound at De Bruijn index idx, or ok=false if the
// index has no binder (an unbound/free variable slipped past conversion).
func (e *Env) Lookup(idx int) (Value, bool) {
	cur := e
	for i := 0; i < idx; i++ {
		if cur == nil {
			return nil, false
		}
		cur = cur.Parent
	}
	if cur == nil {
		return nil, false
	}
	return cur.Value, true
}

// MemoryUsage computes the cost-model memory units of a runtime value,
// recursively for Constr (§4.4).
func MemoryUsage(v Value) int64 {
	switch val := v.(type) {
	case VConst:
		return uplc.ConstantMemoryUsage(val.Constant)
	case VMlResult:
		return 72
	case VConstr:
		total := int64(4)
		for _, f := range val.Fields {
			total += MemoryUsage(f)
		}
		return total
	case VClosure, VDelayed:
		return 1
	case VBuiltinApp:
		total := int64(1)
		for _, a := range val.Args {
			total += MemoryUsage(a)
		}
		return total
	default:
		return 1
	}
}
