// Package uplc implements the Untyped Plutus Core term tree: the constant
// and term ASTs, De Bruijn conversion, and the bit-level flat serialization
// that scripts are shipped in on-chain (§3.3, §6.2).
package uplc

import (
	"math/big"

	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/primitives"
)

// ConstantType tags the shape of a Constant so the flat decoder and the
// builtin dispatcher can recover type information without re-walking a
// term.
type ConstantType int

const (
	TypeInteger ConstantType = iota
	TypeByteString
	TypeString
	TypeUnit
	TypeBool
	TypeData
	TypeList
	TypePair
	TypeBls12_381_G1_Element
	TypeBls12_381_G2_Element
	TypeBls12_381_MlResult
)

// Constant is a literal value carried by a Const term node. Every variant
// below implements it.
type Constant interface {
	constantType() ConstantType
}

type ConstInteger struct{ Value *big.Int }

func (ConstInteger) constantType() ConstantType { return TypeInteger }

type ConstByteString struct{ Value []byte }

func (ConstByteString) constantType() ConstantType { return TypeByteString }

type ConstString struct{ Value string }

func (ConstString) constantType() ConstantType { return TypeString }

type ConstUnit struct{}

func (ConstUnit) constantType() ConstantType { return TypeUnit }

type ConstBool struct{ Value bool }

func (ConstBool) constantType() ConstantType { return TypeBool }

type ConstData struct{ Value data.Data }

func (ConstData) constantType() ConstantType { return TypeData }

// ConstList is a homogeneous list of constants; ElemType is retained so the
// flat codec and builtins can cost and type-check without inspecting Items.
type ConstList struct {
	ElemType ConstantType
	Items    []Constant
}

func (ConstList) constantType() ConstantType { return TypeList }

type ConstPair struct {
	FstType, SndType ConstantType
	Fst, Snd         Constant
}

func (ConstPair) constantType() ConstantType { return TypePair }

type ConstBls12_381_G1 struct{ Value primitives.G1Element }

func (ConstBls12_381_G1) constantType() ConstantType { return TypeBls12_381_G1_Element }

type ConstBls12_381_G2 struct{ Value primitives.G2Element }

func (ConstBls12_381_G2) constantType() ConstantType { return TypeBls12_381_G2_Element }

// Term is the UPLC term AST (§3.3). Variants implement it through the
// unexported termNode method, which closes the set of variants to this
// package; callers dispatch with type switches instead of a discriminant
// field.
type Term interface {
	termNode()
}

type Var struct {
	// Name is retained for named (non-De-Bruijn) terms, e.g. right after
	// parsing; it is empty once a term has gone through ToDeBruijn.
	Name string
	// Index is the De Bruijn index, valid once the term is in De Bruijn
	// form.
	Index int
}

func (Var) termNode() {}

type LamAbs struct {
	// ParamName is retained for display/debugging; evaluation only uses
	// Body's De Bruijn indices.
	ParamName string
	Body      Term
}

func (LamAbs) termNode() {}

type Apply struct {
	Function Term
	Argument Term
}

func (Apply) termNode() {}

type Force struct{ Term Term }

func (Force) termNode() {}

type Delay struct{ Term Term }

func (Delay) termNode() {}

type Const struct{ Value Constant }

func (Const) termNode() {}

type Builtin struct{ Name BuiltinName }

func (Builtin) termNode() {}

// TermError is the `Error` term; evaluating it always fails.
type TermError struct{}

func (TermError) termNode() {}

// ConstrTerm constructs a tagged tuple at runtime, for Plutus V3+
// sum-of-products terms.
type ConstrTerm struct {
	Tag    uint64
	Fields []Term
}

func (ConstrTerm) termNode() {}

// CaseTerm pattern-matches a Constr value against an ordered list of
// branches, indexed by the scrutinee's tag.
type CaseTerm struct {
	Scrutinee Term
	Branches  []Term
}

func (CaseTerm) termNode() {}

// BuiltinName enumerates the builtins a Builtin term node may reference;
// the registry in package builtins maps these to their semantics.
type BuiltinName string

// String implements fmt.Stringer for error messages.
func (n BuiltinName) String() string { return string(n) }
