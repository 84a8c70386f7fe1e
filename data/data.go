// Package data implements the Plutus Data sum type and its canonical CBOR
// encoding, the wire format that flows into and out of on-chain scripts.
package data

import (
	"fmt"
	"math/big"
)

// Data is the tagged sum `Constr | Map | List | I | B`. Every concrete
// variant below implements it; callers switch on the concrete type, not on
// a discriminant field.
type Data interface {
	isData()
	// Equal reports structural equality with another Data value.
	Equal(other Data) bool
}

// Constr is a tagged tuple of Data values, the sum-of-products shape used by
// ADT constructors compiled from a source language.
type Constr struct {
	Tag  uint64
	Args []Data
}

func (Constr) isData() {}

func (c Constr) Equal(other Data) bool {
	o, ok := other.(Constr)
	if !ok || o.Tag != c.Tag || len(o.Args) != len(c.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// Map is an association list preserving insertion order; Plutus Data maps
// are not required to be sorted and round-trip must preserve key order.
type Map struct {
	Pairs []Pair
}

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   Data
	Value Data
}

func (Map) isData() {}

func (m Map) Equal(other Data) bool {
	o, ok := other.(Map)
	if !ok || len(o.Pairs) != len(m.Pairs) {
		return false
	}
	for i := range m.Pairs {
		if !m.Pairs[i].Key.Equal(o.Pairs[i].Key) ||
			!m.Pairs[i].Value.Equal(o.Pairs[i].Value) {
			return false
		}
	}
	return true
}

// List is an ordered, homogeneously-typed-by-convention sequence of Data.
type List struct {
	Items []Data
}

func (List) isData() {}

func (l List) Equal(other Data) bool {
	o, ok := other.(List)
	if !ok || len(o.Items) != len(l.Items) {
		return false
	}
	for i := range l.Items {
		if !l.Items[i].Equal(o.Items[i]) {
			return false
		}
	}
	return true
}

// I is an unbounded signed integer.
type I struct {
	Value *big.Int
}

func (I) isData() {}

func (i I) Equal(other Data) bool {
	o, ok := other.(I)
	return ok && i.Value.Cmp(o.Value) == 0
}

// B is an immutable byte sequence.
type B struct {
	Value []byte
}

func (B) isData() {}

func (b B) Equal(other Data) bool {
	o, ok := other.(B)
	if !ok || len(o.Value) != len(b.Value) {
		return false
	}
	for i := range b.Value {
		if b.Value[i] != o.Value[i] {
			return false
		}
	}
	return true
}

// NewI is a convenience constructor from an int64.
func NewI(v int64) I { return I{Value: big.NewInt(v)} }

// NewB is a convenience constructor from a byte slice.
func NewB(v []byte) B { return B{Value: append([]byte(nil), v...)} }

// String renders a Data value roughly the way a Plutus debug trace would,
// used only for error messages and logs.
func String(d Data) string {
	switch v := d.(type) {
	case Constr:
		s := fmt.Sprintf("Constr %d [", v.Tag)
		for i, a := range v.Args {
			if i > 0 {
				s += ", "
			}
			s += String(a)
		}
		return s + "]"
	case Map:
		s := "Map ["
		for i, p := range v.Pairs {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("(%s, %s)", String(p.Key), String(p.Value))
		}
		return s + "]"
	case List:
		s := "List ["
		for i, a := range v.Items {
			if i > 0 {
				s += ", "
			}
			s += String(a)
		}
		return s + "]"
	case I:
		return v.Value.String()
	case B:
		return fmt.Sprintf("%x", v.Value)
	default:
		return "<unknown data>"
	}
}
