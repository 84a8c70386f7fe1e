package data

// constructorOverhead is the flat per-node cost charged in addition to a
// Data value's children, matching the reference cost model's treatment of
// Data as a recursive structure (§4.4).
const constructorOverhead int64 = 4

// MemoryUsage recursively computes the cost-model memory units of a Data
// value: the sum of its children's usage plus a constant per constructor.
func MemoryUsage(d Data) int64 {
	switch v := d.(type) {
	case Constr:
		total := constructorOverhead
		for _, a := range v.Args {
			total += MemoryUsage(a)
		}
		return total
	case Map:
		total := constructorOverhead
		for _, p := range v.Pairs {
			total += MemoryUsage(p.Key) + MemoryUsage(p.Value)
		}
		return total
	case List:
		total := constructorOverhead
		for _, item := range v.Items {
			total += MemoryUsage(item)
		}
		return total
	case I:
		return integerMemoryUsage(v.Value)
	case B:
		return byteStringMemoryUsage(v.Value)
	default:
		return constructorOverhead
	}
}

// integerMemoryUsage follows the reference model: ceil(bitlen/64) words,
// with zero costing a single word.
func integerMemoryUsage(n interface{ BitLen() int }) int64 {
	bits := n.BitLen()
	if bits == 0 {
		return 1
	}
	return int64((bits + 63) / 64)
}

// byteStringMemoryUsage costs ceil(len/8) words, with the empty string
// costing a single word as the reference implementation does.
func byteStringMemoryUsage(b []byte) int64 {
	if len(b) == 0 {
		return 1
	}
	return int64((len(b) + 7) / 8)
}
