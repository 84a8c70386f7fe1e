package uplc

import "github.com/blinklabs-io/gouplc/data"

// ConstantMemoryUsage computes the cost-model memory units of a constant,
// recursively for List/Pair (§4.4: "memory usage of a runtime value is a
// recursive function").
func ConstantMemoryUsage(c Constant) int64 {
	switch v := c.(type) {
	case ConstInteger:
		bits := v.Value.BitLen()
		if bits == 0 {
			return 1
		}
		return int64((bits + 63) / 64)
	case ConstByteString:
		if len(v.Value) == 0 {
			return 1
		}
		return int64((len(v.Value) + 7) / 8)
	case ConstString:
		if len(v.Value) == 0 {
			return 1
		}
		return int64((len(v.Value) + 7) / 8)
	case ConstUnit:
		return 1
	case ConstBool:
		return 1
	case ConstData:
		return data.MemoryUsage(v.Value)
	case ConstList:
		total := int64(0)
		for _, item := range v.Items {
			total += ConstantMemoryUsage(item)
		}
		return total
	case ConstPair:
		return ConstantMemoryUsage(v.Fst) + ConstantMemoryUsage(v.Snd)
	case ConstBls12_381_G1:
		return 18
	case ConstBls12_381_G2:
		return 36
	default:
		return 1
	}
}
