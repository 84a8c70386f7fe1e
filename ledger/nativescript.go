package ledger

// NativeScriptKind enumerates the five multi-signature script variants
// carried in a witness set alongside Plutus scripts.
type NativeScriptKind uint8

const (
	NativeScriptSig NativeScriptKind = iota
	NativeScriptAll
	NativeScriptAny
	NativeScriptAtLeast
	NativeScriptAfter
	NativeScriptBefore
)

// NativeScript is a recursive multi-signature predicate evaluated against a
// transaction's required-signer set and validity interval.
type NativeScript struct {
	Kind     NativeScriptKind
	KeyHash  Hash28         // NativeScriptSig
	Scripts  []NativeScript // NativeScriptAll/Any/AtLeast
	Required int            // NativeScriptAtLeast
	Slot     uint64         // NativeScriptAfter/Before
}

// Hash computes the script hash tagged for native scripts (tag byte 0x00),
// per CIP-19's script-hash namespacing so a native script and a Plutus
// script with coincidentally identical bytes never collide.
func (ns NativeScript) Hash(serialized []byte) Hash28 {
	return Blake2b224Hash(append([]byte{0x00}, serialized...))
}

// IsSatisfied reports whether the script's predicate holds given the set of
// signing key hashes present on the transaction and the transaction's
// validity interval, expressed as slot bounds (nil means unbounded).
func (ns NativeScript) IsSatisfied(signers map[Hash28]bool, lowerBound, upperBound *uint64) bool {
	switch ns.Kind {
	case NativeScriptSig:
		return signers[ns.KeyHash]
	case NativeScriptAll:
		for _, s := range ns.Scripts {
			if !s.IsSatisfied(signers, lowerBound, upperBound) {
				return false
			}
		}
		return true
	case NativeScriptAny:
		for _, s := range ns.Scripts {
			if s.IsSatisfied(signers, lowerBound, upperBound) {
				return true
			}
		}
		return len(ns.Scripts) == 0
	case NativeScriptAtLeast:
		count := 0
		for _, s := range ns.Scripts {
			if s.IsSatisfied(signers, lowerBound, upperBound) {
				count++
			}
		}
		return count >= ns.Required
	case NativeScriptAfter:
		return lowerBound != nil && *lowerBound >= ns.Slot
	case NativeScriptBefore:
		return upperBound != nil && *upperBound < ns.Slot
	default:
		return false
	}
}
