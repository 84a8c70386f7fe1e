package ledger

import "fmt"

// Value is a Cardano multi-asset value: a lovelace quantity plus zero or
// more native-token quantities, keyed by policy and asset name. Quantities
// may be negative only in the mint field of a transaction body; a UTxO or
// output Value must be non-negative in every entry (§3.4).
type Value struct {
	Coin   Coin
	Assets map[PolicyID]map[AssetName]int64
}

// NewValue builds a lovelace-only Value.
func NewValue(coin Coin) Value {
	return Value{Coin: coin}
}

// Add returns the pointwise sum of two values.
func (v Value) Add(other Value) Value {
	out := Value{Coin: v.Coin + other.Coin, Assets: cloneAssets(v.Assets)}
	for policy, assets := range other.Assets {
		for name, qty := range assets {
			out.addAsset(policy, name, qty)
		}
	}
	return out
}

// Sub returns v minus other, pointwise.
func (v Value) Sub(other Value) Value {
	out := Value{Coin: v.Coin - other.Coin, Assets: cloneAssets(v.Assets)}
	for policy, assets := range other.Assets {
		for name, qty := range assets {
			out.addAsset(policy, name, -qty)
		}
	}
	return out
}

func (v *Value) addAsset(policy PolicyID, name AssetName, qty int64) {
	if v.Assets == nil {
		v.Assets = make(map[PolicyID]map[AssetName]int64)
	}
	if v.Assets[policy] == nil {
		v.Assets[policy] = make(map[AssetName]int64)
	}
	v.Assets[policy][name] += qty
	if v.Assets[policy][name] == 0 {
		delete(v.Assets[policy], name)
	}
	if len(v.Assets[policy]) == 0 {
		delete(v.Assets, policy)
	}
}

func cloneAssets(m map[PolicyID]map[AssetName]int64) map[PolicyID]map[AssetName]int64 {
	if m == nil {
		return nil
	}
	out := make(map[PolicyID]map[AssetName]int64, len(m))
	for policy, assets := range m {
		inner := make(map[AssetName]int64, len(assets))
		for name, qty := range assets {
			inner[name] = qty
		}
		out[policy] = inner
	}
	return out
}

// IsZero reports whether every entry of the value, lovelace included, is
// zero.
func (v Value) IsZero() bool {
	if v.Coin != 0 {
		return false
	}
	for _, assets := range v.Assets {
		for _, qty := range assets {
			if qty != 0 {
				return false
			}
		}
	}
	return true
}

// HasNegative reports whether any entry (lovelace or a native asset) is
// negative — valid only for intermediate accounting (e.g. a mint field),
// never for a settled UTxO.
func (v Value) HasNegative() bool {
	if int64(v.Coin) < 0 {
		return true
	}
	for _, assets := range v.Assets {
		for _, qty := range assets {
			if qty < 0 {
				return true
			}
		}
	}
	return false
}

// AssetQuantity returns the quantity of the given policy/name pair, 0 if
// absent.
func (v Value) AssetQuantity(policy PolicyID, name AssetName) int64 {
	if v.Assets == nil {
		return 0
	}
	return v.Assets[policy][name]
}

// String renders a human-readable summary, primarily for test failures and
// logging.
func (v Value) String() string {
	if len(v.Assets) == 0 {
		return fmt.Sprintf("%d lovelace", v.Coin)
	}
	s := fmt.Sprintf("%d lovelace", v.Coin)
	for policy, assets := range v.Assets {
		for name, qty := range assets {
			s += fmt.Sprintf(" + %d %s.%s", qty, policy, name)
		}
	}
	return s
}
