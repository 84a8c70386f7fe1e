package txbuilder

import (
	"fmt"
	"sort"

	"github.com/blinklabs-io/gouplc/ledger"
)

// selectInputs picks a subset of available (not already explicitly spent)
// UTxOs covering required, largest-first (§4.5 step 2): sort candidates by
// lovelace quantity descending and take from the front until the running
// total covers the requirement with either zero change or change of at
// least the min-UTxO value. Candidates with equal lovelace are taken in no
// defined order; there is no tie-break on change.
func selectInputs(available []ResolvedUTxO, alreadySelected []ResolvedUTxO, required ledger.Value, pparams ledger.ProtocolParams) ([]ResolvedUTxO, ledger.Value, error) {
	pool := append([]ResolvedUTxO(nil), available...)
	sort.Slice(pool, func(i, j int) bool { return pool[i].Output.Value.Coin > pool[j].Output.Value.Coin })

	picked := append([]ResolvedUTxO(nil), alreadySelected...)
	total := sumValues(picked)

	covers := func(v ledger.Value) bool {
		diff := v.Sub(required)
		return !diff.HasNegative()
	}

	if covers(total) {
		return picked, total.Sub(required), nil
	}

	for _, u := range pool {
		if containsUTxO(picked, u) {
			continue
		}
		picked = append(picked, u)
		total = total.Add(u.Output.Value)
		if covers(total) {
			change := total.Sub(required)
			minChange := pparams.MinUTxOValue(minOutputSizeEstimate)
			if change.Coin > 0 && change.Coin < minChange {
				continue // keep adding inputs rather than leave dust change
			}
			return picked, change, nil
		}
	}
	return nil, ledger.Value{}, fmt.Errorf("txbuilder: no subset of available UTxOs covers the required value %s", required)
}

// minOutputSizeEstimate approximates a change output's serialized size for
// the min-UTxO floor check before the real output has been built.
const minOutputSizeEstimate = 160

func sumValues(utxos []ResolvedUTxO) ledger.Value {
	var total ledger.Value
	for _, u := range utxos {
		total = total.Add(u.Output.Value)
	}
	return total
}

func containsUTxO(set []ResolvedUTxO, u ResolvedUTxO) bool {
	for _, s := range set {
		if s.Input == u.Input {
			return true
		}
	}
	return false
}
