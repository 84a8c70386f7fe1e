package txbuilder

import "github.com/blinklabs-io/gouplc/ledger"

// computeFee implements §4.5 step 5: fee = a*size + b + sum over redeemers
// of (cpu*price_cpu + mem*price_mem), rounded up on each rational
// multiplication.
func computeFee(bodySize int64, redeemers []ledger.Redeemer, pparams ledger.ProtocolParams) ledger.Coin {
	fee := pparams.MinFeeA*bodySize + pparams.MinFeeB
	for _, r := range redeemers {
		fee += pparams.PriceCPU.MulCeil(r.ExUnits.Steps)
		fee += pparams.PriceMem.MulCeil(r.ExUnits.Mem)
	}
	return ledger.Coin(fee)
}
