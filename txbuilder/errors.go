package txbuilder

import "fmt"

// BalancingError reports why a transaction could not be balanced, carrying
// enough detail to blame a specific redeemer when evaluation is the cause
// (§4.5, "Failure semantics").
type BalancingError struct {
	Reason        string
	RedeemerIndex int  // -1 when the failure is not redeemer-specific
	Logs          []string
}

func (e *BalancingError) Error() string {
	if e.RedeemerIndex >= 0 {
		return fmt.Sprintf("txbuilder: balancing failed at redeemer %d: %s", e.RedeemerIndex, e.Reason)
	}
	return fmt.Sprintf("txbuilder: balancing failed: %s", e.Reason)
}

func newBalancingError(redeemerIndex int, logs []string, format string, args ...any) *BalancingError {
	return &BalancingError{
		Reason:        fmt.Sprintf(format, args...),
		RedeemerIndex: redeemerIndex,
		Logs:          logs,
	}
}
