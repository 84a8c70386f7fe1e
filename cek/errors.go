package cek

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the machine-error kinds in §7, in the order
// they can arise during a run.
var (
	ErrEvaluationFailure = errors.New("evaluation failure")
	ErrBuiltinError      = errors.New("builtin error")
	ErrOutOfBudget       = errors.New("out of budget")
	ErrMissingCaseBranch = errors.New("missing case branch")
)

// MachineError wraps one of the sentinel errors above with the state a
// caller needs to diagnose or surface a failure: the machine-state summary
// at the point of failure, the logs accumulated via `trace` up to that
// point, and the partial budget spent (§7, "All evaluator errors carry...").
type MachineError struct {
	Err          error
	StateSummary string
	Logs         []string
	PartialSpent ExBudget
}

func (e *MachineError) Error() string {
	if e.StateSummary == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.StateSummary)
}

func (e *MachineError) Unwrap() error { return e.Err }

func newMachineError(base error, state string, logs []string, spent ExBudget) *MachineError {
	return &MachineError{
		Err:          base,
		StateSummary: state,
		Logs:         append([]string(nil), logs...),
		PartialSpent: spent,
	}
}
