package cek

import "fmt"

// ExBudget is the CPU (steps) and memory budget the machine meters against
// (§4.1, "ex-units" in the GLOSSARY).
type ExBudget struct {
	CPU int64
	Mem int64
}

// Sub subtracts other from b, returning the remainder.
func (b ExBudget) Sub(other ExBudget) ExBudget {
	return ExBudget{CPU: b.CPU - other.CPU, Mem: b.Mem - other.Mem}
}

// Add returns the component-wise sum of b and other.
func (b ExBudget) Add(other ExBudget) ExBudget {
	return ExBudget{CPU: b.CPU + other.CPU, Mem: b.Mem + other.Mem}
}

// Negative reports whether either component of b has gone below zero,
// i.e. the budget has been exceeded.
func (b ExBudget) Negative() bool {
	return b.CPU < 0 || b.Mem < 0
}

// BudgetSpender is injected into the machine so that callers needing
// parallelism can run independent evaluator instances on separate threads
// without any shared mutable state (§5).
type BudgetSpender interface {
	// Spend charges cost against the remaining budget. It returns
	// ErrOutOfBudget once either component would go negative; the spender
	// itself decides whether to allow partial overspend for diagnostics.
	Spend(kind string, cost ExBudget) error
	// Spent returns the total charged so far.
	Spent() ExBudget
}

// TrackingSpender is the reference BudgetSpender: it enforces a hard
// ceiling and simply accumulates what has been spent.
type TrackingSpender struct {
	limit   ExBudget
	spent   ExBudget
}

// NewTrackingSpender creates a spender that fails once spending would
// exceed limit.
func NewTrackingSpender(limit ExBudget) *TrackingSpender {
	return &TrackingSpender{limit: limit}
}

func (s *TrackingSpender) Spend(kind string, cost ExBudget) error {
	next := s.spent.Add(cost)
	remaining := s.limit.Sub(next)
	if remaining.Negative() {
		s.spent = next
		return fmt.Errorf(
			"%w: charging %s exceeded budget (spent cpu=%d mem=%d, limit cpu=%d mem=%d)",
			ErrOutOfBudget, kind, next.CPU, next.Mem, s.limit.CPU, s.limit.Mem,
		)
	}
	s.spent = next
	return nil
}

func (s *TrackingSpender) Spent() ExBudget { return s.spent }

// Remaining returns the unspent portion of the spender's limit.
func (s *TrackingSpender) Remaining() ExBudget {
	return s.limit.Sub(s.spent)
}
