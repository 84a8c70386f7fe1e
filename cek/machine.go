package cek

import (
	"fmt"

	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/uplc"
)

// BuiltinDispatcher is the seam between the evaluator and the builtin
// registry, injected so that package cek never imports package builtins
// (which itself imports cek for the Value type) — the registry implements
// this interface instead (§9, "implicit parameter injection becomes
// explicit parameter passing").
type BuiltinDispatcher interface {
	// Arity reports how many Force wrappers (forces) and how many term
	// arguments (arity) a builtin needs before ApplyBuiltin fires.
	Arity(name uplc.BuiltinName) (forces int, arity int, ok bool)
	// Cost prices one builtin invocation given its fully-evaluated
	// arguments, in both CPU and memory units.
	Cost(name uplc.BuiltinName, args []Value) (ExBudget, error)
	// Apply performs the builtin's semantic action. The returned error, if
	// any, is wrapped in ErrBuiltinError by the machine.
	Apply(name uplc.BuiltinName, args []Value) (Value, error)
}

// controlKind discriminates the machine's Control component (§4.1).
type controlKind int

const (
	controlCompute controlKind = iota
	controlReturn
)

type control struct {
	kind  controlKind
	term  uplc.Term
	value Value
}

// frame is one of the continuation-stack shapes: the five of §4.1 plus
// frameConstrArgs, used when a Case branch is applied to its fields.
type frame interface{ isFrame() }

type frameApplyArg struct {
	Arg uplc.Term
	Env *Env
}

func (frameApplyArg) isFrame() {}

type frameApplyFun struct{ Fun Value }

func (frameApplyFun) isFrame() {}

type frameForce struct{}

func (frameForce) isFrame() {}

type frameCase struct {
	Branches []uplc.Term
	Env      *Env
}

func (frameCase) isFrame() {}

type frameConstr struct {
	Tag  uint64
	Done []Value
	Todo []uplc.Term
	Env  *Env
}

func (frameConstr) isFrame() {}

// frameConstrArgs applies an already-evaluated Case branch function to the
// scrutinee's fields in order, one field per pop, without re-encoding the
// already-reduced field values as terms (§4.1's Case rule).
type frameConstrArgs struct {
	Remaining []Value
	Env       *Env
}

func (frameConstrArgs) isFrame() {}

// Machine is a single evaluator run's fixed configuration: the per-step
// machine costs, the builtin registry, and the injected budget spender and
// logger (§4.1, §5 — no shared mutable state, so a caller wanting
// parallelism just constructs one Machine per goroutine).
type Machine struct {
	Costs      costmodel.MachineCosts
	Dispatcher BuiltinDispatcher
	Spender    BudgetSpender
	Logger     Logger
}

// NewMachine builds a Machine from a cost model and a spending budget.
func NewMachine(model costmodel.Model, dispatcher BuiltinDispatcher, budget ExBudget, logger Logger) *Machine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Machine{
		Costs:      model.Machine,
		Dispatcher: dispatcher,
		Spender:    NewTrackingSpender(budget),
		Logger:     logger,
	}
}

// Run reduces a closed, De-Bruijn-indexed term to a Value or fails with a
// *MachineError (§4.1's reduction rules, implemented as an explicit loop
// over frames so deeply recursive programs never exhaust the native call
// stack — §9).
func (m *Machine) Run(term uplc.Term) (Value, error) {
	if err := m.charge("startup", ExBudget{CPU: m.Costs.Startup, Mem: m.Costs.Startup}); err != nil {
		return nil, m.fail(err, "startup")
	}
	ctrl := control{kind: controlCompute, term: term}
	var env *Env
	var stack []frame

	for {
		switch ctrl.kind {
		case controlCompute:
			next, nextEnv, err := m.compute(ctrl.term, env)
			if err != nil {
				return nil, m.fail(err, fmt.Sprintf("compute %T", ctrl.term))
			}
			if next.pushFrame != nil {
				stack = append(stack, next.pushFrame)
			}
			if next.isReturn {
				ctrl = control{kind: controlReturn, value: next.value}
				env = nextEnv
				continue
			}
			ctrl = control{kind: controlCompute, term: next.nextTerm}
			env = nextEnv
		case controlReturn:
			if len(stack) == 0 {
				return ctrl.value, nil
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			next, nextEnv, halt, haltValue, err := m.apply(top, ctrl.value)
			if err != nil {
				return nil, m.fail(err, fmt.Sprintf("return onto %T", top))
			}
			if halt {
				return haltValue, nil
			}
			if next.pushFrame != nil {
				stack = append(stack, next.pushFrame)
			}
			if next.isReturn {
				ctrl = control{kind: controlReturn, value: next.value}
			} else {
				ctrl = control{kind: controlCompute, term: next.nextTerm}
			}
			env = nextEnv
		}
	}
}

// step is the shared result shape of both compute and apply: either
// "return this value" or "compute this term next", optionally pushing one
// new frame first.
type step struct {
	isReturn  bool
	value     Value
	nextTerm  uplc.Term
	pushFrame frame
}

func (m *Machine) compute(t uplc.Term, env *Env) (step, *Env, error) {
	switch v := t.(type) {
	case uplc.Var:
		if err := m.charge("var", m.perStep(m.Costs.Var)); err != nil {
			return step{}, env, err
		}
		val, ok := env.Lookup(v.Index)
		if !ok {
			return step{}, env, fmt.Errorf("%w: unbound variable at index %d", ErrEvaluationFailure, v.Index)
		}
		return step{isReturn: true, value: val}, env, nil
	case uplc.LamAbs:
		if err := m.charge("lamAbs", m.perStep(m.Costs.LamAbs)); err != nil {
			return step{}, env, err
		}
		return step{isReturn: true, value: VClosure{Body: v.Body, Env: env}}, env, nil
	case uplc.Apply:
		if err := m.charge("apply", m.perStep(m.Costs.Apply)); err != nil {
			return step{}, env, err
		}
		return step{nextTerm: v.Function, pushFrame: frameApplyArg{Arg: v.Argument, Env: env}}, env, nil
	case uplc.Force:
		if err := m.charge("force", m.perStep(m.Costs.Force)); err != nil {
			return step{}, env, err
		}
		return step{nextTerm: v.Term, pushFrame: frameForce{}}, env, nil
	case uplc.Delay:
		if err := m.charge("delay", m.perStep(m.Costs.Delay)); err != nil {
			return step{}, env, err
		}
		return step{isReturn: true, value: VDelayed{Term: v.Term, Env: env}}, env, nil
	case uplc.Const:
		if err := m.charge("const", m.perStep(m.Costs.Const)); err != nil {
			return step{}, env, err
		}
		return step{isReturn: true, value: VConst{Constant: v.Value}}, env, nil
	case uplc.Builtin:
		if err := m.charge("builtin", m.perStep(m.Costs.Builtin)); err != nil {
			return step{}, env, err
		}
		forces, _, ok := m.Dispatcher.Arity(v.Name)
		if !ok {
			return step{}, env, fmt.Errorf("%w: unknown builtin %s", ErrBuiltinError, v.Name)
		}
		return step{isReturn: true, value: VBuiltinApp{Name: v.Name, ForcesRemaining: forces}}, env, nil
	case uplc.TermError:
		return step{}, env, fmt.Errorf("%w: explicit Error term", ErrEvaluationFailure)
	case uplc.ConstrTerm:
		if err := m.charge("constr", m.perStep(m.Costs.Constr)); err != nil {
			return step{}, env, err
		}
		if len(v.Fields) == 0 {
			return step{isReturn: true, value: VConstr{Tag: v.Tag}}, env, nil
		}
		return step{
			nextTerm: v.Fields[0],
			pushFrame: frameConstr{
				Tag:  v.Tag,
				Todo: v.Fields[1:],
				Env:  env,
			},
		}, env, nil
	case uplc.CaseTerm:
		if err := m.charge("case", m.perStep(m.Costs.Case)); err != nil {
			return step{}, env, err
		}
		return step{nextTerm: v.Scrutinee, pushFrame: frameCase{Branches: v.Branches, Env: env}}, env, nil
	default:
		return step{}, env, fmt.Errorf("%w: unsupported term node %T", ErrEvaluationFailure, t)
	}
}

func (m *Machine) apply(f frame, v Value) (step, *Env, bool, Value, error) {
	switch fr := f.(type) {
	case frameApplyArg:
		return step{nextTerm: fr.Arg, pushFrame: frameApplyFun{Fun: v}}, fr.Env, false, nil, nil
	case frameApplyFun:
		return m.applyFunction(fr.Fun, v)
	case frameForce:
		return m.force(v)
	case frameCase:
		return m.caseOf(fr, v)
	case frameConstrArgs:
		return m.applyConstrArgs(fr, v)
	case frameConstr:
		return m.constrStep(fr, v)
	default:
		return step{}, nil, false, nil, fmt.Errorf("%w: unknown frame %T", ErrEvaluationFailure, f)
	}
}

func (m *Machine) applyFunction(fun Value, arg Value) (step, *Env, bool, Value, error) {
	switch f := fun.(type) {
	case VClosure:
		newEnv := f.Env.Extend(arg)
		return step{nextTerm: f.Body}, newEnv, false, nil, nil
	case VBuiltinApp:
		if f.ForcesRemaining > 0 {
			return step{}, nil, false, nil, fmt.Errorf(
				"%w: builtin %s expects a Force before its next argument",
				ErrBuiltinError, f.Name,
			)
		}
		args := append(append([]Value(nil), f.Args...), arg)
		_, arity, ok := m.Dispatcher.Arity(f.Name)
		if !ok {
			return step{}, nil, false, nil, fmt.Errorf("%w: unknown builtin %s", ErrBuiltinError, f.Name)
		}
		if len(args) < arity {
			return step{isReturn: true, value: VBuiltinApp{Name: f.Name, Args: args}}, nil, false, nil, nil
		}
		cost, err := m.Dispatcher.Cost(f.Name, args)
		if err != nil {
			return step{}, nil, false, nil, fmt.Errorf("%w: %s", ErrBuiltinError, err)
		}
		if err := m.charge("builtin-exec:"+string(f.Name), cost); err != nil {
			return step{}, nil, false, nil, err
		}
		result, err := m.Dispatcher.Apply(f.Name, args)
		if err != nil {
			return step{}, nil, false, nil, fmt.Errorf("%w: %s: %s", ErrBuiltinError, f.Name, err)
		}
		return step{isReturn: true, value: result}, nil, false, nil, nil
	default:
		return step{}, nil, false, nil, fmt.Errorf(
			"%w: cannot apply a non-function value of type %T", ErrBuiltinError, fun,
		)
	}
}

func (m *Machine) force(v Value) (step, *Env, bool, Value, error) {
	switch val := v.(type) {
	case VDelayed:
		return step{nextTerm: val.Term}, val.Env, false, nil, nil
	case VBuiltinApp:
		if val.ForcesRemaining == 0 {
			return step{}, nil, false, nil, fmt.Errorf(
				"%w: builtin %s has no remaining forces", ErrBuiltinError, val.Name,
			)
		}
		next := VBuiltinApp{Name: val.Name, ForcesRemaining: val.ForcesRemaining - 1, Args: val.Args}
		return step{isReturn: true, value: next}, nil, false, nil, nil
	default:
		return step{}, nil, false, nil, fmt.Errorf(
			"%w: Force applied to a non-delayed, non-builtin value of type %T", ErrEvaluationFailure, v,
		)
	}
}

func (m *Machine) caseOf(fr frameCase, v Value) (step, *Env, bool, Value, error) {
	constr, ok := v.(VConstr)
	if !ok {
		return step{}, nil, false, nil, fmt.Errorf(
			"%w: Case scrutinee did not reduce to a Constr value (got %T)", ErrEvaluationFailure, v,
		)
	}
	if int(constr.Tag) >= len(fr.Branches) {
		return step{}, nil, false, nil, fmt.Errorf(
			"%w: tag %d has no matching branch (have %d)",
			ErrMissingCaseBranch, constr.Tag, len(fr.Branches),
		)
	}
	branch := fr.Branches[constr.Tag]
	if len(constr.Fields) == 0 {
		return step{nextTerm: branch}, fr.Env, false, nil, nil
	}
	return step{
		nextTerm:  branch,
		pushFrame: frameConstrArgs{Remaining: constr.Fields, Env: fr.Env},
	}, fr.Env, false, nil, nil
}

// applyConstrArgs applies the already-evaluated branch (a closure or a
// builtin in progress) to the next pending field value, re-queuing itself
// for any fields still remaining.
func (m *Machine) applyConstrArgs(fr frameConstrArgs, fun Value) (step, *Env, bool, Value, error) {
	s, env, halt, haltVal, err := m.applyFunction(fun, fr.Remaining[0])
	if err != nil {
		return step{}, nil, false, nil, err
	}
	if len(fr.Remaining) > 1 {
		s.pushFrame = frameConstrArgs{Remaining: fr.Remaining[1:], Env: fr.Env}
	}
	return s, env, halt, haltVal, nil
}

func (m *Machine) constrStep(fr frameConstr, v Value) (step, *Env, bool, Value, error) {
	done := append(append([]Value(nil), fr.Done...), v)
	if len(fr.Todo) == 0 {
		return step{isReturn: true, value: VConstr{Tag: fr.Tag, Fields: done}}, nil, false, nil, nil
	}
	next := frameConstr{Tag: fr.Tag, Done: done, Todo: fr.Todo[1:], Env: fr.Env}
	return step{nextTerm: fr.Todo[0], pushFrame: next}, fr.Env, false, nil, nil
}

// perStep turns one of MachineCosts' flat per-transition coefficients into
// an ExBudget. The reference cost model prices CPU and memory per step
// identically; builtins are the only place CPU and memory diverge (§4.4),
// priced separately via the Dispatcher's Cost method.
func (m *Machine) perStep(cost int64) ExBudget {
	return ExBudget{CPU: cost, Mem: cost}
}

func (m *Machine) charge(kind string, cost ExBudget) error {
	return m.Spender.Spend(kind, cost)
}

func (m *Machine) fail(err error, state string) error {
	var logs []string
	if sl, ok := m.Logger.(*SliceLogger); ok {
		logs = sl.Messages()
	}
	spent := m.Spender.Spent()
	switch {
	case causedBy(err, ErrOutOfBudget):
		return newMachineError(ErrOutOfBudget, state, logs, spent)
	case causedBy(err, ErrMissingCaseBranch):
		return newMachineError(ErrMissingCaseBranch, state, logs, spent)
	case causedBy(err, ErrBuiltinError):
		return newMachineError(ErrBuiltinError, state, logs, spent)
	default:
		return newMachineError(ErrEvaluationFailure, fmt.Sprintf("%s: %s", state, err), logs, spent)
	}
}

func causedBy(err, target error) bool {
	for e := err; e != nil; {
		if e == target {
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return false
}
