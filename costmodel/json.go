package costmodel

import (
	"encoding/json"
	"fmt"
	"os"
)

// rawEntry mirrors one builtin's entry in a builtinCostModelC.json-style
// snapshot: a named cost-function shape plus its coefficients, for both the
// CPU and memory prices.
type rawEntry struct {
	CPU rawFunction `json:"cpu"`
	Mem rawFunction `json:"memory"`
}

type rawFunction struct {
	Type string  `json:"type"`
	Args []int64 `json:"arguments"`
}

type rawMachineCosts struct {
	Startup int64 `json:"startup"`
	Var     int64 `json:"var"`
	LamAbs  int64 `json:"lamAbs"`
	Apply   int64 `json:"apply"`
	Force   int64 `json:"force"`
	Delay   int64 `json:"delay"`
	Const   int64 `json:"const"`
	Builtin int64 `json:"builtin"`
	Constr  int64 `json:"constr"`
	Case    int64 `json:"case"`
}

type rawModel struct {
	Machine  rawMachineCosts        `json:"machineCosts"`
	Builtins map[string]rawEntry `json:"builtinCosts"`
}

// LoadFromJSON parses a cost-model snapshot from disk into a Model. The
// on-disk shape is an object with a "machineCosts" object of per-step
// costs and a "builtinCosts" object keyed by builtin name, each entry
// giving a named cost-function "type" and its "arguments" for "cpu" and
// "memory". The flat integer arrays of a protocol parameter's
// `costModels` field are not accepted.
func LoadFromJSON(path string) (Model, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Model{}, fmt.Errorf("costmodel: reading %s: %w", path, err)
	}
	return ParseJSON(buf)
}

// ParseJSON parses a cost-model snapshot already read into memory.
func ParseJSON(buf []byte) (Model, error) {
	var raw rawModel
	if err := json.Unmarshal(buf, &raw); err != nil {
		return Model{}, fmt.Errorf("costmodel: parsing snapshot: %w", err)
	}
	model := Model{
		Machine: MachineCosts{
			Startup: raw.Machine.Startup,
			Var:     raw.Machine.Var,
			LamAbs:  raw.Machine.LamAbs,
			Apply:   raw.Machine.Apply,
			Force:   raw.Machine.Force,
			Delay:   raw.Machine.Delay,
			Const:   raw.Machine.Const,
			Builtin: raw.Machine.Builtin,
			Constr:  raw.Machine.Constr,
			Case:    raw.Machine.Case,
		},
		Builtins: make(map[string]BuiltinCost, len(raw.Builtins)),
	}
	for name, entry := range raw.Builtins {
		cpu, err := buildFunction(entry.CPU)
		if err != nil {
			return Model{}, fmt.Errorf("costmodel: builtin %q cpu: %w", name, err)
		}
		mem, err := buildFunction(entry.Mem)
		if err != nil {
			return Model{}, fmt.Errorf("costmodel: builtin %q memory: %w", name, err)
		}
		model.Builtins[name] = BuiltinCost{CPU: cpu, Mem: mem}
	}
	return model, nil
}

func buildFunction(f rawFunction) (Function, error) {
	arg := func(i int) int64 {
		if i < len(f.Args) {
			return f.Args[i]
		}
		return 0
	}
	switch f.Type {
	case "constantCost":
		return ConstantCost{C: arg(0)}, nil
	case "linearInX":
		return LinearInX{A: arg(0), B: arg(1)}, nil
	case "linearInY":
		return LinearInY{A: arg(0), B: arg(1)}, nil
	case "linearInZ":
		return LinearInZ{A: arg(0), B: arg(1)}, nil
	case "linearInMaxYZ":
		return LinearInMaxYZ{A: arg(0), B: arg(1)}, nil
	case "linearOnDiagonal":
		return LinearOnDiagonal{CDiag: arg(0), COff: arg(1), B: arg(2)}, nil
	case "literalInYOrLinearInZ":
		return LiteralInYOrLinearInZ{Literal: arg(0), A: arg(1), B: arg(2)}, nil
	case "quadraticInY":
		return QuadraticInY{A: arg(0), B: arg(1), C: arg(2)}, nil
	case "quadraticInZ":
		return QuadraticInZ{A: arg(0), B: arg(1), C: arg(2)}, nil
	default:
		return nil, fmt.Errorf("unknown cost function type %q", f.Type)
	}
}
