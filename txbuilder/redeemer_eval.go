package txbuilder

import (
	"fmt"

	"github.com/blinklabs-io/gouplc/builtins"
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/data"
	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/scriptcontext"
	"github.com/blinklabs-io/gouplc/uplc"
)

// evalResult is one redeemer's evaluation outcome: the budget it actually
// spent (becoming its new ExUnits, §4.5 step 4) and any evaluator logs, kept
// for surfacing in a BalancingError.
type evalResult struct {
	Spent ledger.ExUnits
	Logs  []string
}

// evaluateRedeemer applies script to [datum?, redeemer, scriptContext] and
// runs it through the CEK machine with a budget ceiling of
// protocol.MaxTxExUnits, per §4.5 step 4.
func evaluateRedeemer(model costmodel.Model, script ledger.Script, redeemerData, datum data.Data, ctxData data.Data, maxUnits ledger.ExUnits) (evalResult, error) {
	program, err := uplc.FlatDecode(script.Bytes)
	if err != nil {
		return evalResult{}, fmt.Errorf("txbuilder: decoding script: %w", err)
	}

	term := program.Term
	if datum != nil {
		term = uplc.Apply{Function: term, Argument: uplc.Const{Value: uplc.ConstData{Value: datum}}}
	}
	term = uplc.Apply{Function: term, Argument: uplc.Const{Value: uplc.ConstData{Value: redeemerData}}}
	term = uplc.Apply{Function: term, Argument: uplc.Const{Value: uplc.ConstData{Value: ctxData}}}

	logger := &cek.SliceLogger{}
	registry := builtins.NewRegistry(model, logger)
	budget := cek.ExBudget{CPU: maxUnits.Steps, Mem: maxUnits.Mem}
	machine := cek.NewMachine(model, registry, budget, logger)

	if _, err := machine.Run(term); err != nil {
		return evalResult{Logs: logger.Messages()}, fmt.Errorf("txbuilder: script evaluation failed: %w", err)
	}

	used := machine.Spender.Spent()
	return evalResult{
		Spent: ledger.ExUnits{Mem: used.Mem, Steps: used.CPU},
		Logs:  logger.Messages(),
	}, nil
}

// buildScriptContextData reconstructs the ScriptContext Data value for one
// redeemer's purpose, for direct use as the script's final applied
// argument.
func buildScriptContextData(ctx scriptcontext.Context, language ledger.ScriptLanguage, purpose scriptcontext.Purpose, redeemerData data.Data) (data.Data, error) {
	return ctx.Build(language, purpose, redeemerData)
}
