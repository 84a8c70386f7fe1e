package ffi

import (
	"encoding/hex"
	"fmt"

	"github.com/blinklabs-io/gouplc/builtins"
	"github.com/blinklabs-io/gouplc/cek"
	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/ledger"
	"github.com/blinklabs-io/gouplc/scriptcontext"
	"github.com/blinklabs-io/gouplc/txbuilder"
	"github.com/blinklabs-io/gouplc/uplc"
)

// doubleCBORUnwrap strips the Cardano ledger's "double-CBOR" script-on-disk
// wrapping (a CBOR byte string containing a CBOR byte string containing the
// flat-encoded program) down to the raw flat bytes.
func doubleCBORUnwrap(b []byte) ([]byte, error) {
	outer, err := cborDecodeByteString(b)
	if err != nil {
		return nil, fmt.Errorf("ffi: outer CBOR unwrap: %w", err)
	}
	inner, err := cborDecodeByteString(outer)
	if err != nil {
		return nil, fmt.Errorf("ffi: inner CBOR unwrap: %w", err)
	}
	return inner, nil
}

func doubleCBORWrap(flat []byte) ([]byte, error) {
	inner, err := cborEncodeByteString(flat)
	if err != nil {
		return nil, err
	}
	return cborEncodeByteString(inner)
}

// UnwrapScript strips a double-CBOR-wrapped compiled script down to its raw
// flat-encoded bytes, for callers that only need the script hash or flat
// program rather than an evaluation result.
func UnwrapScript(scriptHex string) ([]byte, error) {
	raw, err := hex.DecodeString(scriptHex)
	if err != nil {
		return nil, fmt.Errorf("ffi: invalid script hex: %w", err)
	}
	return doubleCBORUnwrap(raw)
}

// ApplyDataArgToScript applies a JSON-encoded Plutus Data argument to a
// double-CBOR-wrapped compiled script, returning the new double-CBOR hex
// (§6.1).
func ApplyDataArgToScript(scriptHex string, dataJSON string) (string, error) {
	raw, err := hex.DecodeString(scriptHex)
	if err != nil {
		return "", fmt.Errorf("ffi: invalid script hex: %w", err)
	}
	flat, err := doubleCBORUnwrap(raw)
	if err != nil {
		return "", err
	}
	program, err := uplc.FlatDecode(flat)
	if err != nil {
		return "", fmt.Errorf("ffi: flat decode: %w", err)
	}

	arg, err := ParseDataJSON([]byte(dataJSON))
	if err != nil {
		return "", err
	}

	program.Term = uplc.Apply{Function: program.Term, Argument: uplc.Const{Value: uplc.ConstData{Value: arg}}}

	newFlat, err := uplc.FlatEncode(program)
	if err != nil {
		return "", fmt.Errorf("ffi: flat encode: %w", err)
	}
	wrapped, err := doubleCBORWrap(newFlat)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(wrapped), nil
}

// EvalResult is evaluateScript's outcome.
type EvalResult struct {
	IsSuccess bool
	Budget    ledger.ExUnits
	Logs      []string
}

// EvaluateScript decodes and runs a double-CBOR-wrapped script with no
// arguments applied, per §6.1. The caller-supplied cost model prices the
// run; a real deployment loads it from the cost-model JSON described in
// §6.2.
func EvaluateScript(model costmodel.Model, maxUnits ledger.ExUnits, scriptHex string) (EvalResult, error) {
	raw, err := hex.DecodeString(scriptHex)
	if err != nil {
		return EvalResult{}, fmt.Errorf("ffi: invalid script hex: %w", err)
	}
	flat, err := doubleCBORUnwrap(raw)
	if err != nil {
		return EvalResult{}, err
	}
	program, err := uplc.FlatDecode(flat)
	if err != nil {
		return EvalResult{}, fmt.Errorf("ffi: flat decode: %w", err)
	}

	logger := &cek.SliceLogger{}
	registry := builtins.NewRegistry(model, logger)
	budget := cek.ExBudget{CPU: maxUnits.Steps, Mem: maxUnits.Mem}
	machine := cek.NewMachine(model, registry, budget, logger)

	if _, err := machine.Run(program.Term); err != nil {
		return EvalResult{IsSuccess: false, Logs: logger.Messages()}, nil
	}

	used := machine.Spender.Spent()
	return EvalResult{
		IsSuccess: true,
		Budget:    ledger.ExUnits{Mem: used.Mem, Steps: used.CPU},
		Logs:      logger.Messages(),
	}, nil
}

// RedeemerResult is one entry of evalPlutusScripts' result (§6.1).
type RedeemerResult struct {
	Tag    ledger.RedeemerTag
	Index  uint32
	Budget ledger.ExUnits
}

// EvalPlutusScripts runs every scripted spend/mint intent a transaction
// attaches and returns each redeemer's actually-spent budget. The wire
// signature described in §6.1 takes raw transaction/UTxO CBOR bytes; this
// binding instead takes an already-decoded Transaction and its resolved
// inputs, since the ledger package's CBOR layer is encode-only
// (ledger.Transaction has no CBOR unmarshaler — see DESIGN.md) and a host process is expected
// to decode the wire bytes with its own ledger client before calling in.
func EvalPlutusScripts(model costmodel.Model, maxUnits ledger.ExUnits, tx ledger.Transaction, resolvedInputs []txbuilder.ResolvedUTxO) ([]RedeemerResult, error) {
	txID, err := tx.ID()
	if err != nil {
		return nil, err
	}

	inputs := make([]scriptcontext.ResolvedInput, len(resolvedInputs))
	for i, r := range resolvedInputs {
		inputs[i] = scriptcontext.ResolvedInput{Input: r.Input, Output: r.Output}
	}
	sctx := scriptcontext.Context{Tx: tx, TxID: txID, Inputs: inputs}

	var results []RedeemerResult
	var logs []string

	for _, r := range tx.WitnessSet.Redeemers {
		purpose := scriptcontext.Purpose{Tag: r.Tag, Index: r.Index}
		if r.Tag == ledger.RedeemerSpend && int(r.Index) < len(tx.Body.Inputs) {
			in := tx.Body.Inputs[r.Index]
			purpose.Input = &in
		}

		language := ledger.PlutusV2
		var scriptBytes []byte
		for lang, scripts := range tx.WitnessSet.PlutusScripts {
			if len(scripts) > 0 {
				language, scriptBytes = lang, scripts[0]
				break
			}
		}
		if scriptBytes == nil {
			return nil, fmt.Errorf("ffi: no plutus script available for redeemer %d", r.Index)
		}

		redeemerData, _, err := decodePlutusData(r.Data)
		if err != nil {
			return nil, err
		}
		ctxData, err := sctx.Build(language, purpose, redeemerData)
		if err != nil {
			return nil, err
		}

		program, err := uplc.FlatDecode(scriptBytes)
		if err != nil {
			return nil, fmt.Errorf("ffi: flat decode: %w", err)
		}
		term := uplc.Apply{Function: program.Term, Argument: uplc.Const{Value: uplc.ConstData{Value: redeemerData}}}
		term = uplc.Apply{Function: term, Argument: uplc.Const{Value: uplc.ConstData{Value: ctxData}}}

		logger := &cek.SliceLogger{}
		registry := builtins.NewRegistry(model, logger)
		budget := cek.ExBudget{CPU: maxUnits.Steps, Mem: maxUnits.Mem}
		machine := cek.NewMachine(model, registry, budget, logger)

		if _, err := machine.Run(term); err != nil {
			logs = append(logs, logger.Messages()...)
			return nil, fmt.Errorf("ffi: script evaluation failed for redeemer %d: %w (logs: %v)", r.Index, err, logs)
		}

		used := machine.Spender.Spent()
		results = append(results, RedeemerResult{
			Tag:    r.Tag,
			Index:  r.Index,
			Budget: ledger.ExUnits{Mem: used.Mem, Steps: used.CPU},
		})
	}

	return results, nil
}
