// Command evalscript is a CLI test harness for the wire/FFI layer (§6.3):
// it applies Plutus Data arguments to compiled scripts and runs scripts to
// completion, printing the resulting budget and logs.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blinklabs-io/gouplc/costmodel"
	"github.com/blinklabs-io/gouplc/ffi"
	"github.com/blinklabs-io/gouplc/ledger"
)

var cmdlineFlags struct {
	scriptHex     string
	dataJSON      string
	costModelPath string
	maxMem        int64
	maxSteps      int64
}

var rootCmd = &cobra.Command{
	Use:   "evalscript",
	Short: "Apply arguments to and evaluate double-CBOR Plutus scripts",
}

var applyCmd = &cobra.Command{
	Use:   "apply-data-arg",
	Short: "Apply a JSON-encoded Plutus Data argument to a compiled script",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := ffi.ApplyDataArgToScript(cmdlineFlags.scriptHex, cmdlineFlags.dataJSON)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a fully-applied compiled script",
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := costmodel.LoadFromJSON(cmdlineFlags.costModelPath)
		if err != nil {
			return fmt.Errorf("loading cost model: %w", err)
		}
		maxUnits := ledger.ExUnits{Mem: cmdlineFlags.maxMem, Steps: cmdlineFlags.maxSteps}
		result, err := ffi.EvaluateScript(model, maxUnits, cmdlineFlags.scriptHex)
		if err != nil {
			return err
		}
		enc, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(enc))
		return nil
	},
}

func init() {
	applyCmd.Flags().StringVar(&cmdlineFlags.scriptHex, "script", "", "hex-encoded double-CBOR script")
	applyCmd.Flags().StringVar(&cmdlineFlags.dataJSON, "data", "", "JSON-encoded Plutus Data argument")

	evaluateCmd.Flags().StringVar(&cmdlineFlags.scriptHex, "script", "", "hex-encoded double-CBOR script")
	evaluateCmd.Flags().StringVar(&cmdlineFlags.costModelPath, "cost-model", "", "path to cost model JSON")
	evaluateCmd.Flags().Int64Var(&cmdlineFlags.maxMem, "max-mem", 14_000_000, "execution memory ceiling")
	evaluateCmd.Flags().Int64Var(&cmdlineFlags.maxSteps, "max-steps", 10_000_000_000, "execution step ceiling")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(evaluateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
