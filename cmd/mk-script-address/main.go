// Command mk-script-address derives the enterprise address for a compiled
// Plutus script, the way a wallet would display it to a user before
// locking funds at that script.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gouplc/ffi"
	"github.com/blinklabs-io/gouplc/ledger"
)

var cmdlineFlags struct {
	network       string
	scriptData    string
	scriptPath    string
	plutusVersion int
}

func main() {
	flag.StringVar(&cmdlineFlags.scriptData, "script-data", "", "hex-encoded double-CBOR script")
	flag.StringVar(&cmdlineFlags.scriptPath, "script-path", "", "path to double-CBOR script file to load")
	flag.StringVar(&cmdlineFlags.network, "network", "mainnet", "named network to generate script address for")
	flag.IntVar(&cmdlineFlags.plutusVersion, "plutus-version", 2, "plutus version of script (1, 2, or 3)")
	flag.Parse()

	if (cmdlineFlags.scriptPath == "" && cmdlineFlags.scriptData == "") || cmdlineFlags.network == "" {
		fmt.Printf("ERROR: you must specify the network and script\n")
		os.Exit(1)
	}

	var network ledger.Network
	switch cmdlineFlags.network {
	case "mainnet":
		network = ledger.NetworkMainnet
	case "preprod", "preview", "testnet":
		network = ledger.NetworkTestnet
	default:
		fmt.Printf("ERROR: unknown named network: %s\n", cmdlineFlags.network)
		os.Exit(1)
	}

	var scriptHex string
	if cmdlineFlags.scriptData != "" {
		scriptHex = cmdlineFlags.scriptData
	} else {
		raw, err := os.ReadFile(cmdlineFlags.scriptPath)
		if err != nil {
			fmt.Printf("ERROR: failed to read script file: %s\n", err)
			os.Exit(1)
		}
		scriptHex = hex.EncodeToString(raw)
	}

	flatScript, err := ffi.UnwrapScript(scriptHex)
	if err != nil {
		fmt.Printf("ERROR: failed to unwrap double-CBOR script: %s\n", err)
		os.Exit(1)
	}

	// The script hash commits to the language version as a leading tag
	// byte ahead of the flat program bytes, so PlutusV1/V2/V3 scripts
	// with identical code still hash to distinct addresses.
	tagged := append([]byte{byte(cmdlineFlags.plutusVersion)}, flatScript...)
	scriptHash := ledger.Blake2b224Hash(tagged)

	address := ledger.NewEnterpriseAddress(network, ledger.ScriptHashCredential(scriptHash))
	bech32Addr, err := address.Bech32()
	if err != nil {
		fmt.Printf("ERROR: failed to encode address: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Script hash:    %x\n", scriptHash)
	fmt.Printf("Script address: %s\n", bech32Addr)
}
