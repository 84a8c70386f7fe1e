package config

import "slices"

// Profile names a cost-model snapshot to load for a given Plutus language
// on a given network. A profile's model comes from the CostModelsConfig
// path for its language, so every profile of one language reads the same
// file; a profile cannot select a different cost model.
type Profile struct {
	Name         string
	Language     string // "PlutusV1", "PlutusV2", "PlutusV3"
	CostModelEnv string // config/env key this profile's model is sourced from
}

func GetProfiles() []Profile {
	var ret []Profile
	if networkProfiles, ok := Profiles[globalConfig.Network]; ok {
		for k, profile := range networkProfiles {
			if slices.Contains(globalConfig.Profiles, k) {
				ret = append(ret, profile)
			}
		}
	}
	return ret
}

func GetAvailableProfiles() []string {
	var ret []string
	if networkProfiles, ok := Profiles[globalConfig.Network]; ok {
		for k := range networkProfiles {
			ret = append(ret, k)
		}
	}
	return ret
}

// Profiles is keyed by network, then profile name. Each network gets one
// profile per supported Plutus language; CostModelEnv documents which
// CostModelsConfig field backs it at load time.
var Profiles = map[string]map[string]Profile{
	"mainnet": {
		"mainnet-v1": {Name: "mainnet-v1", Language: "PlutusV1", CostModelEnv: "COST_MODEL_V1"},
		"mainnet-v2": {Name: "mainnet-v2", Language: "PlutusV2", CostModelEnv: "COST_MODEL_V2"},
		"mainnet-v3": {Name: "mainnet-v3", Language: "PlutusV3", CostModelEnv: "COST_MODEL_V3"},
	},
	"preprod": {
		"preprod-v1": {Name: "preprod-v1", Language: "PlutusV1", CostModelEnv: "COST_MODEL_V1"},
		"preprod-v2": {Name: "preprod-v2", Language: "PlutusV2", CostModelEnv: "COST_MODEL_V2"},
		"preprod-v3": {Name: "preprod-v3", Language: "PlutusV3", CostModelEnv: "COST_MODEL_V3"},
	},
	"preview": {
		"preview-v1": {Name: "preview-v1", Language: "PlutusV1", CostModelEnv: "COST_MODEL_V1"},
		"preview-v2": {Name: "preview-v2", Language: "PlutusV2", CostModelEnv: "COST_MODEL_V2"},
		"preview-v3": {Name: "preview-v3", Language: "PlutusV3", CostModelEnv: "COST_MODEL_V3"},
	},
}
