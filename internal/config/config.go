package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/blinklabs-io/gouplc/ledger"
)

type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Debug      DebugConfig      `yaml:"debug"`
	Storage    StorageConfig    `yaml:"storage"`
	Wallet     WalletConfig     `yaml:"wallet"`
	CostModels CostModelsConfig `yaml:"costModels"`
	Network    string           `yaml:"network" envconfig:"NETWORK"`
	// Profiles selects which per-language cost-model sets this process
	// loads; each entry must name a profile registered for Network in
	// profiles.go.
	Profiles []string `yaml:"profiles" envconfig:"PROFILES"`
}

type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LOGGING_LEVEL"`
}

type DebugConfig struct {
	ListenAddress string `yaml:"address" envconfig:"DEBUG_ADDRESS"`
	ListenPort    uint   `yaml:"port" envconfig:"DEBUG_PORT"`
}

type StorageConfig struct {
	Directory string `yaml:"dir" envconfig:"STORAGE_DIR"`
}

type WalletConfig struct {
	Mnemonic string `yaml:"mnemonic" envconfig:"MNEMONIC"`
}

// CostModelsConfig points at the on-disk cost-model JSON snapshot (§6.2)
// for each Plutus language version this process might evaluate scripts
// under.
type CostModelsConfig struct {
	PlutusV1 string `yaml:"plutusV1" envconfig:"COST_MODEL_V1"`
	PlutusV2 string `yaml:"plutusV2" envconfig:"COST_MODEL_V2"`
	PlutusV3 string `yaml:"plutusV3" envconfig:"COST_MODEL_V3"`
}

func (c CostModelsConfig) PathFor(language ledger.ScriptLanguage) (string, error) {
	switch language {
	case ledger.PlutusV1:
		return c.PlutusV1, nil
	case ledger.PlutusV2:
		return c.PlutusV2, nil
	case ledger.PlutusV3:
		return c.PlutusV3, nil
	default:
		return "", fmt.Errorf("config: no cost model path configured for language %v", language)
	}
}

// Singleton config instance with default values
var globalConfig = &Config{
	Network:  "mainnet",
	Profiles: []string{"mainnet-v2", "mainnet-v3"},
	Logging: LoggingConfig{
		Level: "info",
	},
	Debug: DebugConfig{
		ListenAddress: "localhost",
		ListenPort:    0,
	},
	Storage: StorageConfig{
		Directory: "./.gouplc",
	},
}

func Load(configFile string) (*Config, error) {
	// Load config file as YAML if provided
	if configFile != "" {
		buf, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %s", err)
		}
		err = yaml.Unmarshal(buf, globalConfig)
		if err != nil {
			return nil, fmt.Errorf("error parsing config file: %s", err)
		}
	}
	// Load config values from environment variables
	// We use "dummy" as the app name here to (mostly) prevent picking up env
	// vars that we hadn't explicitly specified in annotations above
	err := envconfig.Process("dummy", globalConfig)
	if err != nil {
		return nil, fmt.Errorf("error processing environment: %s", err)
	}
	// Check profiles
	availableProfiles := GetAvailableProfiles()
	for _, profile := range globalConfig.Profiles {
		foundProfile := false
		for _, availableProfile := range availableProfiles {
			if profile == availableProfile {
				foundProfile = true
				break
			}
		}
		if !foundProfile {
			return nil, fmt.Errorf("unknown profile: %s: available profiles: %s", profile, strings.Join(availableProfiles, ","))
		}
	}
	return globalConfig, nil
}

// Return global config instance
func GetConfig() *Config {
	return globalConfig
}
