package costmodel

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed assets/builtinCostModelV3.json
var defaultV3JSON []byte

var (
	defaultOnce  sync.Once
	defaultModel Model
	defaultErr   error
)

// DefaultV3 returns the PlutusV3 cost model shipped with this module,
// loaded from the embedded JSON snapshot. Callers running against a live protocol
// parameter set should use LoadFromJSON instead.
func DefaultV3() (Model, error) {
	defaultOnce.Do(func() {
		defaultModel, defaultErr = ParseJSON(defaultV3JSON)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("costmodel: embedded default model: %w", defaultErr)
		}
	})
	return defaultModel, defaultErr
}
