package provider_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Badger (exercised by TestCachingProviderMirrorsFindUTxOs) runs background
// compaction goroutines; verify they wind down cleanly after each test run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
