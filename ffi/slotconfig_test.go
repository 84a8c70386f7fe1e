package ffi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blinklabs-io/gouplc/ffi"
)

func TestSlotConfigRoundTrip(t *testing.T) {
	cfg := ffi.SlotConfig{ZeroTime: 1000, ZeroSlot: 0, SlotLength: 1000}
	require.Equal(t, int64(11000), cfg.SlotToTime(10))
	require.Equal(t, uint64(10), cfg.TimeToSlot(11000))
}

func TestMainnetSlotConfigIsPositiveAtGenesis(t *testing.T) {
	require.True(t, ffi.MainnetSlotConfig.SlotToTime(ffi.MainnetSlotConfig.ZeroSlot) > 0)
}
