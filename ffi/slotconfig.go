// Package ffi exposes the small wire-level bindings a host process uses to
// drive the evaluator without linking Go directly: applying a JSON-encoded
// Plutus Data argument to a compiled script, evaluating a script in
// isolation, and evaluating every script a transaction attaches (§6.1).
package ffi

// SlotConfig converts between ledger slot numbers and POSIX milliseconds,
// per era-specific shelley genesis parameters.
type SlotConfig struct {
	ZeroTime   int64 // POSIX ms of slot ZeroSlot
	ZeroSlot   uint64
	SlotLength int64 // ms per slot
}

// SlotToTime converts a slot number to POSIX milliseconds.
func (c SlotConfig) SlotToTime(slot uint64) int64 {
	delta := int64(slot-c.ZeroSlot) * c.SlotLength
	return c.ZeroTime + delta
}

// TimeToSlot converts POSIX milliseconds to a slot number, floored to the
// containing slot.
func (c SlotConfig) TimeToSlot(timeMs int64) uint64 {
	delta := timeMs - c.ZeroTime
	return c.ZeroSlot + uint64(delta/c.SlotLength)
}

// MainnetSlotConfig is Cardano mainnet's Shelley-era slot configuration:
// ZeroTime is the start of slot 4492800, the Byron-to-Shelley transition.
var MainnetSlotConfig = SlotConfig{ZeroTime: 1596059091000, ZeroSlot: 4492800, SlotLength: 1000}

// PreviewSlotConfig is the Preview testnet's slot configuration.
var PreviewSlotConfig = SlotConfig{ZeroTime: 1666656000000, ZeroSlot: 0, SlotLength: 1000}

// PreprodSlotConfig is the Pre-production testnet's slot configuration.
var PreprodSlotConfig = SlotConfig{ZeroTime: 1654041600000 + 1728000000, ZeroSlot: 86400, SlotLength: 1000}
