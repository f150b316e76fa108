// Package core holds the platform-neutral pieces shared by the device
// emulation and the terminal front end: the character screen and the
// per-tick button frame.
package core

// LCD geometry of the emulated booster pack: 128x128 pixels with an
// 8x8 font.
const (
	ScreenRows = 16
	ScreenCols = 16
)

// RuntimeConfig contains the settings the platform passes down at start.
type RuntimeConfig struct {
	Rows     int   // Screen height in characters
	Cols     int   // Screen width in characters
	TickRate int   // Control loop ticks per second
	Seed     int64 // Analog noise seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:     ScreenRows,
		Cols:     ScreenCols,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
