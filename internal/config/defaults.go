package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/colortest.yaml
var defaultYAML []byte

// DefaultConfig returns the default color test configuration.
func DefaultConfig() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		Timing: TimingConfig{
			OpeningWait: time.Second,
			ResultWait:  2 * time.Second,
		},
		Keys: KeysConfig{
			Top:    []string{"t", "up", "enter"},
			Bottom: []string{"b", "down", " "},
		},
		Analog: AnalogConfig{
			Center: 8192,
			Jitter: 48,
		},
		Debug: DebugConfig{
			RevealMix: false,
		},
		Log: LogConfig{
			Level: "info",
			File:  "",
		},
	}
}
