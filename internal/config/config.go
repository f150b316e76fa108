// Package config provides YAML-based configuration loading and pace
// presets for the color test.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Validation errors.
var (
	ErrInvalidTickRate = errors.New("config: tick_rate must be positive")
	ErrInvalidTiming   = errors.New("config: timing values must be positive")
	ErrNoKeys          = errors.New("config: both buttons need at least one key")
	ErrInvalidAnalog   = errors.New("config: analog center and jitter out of ADC range")
	ErrKeyConflict     = errors.New("config: key bound to both buttons")
	ErrReservedKey     = errors.New("config: key reserved for quit or help")
)

// Fixed front end bindings. Button keys may not reuse them.
var (
	QuitKeys = []string{"q", "ctrl+c"}
	HelpKeys = []string{"?"}
)

// Config contains all configuration for the color test.
type Config struct {
	TickRate int          `yaml:"tick_rate"`
	Seed     int64        `yaml:"seed"`
	Timing   TimingConfig `yaml:"timing"`
	Keys     KeysConfig   `yaml:"keys"`
	Analog   AnalogConfig `yaml:"analog"`
	Debug    DebugConfig  `yaml:"debug"`
	Log      LogConfig    `yaml:"log"`
}

// TimingConfig defines how long the timed screens stay up.
type TimingConfig struct {
	OpeningWait time.Duration `yaml:"opening_wait"`
	ResultWait  time.Duration `yaml:"result_wait"`
}

// KeysConfig maps terminal keys onto the two device buttons.
// Key names follow Bubble Tea's KeyMsg.String().
type KeysConfig struct {
	Top    []string `yaml:"top"`
	Bottom []string `yaml:"bottom"`
}

// AnalogConfig defines the emulated joystick.
type AnalogConfig struct {
	Center int `yaml:"center"`
	Jitter int `yaml:"jitter"`
}

// DebugConfig holds development aids.
type DebugConfig struct {
	RevealMix bool `yaml:"reveal_mix"` // print the hidden mix during a test
}

// LogConfig defines where logs go.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty discards logs
}

// adcMax is the largest reading of the 14-bit joystick converter.
const adcMax = 1<<14 - 1

// Validate checks the config for values the device cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTickRate, c.TickRate)
	}
	if c.Timing.OpeningWait <= 0 || c.Timing.ResultWait <= 0 {
		return fmt.Errorf("%w: opening_wait=%s result_wait=%s",
			ErrInvalidTiming, c.Timing.OpeningWait, c.Timing.ResultWait)
	}
	if len(c.Keys.Top) == 0 || len(c.Keys.Bottom) == 0 {
		return ErrNoKeys
	}
	for _, top := range c.Keys.Top {
		for _, bottom := range c.Keys.Bottom {
			if top == bottom {
				return fmt.Errorf("%w: %q", ErrKeyConflict, top)
			}
		}
	}
	for _, k := range append(append([]string{}, c.Keys.Top...), c.Keys.Bottom...) {
		if slices.Contains(QuitKeys, k) || slices.Contains(HelpKeys, k) {
			return fmt.Errorf("%w: %q", ErrReservedKey, k)
		}
	}
	if c.Analog.Center < 0 || c.Analog.Center > adcMax || c.Analog.Jitter < 0 || c.Analog.Jitter > adcMax {
		return fmt.Errorf("%w: center=%d jitter=%d", ErrInvalidAnalog, c.Analog.Center, c.Analog.Jitter)
	}
	return nil
}

// PacePreset represents a named set of screen durations.
type PacePreset string

const (
	PaceDevice  PacePreset = "device"  // the board's 1s / 2s
	PaceQuick   PacePreset = "quick"   // half as long
	PaceRelaxed PacePreset = "relaxed" // twice as long
)

// ParsePacePreset validates a preset name. Empty means no preset.
func ParsePacePreset(s string) (PacePreset, error) {
	switch p := PacePreset(s); p {
	case "", PaceDevice, PaceQuick, PaceRelaxed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown pace %q (want device, quick or relaxed)", s)
	}
}

// ApplyPacePreset modifies the timing based on a pace preset.
func ApplyPacePreset(cfg *Config, preset PacePreset) {
	base := DefaultConfig().Timing

	switch preset {
	case PaceDevice:
		cfg.Timing = base
	case PaceQuick:
		cfg.Timing.OpeningWait = base.OpeningWait / 2
		cfg.Timing.ResultWait = base.ResultWait / 2
	case PaceRelaxed:
		cfg.Timing.OpeningWait = base.OpeningWait * 2
		cfg.Timing.ResultWait = base.ResultWait * 2
	}
}
