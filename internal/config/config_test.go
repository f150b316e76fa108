package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory failed: %v", err)
		}
	})
}

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults %+v differ from DefaultConfig() %+v", cfg, DefaultConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadEmbeddedWhenNothingElse(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.OpeningWait != time.Second || cfg.Timing.ResultWait != 2*time.Second {
		t.Errorf("timing = %+v, expected board defaults", cfg.Timing)
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", `
timing:
  result_wait: 3500ms
keys:
  top: ["x"]
debug:
  reveal_mix: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.ResultWait != 3500*time.Millisecond {
		t.Errorf("result_wait = %s, expected 3.5s", cfg.Timing.ResultWait)
	}
	if cfg.Timing.OpeningWait != time.Second {
		t.Errorf("opening_wait = %s, expected default to survive", cfg.Timing.OpeningWait)
	}
	if !reflect.DeepEqual(cfg.Keys.Top, []string{"x"}) {
		t.Errorf("keys.top = %v, expected [x]", cfg.Keys.Top)
	}
	if !reflect.DeepEqual(cfg.Keys.Bottom, DefaultConfig().Keys.Bottom) {
		t.Errorf("keys.bottom = %v, expected defaults", cfg.Keys.Bottom)
	}
	if !cfg.Debug.RevealMix {
		t.Error("reveal_mix should be true")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := writeConfig(t, dir, "bad.yaml", "timing: [not, a, map")
	if _, err := Load(bad); err == nil {
		t.Error("unparsable custom config should fail")
	}

	invalid := writeConfig(t, dir, "invalid.yaml", "tick_rate: 0\n")
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidTickRate) {
		t.Errorf("Load(invalid) error = %v, expected ErrInvalidTickRate", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".colortest", "config.yaml"), "tick_rate: 30\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("tick_rate = %d, expected 30 from the user config", cfg.TickRate)
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".colortest", "config.yaml"), "tick_rate: -5\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 60 {
		t.Errorf("tick_rate = %d, invalid user config should be skipped", cfg.TickRate)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, dir, filepath.Join("configs", "colortest.yaml"), "tick_rate: 24\n")
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 24 {
		t.Errorf("tick_rate = %d, expected 24 from ./configs", cfg.TickRate)
	}
}

func TestLoadUserConfigBeatsLocal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".colortest", "config.yaml"), "tick_rate: 30\n")
	dir := t.TempDir()
	writeConfig(t, dir, filepath.Join("configs", "colortest.yaml"), "tick_rate: 24\n")
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TickRate != 30 {
		t.Errorf("tick_rate = %d, expected the user config to win", cfg.TickRate)
	}
}

func TestLoadSkipsInvalidLocalConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, dir, filepath.Join("configs", "colortest.yaml"), "keys:\n  top: [\"q\"]\n")
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Keys.Top, DefaultConfig().Keys.Top) {
		t.Errorf("keys.top = %v, invalid local config should be skipped", cfg.Keys.Top)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"defaults", func(*Config) {}, nil},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, ErrInvalidTickRate},
		{"zero opening", func(c *Config) { c.Timing.OpeningWait = 0 }, ErrInvalidTiming},
		{"negative result", func(c *Config) { c.Timing.ResultWait = -time.Second }, ErrInvalidTiming},
		{"no top keys", func(c *Config) { c.Keys.Top = nil }, ErrNoKeys},
		{"no bottom keys", func(c *Config) { c.Keys.Bottom = []string{} }, ErrNoKeys},
		{"shared key", func(c *Config) { c.Keys.Bottom = append(c.Keys.Bottom, "t") }, ErrKeyConflict},
		{"top on quit", func(c *Config) { c.Keys.Top = []string{"q"} }, ErrReservedKey},
		{"bottom on ctrl+c", func(c *Config) { c.Keys.Bottom = append(c.Keys.Bottom, "ctrl+c") }, ErrReservedKey},
		{"top on help", func(c *Config) { c.Keys.Top = append(c.Keys.Top, "?") }, ErrReservedKey},
		{"center too high", func(c *Config) { c.Analog.Center = 1 << 14 }, ErrInvalidAnalog},
		{"negative jitter", func(c *Config) { c.Analog.Jitter = -1 }, ErrInvalidAnalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestPacePresets(t *testing.T) {
	tests := []struct {
		preset  PacePreset
		opening time.Duration
		result  time.Duration
	}{
		{PaceDevice, time.Second, 2 * time.Second},
		{PaceQuick, 500 * time.Millisecond, time.Second},
		{PaceRelaxed, 2 * time.Second, 4 * time.Second},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Timing.OpeningWait = 7 * time.Second
		ApplyPacePreset(&cfg, tt.preset)
		if cfg.Timing.OpeningWait != tt.opening || cfg.Timing.ResultWait != tt.result {
			t.Errorf("%s: timing = %+v, expected %s/%s", tt.preset, cfg.Timing, tt.opening, tt.result)
		}
	}

	// No preset leaves the file's timing alone
	cfg := DefaultConfig()
	cfg.Timing.OpeningWait = 7 * time.Second
	ApplyPacePreset(&cfg, "")
	if cfg.Timing.OpeningWait != 7*time.Second {
		t.Error("empty preset should not touch timing")
	}
}

func TestParsePacePreset(t *testing.T) {
	for _, s := range []string{"", "device", "quick", "relaxed"} {
		if _, err := ParsePacePreset(s); err != nil {
			t.Errorf("ParsePacePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePacePreset("turbo"); err == nil {
		t.Error("ParsePacePreset(turbo) should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.colortest/colortest.log")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".colortest", "colortest.log"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("absolute path changed to %q", got)
	}
}
