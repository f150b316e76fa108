// colortest emulates the Color Test booster pack in the terminal: a
// hidden RGB mix is lit on three LEDs and you guess it with two buttons.
//
// Usage:
//
//	colortest                - Power on the board
//
// Flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Control loop tick rate
//	--seed <value>      - Analog noise seed for reproducible mixes
//	--pace <preset>     - Screen timing: device, quick, relaxed
//	--reveal            - Show the hidden mix during a test
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagPace     string
	flagReveal   bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colortest",
	Short: "Color Test - guess the RGB mix on the booster LEDs",
	Long: `Color Test lights a random mix of red, green and blue on the board's
LEDs. Guess which colors are in it.

Controls:
  BTM (b, down, space)   - Move the arrow / start a test
  TOP (t, up, enter)     - Select the color under the arrow
  q, ctrl+c              - Power off

Pace presets:
  device  - 1s opening, 2s result (the board timing)
  quick   - half as long
  relaxed - twice as long

Examples:
  colortest
  colortest --pace quick
  colortest --seed 42 --reveal
  colortest --config ./my-colortest.yaml --log-file ~/.colortest/colortest.log`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBoard,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Analog noise seed (0 = from config, then time)")
	rootCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: device, quick, relaxed")
	rootCmd.Flags().BoolVar(&flagReveal, "reveal", false, "Show the hidden mix during a test")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: from config, else discarded)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}
