// Package colortest implements the Color Test device logic: a hidden
// RGB mix is generated from analog noise, lit on the indicators, and the
// user guesses it through a two-button menu.
//
// Two state machines run it. ScreenMachine walks the screens
// (opening, instructions, test, result) and hands control to
// TestMachine for the duration of a test. Both are stepped once per
// tick from a single cooperative loop and never block.
package colortest

import (
	"strings"

	"github.com/vovakirdan/colortest/internal/device"
)

// ColorMix records which of the three primaries are present.
// Every combination is valid, including all-dark.
type ColorMix struct {
	Red   bool
	Green bool
	Blue  bool
}

// Has reports whether the mix contains the given primary.
func (m ColorMix) Has(ch device.Channel) bool {
	switch ch {
	case device.Red:
		return m.Red
	case device.Green:
		return m.Green
	case device.Blue:
		return m.Blue
	default:
		return false
	}
}

// With returns a copy of the mix with ch set to on.
func (m ColorMix) With(ch device.Channel, on bool) ColorMix {
	switch ch {
	case device.Red:
		m.Red = on
	case device.Green:
		m.Green = on
	case device.Blue:
		m.Blue = on
	}
	return m
}

// String renders the mix as "RGB" letters, "-" for absent primaries.
func (m ColorMix) String() string {
	var sb strings.Builder
	for _, ch := range device.Channels {
		if m.Has(ch) {
			sb.WriteString(ch.String()[:1])
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Match reports whether the guess has exactly the primaries of actual.
func Match(guess, actual ColorMix) bool {
	return guess.Red == actual.Red &&
		guess.Green == actual.Green &&
		guess.Blue == actual.Blue
}
