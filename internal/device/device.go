// Package device defines the peripherals the color test talks to and
// provides in-process emulations of them. None of them make decisions:
// they draw, light, sample or report, nothing more.
package device

import "time"

// Channel identifies one of the three indicator LEDs.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists every indicator in generation order.
var Channels = [...]Channel{Red, Green, Blue}

// String returns the color name of the channel.
func (c Channel) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// Display is a character display addressed by (row, col).
type Display interface {
	Clear()
	DrawText(row, col int, s string)
	DrawChar(row, col int, ch rune)
}

// Indicators drives the three RGB LEDs.
type Indicators interface {
	Set(ch Channel, on bool)
}

// Buttons reports debounced, edge-style presses of the two buttons.
type Buttons interface {
	TopPressed() bool
	BottomPressed() bool
}

// AnalogSource samples two independent analog channels.
type AnalogSource interface {
	Sample() (int, int)
}

// Timer is a polled one-shot timer.
type Timer interface {
	Start(d time.Duration)
	Expired() bool
}
