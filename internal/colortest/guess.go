package colortest

import "github.com/vovakirdan/colortest/internal/device"

// MenuCursor is the position of the arrow on the test menu.
type MenuCursor int

// Menu options, top to bottom.
const (
	OptionRed MenuCursor = iota
	OptionGreen
	OptionBlue
	OptionEnd

	optionCount = 4
)

// Menu layout on the test screen.
const (
	menuTopRow  = 1 // row of OptionRed
	arrowCol    = 1
	selectedCol = 9

	arrowChar    = '>'
	selectedChar = '*'
)

// String returns the menu label of the option.
func (c MenuCursor) String() string {
	switch c {
	case OptionRed:
		return "Red"
	case OptionGreen:
		return "Green"
	case OptionBlue:
		return "Blue"
	case OptionEnd:
		return "End test"
	default:
		return "Unknown"
	}
}

// Next moves one option down, wrapping from End back to Red.
func (c MenuCursor) Next() MenuCursor {
	return (c + 1) % optionCount
}

// Channel returns the primary an option selects. End and anything out
// of range select none.
func (c MenuCursor) Channel() (device.Channel, bool) {
	switch c {
	case OptionRed:
		return device.Red, true
	case OptionGreen:
		return device.Green, true
	case OptionBlue:
		return device.Blue, true
	default:
		return 0, false
	}
}

// Row returns the display row the option is printed on.
func (c MenuCursor) Row() int {
	return menuTopRow + int(c)
}

// Guess applies one tick of button input to the menu. A bottom press
// moves the arrow down; a top press marks the option under the arrow
// and either adds its primary to the guess or, on End, finishes the
// test. Both presses may land in the same tick, in which case the arrow
// moves first.
//
// A cursor outside the menu is treated like End.
func Guess(cursor MenuCursor, guess ColorMix, bottom, top bool, d device.Display) (MenuCursor, ColorMix, bool) {
	finished := false

	if bottom {
		d.DrawChar(cursor.Row(), arrowCol, ' ')
		cursor = cursor.Next()
		d.DrawChar(cursor.Row(), arrowCol, arrowChar)
	}

	if top {
		d.DrawChar(cursor.Row(), selectedCol, selectedChar)
		if ch, ok := cursor.Channel(); ok {
			guess = guess.With(ch, true)
		} else {
			finished = true
		}
	}

	return cursor, guess, finished
}
