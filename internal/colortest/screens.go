package colortest

import "github.com/vovakirdan/colortest/internal/device"

// revealRow is where the debug reveal prints the hidden primaries.
const revealRow = 9

func drawOpeningScreen(d device.Display) {
	d.Clear()
	d.DrawText(2, 2, "COLOR TEST")
	d.DrawText(3, 3, "by")
	d.DrawText(4, 2, "LN")
}

func drawInstructionsScreen(d device.Display) {
	d.Clear()
	d.DrawText(1, 1, "Guess RGB mix.")
	d.DrawText(2, 1, "During test:")
	d.DrawText(3, 1, "BTM: move arrow")
	d.DrawText(4, 1, "TOP: select")
	d.DrawText(7, 1, "BTM to start")
}

func drawTestScreen(d device.Display) {
	d.Clear()
	for c := OptionRed; c <= OptionEnd; c++ {
		d.DrawText(c.Row(), 3, c.String())
	}
	d.DrawText(6, 1, "BTM: move arrow")
	d.DrawText(7, 1, "TOP: select")

	d.DrawChar(OptionRed.Row(), arrowCol, arrowChar)
}

func drawResultScreen(d device.Display, right bool) {
	d.Clear()
	if right {
		d.DrawText(2, 3, "Right!")
	} else {
		d.DrawText(2, 3, "Wrong!")
	}
}

// drawReveal prints the initial of every primary in the hidden mix.
func drawReveal(d device.Display, mix ColorMix) {
	for i, ch := range device.Channels {
		if mix.Has(ch) {
			d.DrawChar(revealRow, 1+i, rune(ch.String()[0]))
		}
	}
}
