package device

import "github.com/vovakirdan/colortest/internal/core"

// ButtonPanel exposes one tick's worth of presses as the Buttons the
// state machines poll. The front end feeds it key presses and clears it
// after every tick, so a press nobody looks at during that tick is lost.
type ButtonPanel struct {
	frame core.InputFrame
}

// NewButtonPanel creates a panel with nothing pressed.
func NewButtonPanel() *ButtonPanel {
	return &ButtonPanel{frame: core.NewInputFrame()}
}

// Press records a press for the current tick.
func (p *ButtonPanel) Press(b core.Button) {
	if b == core.ButtonNone {
		return
	}
	p.frame.Set(b)
}

// TopPressed reports a top button edge in this tick.
func (p *ButtonPanel) TopPressed() bool {
	return p.frame.Has(core.ButtonTop)
}

// BottomPressed reports a bottom button edge in this tick.
func (p *ButtonPanel) BottomPressed() bool {
	return p.frame.Has(core.ButtonBottom)
}

// Clear drops every press, ending the tick.
func (p *ButtonPanel) Clear() {
	p.frame.Clear()
}
