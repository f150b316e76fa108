package colortest

import (
	"time"

	"github.com/vovakirdan/colortest/internal/core"
	"github.com/vovakirdan/colortest/internal/device"
)

// seqAnalog replays fixed (x, y) readings, repeating the last one.
type seqAnalog struct {
	samples [][2]int
	calls   int
}

func (a *seqAnalog) Sample() (int, int) {
	i := a.calls
	if i >= len(a.samples) {
		i = len(a.samples) - 1
	}
	a.calls++
	return a.samples[i][0], a.samples[i][1]
}

// seqBits replays fixed bits, then false.
type seqBits struct {
	bits  []bool
	calls int
}

func (b *seqBits) Bit() bool {
	b.calls++
	if b.calls > len(b.bits) {
		return false
	}
	return b.bits[b.calls-1]
}

// bitsFor returns a source that generates exactly mix.
func bitsFor(mix ColorMix) *seqBits {
	return &seqBits{bits: []bool{mix.Red, mix.Green, mix.Blue}}
}

// stubButtons reports fixed presses.
type stubButtons struct {
	top, bottom bool
}

func (b stubButtons) TopPressed() bool    { return b.top }
func (b stubButtons) BottomPressed() bool { return b.bottom }

// stubTimer expires when the test says so.
type stubTimer struct {
	started []time.Duration
	fire    bool
}

func (t *stubTimer) Start(d time.Duration) {
	t.started = append(t.started, d)
	t.fire = false
}

func (t *stubTimer) Expired() bool {
	if t.fire {
		t.fire = false
		return true
	}
	return false
}

// rig wires a ScreenMachine to inspectable peripherals.
type rig struct {
	screen  *core.Screen
	leds    *device.LEDBank
	buttons *device.ButtonPanel
	timer   *stubTimer
	machine *ScreenMachine
}

func newRig(bits BitSource, opts ...Option) *rig {
	r := &rig{
		screen:  core.NewScreen(core.ScreenRows, core.ScreenCols),
		leds:    device.NewLEDBank(),
		buttons: device.NewButtonPanel(),
		timer:   &stubTimer{},
	}
	p := Peripherals{
		Display:    r.screen,
		Indicators: r.leds,
		Buttons:    r.buttons,
		Analog:     &seqAnalog{samples: [][2]int{{0, 0}}},
		Timer:      r.timer,
	}
	opts = append([]Option{WithBitSource(bits)}, opts...)
	r.machine = NewScreenMachine(p, opts...)
	return r
}

// tick runs one tick with the given presses, then clears them.
func (r *rig) tick(presses ...core.Button) Outcome {
	for _, b := range presses {
		r.buttons.Press(b)
	}
	out := r.machine.Step()
	r.buttons.Clear()
	return out
}

// toInstructions boots the machine and lets the opening timer run out.
func (r *rig) toInstructions() {
	r.tick()
	r.timer.fire = true
	r.tick()
}

// startTest moves from Instructions to an interactive test. The tick
// after BOTTOM carries the new-test signal, so the test machine leaves
// any phase a previous test left it in before the wait starts.
func (r *rig) startTest() {
	r.tick(core.ButtonBottom)
	r.tick()
	for r.machine.Test().Phase() != PhaseInteracting {
		r.tick()
	}
}
