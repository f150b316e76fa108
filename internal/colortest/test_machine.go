package colortest

import (
	"fmt"

	"github.com/vovakirdan/colortest/internal/device"
)

// TestPhase is the stage of a single test.
type TestPhase int

const (
	PhaseGenerating  TestPhase = iota // building the hidden mix
	PhasePresenting                   // lighting the hidden mix, one tick
	PhaseInteracting                  // user is guessing
)

// String returns a human-readable name for the phase.
func (p TestPhase) String() string {
	switch p {
	case PhaseGenerating:
		return "Generating"
	case PhasePresenting:
		return "Presenting"
	case PhaseInteracting:
		return "Interacting"
	default:
		return "Unknown"
	}
}

// TestMachine runs one test at a time: generate a hidden mix, light it,
// then collect the guess. All per-test state lives here and is reset in
// one place when a new test starts.
type TestMachine struct {
	display    device.Display
	indicators device.Indicators
	generator  *MixGenerator
	reveal     bool

	phase  TestPhase
	hidden ColorMix
	guess  ColorMix
	cursor MenuCursor
}

// NewTestMachine creates a test machine. reveal prints the hidden mix
// on the display while it is presented, for debugging.
func NewTestMachine(d device.Display, ind device.Indicators, bits BitSource, reveal bool) *TestMachine {
	return &TestMachine{
		display:    d,
		indicators: ind,
		generator:  NewMixGenerator(bits),
		reveal:     reveal,
	}
}

// Step advances the test by one tick. newTest abandons whatever was in
// progress and starts over. finished is true on the tick the user picks
// End; right is only meaningful then.
func (m *TestMachine) Step(newTest bool, buttons device.Buttons) (finished, right bool) {
	if newTest {
		m.reset()
	}

	switch m.phase {
	case PhaseGenerating:
		if mix, done := m.generator.Step(newTest); done {
			m.hidden = mix
			m.phase = PhasePresenting
		}

	case PhasePresenting:
		for _, ch := range device.Channels {
			if m.hidden.Has(ch) {
				m.indicators.Set(ch, true)
			}
		}
		if m.reveal {
			drawReveal(m.display, m.hidden)
		}
		m.phase = PhaseInteracting

	case PhaseInteracting:
		m.cursor, m.guess, finished = Guess(m.cursor, m.guess,
			buttons.BottomPressed(), buttons.TopPressed(), m.display)

	default:
		panic(fmt.Sprintf("colortest: unknown test phase %d", m.phase))
	}

	if finished {
		right = Match(m.guess, m.hidden)
	}
	return finished, right
}

func (m *TestMachine) reset() {
	m.phase = PhaseGenerating
	m.hidden = ColorMix{}
	m.guess = ColorMix{}
	m.cursor = OptionRed
	for _, ch := range device.Channels {
		m.indicators.Set(ch, false)
	}
}

// Phase returns the current test phase.
func (m *TestMachine) Phase() TestPhase {
	return m.phase
}

// Hidden returns the hidden mix. It is only complete once the machine
// has left PhaseGenerating.
func (m *TestMachine) Hidden() ColorMix {
	return m.hidden
}

// Guessed returns the primaries selected so far.
func (m *TestMachine) Guessed() ColorMix {
	return m.guess
}

// Cursor returns the menu option under the arrow.
func (m *TestMachine) Cursor() MenuCursor {
	return m.cursor
}
