package colortest

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colortest/internal/device"
)

// ScreenPhase is the screen currently shown.
type ScreenPhase int

const (
	ScreenOpening ScreenPhase = iota
	ScreenInstructions
	ScreenTest
	ScreenResult
)

// String returns a human-readable name for the screen.
func (p ScreenPhase) String() string {
	switch p {
	case ScreenOpening:
		return "Opening"
	case ScreenInstructions:
		return "Instructions"
	case ScreenTest:
		return "Test"
	case ScreenResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Default screen durations of the board.
const (
	DefaultOpeningWait = time.Second
	DefaultResultWait  = 2 * time.Second
)

// Timing sets how long the timed screens stay up.
type Timing struct {
	OpeningWait time.Duration
	ResultWait  time.Duration
}

// DefaultTiming returns the board durations.
func DefaultTiming() Timing {
	return Timing{
		OpeningWait: DefaultOpeningWait,
		ResultWait:  DefaultResultWait,
	}
}

// Peripherals bundles the collaborators the machines drive.
type Peripherals struct {
	Display    device.Display
	Indicators device.Indicators
	Buttons    device.Buttons
	Analog     device.AnalogSource
	Timer      device.Timer
}

// Outcome describes what one tick of the screen machine did.
type Outcome struct {
	Phase    ScreenPhase // screen after the tick
	Changed  bool        // a transition fired this tick
	Finished bool        // a test ended this tick
	Right    bool        // verdict of the test that ended, if Finished
}

// ScreenMachine is the root state machine. It decides which screen is
// drawn and when, and runs a TestMachine while the test screen is up.
// Every action it takes is the output of a transition.
type ScreenMachine struct {
	dev    Peripherals
	timing Timing
	test   *TestMachine
	logger *log.Logger

	phase   ScreenPhase
	booted  bool
	newTest bool
	tests   int
}

// Option configures a ScreenMachine.
type Option func(*ScreenMachine)

// WithLogger sets the logger transitions are reported to.
func WithLogger(l *log.Logger) Option {
	return func(m *ScreenMachine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithTiming overrides the screen durations.
func WithTiming(t Timing) Option {
	return func(m *ScreenMachine) {
		m.timing = t
	}
}

// WithReveal prints the hidden mix during each test.
func WithReveal(reveal bool) Option {
	return func(m *ScreenMachine) {
		m.test.reveal = reveal
	}
}

// WithBitSource replaces the analog jitter bit source.
func WithBitSource(bits BitSource) Option {
	return func(m *ScreenMachine) {
		m.test.generator = NewMixGenerator(bits)
	}
}

// NewScreenMachine creates the root machine. Nothing is drawn until
// the first Step.
func NewScreenMachine(p Peripherals, opts ...Option) *ScreenMachine {
	m := &ScreenMachine{
		dev:    p,
		timing: DefaultTiming(),
		logger: log.New(io.Discard),
		phase:  ScreenOpening,
	}
	m.test = NewTestMachine(p.Display, p.Indicators, NewJitterBits(p.Analog), false)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Step runs one tick of the application.
func (m *ScreenMachine) Step() Outcome {
	if !m.booted {
		m.booted = true
		drawOpeningScreen(m.dev.Display)
		m.dev.Timer.Start(m.timing.OpeningWait)
		m.logger.Debug("opening", "wait", m.timing.OpeningWait)
		return Outcome{Phase: ScreenOpening, Changed: true}
	}

	out := Outcome{Phase: m.phase}

	switch m.phase {
	case ScreenOpening:
		if m.dev.Timer.Expired() {
			m.enter(ScreenInstructions)
			drawInstructionsScreen(m.dev.Display)
			out.Changed = true
		}

	case ScreenInstructions:
		if m.dev.Buttons.BottomPressed() {
			m.enter(ScreenTest)
			m.newTest = true
			drawTestScreen(m.dev.Display)
			out.Changed = true
		}

	case ScreenTest:
		finished, right := m.test.Step(m.newTest, m.dev.Buttons)
		m.newTest = false
		if finished {
			m.tests++
			m.enter(ScreenResult)
			drawResultScreen(m.dev.Display, right)
			m.dev.Timer.Start(m.timing.ResultWait)
			m.logger.Info("test finished",
				"test", m.tests,
				"right", right,
				"hidden", m.test.Hidden().String(),
				"guess", m.test.Guessed().String(),
			)
			out.Changed = true
			out.Finished = true
			out.Right = right
		}

	case ScreenResult:
		if m.dev.Timer.Expired() {
			m.enter(ScreenInstructions)
			drawInstructionsScreen(m.dev.Display)
			out.Changed = true
		}

	default:
		panic(fmt.Sprintf("colortest: unknown screen phase %d", m.phase))
	}

	out.Phase = m.phase
	return out
}

func (m *ScreenMachine) enter(next ScreenPhase) {
	m.logger.Debug("screen", "from", m.phase, "to", next)
	m.phase = next
}

// Phase returns the screen currently shown.
func (m *ScreenMachine) Phase() ScreenPhase {
	return m.phase
}

// Test returns the inner test machine.
func (m *ScreenMachine) Test() *TestMachine {
	return m.test
}

// TestsRun returns how many tests have finished since start.
func (m *ScreenMachine) TestsRun() int {
	return m.tests
}
