package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colortest/internal/colortest"
	"github.com/vovakirdan/colortest/internal/config"
	"github.com/vovakirdan/colortest/internal/core"
	"github.com/vovakirdan/colortest/internal/device"
)

// Model is the Bubble Tea model running the emulated board.
// Every TickMsg is one pass of the device's main loop.
type Model struct {
	machine *colortest.ScreenMachine
	screen  *core.Screen
	leds    *device.LEDBank
	buttons *device.ButtonPanel
	timer   *device.OneShot
	keys    KeyMap
	help    help.Model
	theme   Theme
	config  core.RuntimeConfig
	logger  *log.Logger

	last     colortest.Outcome
	right    int
	wrong    int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the board.
func NewModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	return newModel(cfg, rt, logger, time.Now)
}

func newModel(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger, clock device.Clock) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(rt.Rows, rt.Cols)
	leds := device.NewLEDBank()
	buttons := device.NewButtonPanel()
	timer := device.NewOneShot(clock)

	machine := colortest.NewScreenMachine(
		colortest.Peripherals{
			Display:    screen,
			Indicators: leds,
			Buttons:    buttons,
			Analog:     device.NewJoystick(rt.Seed, cfg.Analog.Center, cfg.Analog.Jitter),
			Timer:      timer,
		},
		colortest.WithTiming(colortest.Timing{
			OpeningWait: cfg.Timing.OpeningWait,
			ResultWait:  cfg.Timing.ResultWait,
		}),
		colortest.WithReveal(cfg.Debug.RevealMix),
		colortest.WithLogger(logger),
	)

	return Model{
		machine: machine,
		screen:  screen,
		leds:    leds,
		buttons: buttons,
		timer:   timer,
		keys:    NewKeyMap(cfg.Keys),
		help:    help.New(),
		theme:   DefaultTheme(),
		config:  rt,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("starting", "tick_rate", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey latches a button press for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	button, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quitting", "tests", m.machine.TestsRun(), "right", m.right, "wrong", m.wrong)
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.buttons.Press(button)
	return m, nil
}

// handleTick runs one pass of the control loop.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	out := m.machine.Step()
	if out.Finished {
		if out.Right {
			m.right++
		} else {
			m.wrong++
		}
	}
	m.last = out

	// Presses not consumed this tick are lost
	m.buttons.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the board, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := fmt.Sprintf("%s  right %d  wrong %d", m.last.Phase, m.right, m.wrong)
	if m.timer.Running() {
		status += fmt.Sprintf("  next in %.1fs", m.timer.Remaining().Seconds())
	}
	return m.theme.RenderBoard(m.screen, m.leds) + "\n" +
		m.theme.Status.Render(status) + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
