package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colortest/internal/core"
	"github.com/vovakirdan/colortest/internal/device"
)

// Theme holds the styles of the emulated board.
type Theme struct {
	LCD      lipgloss.Style
	LEDOff   lipgloss.Style
	LEDOn    map[device.Channel]lipgloss.Style
	Label    lipgloss.Style
	Status   lipgloss.Style
	Board    lipgloss.Style
	LampChar string
}

// DefaultTheme returns the booster pack look: white text on a black LCD.
func DefaultTheme() Theme {
	return Theme{
		LCD: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("0")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")),
		LEDOff: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		LEDOn: map[device.Channel]lipgloss.Style{
			device.Red:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			device.Green: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			device.Blue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		},
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Board:    lipgloss.NewStyle().Padding(1, 2),
		LampChar: "●",
	}
}

// RenderLCD draws the character screen inside its bezel.
func (t Theme) RenderLCD(s *core.Screen) string {
	return t.LCD.
		Width(s.Cols()).
		Height(s.Rows()).
		Render(strings.Join(s.Lines(), "\n"))
}

// RenderLEDs draws the three indicators side by side.
func (t Theme) RenderLEDs(leds *device.LEDBank) string {
	lamps := make([]string, 0, len(device.Channels))
	for _, ch := range device.Channels {
		style := t.LEDOff
		if leds.On(ch) {
			style = t.LEDOn[ch]
		}
		lamp := lipgloss.JoinVertical(lipgloss.Center,
			style.Render(t.LampChar),
			t.Label.Render(ch.String()[:1]),
		)
		lamps = append(lamps, lipgloss.NewStyle().Padding(0, 1).Render(lamp))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, lamps...)
}

// RenderBoard lays the LCD and the LED bank out as one panel.
func (t Theme) RenderBoard(s *core.Screen, leds *device.LEDBank) string {
	return t.Board.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		t.RenderLCD(s),
		"  ",
		t.RenderLEDs(leds),
	))
}
