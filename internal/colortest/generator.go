package colortest

import "github.com/vovakirdan/colortest/internal/device"

// MixGenerator builds a hidden mix one primary per call so that no
// single tick spends long enough to stall button polling or redraws.
type MixGenerator struct {
	bits   BitSource
	cursor int // index into device.Channels of the next primary to assign
	mix    ColorMix
}

// NewMixGenerator creates a generator drawing bits from bits.
func NewMixGenerator(bits BitSource) *MixGenerator {
	return &MixGenerator{bits: bits}
}

// Step advances generation by one primary. A reset call clears the
// cursor and the partial mix and assigns nothing. The call that assigns
// the last primary returns the finished mix and true.
func (g *MixGenerator) Step(reset bool) (ColorMix, bool) {
	if reset {
		g.cursor = 0
		g.mix = ColorMix{}
		return ColorMix{}, false
	}

	if g.cursor >= len(device.Channels) {
		return g.mix, true
	}

	ch := device.Channels[g.cursor]
	g.mix = g.mix.With(ch, g.bits.Bit())
	g.cursor++

	if g.cursor < len(device.Channels) {
		return ColorMix{}, false
	}
	return g.mix, true
}

// Cursor returns the index of the next primary to assign.
func (g *MixGenerator) Cursor() int {
	return g.cursor
}
