package colortest

import "github.com/vovakirdan/colortest/internal/device"

// BitSource yields one unpredictable bit per call.
type BitSource interface {
	Bit() bool
}

// JitterBits derives bits from the noise on two analog channels. It is
// not a cryptographic source; the low bits of a resting joystick are
// simply too noisy for a person to steer.
type JitterBits struct {
	analog device.AnalogSource
}

// NewJitterBits creates a bit source over the given analog channels.
func NewJitterBits(analog device.AnalogSource) *JitterBits {
	return &JitterBits{analog: analog}
}

// Bit samples both channels afresh and XORs their parities.
func (j *JitterBits) Bit() bool {
	x, y := j.analog.Sample()
	return parity(x) != parity(y)
}

// parity is the low bit of v, so negative readings behave like positive ones.
func parity(v int) bool {
	return v&1 == 1
}
