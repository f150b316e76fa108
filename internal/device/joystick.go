package device

import (
	"math/rand"
)

// ADC range of the booster pack joystick (14-bit converter).
const (
	ADCMax    = 1<<14 - 1
	ADCCenter = 1 << 13
)

// Joystick emulates the two-axis analog stick resting near its center.
// Real converters never read the exact same value twice; the jitter
// models that noise, which is all the color test needs from the stick.
type Joystick struct {
	center int
	jitter int
	rng    *rand.Rand
}

// NewJoystick creates a joystick whose readings wander up to jitter
// counts either side of center. A jitter of 0 yields a constant reading.
func NewJoystick(seed int64, center, jitter int) *Joystick {
	return &Joystick{
		center: center,
		jitter: jitter,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Sample takes a fresh reading of both axes.
func (j *Joystick) Sample() (int, int) {
	return j.axis(), j.axis()
}

func (j *Joystick) axis() int {
	v := j.center
	if j.jitter > 0 {
		v += j.rng.Intn(2*j.jitter+1) - j.jitter
	}
	if v < 0 {
		return 0
	}
	if v > ADCMax {
		return ADCMax
	}
	return v
}
