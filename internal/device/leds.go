package device

// LEDBank is the emulated RGB indicator. The front end reads it back to
// paint the lamps.
type LEDBank struct {
	on [len(Channels)]bool
}

// NewLEDBank creates a bank with every LED off.
func NewLEDBank() *LEDBank {
	return &LEDBank{}
}

// Set turns one LED on or off. Unknown channels are ignored.
func (b *LEDBank) Set(ch Channel, on bool) {
	if ch < 0 || int(ch) >= len(b.on) {
		return
	}
	b.on[ch] = on
}

// On reports whether the LED is lit.
func (b *LEDBank) On(ch Channel) bool {
	if ch < 0 || int(ch) >= len(b.on) {
		return false
	}
	return b.on[ch]
}
