package core

// Button identifies one of the device's momentary push buttons.
type Button int

const (
	ButtonNone   Button = iota
	ButtonTop           // selects the option under the arrow
	ButtonBottom        // moves the arrow, starts a test
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonTop:
		return "Top"
	case ButtonBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// InputFrame holds the button edges observed during one tick.
// A press is an edge: it is reported for the tick it lands in and is
// gone once the frame is cleared.
type InputFrame struct {
	Pressed map[Button]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Button]bool),
	}
}

// Set marks a button as pressed for this frame.
func (f *InputFrame) Set(b Button) {
	if f.Pressed == nil {
		f.Pressed = make(map[Button]bool)
	}
	f.Pressed[b] = true
}

// Has returns true if the given button was pressed this frame.
func (f InputFrame) Has(b Button) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[b]
}

// Clear resets all buttons for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}
