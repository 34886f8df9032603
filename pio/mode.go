package pio

// Type states for pins. The markers carry no data; a pin handle is
// parameterized by the marker describing the role its line currently
// has in hardware.

// Mode is the sealed set of pin states.
type Mode interface{ pinMode() }

// InputMode is the sealed set of input sub-modes.
type InputMode interface{ inputMode() }

// OutputMode is the sealed set of output sub-modes.
type OutputMode interface{ outputMode() }

// Floating is an input line with no pull resistor.
type Floating struct{}

// PullUp is an input line with the pull-up resistor enabled.
type PullUp struct{}

// PullDown is an input line with the pull-down resistor enabled.
type PullDown struct{}

// Input marks a line under PIO control with its output driver
// disabled.
type Input[M InputMode] struct{}

// PeripheralA through PeripheralD mark a line handed to the
// multiplexer. The function is encoded as a 2-bit code spread over
// the two select registers: A=00, B=01, C=10, D=11.
type (
	PeripheralA struct{}
	PeripheralB struct{}
	PeripheralC struct{}
	PeripheralD struct{}
)

// PushPull is the drive mode of a line whose output driver was
// enabled through OER. It is the only sub-mode; multi-drive is not
// supported.
type PushPull struct{}

func (Floating) inputMode()  {}
func (PullUp) inputMode()    {}
func (PullDown) inputMode()  {}
func (PushPull) outputMode() {}

func (Input[M]) pinMode()    {}
func (PeripheralA) pinMode() {}
func (PeripheralB) pinMode() {}
func (PeripheralC) pinMode() {}
func (PeripheralD) pinMode() {}
