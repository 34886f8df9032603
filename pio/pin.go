package pio

import (
	"errors"
	"fmt"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Pin is a single I/O line in the state M. Handles are created by
// Split and consumed by the Into* transitions; a consumed handle no
// longer matches the hardware and using it panics.
type Pin[M Mode] struct {
	s   *pinState
	gen uint32
}

type pinState struct {
	p   *portState
	n   uint8
	gen uint32 // bumped on every consuming transition
}

func (s *pinState) consume(gen uint32) {
	if s == nil {
		panic("pio: use of zero pin handle")
	}
	if !atomic.CompareAndSwapUint32(&s.gen, gen, gen+1) {
		panic("pio: pin handle used after being consumed")
	}
}

func (s *pinState) check(gen uint32) {
	if s == nil {
		panic("pio: use of zero pin handle")
	}
	if atomic.LoadUint32(&s.gen) != gen {
		panic("pio: pin handle used after being consumed")
	}
}

func (s *pinState) mask() uint32 { return 1 << s.n }

// selectPeripheral hands the line to the multiplexer and encodes the
// 2-bit function code into the two select registers, touching only
// this line's bit in each.
func selectPeripheral(s *pinState, pdr *PDR, sr1 *ABCDSR1, sr2 *ABCDSR2, code uint8) {
	mask := s.mask()
	pdr.disable(mask)
	var set1, set2 uint32
	if code&0b10 != 0 {
		set1 = mask
	}
	if code&0b01 != 0 {
		set2 = mask
	}
	sr1.modify(mask, set1)
	sr2.modify(mask, set2)
}

// IntoPeripheralA hands the pin to the multiplexer and selects
// peripheral function A.
func IntoPeripheralA[M InputMode](p Pin[Input[M]], pdr *PDR, sr1 *ABCDSR1, sr2 *ABCDSR2) Pin[PeripheralA] {
	p.s.consume(p.gen)
	selectPeripheral(p.s, pdr, sr1, sr2, 0b00)
	return Pin[PeripheralA]{s: p.s, gen: p.gen + 1}
}

// IntoPeripheralB hands the pin to the multiplexer and selects
// peripheral function B.
func IntoPeripheralB[M InputMode](p Pin[Input[M]], pdr *PDR, sr1 *ABCDSR1, sr2 *ABCDSR2) Pin[PeripheralB] {
	p.s.consume(p.gen)
	selectPeripheral(p.s, pdr, sr1, sr2, 0b01)
	return Pin[PeripheralB]{s: p.s, gen: p.gen + 1}
}

// IntoPeripheralC hands the pin to the multiplexer and selects
// peripheral function C.
func IntoPeripheralC[M InputMode](p Pin[Input[M]], pdr *PDR, sr1 *ABCDSR1, sr2 *ABCDSR2) Pin[PeripheralC] {
	p.s.consume(p.gen)
	selectPeripheral(p.s, pdr, sr1, sr2, 0b10)
	return Pin[PeripheralC]{s: p.s, gen: p.gen + 1}
}

// IntoPeripheralD hands the pin to the multiplexer and selects
// peripheral function D.
func IntoPeripheralD[M InputMode](p Pin[Input[M]], pdr *PDR, sr1 *ABCDSR1, sr2 *ABCDSR2) Pin[PeripheralD] {
	p.s.consume(p.gen)
	selectPeripheral(p.s, pdr, sr1, sr2, 0b11)
	return Pin[PeripheralD]{s: p.s, gen: p.gen + 1}
}

// IntoOutput enables the output driver for the pin. The source state
// is discarded; any input or peripheral pin may become an output.
func IntoOutput[M Mode](p Pin[M], oer *OER) OutputPin[PushPull] {
	p.s.consume(p.gen)
	oer.enable(p.s.mask())
	return OutputPin[PushPull]{s: p.s, gen: p.gen + 1}
}

// OutputPin is a pin whose output driver is enabled. High and Low
// write the hardware-atomic set/clear data registers; they need no
// register handle and may be called from any context that owns the
// pin.
type OutputPin[M OutputMode] struct {
	s   *pinState
	gen uint32
}

// High drives the pin high.
func (p OutputPin[M]) High() {
	p.s.check(p.gen)
	p.s.p.bus.Write32(offSODR, p.s.mask())
}

// Low drives the pin low.
func (p OutputPin[M]) Low() {
	p.s.check(p.gen)
	p.s.p.bus.Write32(offCODR, p.s.mask())
}

// Set drives the pin high if level is true, low otherwise.
func (p OutputPin[M]) Set(level bool) {
	if level {
		p.High()
	} else {
		p.Low()
	}
}

// Downgrade consumes the pin into an ErasedPin holding its index at
// runtime. The move is irreversible.
func (p OutputPin[M]) Downgrade() ErasedPin[M] {
	p.s.consume(p.gen)
	return ErasedPin[M]{p: p.s.p, n: p.s.n}
}

// ErasedPin is an output pin whose index is a runtime value, so pins
// from different indices can be kept in one slice. It drives its
// line exactly like the OutputPin it came from.
type ErasedPin[M OutputMode] struct {
	p *portState
	n uint8
}

// High drives the pin high.
func (p ErasedPin[M]) High() { p.p.bus.Write32(offSODR, 1<<p.n) }

// Low drives the pin low.
func (p ErasedPin[M]) Low() { p.p.bus.Write32(offCODR, 1<<p.n) }

// Set drives the pin high if level is true, low otherwise.
func (p ErasedPin[M]) Set(level bool) {
	if level {
		p.High()
	} else {
		p.Low()
	}
}

// Output pins implement gpio.PinOut so generic code can toggle them
// without knowing the concrete handle type.
var (
	_ gpio.PinOut = OutputPin[PushPull]{}
	_ gpio.PinOut = ErasedPin[PushPull]{}
)

var errNoPWM = errors.New("pio: PWM not supported")

func (p OutputPin[M]) Name() string   { return fmt.Sprintf("%s%d", p.s.p.port, p.s.n) }
func (p OutputPin[M]) Number() int    { return int(p.s.p.port)*NumPins + int(p.s.n) }
func (p OutputPin[M]) String() string { return p.Name() }

// Function implements pin.Pin.
func (p OutputPin[M]) Function() string { return "Out" }

// Out implements gpio.PinOut. It cannot fail.
func (p OutputPin[M]) Out(l gpio.Level) error {
	p.Set(bool(l))
	return nil
}

// PWM implements gpio.PinOut. The controller has no PWM.
func (p OutputPin[M]) PWM(gpio.Duty, physic.Frequency) error { return errNoPWM }

// Halt implements conn.Resource by driving the pin low.
func (p OutputPin[M]) Halt() error {
	p.Low()
	return nil
}

func (p ErasedPin[M]) Name() string   { return fmt.Sprintf("%s%d", p.p.port, p.n) }
func (p ErasedPin[M]) Number() int    { return int(p.p.port)*NumPins + int(p.n) }
func (p ErasedPin[M]) String() string { return p.Name() }

// Function implements pin.Pin.
func (p ErasedPin[M]) Function() string { return "Out" }

// Out implements gpio.PinOut. It cannot fail.
func (p ErasedPin[M]) Out(l gpio.Level) error {
	p.Set(bool(l))
	return nil
}

// PWM implements gpio.PinOut. The controller has no PWM.
func (p ErasedPin[M]) PWM(gpio.Duty, physic.Frequency) error { return errNoPWM }

// Halt implements conn.Resource by driving the pin low.
func (p ErasedPin[M]) Halt() error {
	p.Low()
	return nil
}
