// Package pio controls the parallel I/O (PIO) controllers of the
// Atmel SAM4S series of microcontrollers.
//
// A controller is split exactly once into handles for its six shared
// control registers and its 32 pins. Pins start under PIO control as
// floating inputs, the hardware reset state. Reconfiguring a pin
// consumes its handle together with short-lived borrows of the
// register handles the transition needs, and yields a handle in the
// new state; operations that would be illegal in a state are simply
// not expressible on its handle type. Driving an output pin high or
// low goes through the hardware-atomic set/clear data registers and
// needs no register handle at all.
package pio

import (
	"sync"
	"sync/atomic"
)

// Port identifies one of the three PIO controllers.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
)

var portBases = [...]uintptr{0x400e0e00, 0x400e1000, 0x400e1200}
var portNames = [...]string{"PA", "PB", "PC"}

// Base returns the fixed base address of the controller block.
func (p Port) Base() uintptr { return portBases[p] }

func (p Port) String() string { return portNames[p] }

// NumPins is the number of I/O lines per controller.
const NumPins = 32

// Bus is the register access a PIO controller block must provide.
// Offsets are relative to the controller base address.
type Bus interface {
	Read32(off uint32) uint32
	Write32(off, v uint32)
}

type portState struct {
	port Port
	bus  Bus
	// mu serializes read-modify-write of the shared control
	// registers. The set/clear registers are per-bit atomic in
	// hardware and are written without it.
	mu   sync.Mutex
	pins [NumPins]pinState
}

// PIO is a controller that has not been split yet.
type PIO struct {
	s     *portState
	split atomic.Bool
}

// New binds a controller identity to its register bus.
func New(port Port, bus Bus) *PIO {
	if int(port) >= len(portBases) {
		panic("pio: invalid port")
	}
	s := &portState{port: port, bus: bus}
	for i := range s.pins {
		s.pins[i] = pinState{p: s, n: uint8(i)}
	}
	return &PIO{s: s}
}

// Parts holds the register handles and pins of a split controller.
// The handles partition the controller's mutable state: no two
// register handles cover the same register and no two pins cover the
// same line.
type Parts struct {
	PER     PER
	PDR     PDR
	OER     OER
	ODR     ODR
	ABCDSR1 ABCDSR1
	ABCDSR2 ABCDSR2

	Pins [NumPins]Pin[Input[Floating]]
}

// Split breaks the controller into independent register handles and
// pins. It touches no hardware; the pins match the reset state of
// the block. Split panics if called twice.
func (p *PIO) Split() Parts {
	if !p.split.CompareAndSwap(false, true) {
		panic("pio: controller already split")
	}
	parts := Parts{
		PER:     PER{p.s},
		PDR:     PDR{p.s},
		OER:     OER{p.s},
		ODR:     ODR{p.s},
		ABCDSR1: ABCDSR1{p.s},
		ABCDSR2: ABCDSR2{p.s},
	}
	for i := range parts.Pins {
		parts.Pins[i] = Pin[Input[Floating]]{s: &p.s.pins[i]}
	}
	return parts
}

// PER is the handle for the PIO enable register. No forward
// transition returns a line to PIO control, so the handle exists
// only to keep the register owned.
type PER struct{ s *portState }

// PDR is the handle for the PIO disable register. Writing a line's
// bit hands it to the multiplexer.
type PDR struct{ s *portState }

// OER is the handle for the output enable register.
type OER struct{ s *portState }

// ODR is the handle for the output disable register. Like PER it is
// owned but unused by the forward-only transitions.
type ODR struct{ s *portState }

// ABCDSR1 is the handle for peripheral select register 1.
type ABCDSR1 struct{ s *portState }

// ABCDSR2 is the handle for peripheral select register 2.
type ABCDSR2 struct{ s *portState }

// The write-only registers take one-shot writes; each bit is
// independently settable so nothing is read back first.

func (r *PDR) disable(mask uint32) { r.s.bus.Write32(offPDR, mask) }
func (r *OER) enable(mask uint32)  { r.s.bus.Write32(offOER, mask) }

// modify clears the line's bit and sets it where the function code
// requires a 1, preserving the bits of the other 31 lines.
func (r *ABCDSR1) modify(clear, set uint32) { r.s.rmw(offABCDSR1, clear, set) }
func (r *ABCDSR2) modify(clear, set uint32) { r.s.rmw(offABCDSR2, clear, set) }

func (s *portState) rmw(off, clear, set uint32) {
	s.mu.Lock()
	v := s.bus.Read32(off)
	s.bus.Write32(off, v&^clear|set)
	s.mu.Unlock()
}
