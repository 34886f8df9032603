package pio

import (
	"fmt"
	"sync"
)

// Simulator is an in-memory PIO controller block. It implements Bus
// with the hardware's register semantics and records every access,
// so tests can check both the resulting state and the exact write
// pattern a configuration sequence produced.
type Simulator struct {
	mu sync.Mutex

	// Ops is the ordered log of register accesses.
	Ops []Op

	psr     uint32
	osr     uint32
	odsr    uint32
	abcdsr1 uint32
	abcdsr2 uint32
}

// Op is one recorded register access. Value holds the value written,
// or the value a read returned.
type Op struct {
	Read  bool
	Off   uint32
	Value uint32
}

// NewSimulator returns a block in its hardware reset state: every
// line under PIO control, output drivers disabled, function A
// selected.
func NewSimulator() *Simulator {
	return &Simulator{psr: 0xffffffff}
}

func (s *Simulator) Read32(off uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var v uint32
	switch off {
	case offPSR:
		v = s.psr
	case offOSR:
		v = s.osr
	case offODSR:
		v = s.odsr
	case offPDSR:
		// Outputs read back their driven level; floating inputs
		// read as low.
		v = s.odsr & s.osr
	case offABCDSR1:
		v = s.abcdsr1
	case offABCDSR2:
		v = s.abcdsr2
	default:
		// The write-only registers read back as zero.
	}
	s.Ops = append(s.Ops, Op{Read: true, Off: off, Value: v})
	return v
}

func (s *Simulator) Write32(off, v uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ops = append(s.Ops, Op{Off: off, Value: v})
	switch off {
	case offPER:
		s.psr |= v
	case offPDR:
		s.psr &^= v
	case offOER:
		s.osr |= v
	case offODR:
		s.osr &^= v
	case offSODR:
		s.odsr |= v
	case offCODR:
		s.odsr &^= v
	case offABCDSR1:
		s.abcdsr1 = v
	case offABCDSR2:
		s.abcdsr2 = v
	default:
		panic(fmt.Sprintf("pio: write to invalid register offset %#x", off))
	}
}

// PSR reports which lines are under PIO control.
func (s *Simulator) PSR() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.psr
}

// OSR reports which lines have their output driver enabled.
func (s *Simulator) OSR() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.osr
}

// ODSR reports the driven output levels.
func (s *Simulator) ODSR() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.odsr
}

// Select reports the two peripheral select registers.
func (s *Simulator) Select() (sr1, sr2 uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abcdsr1, s.abcdsr2
}
