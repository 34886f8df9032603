//go:build tinygo

package pio

import (
	"runtime/volatile"
	"unsafe"
)

// hwBus accesses a memory-mapped controller block directly.
type hwBus struct {
	base uintptr
}

func (b hwBus) Read32(off uint32) uint32 {
	return (*volatile.Register32)(unsafe.Pointer(b.base + uintptr(off))).Get()
}

func (b hwBus) Write32(off, v uint32) {
	(*volatile.Register32)(unsafe.Pointer(b.base + uintptr(off))).Set(v)
}

// taken is written during single-threaded startup, before the
// scheduler runs.
var taken [len(portBases)]bool

// Take maps the controller at its fixed base address and returns it
// for splitting. Each controller can be taken once.
func Take(p Port) *PIO {
	if taken[p] {
		panic("pio: controller already taken")
	}
	taken[p] = true
	return New(p, hwBus{base: p.Base()})
}
