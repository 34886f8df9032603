//go:build linux

// Package devmem accesses a memory-mapped PIO controller block
// through /dev/mem, for driving real hardware from a Linux-class
// bridge or debug fixture.
package devmem

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"sam4s.dev/pio"
)

// blockSize is the register span of one PIO controller.
const blockSize = 0x200

// Mem is a pio.Bus over one mmapped controller block.
type Mem struct {
	f    *os.File
	mem  []byte
	regs *[blockSize / 4]uint32
}

var _ pio.Bus = (*Mem)(nil)

// Open maps the controller block at base.
func Open(base uintptr) (*Mem, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("devmem: %w", err)
	}
	page := uintptr(unix.Getpagesize())
	start := base &^ (page - 1)
	shift := base - start
	size := (shift + blockSize + page - 1) &^ (page - 1)
	mem, err := unix.Mmap(int(f.Fd()), int64(start), int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("devmem: mmap %#x: %w", base, err)
	}
	return &Mem{
		f:    f,
		mem:  mem,
		regs: (*[blockSize / 4]uint32)(unsafe.Pointer(&mem[shift])),
	}, nil
}

// Read32 and Write32 use atomic accesses so the compiler cannot
// elide or reorder them.

func (m *Mem) Read32(off uint32) uint32 { return atomic.LoadUint32(&m.regs[off/4]) }

func (m *Mem) Write32(off, v uint32) { atomic.StoreUint32(&m.regs[off/4], v) }

func (m *Mem) Close() error {
	if err := unix.Munmap(m.mem); err != nil {
		m.f.Close()
		return fmt.Errorf("devmem: %w", err)
	}
	return m.f.Close()
}
