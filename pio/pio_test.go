package pio

import "testing"

func TestSplitResetState(t *testing.T) {
	for _, port := range []Port{PortA, PortB, PortC} {
		sim := NewSimulator()
		parts := New(port, sim).Split()
		if len(sim.Ops) != 0 {
			t.Fatalf("%v: split touched hardware: %v", port, sim.Ops)
		}
		if got := sim.PSR(); got != 0xffffffff {
			t.Fatalf("%v: PSR after reset = %#x, want all lines under PIO control", port, got)
		}
		if got := sim.OSR(); got != 0 {
			t.Fatalf("%v: OSR after reset = %#x, want 0", port, got)
		}
		if got := sim.ODSR(); got != 0 {
			t.Fatalf("%v: ODSR after reset = %#x, want 0", port, got)
		}
		sr1, sr2 := sim.Select()
		if sr1 != 0 || sr2 != 0 {
			t.Fatalf("%v: select registers after reset = %#x, %#x, want 0, 0", port, sr1, sr2)
		}
		for i, pin := range parts.Pins {
			if pin.s == nil || int(pin.s.n) != i {
				t.Fatalf("%v: pin %d mapped to wrong line", port, i)
			}
		}
	}
}

func TestSplitTwicePanics(t *testing.T) {
	p := New(PortB, NewSimulator())
	p.Split()
	expectPanic(t, "second split", func() { p.Split() })
}

func TestPortBase(t *testing.T) {
	bases := map[Port]uintptr{
		PortA: 0x400e0e00,
		PortB: 0x400e1000,
		PortC: 0x400e1200,
	}
	for port, want := range bases {
		if got := port.Base(); got != want {
			t.Errorf("%v.Base() = %#x, want %#x", port, got, want)
		}
	}
}

func expectPanic(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", msg)
		}
	}()
	f()
}
