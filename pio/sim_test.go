package pio

import "testing"

func TestSimulatorSetClear(t *testing.T) {
	sim := NewSimulator()

	sim.Write32(offPDR, 0x000000f0)
	if got := sim.Read32(offPSR); got != 0xffffff0f {
		t.Fatalf("PSR = %#x, want %#x", got, 0xffffff0f)
	}
	sim.Write32(offPER, 0x00000030)
	if got := sim.Read32(offPSR); got != 0xffffff3f {
		t.Fatalf("PSR = %#x, want %#x", got, 0xffffff3f)
	}

	sim.Write32(offOER, 0x00010001)
	sim.Write32(offODR, 0x00010000)
	if got := sim.Read32(offOSR); got != 0x00000001 {
		t.Fatalf("OSR = %#x, want 1", got)
	}

	sim.Write32(offSODR, 0x80000001)
	sim.Write32(offCODR, 0x80000000)
	if got := sim.Read32(offODSR); got != 0x00000001 {
		t.Fatalf("ODSR = %#x, want 1", got)
	}
	// Only enabled drivers show up on the lines.
	if got := sim.Read32(offPDSR); got != 0x00000001 {
		t.Fatalf("PDSR = %#x, want 1", got)
	}
}

func TestSimulatorWriteOnlyReadsZero(t *testing.T) {
	sim := NewSimulator()
	sim.Write32(offSODR, 0xffffffff)
	for _, off := range []uint32{offPER, offPDR, offOER, offODR, offSODR, offCODR} {
		if got := sim.Read32(off); got != 0 {
			t.Errorf("read of write-only register %#x = %#x, want 0", off, got)
		}
	}
}

func TestSimulatorLog(t *testing.T) {
	sim := NewSimulator()
	sim.Write32(offABCDSR1, 0x1234)
	sim.Read32(offABCDSR1)
	want := []Op{
		{Off: offABCDSR1, Value: 0x1234},
		{Read: true, Off: offABCDSR1, Value: 0x1234},
	}
	if len(sim.Ops) != len(want) {
		t.Fatalf("ops = %+v, want %+v", sim.Ops, want)
	}
	for i := range want {
		if sim.Ops[i] != want[i] {
			t.Fatalf("op %d = %+v, want %+v", i, sim.Ops[i], want[i])
		}
	}
}

func TestSimulatorInvalidWritePanics(t *testing.T) {
	sim := NewSimulator()
	expectPanic(t, "write to invalid offset", func() { sim.Write32(0x0c, 0) })
}
