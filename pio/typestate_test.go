package pio

// Compile-time conformance checks for the pin state machine. The
// instantiations below must compile; the transitions they cover are
// the only ones the types admit.
//
// The following must NOT compile, which is checked by inspection
// rather than by an executable test:
//
//	c := IntoPeripheralC(parts.Pins[0], &parts.PDR, &parts.ABCDSR1, &parts.ABCDSR2)
//	IntoPeripheralA(c, ...)      // Pin[PeripheralC] is not a Pin[Input[...]]
//
//	out := IntoOutput(c, &parts.OER)
//	IntoOutput(out, &parts.OER)  // OutputPin is not a Pin
//	IntoPeripheralB(out, ...)    // likewise
//
//	out.Downgrade().Downgrade()  // ErasedPin has no Downgrade; erasure is terminal
var (
	// Peripheral select is reachable from every input sub-mode.
	_ = IntoPeripheralA[Floating]
	_ = IntoPeripheralB[PullUp]
	_ = IntoPeripheralC[PullDown]
	_ = IntoPeripheralD[Floating]

	// Output is reachable from any input or peripheral state.
	_ = IntoOutput[Input[Floating]]
	_ = IntoOutput[Input[PullUp]]
	_ = IntoOutput[Input[PullDown]]
	_ = IntoOutput[PeripheralA]
	_ = IntoOutput[PeripheralB]
	_ = IntoOutput[PeripheralC]
	_ = IntoOutput[PeripheralD]
)
