package pio

// Register offsets within one PIO controller block, per the SAM4S
// datasheet. PER/PDR, OER/ODR and SODR/CODR are write-only; each
// written 1-bit affects only its own line, so they are never
// read-modify-written. The two select registers are plain
// read-modify-write words shared by all 32 lines.
const (
	offPER     = 0x00 // PIO enable
	offPDR     = 0x04 // PIO disable (hands the line to the multiplexer)
	offPSR     = 0x08 // PIO status
	offOER     = 0x10 // output enable
	offODR     = 0x14 // output disable
	offOSR     = 0x18 // output status
	offSODR    = 0x30 // set output data (per-bit atomic)
	offCODR    = 0x34 // clear output data (per-bit atomic)
	offODSR    = 0x38 // output data status
	offPDSR    = 0x3c // pin data status
	offABCDSR1 = 0x70 // peripheral select 1
	offABCDSR2 = 0x74 // peripheral select 2
)
