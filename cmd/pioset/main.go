//go:build linux

// command pioset drives a single PIO line, for board bring-up.
package main

import (
	"flag"
	"fmt"
	"os"

	"sam4s.dev/devmem"
	"sam4s.dev/pio"
)

var (
	port  = flag.String("port", "A", "PIO controller, A, B or C")
	pin   = flag.Int("pin", 0, "line number, 0-31")
	level = flag.String("level", "high", "level to drive, high or low")
)

func main() {
	flag.Parse()
	var p pio.Port
	switch *port {
	case "A":
		p = pio.PortA
	case "B":
		p = pio.PortB
	case "C":
		p = pio.PortC
	default:
		fmt.Fprintf(os.Stderr, "-port must be A, B or C\n")
		os.Exit(1)
	}
	if *pin < 0 || *pin >= pio.NumPins {
		fmt.Fprintf(os.Stderr, "-pin must be 0-31\n")
		os.Exit(1)
	}
	var high bool
	switch *level {
	case "high":
		high = true
	case "low":
	default:
		fmt.Fprintf(os.Stderr, "-level must be 'high' or 'low'\n")
		os.Exit(1)
	}
	mem, err := devmem.Open(p.Base())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer mem.Close()
	parts := pio.New(p, mem).Split()
	out := pio.IntoOutput(parts.Pins[*pin], &parts.OER)
	out.Set(high)
	fmt.Printf("%s: %s\n", out.Name(), *level)
}
