// Command examples is the hands-on entry point for the defect catalog: pick
// a routine, uncomment its call (and the matching import), rebuild under the
// instrumentation mode for its category, and watch the report. Nothing runs
// by default — one crashing routine would preempt every demonstration after
// it, so enable exactly one at a time.
//
// Build modes per block:
//
//	addressing  → go build -asan
//	threading   → go build -race
//	uninitmem   → go build -msan
//	undefined   → go build
package main

import (
	"fmt"
	"io"
	"os"
	// Uncomment the import that matches the call you enable below.
	// "sanlab/internal/addressing"
	// "sanlab/internal/threading"
	// "sanlab/internal/undefined"
	// "sanlab/internal/uninitmem"
)

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "Sanitizer Examples")
	fmt.Fprintln(w, "==================")
	fmt.Fprintln(w)
}

func printTrailer(w io.Writer) {
	fmt.Fprintln(w, "No examples executed. Uncomment examples in main() to test.")
}

func main() {
	printBanner(os.Stdout)

	// Uncomment the example you want to test:

	// AddressSanitizer examples:
	// addressing.Overflow()
	// addressing.UseAfterRelease()
	// addressing.DoubleRelease()
	// addressing.Leak()

	// Race detector examples:
	// threading.RacingIncrement()
	// threading.RacingAppend()

	// MemorySanitizer examples:
	// uninitmem.ScalarRead()
	// uninitmem.ArrayRead()
	// uninitmem.StructFieldRead()

	// Undefined behavior examples:
	// undefined.SignedOverflow()
	// undefined.NullWrite()
	// undefined.DivByZero()
	// undefined.OversizedShift()
	// undefined.OutOfBoundsIndex()
	// undefined.MisalignedAccess()
	// undefined.TypePunnedRead()

	printTrailer(os.Stdout)
}
