// Command fwt computes Fast Walsh Transforms of numbers given on the
// command line.
//
//	fwt sequency 0 0 0 0 0 0 1 0
//	fwt hadamard --int 1 2 3 4
//	fwt roundtrip --ordering=hadamard 1 2 3 4
//	fwt scale 3 6 9
//	fwt sequency -1 2 -3 4
//	fwt hadamard --pad 1 2 3
//
// Flags go before the values. Negative values are never read as flags.
//
// A sequence whose length is not a power of two is rejected with a non-zero
// exit status.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	cmd.SetArgs(escapeNegativeValues(cmd, os.Args[1:]))

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fwt: %v\n", err)
		os.Exit(1)
	}
}
