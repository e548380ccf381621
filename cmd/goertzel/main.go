// Command goertzel evaluates single frequency bins of synthesized test
// signals with the Goertzel algorithm.
//
// Usage:
//
//	goertzel find [flags]
//	goertzel sweep [flags]
//
// Examples:
//
//	goertzel find
//	goertzel find --targets 32,76,600 --verify
//	goertzel find -r 8000 -n 205 --tones 697:1,1209:1 --targets 697,1209 -o json
//	goertzel sweep --from 28 --to 36 --step 0.25
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-goertzel/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
