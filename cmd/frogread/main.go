// Command frogread shows a line of rotating text in the terminal.
//
// Usage:
//
//	echo | frogread [--tick-rate 250ms] [--log-file path] [--log-level info]
//
// Keys: space pauses and resumes, q quits, any other key advances.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "frogread: %v\n", err)
		os.Exit(1)
	}
}
