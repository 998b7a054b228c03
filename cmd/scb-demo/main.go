// scb-demo draws a small status frame in a loop with the buffered screen.
// Press Ctrl+Q or Ctrl+C to exit.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "scb-demo: %v\n", err)
		os.Exit(1)
	}
}
