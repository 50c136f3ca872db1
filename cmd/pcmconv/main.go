// ABOUTME: Entry point for the pcmconv CLI
// ABOUTME: Runs the command tree and exits non-zero on failure
package main

import (
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		os.Exit(1)
	}
}
