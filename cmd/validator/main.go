package main

import (
	"context"
	"os"
)

// main is the application composition root.
// It wires the CSV loader, distance strategy and cache store behind ports and runs one validation pass.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
