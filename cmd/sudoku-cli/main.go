package main

import "os"

// Exit codes: the solve outcome is part of the contract so scripts can
// branch on it without parsing output.
const (
	exitSolved     = 0
	exitUnsolvable = 1
	exitTimedOut   = 2
	exitError      = 3
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitError)
	}
}
