// Package main provides the ticklist CLI, a command-line to-do list.
package main

import "os"

func main() {
	// Cobra prints the error; the exit code distinguishes usage and
	// startup failures from normal runs.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
