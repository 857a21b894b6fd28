// Command elevenlabs is a command-line client for the ElevenLabs API.
package main

import (
	"os"
)

func main() {
	os.Exit(Execute())
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		// Error already printed by cobra
		return 1
	}
	return 0
}
