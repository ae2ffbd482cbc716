package main

import (
	"fmt"
	"os"

	"speechbench/cmd/speechbench/cmd"
	"speechbench/internal/config"
)

// @title SpeechBench API
// @version 1.0
// @description Compare text-to-speech and speech-to-text providers on quality, speed, price and features.
// @BasePath /api/v1
func main() {
	// A broken .env is reported but does not stop the CLI
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
