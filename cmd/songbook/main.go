package main

import (
	"os"

	"github.com/joho/godotenv"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	// A .env file is optional for the CLI
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
