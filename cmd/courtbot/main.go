package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/courtbot/courtbot/internal/cli"
)

func main() {
	// Credentials usually live in a .env next to the binary; absence is
	// fine, the environment may carry them directly.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	// Always exit 0. A host scheduler treats a non-zero exit as a crashed
	// job; this bot reports failure through its logs instead and lets the
	// next scheduled pass try again.
	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
	}
}
