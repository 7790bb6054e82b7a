package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"repertorio/internal/report"
	"repertorio/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "repertorio",
		Usage:    "Extract works & right holders from registry repertoire reports",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, report.ErrFormat) {
			logger.Fatalf("document cannot be auto-extracted: %v", err)
		}
		logger.Fatalf("application error: %v", err)
	}
}
