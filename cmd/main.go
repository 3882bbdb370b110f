package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/ytpl/internal/auth"
	"github.com/desertthunder/ytpl/internal/shared"
	"github.com/desertthunder/ytpl/internal/youtube"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config.toml, using defaults", "error", err)
		}
	}

	store := auth.NewStore(shared.ExpandPath(config.Credentials.TokenFile), logger)
	client := youtube.NewClient(youtube.Options{
		Store:        store,
		SecretFile:   shared.ExpandPath(config.Credentials.ClientSecretFile),
		CallbackPort: config.Credentials.CallbackPort,
		PageSize:     config.API.PageSize,
		Logger:       logger,
	})

	runner := NewRunner(RunnerOpts{
		Config: config,
		Client: client,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "ytpl",
		Usage:    "Manage YouTube playlists from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
