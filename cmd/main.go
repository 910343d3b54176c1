package main

import (
	"context"
	"errors"
	"os"

	"github.com/senflix/sfx/internal/services"
	"github.com/senflix/sfx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	api := services.NewAPIService(config.Server.BaseURL, nil)
	if config.Search.RatePerSec > 0 {
		api.SetRateLimit(config.Search.RatePerSec)
	}

	if config.Profile.CookiePath != "" {
		if _, err := os.Stat(config.Profile.CookiePath); err == nil {
			if session, err := shared.ParseCurlFile(config.Profile.CookiePath); err == nil {
				api.SetSession(session)
			} else {
				logger.Warn("failed to parse session file", "path", config.Profile.CookiePath, "error", err)
			}
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Service: services.NewSenflixService(api),
		API:     api,
		Logger:  logger,
	})

	app := &cli.Command{
		Name:     "sfx",
		Usage:    "Browse, grow and rate your SenFlix movie collection",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
