package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/senflix/sfx/internal/shared"
	"github.com/senflix/sfx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for browsing and growing the collection.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.svc == nil {
		return fmt.Errorf("%w: SenFlix service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/sfx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	opts := ui.Options{
		Logger:   fileLogger,
		BaseURL:  r.config.Server.BaseURL,
		Debounce: time.Duration(r.config.Search.DebounceMS) * time.Millisecond,
		MinQuery: r.config.Search.MinQueryLen,
	}

	// History is best effort; the UI runs without it.
	history, closeDB, err := r.openHistory()
	if err != nil {
		fileLogger.Warn("search history unavailable", "error", err)
	} else {
		opts.History = history
		defer closeDB()
	}

	model := ui.NewModel(ctx, r.svc, opts)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
