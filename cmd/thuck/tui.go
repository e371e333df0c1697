package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/config"
	"github.com/mbartlett/thuck/internal/db"
	"github.com/mbartlett/thuck/internal/feed"
	"github.com/mbartlett/thuck/internal/paths"
	"github.com/mbartlett/thuck/internal/repository"
	"github.com/mbartlett/thuck/internal/tui"
	"github.com/mbartlett/thuck/internal/xslog"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := paths.EnsureDir(); err != nil {
		return err
	}

	// the TUI owns the terminal; diagnostics go to a file
	logPath, err := paths.Log()
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	logger := xslog.NewLogger(logFile, xslog.ParseOrDefault(cfg.LogLevel))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	tokenSource := huckleberry.NewSessionTokenSource(
		huckleberry.Credentials{Email: cfg.Email, Password: cfg.Password},
		huckleberry.WithAuthBaseURL(cfg.APIURL),
	)

	client := huckleberry.New(tokenSource,
		huckleberry.WithBaseURL(cfg.APIURL),
		huckleberry.WithLogger(logger),
	)
	stream := huckleberry.NewStream(cfg.APIURL, tokenSource, logger)

	// feed history is best-effort; the dashboard works without it
	var history *repository.FeedHistory
	if dbPath, err := paths.DB(); err == nil {
		if sqlDB, err := db.Open(dbPath); err == nil {
			defer func() { _ = sqlDB.Close() }()
			history = repository.NewFeedHistory(sqlDB)
		} else {
			logger.WarnContext(ctx, "failed to open feed history", xslog.Error(err))
		}
	}

	deps := tui.Deps{
		Ctx:     ctx,
		Logger:  logger,
		Client:  client,
		Stream:  stream,
		State:   feed.NewState(),
		Windows: feed.DefaultWindows(),
		History: history,
		FeedCh:  make(chan feed.Event, 8),
	}
	model := tui.New(deps)

	p := tea.NewProgram(&model)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	if err := model.Err(); err != nil {
		return err
	}

	return nil
}
