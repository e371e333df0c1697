package tui

import (
	"context"
	"log/slog"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/feed"
	"github.com/mbartlett/thuck/internal/repository"
)

type Deps struct {
	Ctx     context.Context
	Logger  *slog.Logger
	Client  *huckleberry.Client
	Stream  *huckleberry.Stream
	State   *feed.State
	Windows []feed.Window
	History *repository.FeedHistory

	// FeedCh bridges the listener goroutine into the update loop.
	FeedCh chan feed.Event
}
