package tui

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/feed"
	"github.com/mbartlett/thuck/internal/repository"
)

var ErrNoChildren = errors.New("no children found")

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// connectCmd authenticates and selects the first child profile.
func connectCmd(ctx context.Context, client *huckleberry.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		children, err := client.Child.List(ctx)
		if err != nil {
			return ConnectFailedMsg{Err: err}
		}
		if len(children) == 0 {
			return StartupFailedMsg{Err: ErrNoChildren}
		}

		return ConnectedMsg{Child: children[0]}
	}
}

// logBottleCmd runs the write off the update loop so a slow backend
// cannot stall the timer.
func logBottleCmd(ctx context.Context, client *huckleberry.Client, childUID string, amount int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()

		record, err := client.Feeding.LogBottle(ctx, childUID, amount)
		return BottleLoggedMsg{Record: record, Err: err}
	}
}

func recordHistoryCmd(ctx context.Context, history *repository.FeedHistory, event feed.Event) tea.Cmd {
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return HistoryWrittenMsg{Err: history.Record(ctx, event)}
	}
}
