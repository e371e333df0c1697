package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/feed"
	"github.com/mbartlett/thuck/internal/xslog"
)

// StartListenerCmd launches the push stream. The handler runs on the
// stream's goroutine: it writes the event into shared feed state (the
// listener is the sole writer) and pushes it onto the channel so the
// update loop can react. It never touches display state directly.
func StartListenerCmd(ctx context.Context, stream *huckleberry.Stream, state *feed.State, logger *slog.Logger, childUID string, feedCh chan<- feed.Event) tea.Cmd {
	return func() tea.Msg {
		err := stream.Listen(ctx, childUID, func(prefs huckleberry.Prefs) {
			bottle, ok := prefs.Bottle()
			if !ok {
				logger.DebugContext(ctx, "no last bottle found in update")
				return
			}

			event := feed.NewEvent(bottle.Start, bottle.BottleAmount.Float(), bottle.BottleUnits)
			state.Set(event)
			logger.DebugContext(ctx, "bottle observed",
				xslog.Start(event.Time),
				xslog.Amount(event.Amount),
			)

			select {
			case feedCh <- event:
			case <-ctx.Done():
			}
		})

		return ListenerStoppedMsg{Err: err}
	}
}

// WaitForFeedCmd delivers the next feed event from the listener as a
// message. Re-invoked after each delivery to keep listening.
func WaitForFeedCmd(ctx context.Context, feedCh <-chan feed.Event) tea.Cmd {
	return func() tea.Msg {
		select {
		case event, ok := <-feedCh:
			if !ok {
				return ListenerStoppedMsg{Err: nil}
			}
			return FeedMsg{Event: event}
		case <-ctx.Done():
			return ListenerStoppedMsg{Err: ctx.Err()}
		}
	}
}
