package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/config"
	"github.com/mbartlett/thuck/internal/feed"
	"github.com/mbartlett/thuck/internal/xslog"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print feed updates as they arrive",
		Long:  "Connects to the feed stream and prints one line per new bottle. Duplicate pushes are suppressed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := xslog.NewLogger(os.Stderr, xslog.ParseOrDefault(cfg.LogLevel))

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

			children, err := client.Child.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list children: %w", err)
			}
			if len(children) == 0 {
				return fmt.Errorf("no children found")
			}
			child := children[0]

			logger.InfoContext(ctx, "watching feeds",
				xslog.ChildUID(child.UID),
				xslog.ChildName(child.Name),
			)

			stream := huckleberry.NewStream(cfg.APIURL, tokenSource, logger)
			events := make(chan feed.Event, 8)

			g, gctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				defer close(events)
				return stream.Listen(gctx, child.UID, func(prefs huckleberry.Prefs) {
					bottle, ok := prefs.Bottle()
					if !ok {
						logger.DebugContext(gctx, "no last bottle found in update")
						return
					}
					event := feed.NewEvent(bottle.Start, bottle.BottleAmount.Float(), bottle.BottleUnits)
					select {
					case events <- event:
					case <-gctx.Done():
					}
				})
			})

			g.Go(func() error {
				var dedupe feed.Deduper
				var seen int
				for event := range events {
					if !dedupe.Observe(event) {
						continue
					}
					fmt.Printf("%s  %d%s\n", event.Time.Format("15:04"), event.Amount, event.Unit)
					seen++
				}
				logger.InfoContext(gctx, "feed stream ended", xslog.Count(seen))
				return nil
			})

			if err := g.Wait(); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
