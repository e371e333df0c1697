package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/config"
	"github.com/mbartlett/thuck/internal/xslog"
)

func logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [amount]",
		Short: "Log a bottle feed",
		Long:  "Records a new bottle feed in ml. Prompts for the amount when not given as an argument.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var amount int
			var ok bool
			if len(args) == 1 {
				amount, ok = parseAmount(args[0])
				if !ok {
					return fmt.Errorf("invalid amount %q: must be a non-negative whole number", args[0])
				}
			} else {
				amount, ok = promptAmount(os.Stdin, os.Stdout)
				if !ok {
					fmt.Println("cancelled")
					return nil
				}
			}

			logger := xslog.NewLogger(os.Stderr, xslog.ParseOrDefault(cfg.LogLevel))

			tokenSource := huckleberry.NewSessionTokenSource(
				huckleberry.Credentials{Email: cfg.Email, Password: cfg.Password},
				huckleberry.WithAuthBaseURL(cfg.APIURL),
			)
			client := huckleberry.New(tokenSource,
				huckleberry.WithBaseURL(cfg.APIURL),
				huckleberry.WithLogger(logger),
			)

			ctx := cmd.Context()

			children, err := client.Child.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list children: %w", err)
			}
			if len(children) == 0 {
				return fmt.Errorf("no children found")
			}
			child := children[0]

			record, err := client.Feeding.LogBottle(ctx, child.UID, amount)
			if err != nil {
				return fmt.Errorf("failed to log bottle: %w", err)
			}

			fmt.Printf("logged %dml for %s\n", amount, child.Name)
			logger.InfoContext(ctx, "bottle logged",
				xslog.Amount(amount),
				xslog.RecordID(record.ID),
			)
			return nil
		},
	}
}

func parseAmount(s string) (int, bool) {
	amount, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || amount < 0 {
		return 0, false
	}
	return amount, true
}

// promptAmount reads an amount from the terminal, re-prompting on
// non-numeric input. An empty submission means cancelled.
func promptAmount(in *os.File, out *os.File) (int, bool) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "amount (ml): ")
		if !scanner.Scan() {
			return 0, false
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return 0, false
		}
		if amount, ok := parseAmount(line); ok {
			return amount, true
		}
		fmt.Fprintln(out, "enter a non-negative whole number")
	}
}
