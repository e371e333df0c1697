package tui

import (
	"fmt"
	"time"

	"github.com/mbartlett/thuck/internal/feed"
)

// WindowSlot is one prediction row: the window label and its formatted
// countdown with the uncertainty annotation.
type WindowSlot struct {
	Name     string
	Value    string
	Fraction float64 // elapsed progress toward the midpoint, 0..1+
}

// Slots holds every named display output as a pre-formatted string.
// All fields are blank before the first feed event arrives.
type Slots struct {
	Populated  bool
	LastFeed   string
	LastVolume string
	Elapsed    string
	Windows    []WindowSlot
}

// BuildSlots formats the current feed state for display. Both the
// periodic tick and the push-triggered refresh funnel through here, so
// repeating it for the same inputs yields the same output.
func BuildSlots(now time.Time, state *feed.State, windows []feed.Window) Slots {
	event, preds, ok := feed.ComputeState(now, state, windows)
	if !ok {
		return Slots{}
	}

	annotation := fmt.Sprintf("±%d", int(feed.Uncertainty/time.Minute))

	slots := Slots{
		Populated:  true,
		LastFeed:   event.Time.Format("15:04"),
		LastVolume: fmt.Sprintf("%d%s", event.Amount, event.Unit),
		Elapsed:    feed.FormatDiff(preds.Elapsed),
		Windows:    make([]WindowSlot, len(preds.Offsets)),
	}

	for i, wo := range preds.Offsets {
		var fraction float64
		if wo.Window.Midpoint > 0 {
			fraction = float64(preds.Elapsed) / float64(wo.Window.Midpoint)
		}
		slots.Windows[i] = WindowSlot{
			Name:     wo.Window.Name,
			Value:    feed.FormatDiff(wo.Offset) + annotation,
			Fraction: fraction,
		}
	}

	return slots
}
