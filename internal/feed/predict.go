package feed

import "time"

// Uncertainty is the fixed radius of every prediction window. It is a
// rendering annotation ("±7") and never folds into the computed offsets.
const Uncertainty = 7 * time.Minute

// Window is a named, fixed offset from the feed event marking the
// midpoint of a predicted activity window.
type Window struct {
	Name     string
	Midpoint time.Duration
}

// DefaultWindows are the midpoints of the predicted windows, in order of
// display. Naptime 1:00-1:15, short wake 2:00-2:15, long wake 2:30-2:45.
func DefaultWindows() []Window {
	return []Window{
		{Name: "naptime", Midpoint: 1*time.Hour + 7*time.Minute + 30*time.Second},
		{Name: "short wake", Midpoint: 2*time.Hour + 7*time.Minute + 30*time.Second},
		{Name: "long wake", Midpoint: 2*time.Hour + 37*time.Minute + 30*time.Second},
	}
}

// WindowOffset pairs a window with its computed offset from now.
// A negative offset means the midpoint is still ahead; positive means it
// has passed. That polarity is the user-facing meaning of the value and
// must not be flipped.
type WindowOffset struct {
	Window Window
	Offset time.Duration
}

// Predictions is the output of one computation: time since the feed plus
// the offset to each configured window midpoint.
type Predictions struct {
	Elapsed time.Duration
	Offsets []WindowOffset
}

// Compute derives predictions for the given event at the given instant.
func Compute(now time.Time, event Event, windows []Window) Predictions {
	elapsed := now.Sub(event.Time)

	offsets := make([]WindowOffset, len(windows))
	for i, w := range windows {
		offsets[i] = WindowOffset{
			Window: w,
			Offset: elapsed - w.Midpoint,
		}
	}

	return Predictions{
		Elapsed: elapsed,
		Offsets: offsets,
	}
}

// ComputeState is Compute against a shared State cell, returning the
// observed event alongside the predictions. ok is false when no event
// has been observed yet, in which case every display slot stays blank.
func ComputeState(now time.Time, state *State, windows []Window) (Event, Predictions, bool) {
	event, ok := state.Get()
	if !ok {
		return Event{}, Predictions{}, false
	}
	return event, Compute(now, event, windows), true
}
