package feed

import "math"

// epsilon absorbs float jitter when the same event timestamp round-trips
// through JSON.
const epsilon = 0.001

// Deduper suppresses repeated delivery of the same event by comparing
// epoch timestamps. Used by the non-interactive watch output; the TUI
// refreshes on every push and does not need it.
type Deduper struct {
	lastSeen float64
	seen     bool
}

// Observe reports whether the event is new, and records it if so.
func (d *Deduper) Observe(e Event) bool {
	epoch := e.Epoch()
	if d.seen && math.Abs(epoch-d.lastSeen) < epsilon {
		return false
	}
	d.lastSeen = epoch
	d.seen = true
	return true
}
