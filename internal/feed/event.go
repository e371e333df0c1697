package feed

import (
	"math"
	"time"
)

const DefaultUnit = "ml"

// Event is a single observed bottle feeding.
type Event struct {
	Time   time.Time
	Amount int
	Unit   string
}

// NewEvent builds an Event from raw upstream values. start is epoch
// seconds with fractional precision preserved. The amount is coerced to a
// non-negative integer for display; the unit falls back to "ml".
func NewEvent(start float64, amount float64, unit string) Event {
	if unit == "" {
		unit = DefaultUnit
	}

	amt := int(amount)
	if amt < 0 {
		amt = 0
	}

	sec, frac := math.Modf(start)
	return Event{
		Time:   time.Unix(int64(sec), int64(frac*float64(time.Second))),
		Amount: amt,
		Unit:   unit,
	}
}

// Epoch returns the event time as fractional epoch seconds, the form the
// backend uses on the wire.
func (e Event) Epoch() float64 {
	return float64(e.Time.UnixNano()) / float64(time.Second)
}
