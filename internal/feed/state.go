package feed

import "sync/atomic"

// State holds the most recently observed feed event. The listener is the
// only writer; the display loop and the prediction engine read it. The
// whole event is swapped as one unit so a reader never sees a partial
// write.
type State struct {
	current atomic.Pointer[Event]
}

func NewState() *State {
	return &State{}
}

// Set replaces the stored event.
func (s *State) Set(e Event) {
	s.current.Store(&e)
}

// Get returns the current event, or ok=false before any event has
// arrived.
func (s *State) Get() (Event, bool) {
	p := s.current.Load()
	if p == nil {
		return Event{}, false
	}
	return *p, true
}
