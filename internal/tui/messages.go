package tui

import (
	"time"

	"github.com/mbartlett/thuck/internal/client/huckleberry"
	"github.com/mbartlett/thuck/internal/feed"
)

const splashDuration = 1500 * time.Millisecond

type SplashTickMsg struct{}

// TickMsg drives the 1-second display refresh.
type TickMsg struct {
	Time time.Time
}

type ConnectedMsg struct {
	Child huckleberry.Child
}

// StartupFailedMsg carries a condition the process cannot run without.
// Only an empty child list is fatal; everything else stays in the TUI.
type StartupFailedMsg struct {
	Err error
}

// ConnectFailedMsg arrives when listing children fails, auth and
// network errors included. The dashboard shows it and keeps ticking
// with no feed data.
type ConnectFailedMsg struct {
	Err error
}

// ListenerStoppedMsg arrives when the push stream ends. The dashboard
// keeps showing the last good state; there is no reconnect.
type ListenerStoppedMsg struct {
	Err error
}

// FeedMsg is delivered after the listener has already written the event
// into shared feed state.
type FeedMsg struct {
	Event feed.Event
}

type BottleLoggedMsg struct {
	Record *huckleberry.BottleRecord
	Err    error
}

type HistoryWrittenMsg struct {
	Err error
}
