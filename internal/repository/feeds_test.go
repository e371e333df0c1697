package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mbartlett/thuck/internal/db"
	"github.com/mbartlett/thuck/internal/feed"
)

func newTestHistory(t *testing.T) *FeedHistory {
	t.Helper()

	sqlDB, err := db.Open(filepath.Join(t.TempDir(), "thuck.db"))
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewFeedHistory(sqlDB)
}

func TestFeedHistoryRecordAndRecent(t *testing.T) {
	t.Parallel()

	history := newTestHistory(t)
	ctx := context.Background()

	events := []feed.Event{
		feed.NewEvent(1773478800, 120, "ml"),
		feed.NewEvent(1773492000, 90, "ml"),
		feed.NewEvent(1773505200, 110, "oz"),
	}
	for _, e := range events {
		if err := history.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := history.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent returned %d events, want 3", len(got))
	}

	// newest first
	if got[0].Amount != 110 || got[0].Unit != "oz" {
		t.Errorf("newest event = %+v", got[0])
	}
	if got[2].Amount != 120 {
		t.Errorf("oldest event = %+v", got[2])
	}
}

func TestFeedHistoryDuplicateRecordCollapses(t *testing.T) {
	t.Parallel()

	history := newTestHistory(t)
	ctx := context.Background()

	e := feed.NewEvent(1773478800.25, 120, "ml")
	if err := history.Record(ctx, e); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := history.Record(ctx, e); err != nil {
		t.Fatalf("Record (duplicate): %v", err)
	}

	got, err := history.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Recent returned %d events after duplicate Record, want 1", len(got))
	}
}

func TestFeedHistoryRecentLimit(t *testing.T) {
	t.Parallel()

	history := newTestHistory(t)
	ctx := context.Background()

	for i := range 5 {
		e := feed.NewEvent(float64(1773478800+i*3600), 100, "ml")
		if err := history.Record(ctx, e); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := history.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Recent(2) returned %d events", len(got))
	}
}
