package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/mbartlett/thuck/internal/feed"
)

// FeedHistory caches feed events observed from the push stream. It is a
// record of observations, not a source of truth; the backend owns the
// data.
type FeedHistory struct {
	db *sql.DB
}

func NewFeedHistory(db *sql.DB) *FeedHistory {
	return &FeedHistory{db: db}
}

// Record stores an observed event, keyed by its start timestamp so
// duplicate pushes collapse into one row.
func (r *FeedHistory) Record(ctx context.Context, e feed.Event) error {
	const query = `INSERT OR REPLACE INTO feed_events (start_epoch, amount, unit, observed_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.Epoch(), e.Amount, e.Unit, time.Now().UTC())
	return err
}

// Recent returns up to limit events, newest first.
func (r *FeedHistory) Recent(ctx context.Context, limit int) ([]feed.Event, error) {
	const query = `SELECT start_epoch, amount, unit FROM feed_events
		ORDER BY start_epoch DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []feed.Event
	for rows.Next() {
		var (
			epoch  float64
			amount int
			unit   string
		)
		if err := rows.Scan(&epoch, &amount, &unit); err != nil {
			return nil, err
		}
		events = append(events, feed.NewEvent(epoch, float64(amount), unit))
	}
	return events, rows.Err()
}
