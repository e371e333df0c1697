package huckleberry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type FeedingService interface {
	LogBottle(ctx context.Context, childUID string, amount int) (*BottleRecord, error)
}

type feedingService struct {
	client *Client
}

// BottleRecord is the interval document written for one logged bottle.
type BottleRecord struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Mode           string  `json:"mode"`
	Start          float64 `json:"start"`
	BottleAmount   float64 `json:"bottleAmount"`
	BottleUnits    string  `json:"bottleUnits"`
	TimezoneOffset int     `json:"timezoneOffset"`
}

// LogBottle writes a new feed interval and updates the child's
// last-bottle preference summary. It does not touch local feed state;
// the backend's own push routes the new event back through the listener.
func (s *feedingService) LogBottle(ctx context.Context, childUID string, amount int) (*BottleRecord, error) {
	now := time.Now()
	_, offsetSec := now.Zone()

	record := &BottleRecord{
		ID:             newRecordID(now),
		Type:           "feed",
		Mode:           "bottle",
		Start:          float64(now.UnixMilli()) / 1000,
		BottleAmount:   float64(amount),
		BottleUnits:    "ml",
		TimezoneOffset: offsetSec / 60,
	}

	path := fmt.Sprintf("/v1/children/%s/intervals/%s", childUID, record.ID)
	if err := s.client.do(ctx, http.MethodPut, path, nil, record, nil); err != nil {
		return nil, err
	}

	summary := LastBottle{
		Start:        record.Start,
		BottleAmount: FlexNumber(record.BottleAmount),
		BottleUnits:  record.BottleUnits,
	}
	prefsPath := fmt.Sprintf("/v1/children/%s/prefs/lastBottle", childUID)
	if err := s.client.do(ctx, http.MethodPatch, prefsPath, nil, summary, nil); err != nil {
		return nil, err
	}

	return record, nil
}

// newRecordID combines a millisecond timestamp with a random suffix so
// concurrent writers cannot collide.
func newRecordID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
