package huckleberry

import (
	"testing"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/mbartlett/thuck/internal/feed"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		json     string
		expected float64
		wantErr  bool
	}{
		{name: "number", json: `120`, expected: 120},
		{name: "fractional number", json: `117.5`, expected: 117.5},
		{name: "quoted number", json: `"120"`, expected: 120},
		{name: "null", json: `null`, expected: 0},
		{name: "empty string", json: `""`, expected: 0},
		{name: "non-numeric string", json: `"lots"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var n FlexNumber
			err := go_json.Unmarshal([]byte(tt.json), &n)
			if tt.wantErr {
				if err == nil {
					t.Errorf("unmarshal %s succeeded, want error", tt.json)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tt.json, err)
			}
			if n.Float() != tt.expected {
				t.Errorf("FlexNumber = %v, want %v", n.Float(), tt.expected)
			}
		})
	}
}

func TestPrefsBottle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		ok   bool
	}{
		{
			name: "full record",
			json: `{"prefs":{"lastBottle":{"start":1773478800,"bottleAmount":"120","bottleUnits":"ml"}}}`,
			ok:   true,
		},
		{
			name: "no lastBottle",
			json: `{"prefs":{}}`,
			ok:   false,
		},
		{
			name: "lastBottle without start",
			json: `{"prefs":{"lastBottle":{"bottleAmount":"120","bottleUnits":"ml"}}}`,
			ok:   false,
		},
		{
			name: "empty document",
			json: `{}`,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var update Update
			if err := go_json.Unmarshal([]byte(tt.json), &update); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if _, ok := update.Prefs.Bottle(); ok != tt.ok {
				t.Errorf("Bottle() ok = %v, want %v", ok, tt.ok)
			}
		})
	}
}

// the full path from push payload to feed event, per the wire example:
// {prefs:{lastBottle:{start:T, bottleAmount:"120", bottleUnits:"ml"}}}
func TestPushPayloadToFeedEvent(t *testing.T) {
	t.Parallel()

	payload := `{"prefs":{"lastBottle":{"start":1773478800,"bottleAmount":"120","bottleUnits":"ml"}}}`

	var update Update
	if err := go_json.Unmarshal([]byte(payload), &update); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	bottle, ok := update.Prefs.Bottle()
	if !ok {
		t.Fatal("payload carried no bottle")
	}

	event := feed.NewEvent(bottle.Start, bottle.BottleAmount.Float(), bottle.BottleUnits)
	if event.Amount != 120 {
		t.Errorf("Amount = %d, want 120", event.Amount)
	}
	if event.Unit != "ml" {
		t.Errorf("Unit = %q, want %q", event.Unit, "ml")
	}
	if event.Time.Unix() != 1773478800 {
		t.Errorf("Time = %v", event.Time)
	}

	at := event.Time.Add(7650 * time.Second)
	preds := feed.Compute(at, event, feed.DefaultWindows())
	if got := feed.FormatDiff(preds.Elapsed); got != "+02:07" {
		t.Errorf("elapsed display = %q, want %q", got, "+02:07")
	}
	for _, wo := range preds.Offsets {
		if wo.Window.Name == "short wake" {
			if got := feed.FormatDiff(wo.Offset); got != "+00:00" {
				t.Errorf("short wake display = %q, want %q", got, "+00:00")
			}
		}
	}
}
