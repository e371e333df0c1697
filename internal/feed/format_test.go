package feed

import (
	"testing"
	"time"
)

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		d        time.Duration
		expected string
	}{
		{
			name:     "zero is positive",
			d:        0,
			expected: "+00:00",
		},
		{
			name:     "nap midpoint",
			d:        4050 * time.Second,
			expected: "+01:07",
		},
		{
			name:     "nap midpoint still ahead",
			d:        -4050 * time.Second,
			expected: "-01:07",
		},
		{
			name:     "short wake midpoint",
			d:        7650 * time.Second,
			expected: "+02:07",
		},
		{
			name:     "long wake midpoint",
			d:        9450 * time.Second,
			expected: "+02:37",
		},
		{
			name:     "seconds remainder discarded",
			d:        59 * time.Second,
			expected: "+00:00",
		},
		{
			name:     "negative seconds remainder discarded",
			d:        -59 * time.Second,
			expected: "-00:00",
		},
		{
			name:     "sub-second truncates toward zero",
			d:        -900 * time.Millisecond,
			expected: "-00:00",
		},
		{
			name:     "double digit hours",
			d:        12*time.Hour + 5*time.Minute,
			expected: "+12:05",
		},
		{
			name:     "minutes zero padded",
			d:        -3 * time.Minute,
			expected: "-00:03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDiff(tt.d); got != tt.expected {
				t.Errorf("FormatDiff(%v) = %q, want %q", tt.d, got, tt.expected)
			}
		})
	}
}

func TestFormatDiffSignSymmetry(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{
		time.Second,
		4050 * time.Second,
		90 * time.Minute,
		25 * time.Hour,
	} {
		pos := FormatDiff(d)
		neg := FormatDiff(-d)
		if pos[0] != '+' || neg[0] != '-' {
			t.Errorf("FormatDiff(±%v) signs = %q, %q", d, pos, neg)
		}
		if pos[1:] != neg[1:] {
			t.Errorf("FormatDiff(±%v) magnitudes differ: %q vs %q", d, pos, neg)
		}
	}
}
