package tui

import "testing"

func TestOverlayStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		overlay string
		want    string
	}{
		{
			name:    "overlay wins non-blank cells",
			base:    "aaaa\nbbbb",
			overlay: "  x \n    ",
			want:    "aaxa\nbbbb",
		},
		{
			name:    "overlay longer than base",
			base:    "aa",
			overlay: "  \nyy",
			want:    "aa\nyy",
		},
		{
			name:    "overlay wider than base",
			base:    "aa",
			overlay: "   z",
			want:    "aa z",
		},
		{
			name:    "base longer than overlay",
			base:    "aa\nbb",
			overlay: "x",
			want:    "xa\nbb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := overlayStrings(tt.base, tt.overlay); got != tt.want {
				t.Errorf("overlayStrings = %q, want %q", got, tt.want)
			}
		})
	}
}
