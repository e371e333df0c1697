package feed

import (
	"fmt"
	"time"
)

// FormatDiff renders a signed duration as "+HH:MM" or "-HH:MM".
// Zero and positive values get "+". The seconds remainder is truncated
// toward zero, so -59s renders as "-00:00".
func FormatDiff(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}

	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60

	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
