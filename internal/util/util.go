// Package util holds formatting helpers for log lines and error details.
package util

import (
	"fmt"
	"time"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders a size with binary prefixes and one decimal, e.g. "10.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

// FormatDuration renders a duration at second precision with its two largest
// units, e.g. "45s", "2m30s" or "1h30m".
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	hours, minutes, seconds := total/3600, total%3600/60, total%60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
