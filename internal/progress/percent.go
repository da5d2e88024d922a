// Package progress converts engine progress strings into progress bar values.
package progress

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Bar range
const (
	MinPercent = 0
	MaxPercent = 100
)

// yt-dlp colours its percent string when writing to a terminal
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// ParsePercent turns strings like " 45.5%" into 45. The fractional part is
// truncated, not rounded, and the result is clamped to the bar range.
func ParsePercent(s string) (int, error) {
	cleaned := strings.TrimSpace(ansiEscape.ReplaceAllString(s, ""))
	cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "%"))
	if cleaned == "" {
		return 0, fmt.Errorf("empty percent string: %q", s)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent string %q: %w", s, err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("invalid percent string: %q", s)
	}

	return Clamp(int(value)), nil
}

// Clamp bounds v to [MinPercent, MaxPercent]
func Clamp(v int) int {
	if v < MinPercent {
		return MinPercent
	}
	if v > MaxPercent {
		return MaxPercent
	}
	return v
}

// FormatPercent renders a ratio of downloaded to total bytes the way yt-dlp
// renders "_percent_str". Unknown totals render as "N/A".
func FormatPercent(downloaded, total int64) string {
	if total <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%5.1f%%", float64(downloaded)/float64(total)*100)
}
