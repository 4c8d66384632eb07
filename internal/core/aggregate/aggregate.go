// Package aggregate turns fetched record timestamps into the bucketed series
// and summary statistics the dashboard endpoints return
package aggregate

import (
	"time"

	"mintpulse/internal/core/timewindow"
)

// TrailingLookback is the fixed lookback for the live activity counter
const TrailingLookback = 30 * time.Minute

// Summary is the derived headline for a current/previous bucket pair
type Summary struct {
	CurrentTotal     int     `json:"current_total"`
	PreviousTotal    int     `json:"previous_total"`
	PercentageChange float64 `json:"percentage_change"`
	IsPositive       bool    `json:"is_positive"`
}

// Count labels each timestamp and increments its bucket when the label is in
// the seeded set. Returns how many records were actually counted; the rest
// fell outside the seeded labels and are dropped
func Count(b *timewindow.Buckets, timestamps []int64) int {
	counted := 0
	for _, ts := range timestamps {
		label := timewindow.LabelFor(time.Unix(ts, 0), b.Mode())
		if b.Inc(label) {
			counted++
		}
	}
	return counted
}

// FilterWindow selects the timestamps inside w, preserving order
func FilterWindow(timestamps []int64, w timewindow.Window) []int64 {
	var out []int64
	for _, ts := range timestamps {
		if w.Contains(ts) {
			out = append(out, ts)
		}
	}
	return out
}

// TrailingCount counts records in the fixed lookback window ending at now
func TrailingCount(timestamps []int64, now time.Time) int {
	w := timewindow.TrailingWindow(now, TrailingLookback)
	n := 0
	for _, ts := range timestamps {
		if w.Contains(ts) {
			n++
		}
	}
	return n
}

// PercentChange computes the period over period change.
// Both totals zero yields 0; a zero previous with activity now yields 100.
// The special cases keep NaN and Inf off the wire
func PercentChange(current, previous int) float64 {
	switch {
	case current == 0 && previous == 0:
		return 0
	case previous == 0:
		return 100
	default:
		return float64(current-previous) / float64(previous) * 100
	}
}

// Summarize derives the headline from a current/previous bucket pair.
// IsPositive is strict: exactly 0% is not positive
func Summarize(current, previous *timewindow.Buckets) Summary {
	cur := current.Total()
	prev := previous.Total()
	pct := PercentChange(cur, prev)
	return Summary{
		CurrentTotal:     cur,
		PreviousTotal:    prev,
		PercentageChange: pct,
		IsPositive:       pct > 0,
	}
}
