// Package timewindow derives the current/previous comparison windows and the
// calendar bucket labels the chart endpoints aggregate into
package timewindow

import (
	"time"

	perr "mintpulse/internal/platform/errors"
)

// Mode selects the chart range
type Mode string

// Supported range modes
const (
	ModeDay   Mode = "day"
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

// RefDateLayout is the wire format for reference dates
const RefDateLayout = "2006-01-02"

// ParseMode validates a wire mode string
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDay, ModeWeek, ModeMonth:
		return Mode(s), nil
	default:
		return "", perr.InvalidArgf("unknown mode %q", s)
	}
}

// BucketCount returns the fixed bucket cardinality for a mode
func (m Mode) BucketCount() int {
	switch m {
	case ModeDay:
		return 24
	case ModeWeek:
		return 7
	case ModeMonth:
		return 30
	default:
		return 0
	}
}

// Window is a half open interval [Start, End) in unix seconds
type Window struct {
	Start int64
	End   int64
}

// Contains reports whether ts falls inside the window
func (w Window) Contains(ts int64) bool { return ts >= w.Start && ts < w.End }

// Duration returns the window length
func (w Window) Duration() time.Duration {
	return time.Duration(w.End-w.Start) * time.Second
}

// Windows derives the current and previous comparison windows for a mode.
// The two windows are contiguous and equal length: previous.End == current.Start.
// Day mode anchors on refDate (the calendar day being inspected); week and month
// anchor on the calendar day of now. All calendar math is UTC.
func Windows(mode Mode, refDate string, now time.Time) (current, previous Window, err error) {
	day := 24 * time.Hour

	switch mode {
	case ModeDay:
		ref, perr2 := time.ParseInLocation(RefDateLayout, refDate, time.UTC)
		if perr2 != nil {
			return Window{}, Window{}, perr.InvalidArgf("bad reference date %q", refDate)
		}
		current = Window{Start: ref.Unix(), End: ref.Add(day).Unix()}
		previous = Window{Start: ref.Add(-day).Unix(), End: ref.Unix()}
		return current, previous, nil

	case ModeWeek:
		today := Midnight(now.UTC())
		end := today.Add(day) // include all of today
		current = Window{Start: end.Add(-7 * day).Unix(), End: end.Unix()}
		previous = Window{Start: end.Add(-14 * day).Unix(), End: end.Add(-7 * day).Unix()}
		return current, previous, nil

	case ModeMonth:
		today := Midnight(now.UTC())
		end := today.Add(day)
		current = Window{Start: end.Add(-30 * day).Unix(), End: end.Unix()}
		previous = Window{Start: end.Add(-60 * day).Unix(), End: end.Add(-30 * day).Unix()}
		return current, previous, nil

	default:
		return Window{}, Window{}, perr.InvalidArgf("unknown mode %q", string(mode))
	}
}

// TrailingWindow returns the fixed lookback window [now-d, now) used by the
// live activity counter, independent of the selected mode
func TrailingWindow(now time.Time, d time.Duration) Window {
	return Window{Start: now.Add(-d).Unix(), End: now.Unix()}
}

// Midnight truncates t to the start of its UTC calendar day
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LabelFor formats the display label a timestamp buckets into for a mode.
// Week and month labels truncate to midnight first, so any two instants on the
// same calendar day share a bucket by construction
func LabelFor(t time.Time, mode Mode) string {
	t = t.UTC()
	switch mode {
	case ModeDay:
		return t.Format("2 Jan 3PM")
	case ModeWeek:
		return Midnight(t).Format("Mon Jan 2")
	case ModeMonth:
		return t.Format("2 Jan")
	default:
		return ""
	}
}
