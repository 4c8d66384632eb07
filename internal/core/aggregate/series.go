package aggregate

import (
	"sort"
	"time"

	"mintpulse/internal/core/timewindow"
)

// Point is one x position of the comparison chart
type Point struct {
	Label    string `json:"label"`
	Current  int    `json:"current"`
	Previous int    `json:"previous"`
}

// Series merges a current/previous bucket pair into chart display order.
// Seed order is not chronological for day mode, so the pair is re-sorted
// before the point by point merge: day mode rotates the 24 hours to start at
// the first full hour after now (a rolling clock ending at now's hour), week
// and month sort by the bucket's calendar date. Both buckets share a fixed
// cardinality so the merge pairs index i with index i
func Series(current, previous *timewindow.Buckets, now time.Time) []Point {
	curIdx := displayOrder(current, now)
	prevIdx := displayOrder(previous, now)

	labels := current.Labels()
	prevLabels := previous.Labels()

	points := make([]Point, 0, len(curIdx))
	for i := range curIdx {
		ci := curIdx[i]
		pi := prevIdx[i]
		points = append(points, Point{
			Label:    labels[ci],
			Current:  current.Count(labels[ci]),
			Previous: previous.Count(prevLabels[pi]),
		})
	}
	return points
}

// displayOrder returns seed indices in chart order
func displayOrder(b *timewindow.Buckets, now time.Time) []int {
	idx := make([]int, b.Len())
	for i := range idx {
		idx[i] = i
	}

	if b.Mode() == timewindow.ModeDay {
		// rolling 24h clock anchored at the next hour boundary after now
		anchor := (now.UTC().Hour() + 1) % 24
		sort.SliceStable(idx, func(i, j int) bool {
			return hourRank(b.StartOf(idx[i]).Hour(), anchor) < hourRank(b.StartOf(idx[j]).Hour(), anchor)
		})
		return idx
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return b.StartOf(idx[i]).Before(b.StartOf(idx[j]))
	})
	return idx
}

func hourRank(hour, anchor int) int { return ((hour - anchor) + 24) % 24 }
