package timewindow

import "time"

// Buckets is an insertion ordered label -> count map pre seeded for one window.
// Every label a period can produce exists up front with a zero count, so sparse
// data still renders a complete axis. Inc never adds labels; a record whose
// label is not in the seeded set is dropped
type Buckets struct {
	mode   Mode
	labels []string
	starts []time.Time
	counts map[string]int
}

// NewBuckets seeds the full label set for the window of a mode.
// Day mode seeds the 24 hours of the window's calendar day; week and month seed
// one bucket per calendar day (7 and 30)
func NewBuckets(mode Mode, w Window) *Buckets {
	step := 24 * time.Hour
	if mode == ModeDay {
		step = time.Hour
	}

	b := &Buckets{
		mode:   mode,
		counts: make(map[string]int, mode.BucketCount()),
	}
	start := time.Unix(w.Start, 0).UTC()
	for i := 0; i < mode.BucketCount(); i++ {
		at := start.Add(time.Duration(i) * step)
		label := LabelFor(at, mode)
		b.labels = append(b.labels, label)
		b.starts = append(b.starts, at)
		b.counts[label] = 0
	}
	return b
}

// Mode returns the mode the buckets were seeded for
func (b *Buckets) Mode() Mode { return b.mode }

// Len returns the fixed bucket cardinality
func (b *Buckets) Len() int { return len(b.labels) }

// Labels returns the labels in seed order
func (b *Buckets) Labels() []string {
	out := make([]string, len(b.labels))
	copy(out, b.labels)
	return out
}

// StartOf returns the bucket start time for seed index i
func (b *Buckets) StartOf(i int) time.Time { return b.starts[i] }

// Inc increments the bucket for label and reports whether it existed
func (b *Buckets) Inc(label string) bool {
	if _, ok := b.counts[label]; !ok {
		return false
	}
	b.counts[label]++
	return true
}

// Count returns the count for label, zero when unknown
func (b *Buckets) Count(label string) int { return b.counts[label] }

// Total sums all bucket counts
func (b *Buckets) Total() int {
	sum := 0
	for _, c := range b.counts {
		sum += c
	}
	return sum
}
