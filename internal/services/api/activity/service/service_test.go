package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/core/timewindow"
	"mintpulse/internal/services/api/activity/domain"
)

// fakeSource answers each fetch from a map keyed by the requested window start
type fakeSource struct {
	mu     sync.Mutex
	byFrom map[int64][]graph.Event
	calls  []graph.EventFilter
}

func (f *fakeSource) FetchAllEvents(_ context.Context, filter graph.EventFilter) []graph.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, filter)
	return f.byFrom[filter.Window.Start]
}

// fakeFallback plays the snapshot reader, one canned result for every window
type fakeFallback struct {
	mu      sync.Mutex
	events  []graph.Event
	err     error
	windows []timewindow.Window
}

func (f *fakeFallback) Events(_ context.Context, w timewindow.Window) ([]graph.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.windows = append(f.windows, w)
	return f.events, f.err
}

func testSvc(src domain.EventSource, now time.Time) *Svc {
	return testSvcFB(src, nil, now)
}

func testSvcFB(src domain.EventSource, fb domain.EventFallback, now time.Time) *Svc {
	s := New(src, fb)
	s.now = func() time.Time { return now }
	return s
}

func TestChart_DayMode_FetchesBothPeriods(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC)
	day := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).Unix()
	prevDay := day - 24*3600

	src := &fakeSource{byFrom: map[int64][]graph.Event{
		day: {
			{Timestamp: day + 2*3600, Name: "Mint"},
			{Timestamp: day + 2*3600 + 60, Name: "Mint"},
		},
		prevDay: {
			{Timestamp: prevDay + 5*3600, Name: "Mint"},
		},
	}}

	resp, err := testSvc(src, now).Chart(context.Background(), domain.ChartInput{Mode: "day", Date: "2025-08-01"})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}

	if len(src.calls) != 2 {
		t.Fatalf("fetch calls = %d, want 2 (current and previous)", len(src.calls))
	}
	if len(resp.Points) != timewindow.ModeDay.BucketCount() {
		t.Fatalf("points = %d, want %d", len(resp.Points), timewindow.ModeDay.BucketCount())
	}
	if resp.Summary.CurrentTotal != 2 || resp.Summary.PreviousTotal != 1 {
		t.Fatalf("totals = %d/%d, want 2/1", resp.Summary.CurrentTotal, resp.Summary.PreviousTotal)
	}
	if resp.Summary.PercentageChange != 100 || !resp.Summary.IsPositive {
		t.Fatalf("summary = %+v, want +100%%", resp.Summary)
	}
}

func TestChart_DefaultsDateToToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	src := &fakeSource{byFrom: map[int64][]graph.Event{}}

	if _, err := testSvc(src, now).Chart(context.Background(), domain.ChartInput{Mode: "day"}); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	wantFrom := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).Unix()
	if src.calls[0].Window.Start != wantFrom && src.calls[1].Window.Start != wantFrom {
		t.Fatalf("neither fetch used today midnight %d: %+v", wantFrom, src.calls)
	}
}

func TestChart_RejectsUnknownMode(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	if _, err := testSvc(src, time.Now()).Chart(context.Background(), domain.ChartInput{Mode: "fortnight"}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if len(src.calls) != 0 {
		t.Fatalf("no fetch should happen on bad input, got %d", len(src.calls))
	}
}

func TestChart_FilterReachesSource(t *testing.T) {
	t.Parallel()

	src := &fakeSource{byFrom: map[int64][]graph.Event{}}
	in := domain.ChartInput{Mode: "week", Name: "Mint", Contract: "0xabc"}
	if _, err := testSvc(src, time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)).Chart(context.Background(), in); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	for _, c := range src.calls {
		if c.Name != "Mint" || c.Contract != "0xabc" {
			t.Fatalf("filter not forwarded: %+v", c)
		}
	}
}

func TestChart_FallsBackToSnapshotWhenLiveIsEmpty(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC)
	day := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).Unix()
	prevDay := day - 24*3600

	src := &fakeSource{byFrom: map[int64][]graph.Event{}}
	fb := &fakeFallback{events: []graph.Event{
		{Timestamp: day + 2*3600, Name: "Mint", Contract: "0xabc"},
		{Timestamp: day + 3*3600, Name: "Mint", Contract: "0xabc"},
		{Timestamp: day + 4*3600, Name: "Burn", Contract: "0xabc"},
		{Timestamp: prevDay + 5*3600, Name: "Mint", Contract: "0xabc"},
	}}

	in := domain.ChartInput{Mode: "day", Date: "2025-08-01", Name: "Mint"}
	resp, err := testSvcFB(src, fb, now).Chart(context.Background(), in)
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if len(fb.windows) != 2 {
		t.Fatalf("fallback reads = %d, want 2 (one per window)", len(fb.windows))
	}
	// the Burn row is filtered out, each window keeps only its own rows
	if resp.Summary.CurrentTotal != 2 || resp.Summary.PreviousTotal != 1 {
		t.Fatalf("totals = %d/%d, want 2/1", resp.Summary.CurrentTotal, resp.Summary.PreviousTotal)
	}
}

func TestChart_LiveResultSkipsFallback(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC)
	day := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC).Unix()
	prevDay := day - 24*3600

	src := &fakeSource{byFrom: map[int64][]graph.Event{
		day:     {{Timestamp: day + 3600, Name: "Mint"}},
		prevDay: {{Timestamp: prevDay + 3600, Name: "Mint"}},
	}}
	fb := &fakeFallback{events: []graph.Event{{Timestamp: day + 7200, Name: "Mint"}}}

	if _, err := testSvcFB(src, fb, now).Chart(context.Background(), domain.ChartInput{Mode: "day", Date: "2025-08-01"}); err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if len(fb.windows) != 0 {
		t.Fatalf("fallback consulted %d times despite live results", len(fb.windows))
	}
}

func TestChart_FallbackErrorDegradesToEmpty(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC)
	src := &fakeSource{byFrom: map[int64][]graph.Event{}}
	fb := &fakeFallback{err: errors.New("snapshot store down")}

	resp, err := testSvcFB(src, fb, now).Chart(context.Background(), domain.ChartInput{Mode: "day", Date: "2025-08-01"})
	if err != nil {
		t.Fatalf("Chart: %v", err)
	}
	if resp.Summary.CurrentTotal != 0 || resp.Summary.PreviousTotal != 0 {
		t.Fatalf("totals = %d/%d, want 0/0", resp.Summary.CurrentTotal, resp.Summary.PreviousTotal)
	}
}

func TestTrailing_FallsBackToSnapshot(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC)
	src := &fakeSource{byFrom: map[int64][]graph.Event{}}
	fb := &fakeFallback{events: []graph.Event{
		{Timestamp: now.Add(-10 * time.Minute).Unix(), Name: "Mint"},
		{Timestamp: now.Add(-40 * time.Minute).Unix(), Name: "Mint"},
	}}

	resp, err := testSvcFB(src, fb, now).Trailing(context.Background(), domain.TrailingInput{})
	if err != nil {
		t.Fatalf("Trailing: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("count = %d, want 1 (stale snapshot row excluded)", resp.Count)
	}
}

func TestTrailing_CountsOnlyLookback(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 1, 14, 0, 0, 0, time.UTC)
	from := now.Add(-30 * time.Minute).Unix()

	src := &fakeSource{byFrom: map[int64][]graph.Event{
		from: {
			{Timestamp: now.Add(-5 * time.Minute).Unix()},
			{Timestamp: now.Add(-29 * time.Minute).Unix()},
			{Timestamp: now.Add(-31 * time.Minute).Unix()}, // stale row from the source
		},
	}}

	resp, err := testSvc(src, now).Trailing(context.Background(), domain.TrailingInput{})
	if err != nil {
		t.Fatalf("Trailing: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.WindowMinutes != 30 {
		t.Fatalf("window = %d, want 30", resp.WindowMinutes)
	}
}
