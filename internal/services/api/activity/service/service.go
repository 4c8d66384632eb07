// Package service contains the activity aggregation workflows
package service

import (
	"context"
	"sync"
	"time"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/core/aggregate"
	"mintpulse/internal/core/timewindow"
	"mintpulse/internal/platform/metrics"
	"mintpulse/internal/services/api/activity/domain"
)

// Service defines the activity service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the activity service
type Svc struct {
	source   domain.EventSource
	fallback domain.EventFallback
	now      func() time.Time
}

// New constructs an activity service. fallback may be nil when no snapshot
// store is configured
func New(source domain.EventSource, fallback domain.EventFallback) *Svc {
	if source == nil {
		panic("activity.Service requires a non nil EventSource")
	}
	return &Svc{source: source, fallback: fallback, now: time.Now}
}

// fetchWindow pulls one window of events, reading the snapshot store when the
// live source comes back empty. Fallback errors degrade to the empty live
// result, same as any other fetch failure on this path
func (s *Svc) fetchWindow(ctx context.Context, f graph.EventFilter) []graph.Event {
	events := s.source.FetchAllEvents(ctx, f)
	if len(events) > 0 || s.fallback == nil {
		return events
	}
	snap, err := s.fallback.Events(ctx, f.Window)
	if err != nil {
		return events
	}
	return filterEvents(snap, f.Name, f.Contract)
}

// filterEvents applies the name/contract equality filters the snapshot read
// path does not push down
func filterEvents(events []graph.Event, name, contract string) []graph.Event {
	if name == "" && contract == "" {
		return events
	}
	out := make([]graph.Event, 0, len(events))
	for _, e := range events {
		if name != "" && e.Name != name {
			continue
		}
		if contract != "" && e.Contract != contract {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Chart builds one full aggregation pass: fetch both periods, bucket, merge.
// The two period fetches are independent and run concurrently
func (s *Svc) Chart(ctx context.Context, in domain.ChartInput) (domain.ChartResp, error) {
	now := s.now().UTC()
	timer := time.Now()

	mode, err := timewindow.ParseMode(in.Mode)
	if err != nil {
		return domain.ChartResp{}, err
	}
	ref := in.Date
	if ref == "" {
		ref = now.Format(timewindow.RefDateLayout)
	}
	cur, prev, err := timewindow.Windows(mode, ref, now)
	if err != nil {
		return domain.ChartResp{}, err
	}

	var (
		curEvents  []graph.Event
		prevEvents []graph.Event
		wg         sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		curEvents = s.fetchWindow(ctx, graph.EventFilter{
			Name: in.Name, Contract: in.Contract, Window: cur,
		})
	}()
	go func() {
		defer wg.Done()
		prevEvents = s.fetchWindow(ctx, graph.EventFilter{
			Name: in.Name, Contract: in.Contract, Window: prev,
		})
	}()
	wg.Wait()

	curBuckets := timewindow.NewBuckets(mode, cur)
	prevBuckets := timewindow.NewBuckets(mode, prev)
	aggregate.Count(curBuckets, graph.Timestamps(curEvents))
	aggregate.Count(prevBuckets, graph.Timestamps(prevEvents))

	resp := domain.ChartResp{
		Mode:        string(mode),
		Points:      aggregate.Series(curBuckets, prevBuckets, now),
		Summary:     aggregate.Summarize(curBuckets, prevBuckets),
		GeneratedAt: now.Format(time.RFC3339),
	}
	metrics.AggregationDuration.Observe(time.Since(timer).Seconds())
	return resp, nil
}

// Trailing counts events in the fixed 30 minute lookback, independent of mode
func (s *Svc) Trailing(ctx context.Context, in domain.TrailingInput) (domain.TrailingResp, error) {
	now := s.now().UTC()
	w := timewindow.TrailingWindow(now, aggregate.TrailingLookback)

	events := s.fetchWindow(ctx, graph.EventFilter{
		Name: in.Name, Contract: in.Contract, Window: w,
	})

	return domain.TrailingResp{
		Count:         aggregate.TrailingCount(graph.Timestamps(events), now),
		WindowMinutes: int(aggregate.TrailingLookback / time.Minute),
		ComputedAt:    now.Format(time.RFC3339),
	}, nil
}
