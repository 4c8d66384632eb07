package domain

import (
	"context"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/core/timewindow"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Chart(ctx context.Context, in ChartInput) (ChartResp, error)
	Trailing(ctx context.Context, in TrailingInput) (TrailingResp, error)
}

// EventSource is the read seam over the indexer the service fetches through
type EventSource interface {
	FetchAllEvents(ctx context.Context, f graph.EventFilter) []graph.Event
}

// EventFallback serves snapshotted events when the live source returns nothing
type EventFallback interface {
	Events(ctx context.Context, w timewindow.Window) ([]graph.Event, error)
}
