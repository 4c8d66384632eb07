package module

import (
	"context"

	"mintpulse/internal/services/api/activity/domain"
	activitysvc "mintpulse/internal/services/api/activity/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptActivityPort struct{ svc activitysvc.Service }

// Chart builds the current vs previous period comparison chart
func (a adaptActivityPort) Chart(ctx context.Context, in domain.ChartInput) (domain.ChartResp, error) {
	return a.svc.Chart(ctx, in)
}

// Trailing counts events seen in the last 30 minutes
func (a adaptActivityPort) Trailing(ctx context.Context, in domain.TrailingInput) (domain.TrailingResp, error) {
	return a.svc.Trailing(ctx, in)
}
