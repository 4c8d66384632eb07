// Package http provides http transport for activity
package http

import (
	stdhttp "net/http"

	"mintpulse/internal/modkit/httpkit"
	"mintpulse/internal/services/api/activity/domain"
	svc "mintpulse/internal/services/api/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// current vs previous period comparison chart
	httpkit.PostJSON[domain.ChartInput](r, "/chart", h.chart)

	// 30 minute live counter
	httpkit.PostJSON[domain.TrailingInput](r, "/trailing", h.trailing)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /activity/chart Activity activityChart
// @Summary Mint activity chart for a day, week or month window
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.ChartInput true "Query"
// @Success 200 {object} domain.ChartResp "ok"
// @Router /activity/chart [post]
func (h *handlers) chart(r *stdhttp.Request, in domain.ChartInput) (any, error) {
	return h.svc.Chart(r.Context(), in)
}

// swagger:route POST /activity/trailing Activity activityTrailing
// @Summary Events seen in the trailing 30 minutes
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.TrailingInput true "Query"
// @Success 200 {object} domain.TrailingResp "ok"
// @Router /activity/trailing [post]
func (h *handlers) trailing(r *stdhttp.Request, in domain.TrailingInput) (any, error) {
	return h.svc.Trailing(r.Context(), in)
}
