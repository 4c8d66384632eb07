// Package http provides http transport for artists
package http

import (
	stdhttp "net/http"

	"mintpulse/internal/modkit/httpkit"
	"mintpulse/internal/services/api/artists/domain"
	svc "mintpulse/internal/services/api/artists/service"
)

// Register mounts artists endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// signup growth comparison chart
	httpkit.PostJSON[domain.GrowthInput](r, "/growth", h.growth)

	// full directory listing
	httpkit.Get(r, "/directory", h.directory)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /artists/growth Artists artistsGrowth
// @Summary Artist signup growth for a day, week or month window
// @Tags Artists
// @Accept json
// @Produce json
// @Param payload body domain.GrowthInput true "Query"
// @Success 200 {object} domain.GrowthResp "ok"
// @Router /artists/growth [post]
func (h *handlers) growth(r *stdhttp.Request, in domain.GrowthInput) (any, error) {
	return h.svc.Growth(r.Context(), in)
}

// swagger:route GET /artists/directory Artists artistsDirectory
// @Summary Full artist directory listing
// @Tags Artists
// @Produce json
// @Success 200 {object} domain.DirectoryResp "ok"
// @Router /artists/directory [get]
func (h *handlers) directory(r *stdhttp.Request) (any, error) {
	return h.svc.Directory(r.Context())
}
