package module

import (
	"context"

	"mintpulse/internal/services/api/artists/domain"
	artistssvc "mintpulse/internal/services/api/artists/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptArtistsPort struct{ svc artistssvc.Service }

// Growth buckets artist creation dates into comparison windows
func (a adaptArtistsPort) Growth(ctx context.Context, in domain.GrowthInput) (domain.GrowthResp, error) {
	return a.svc.Growth(ctx, in)
}

// Directory returns the full artist listing
func (a adaptArtistsPort) Directory(ctx context.Context) (domain.DirectoryResp, error) {
	return a.svc.Directory(ctx)
}
