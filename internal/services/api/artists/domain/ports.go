package domain

import (
	"context"

	"mintpulse/internal/adapters/graph"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Growth(ctx context.Context, in GrowthInput) (GrowthResp, error)
	Directory(ctx context.Context) (DirectoryResp, error)
}

// ArtistSource is the read seam over the indexer directory listing
type ArtistSource interface {
	FetchAllArtists(ctx context.Context) []graph.Artist
}

// DirectoryFallback serves the last snapshotted directory when the live
// fetch comes back empty
type DirectoryFallback interface {
	Artists(ctx context.Context) ([]graph.Artist, error)
}
