// Package service contains the artist directory and growth workflows
package service

import (
	"context"
	"time"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/core/aggregate"
	"mintpulse/internal/core/timewindow"
	"mintpulse/internal/services/api/artists/domain"
)

// Service defines the artists service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the artists service
type Svc struct {
	source   domain.ArtistSource
	fallback domain.DirectoryFallback
	now      func() time.Time
}

// New constructs an artists service. fallback may be nil when no snapshot
// store is configured
func New(source domain.ArtistSource, fallback domain.DirectoryFallback) *Svc {
	if source == nil {
		panic("artists.Service requires a non nil ArtistSource")
	}
	return &Svc{source: source, fallback: fallback, now: time.Now}
}

// Growth buckets artist creation dates into the current/previous comparison
// windows. The directory is fetched once and split in memory, since creation
// dates are part of the listing and a second remote pass would fetch the same
// rows again
func (s *Svc) Growth(ctx context.Context, in domain.GrowthInput) (domain.GrowthResp, error) {
	now := s.now().UTC()

	mode, err := timewindow.ParseMode(in.Mode)
	if err != nil {
		return domain.GrowthResp{}, err
	}
	ref := in.Date
	if ref == "" {
		ref = now.Format(timewindow.RefDateLayout)
	}
	cur, prev, err := timewindow.Windows(mode, ref, now)
	if err != nil {
		return domain.GrowthResp{}, err
	}

	created := graph.CreationTimes(s.source.FetchAllArtists(ctx))

	curBuckets := timewindow.NewBuckets(mode, cur)
	prevBuckets := timewindow.NewBuckets(mode, prev)
	aggregate.Count(curBuckets, aggregate.FilterWindow(created, cur))
	aggregate.Count(prevBuckets, aggregate.FilterWindow(created, prev))

	return domain.GrowthResp{
		Mode:        string(mode),
		Points:      aggregate.Series(curBuckets, prevBuckets, now),
		Summary:     aggregate.Summarize(curBuckets, prevBuckets),
		GeneratedAt: now.Format(time.RFC3339),
	}, nil
}

// Directory returns the full artist listing. An empty live result falls back
// to the last snapshot when a snapshot store is wired
func (s *Svc) Directory(ctx context.Context) (domain.DirectoryResp, error) {
	now := s.now().UTC()

	artists := s.source.FetchAllArtists(ctx)
	source := "live"
	if len(artists) == 0 && s.fallback != nil {
		snap, err := s.fallback.Artists(ctx)
		if err != nil {
			return domain.DirectoryResp{}, err
		}
		artists = snap
		source = "snapshot"
	}

	entries := make([]domain.ArtistEntry, 0, len(artists))
	for _, a := range artists {
		entries = append(entries, domain.ArtistEntry{
			Address:   a.Address,
			Name:      a.Name,
			Bio:       a.Bio,
			AvatarURL: a.AvatarURL,
			CreatedAt: a.CreatedAt,
		})
	}

	return domain.DirectoryResp{
		Artists:   entries,
		Total:     len(entries),
		Source:    source,
		FetchedAt: now.Format(time.RFC3339),
	}, nil
}
