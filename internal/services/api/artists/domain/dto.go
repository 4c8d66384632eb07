// Package domain holds DTOs for artists http and service contracts
package domain

import "mintpulse/internal/core/aggregate"

// GrowthInput selects the artist signup growth chart
type GrowthInput struct {
	Mode string `json:"mode" validate:"required,oneof=day week month" example:"week"`
	// Date is the reference day for day mode; defaults to today when omitted
	Date string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-08-01"`
}

// GrowthResp is one immutable growth snapshot
type GrowthResp struct {
	Mode        string            `json:"mode" example:"week"`
	Points      []aggregate.Point `json:"points"`
	Summary     aggregate.Summary `json:"summary"`
	GeneratedAt string            `json:"generated_at" example:"2025-08-01T14:00:00Z"`
}

// ArtistEntry is one directory row
type ArtistEntry struct {
	Address   string `json:"address" example:"0x1c0a..."`
	Name      string `json:"name" example:"glasswing"`
	Bio       string `json:"bio,omitempty" example:"generative sculptor"`
	AvatarURL string `json:"avatar_url,omitempty" example:"https://cdn.example/ava.png"`
	CreatedAt int64  `json:"created_at" example:"1722520800"`
}

// DirectoryResp is the full artist directory listing
type DirectoryResp struct {
	Artists []ArtistEntry `json:"artists"`
	Total   int           `json:"total" example:"412"`
	// Source is "live" for the indexer, "snapshot" when served from the store
	Source    string `json:"source" example:"live"`
	FetchedAt string `json:"fetched_at" example:"2025-08-01T14:00:00Z"`
}
