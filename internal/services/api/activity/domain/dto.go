// Package domain holds DTOs for activity http and service contracts
package domain

import "mintpulse/internal/core/aggregate"

// ChartInput selects the comparison chart to build
type ChartInput struct {
	Mode string `json:"mode" validate:"required,oneof=day week month" example:"day"`
	// Date is the reference day for day mode; defaults to today when omitted
	Date     string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-08-01"`
	Name     string `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Mint"`
	Contract string `json:"contract,omitempty" validate:"omitempty,min=1,max=100" example:"0x1c0a..."`
}

// ChartResp is one immutable aggregation snapshot
type ChartResp struct {
	Mode        string            `json:"mode" example:"day"`
	Points      []aggregate.Point `json:"points"`
	Summary     aggregate.Summary `json:"summary"`
	GeneratedAt string            `json:"generated_at" example:"2025-08-01T14:00:00Z"`
}

// TrailingInput selects the live activity counter
type TrailingInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Mint"`
	Contract string `json:"contract,omitempty" validate:"omitempty,min=1,max=100" example:"0x1c0a..."`
}

// TrailingResp is the 30 minute live activity counter
type TrailingResp struct {
	Count         int    `json:"count" example:"12"`
	WindowMinutes int    `json:"window_minutes" example:"30"`
	ComputedAt    string `json:"computed_at" example:"2025-08-01T14:00:00Z"`
}
