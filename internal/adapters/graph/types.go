package graph

import "mintpulse/internal/core/timewindow"

// Event is one raw indexer event: a timestamped fact discriminated by its
// event name and emitting contract
type Event struct {
	Timestamp int64  `json:"timestamp"`
	Name      string `json:"name"`
	Contract  string `json:"contract"`
}

// Artist is one directory entry
type Artist struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// EventFilter narrows the event query; zero fields are not sent as filters
type EventFilter struct {
	Name     string
	Contract string
	Window   timewindow.Window
}

// Timestamps projects the event slice onto its timestamp column
func Timestamps(events []Event) []int64 {
	out := make([]int64, len(events))
	for i := range events {
		out[i] = events[i].Timestamp
	}
	return out
}

// CreationTimes projects the artist slice onto its creation timestamps
func CreationTimes(artists []Artist) []int64 {
	out := make([]int64, len(artists))
	for i := range artists {
		out[i] = artists[i].CreatedAt
	}
	return out
}
