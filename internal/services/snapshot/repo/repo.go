// Package repo provides postgres access for record snapshots
package repo

import (
	"context"
	"fmt"
	"strings"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/core/timewindow"
	"mintpulse/internal/modkit/repokit"
)

// Storage defines the snapshot repository
type Storage interface {
	UpsertEvents(ctx context.Context, xs []graph.Event) error
	UpsertArtists(ctx context.Context, xs []graph.Artist) error
	RecordRun(ctx context.Context, runID string, events, artists int) error
	Events(ctx context.Context, w timewindow.Window) ([]graph.Event, error)
	Artists(ctx context.Context) ([]graph.Artist, error)
}

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// UpsertEvents implements Storage. The natural key is (ts, name, contract)
// so re-snapshotting the same window is idempotent
func (s *pg) UpsertEvents(ctx context.Context, xs []graph.Event) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO snapshot_events (ts, name, contract) VALUES `)

	args := make([]any, 0, len(xs)*3)
	for i, e := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*3 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d)", base, base+1, base+2)
		args = append(args, e.Timestamp, e.Name, e.Contract)
	}
	sb.WriteString(` ON CONFLICT (ts, name, contract) DO NOTHING`)

	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// UpsertArtists implements Storage, keyed on address with newest wins
func (s *pg) UpsertArtists(ctx context.Context, xs []graph.Artist) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO snapshot_artists (address, name, bio, avatar_url, created_at) VALUES `)

	args := make([]any, 0, len(xs)*5)
	for i, a := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*5 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d)", base, base+1, base+2, base+3, base+4)
		args = append(args, a.Address, a.Name, a.Bio, a.AvatarURL, a.CreatedAt)
	}
	sb.WriteString(` ON CONFLICT (address) DO UPDATE SET
		name = EXCLUDED.name,
		bio = EXCLUDED.bio,
		avatar_url = EXCLUDED.avatar_url,
		created_at = EXCLUDED.created_at`)

	_, err := s.q.Exec(ctx, sb.String(), args...)
	return err
}

// RecordRun implements Storage
func (s *pg) RecordRun(ctx context.Context, runID string, events, artists int) error {
	const sql = `
INSERT INTO snapshot_runs (id, events, artists, taken_at)
VALUES ($1, $2, $3, now())`
	_, err := s.q.Exec(ctx, sql, runID, events, artists)
	return err
}

// Events implements Storage over a half open window
func (s *pg) Events(ctx context.Context, w timewindow.Window) ([]graph.Event, error) {
	const sql = `
SELECT ts, name, contract
FROM snapshot_events
WHERE ts >= $1 AND ts < $2
ORDER BY ts`
	rows, err := s.q.Query(ctx, sql, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []graph.Event
	for rows.Next() {
		var e graph.Event
		if err := rows.Scan(&e.Timestamp, &e.Name, &e.Contract); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Artists implements Storage
func (s *pg) Artists(ctx context.Context) ([]graph.Artist, error) {
	const sql = `
SELECT address, name, bio, avatar_url, created_at
FROM snapshot_artists
ORDER BY created_at DESC`
	rows, err := s.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []graph.Artist
	for rows.Next() {
		var a graph.Artist
		if err := rows.Scan(&a.Address, &a.Name, &a.Bio, &a.AvatarURL, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
