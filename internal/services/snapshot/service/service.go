// Package service takes point in time snapshots of the remote record set
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/core/timewindow"
	"mintpulse/internal/modkit/repokit"
	"mintpulse/internal/platform/logger"
	"mintpulse/internal/services/snapshot/repo"
)

// EventLookback is how far back each snapshot run pulls events. Sixty days
// covers the widest chart window (30 days) plus its previous period
const EventLookback = 60 * 24 * time.Hour

// Sources is the remote read surface a snapshot run fetches through
type Sources interface {
	FetchAllEvents(ctx context.Context, f graph.EventFilter) []graph.Event
	FetchAllArtists(ctx context.Context) []graph.Artist
}

// Svc runs snapshot passes against postgres
type Svc struct {
	tx     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	src    Sources
	log    logger.Logger
	now    func() time.Time
}

// New constructs a snapshot service
func New(tx repokit.TxRunner, src Sources, log logger.Logger) *Svc {
	if tx == nil {
		panic("snapshot.Service requires a TxRunner")
	}
	if src == nil {
		panic("snapshot.Service requires a Sources")
	}
	// bulk upserts should not hold the tx open past the run cadence
	tx = repokit.WithBeginHooks(tx, func(ctx context.Context, q repokit.Queryer) error {
		_, err := q.Exec(ctx, `SET LOCAL statement_timeout = '30s'`)
		return err
	})
	return &Svc{
		tx:     tx,
		binder: repo.NewPG(),
		src:    src,
		log:    log,
		now:    time.Now,
	}
}

// Run takes one snapshot: fetch both record kinds concurrently, then persist
// them in a single transaction tagged with a run id. A partial remote result
// still persists; the upserts are idempotent so the next run fills the gap
func (s *Svc) Run(ctx context.Context) (string, error) {
	now := s.now().UTC()
	runID := uuid.NewString()

	var (
		events  []graph.Event
		artists []graph.Artist
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		events = s.src.FetchAllEvents(ctx, graph.EventFilter{
			Window: timewindow.TrailingWindow(now, EventLookback),
		})
	}()
	go func() {
		defer wg.Done()
		artists = s.src.FetchAllArtists(ctx)
	}()
	wg.Wait()

	err := repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		st := repokit.MustBind(s.binder, q)
		if err := st.UpsertEvents(ctx, events); err != nil {
			return err
		}
		if err := st.UpsertArtists(ctx, artists); err != nil {
			return err
		}
		return st.RecordRun(ctx, runID, len(events), len(artists))
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("run_id", runID).
		Int("events", len(events)).
		Int("artists", len(artists)).
		Msg("snapshot persisted")
	return runID, nil
}

// Reader serves snapshotted records back out, for fallback reads
type Reader struct {
	q      repokit.Queryer
	binder repokit.Binder[repo.Storage]
}

// NewReader constructs a snapshot reader over any queryer
func NewReader(q repokit.Queryer) *Reader {
	return &Reader{q: repokit.RequireQueryer(q), binder: repo.NewPG()}
}

// Artists returns the last snapshotted directory
func (r *Reader) Artists(ctx context.Context) ([]graph.Artist, error) {
	return repokit.MustBind(r.binder, r.q).Artists(ctx)
}

// Events returns snapshotted events inside a half open window
func (r *Reader) Events(ctx context.Context, w timewindow.Window) ([]graph.Event, error) {
	return repokit.MustBind(r.binder, r.q).Events(ctx, w)
}
