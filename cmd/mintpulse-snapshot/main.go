package main

import (
	"context"
	"flag"
	"time"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/modkit/repokit"
	"mintpulse/internal/platform/config"
	"mintpulse/internal/platform/logger"
	"mintpulse/internal/platform/store"

	snapsvc "mintpulse/internal/services/snapshot/service"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	idxCfg := root.Prefix("SERVICE_INDEXER_")

	l := logger.Get()
	st, err := store.Open(context.Background(), store.Config{
		AppName: "mintpulse-snapshot",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when pg is unreachable; a snapshot run without its sink is useless
	repokit.MustGuard(context.Background(), st)

	var (
		fEvery = flag.Duration("every", 0, "repeat interval; 0 runs one snapshot and exits")
	)
	flag.Parse()

	src := graph.New(graph.Options{
		Endpoint:  idxCfg.MustString("GRAPH_URL"),
		UserAgent: idxCfg.MayString("USER_AGENT", "mintpulse-snapshot"),
		Timeout:   idxCfg.MayDuration("TIMEOUT", 0),
	})

	svc := snapsvc.New(st.PG, src, *logger.Named("snapshot"))

	run := func(ctx context.Context) {
		runID, err := svc.Run(ctx)
		if err != nil {
			l.Error().Err(err).Msg("snapshot run failed")
			return
		}
		l.Info().Str("run_id", runID).Msg("snapshot run complete")
	}

	ctx := context.Background()
	run(ctx)

	if *fEvery <= 0 {
		return
	}
	tick := time.NewTicker(*fEvery)
	defer tick.Stop()
	for range tick.C {
		run(ctx)
	}
}
