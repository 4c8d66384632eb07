// @title         Mintpulse API
// @version       0.1.0
// @description   Read only endpoints for mint activity and artist analytics

package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/platform/config"
	"mintpulse/internal/platform/logger"
	phttp "mintpulse/internal/platform/net/http"
	"mintpulse/internal/platform/store"

	"mintpulse/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_")     // pgCfg lives under SERVICE_PGSQL_*
	idxCfg := root.Prefix("SERVICE_INDEXER_")  // idxCfg lives under SERVICE_INDEXER_*

	// bring up logging early
	l := logger.Get()

	// the snapshot store is optional; the API serves live indexer reads without it
	pgURL := pgCfg.MayString("DBURL", "")
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "mintpulse-api",
			PG: store.PGConfig{
				Enabled:     pgURL != "",
				URL:         pgURL,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// remote indexer source (reads SERVICE_INDEXER_GRAPH_URL)
	src := graph.New(graph.Options{
		Endpoint:  idxCfg.MustString("GRAPH_URL"),
		UserAgent: idxCfg.MayString("USER_AGENT", "mintpulse-api"),
		Timeout:   idxCfg.MayDuration("TIMEOUT", 0),
	})

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// prometheus scrape endpoint
	srv.Router().Handle("/metrics", promhttp.Handler())

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Graph:          src,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
