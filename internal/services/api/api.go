// Package api provides the HTTP API for the application
package api

import (
	"mintpulse/internal/adapters/graph"
	"mintpulse/internal/platform/config"
	"mintpulse/internal/platform/logger"
	phttp "mintpulse/internal/platform/net/http"
	"mintpulse/internal/platform/store"

	"mintpulse/internal/modkit"
	"mintpulse/internal/modkit/httpkit"
	"mintpulse/internal/modkit/module"
	"mintpulse/internal/modkit/swaggerkit"

	activitydomain "mintpulse/internal/services/api/activity/domain"
	activitymod "mintpulse/internal/services/api/activity/module"
	artistsdomain "mintpulse/internal/services/api/artists/domain"
	artistsmod "mintpulse/internal/services/api/artists/module"
	metamod "mintpulse/internal/services/api/meta/module"
	snapsvc "mintpulse/internal/services/snapshot/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Graph          *graph.Source
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:   opt.Config,
		PG:    opt.Store.PG,
		Graph: opt.Graph,
	}

	// directory and event reads fall back to the snapshot store when one is configured
	var (
		dirFallback   artistsdomain.DirectoryFallback
		eventFallback activitydomain.EventFallback
	)
	if opt.Store.PG != nil {
		reader := snapsvc.NewReader(opt.Store.PG)
		dirFallback = reader
		eventFallback = reader
	}

	mods := []module.Module{
		metamod.New(deps),
		activitymod.New(deps, eventFallback),
		artistsmod.New(deps, dirFallback),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
