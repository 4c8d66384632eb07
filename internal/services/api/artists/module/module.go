// Package module wires artists into the API using modkit
package module

import (
	"net/http"

	modkit "mintpulse/internal/modkit"
	"mintpulse/internal/modkit/httpkit"
	str "mintpulse/internal/platform/strings"
	"mintpulse/internal/services/api/artists/domain"
	artistshttp "mintpulse/internal/services/api/artists/http"
	artistssvc "mintpulse/internal/services/api/artists/service"
)

// Module implements the artists module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc artistssvc.Service
}

// New constructs the artists module. fallback may be nil when no snapshot
// store is configured
func New(deps modkit.Deps, fallback domain.DirectoryFallback, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("artists"), modkit.WithPrefix("/artists")}, opts...)...)

	svc := artistssvc.New(deps.Graph, fallback)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptArtistsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		artistshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
