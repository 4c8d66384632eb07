// Package graph fetches artist and event records from the remote GraphQL indexer
package graph

import (
	"context"
	"net/http"
	"time"

	"mintpulse/internal/platform/logger"

	"github.com/machinebox/graphql"
)

const (
	defaultTimeout    = 15 * time.Second
	eventsPageSize    = 1000
	artistsPageSize   = 100
	maxPagesPerFetch  = 500 // hard stop against a runaway server that never ends
	defaultFirstPage  = 1
	defaultUserAgent  = "mintpulse"
	headerUserAgent   = "User-Agent"
	headerContentType = "Content-Type"
)

// Options configures the Source
type Options struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
}

// runner is the seam over the machinebox client so tests can fake transport
type runner interface {
	Run(ctx context.Context, req *graphql.Request, resp any) error
}

// Source is the read side of the remote indexer.
// Paging failures degrade to partial results: the loop stops, logs, and
// returns whatever was accumulated. Callers never see a fetch error
type Source struct {
	gql  runner
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// New creates a Source with sane defaults
func New(o Options) *Source {
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	client := graphql.NewClient(o.Endpoint, graphql.WithHTTPClient(&http.Client{Timeout: o.Timeout}))
	return &Source{
		gql:  client,
		opts: o,
		log:  *logger.Named("graph"),
		now:  time.Now,
	}
}

// request builds a machinebox request with standard headers
func (s *Source) request(query string) *graphql.Request {
	req := graphql.NewRequest(query)
	req.Header.Set(headerUserAgent, s.opts.UserAgent)
	req.Header.Set(headerContentType, "application/json")
	return req
}
