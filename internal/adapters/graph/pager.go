package graph

import (
	"context"
	"time"

	"mintpulse/internal/platform/metrics"
)

const eventsQuery = `
query Events($name: String, $contract: String, $from: Int!, $to: Int!, $first: Int!, $skip: Int!) {
  events(
    where: { name: $name, contract: $contract, timestamp_gte: $from, timestamp_lt: $to }
    orderBy: timestamp
    first: $first
    skip: $skip
  ) {
    timestamp
    name
    contract
  }
}`

const artistsQuery = `
query Artists($page: Int!, $limit: Int!) {
  artists(page: $page, limit: $limit) {
    docs {
      address
      name
      bio
      avatarUrl
      createdAt
    }
    hasNextPage
  }
}`

// fetchPages drives one paging loop. fetch returns the batch for page i
// (0 based) and whether the server has more. On error the loop stops and the
// records accumulated so far are returned; callers never see a fetch error
func fetchPages[T any](s *Source, kind string, fetch func(page int) ([]T, bool, error)) []T {
	var all []T
	start := s.now()

	for page := 0; page < maxPagesPerFetch; page++ {
		batch, more, err := fetch(page)
		if err != nil {
			metrics.FetchErrors.WithLabelValues(kind).Inc()
			s.log.Error().Err(err).
				Str("kind", kind).
				Int("page", page).
				Int("accumulated", len(all)).
				Msg("page fetch failed, keeping partial result")
			break
		}

		metrics.PagesFetched.WithLabelValues(kind).Inc()
		all = append(all, batch...)
		if !more {
			break
		}
	}

	metrics.RecordsFetched.WithLabelValues(kind).Add(float64(len(all)))
	s.log.Debug().
		Str("kind", kind).
		Int("records", len(all)).
		Dur("elapsed", time.Since(start)).
		Msg("fetch done")
	return all
}

// FetchAllEvents pulls every event matching the filter, offset paged.
// A page shorter than the requested size means the server is drained
func (s *Source) FetchAllEvents(ctx context.Context, f EventFilter) []Event {
	return fetchPages(s, "event", func(page int) ([]Event, bool, error) {
		req := s.request(eventsQuery)
		// zero filter fields stay out of the variable set; "" equality-matches nothing
		if f.Name != "" {
			req.Var("name", f.Name)
		}
		if f.Contract != "" {
			req.Var("contract", f.Contract)
		}
		req.Var("from", f.Window.Start)
		req.Var("to", f.Window.End)
		req.Var("first", eventsPageSize)
		req.Var("skip", page*eventsPageSize)

		var resp struct {
			Events []Event `json:"events"`
		}
		if err := s.gql.Run(ctx, req, &resp); err != nil {
			return nil, false, err
		}
		return resp.Events, len(resp.Events) == eventsPageSize, nil
	})
}

// FetchAllArtists pulls the full artist directory, page-number paged.
// The server reports continuation explicitly via hasNextPage
func (s *Source) FetchAllArtists(ctx context.Context) []Artist {
	return fetchPages(s, "artist", func(page int) ([]Artist, bool, error) {
		req := s.request(artistsQuery)
		req.Var("page", defaultFirstPage+page)
		req.Var("limit", artistsPageSize)

		var resp struct {
			Artists struct {
				Docs        []Artist `json:"docs"`
				HasNextPage bool     `json:"hasNextPage"`
			} `json:"artists"`
		}
		if err := s.gql.Run(ctx, req, &resp); err != nil {
			return nil, false, err
		}
		return resp.Artists.Docs, resp.Artists.HasNextPage, nil
	})
}
