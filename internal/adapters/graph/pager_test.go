package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mintpulse/internal/core/timewindow"
	"mintpulse/internal/platform/logger"

	"github.com/machinebox/graphql"
)

// fakeRunner serves canned JSON pages in order, then an optional error
type fakeRunner struct {
	pages []string
	err   error
	calls int
}

func (f *fakeRunner) Run(_ context.Context, _ *graphql.Request, resp any) error {
	i := f.calls
	f.calls++
	if i >= len(f.pages) {
		if f.err != nil {
			return f.err
		}
		return errors.New("no more pages queued")
	}
	return json.Unmarshal([]byte(f.pages[i]), resp)
}

func testSource(r runner) *Source {
	return &Source{
		gql:  r,
		opts: Options{Endpoint: "http://indexer.test/graphql", UserAgent: "test"},
		log:  *logger.Named("graph-test"),
		now:  time.Now,
	}
}

func eventPage(n int) string {
	docs := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			docs += ","
		}
		docs += fmt.Sprintf(`{"timestamp":%d,"name":"Mint","contract":"0xabc"}`, 1700000000+i)
	}
	return `{"events":[` + docs + `]}`
}

func TestFetchAllEvents_StopsOnShortPage(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{pages: []string{eventPage(eventsPageSize), eventPage(3)}}
	s := testSource(r)

	got := s.FetchAllEvents(context.Background(), EventFilter{
		Window: timewindow.Window{Start: 0, End: 1800000000},
	})
	if len(got) != eventsPageSize+3 {
		t.Fatalf("accumulated = %d, want %d", len(got), eventsPageSize+3)
	}
	if r.calls != 2 {
		t.Fatalf("calls = %d, want 2 (short page ends the loop)", r.calls)
	}
	// server order preserved
	if got[0].Timestamp != 1700000000 {
		t.Fatalf("first event out of order: %d", got[0].Timestamp)
	}
}

func TestFetchAllEvents_PartialOnError(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{
		pages: []string{eventPage(eventsPageSize)},
		err:   errors.New("indexer down"),
	}
	s := testSource(r)

	got := s.FetchAllEvents(context.Background(), EventFilter{})
	if len(got) != eventsPageSize {
		t.Fatalf("partial result = %d, want the one good page (%d)", len(got), eventsPageSize)
	}
	if r.calls != 2 {
		t.Fatalf("calls = %d, want 2 (error ends the loop)", r.calls)
	}
}

func TestFetchAllEvents_OmitsEmptyFilterVariables(t *testing.T) {
	t.Parallel()

	var posted []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		posted = append(posted, body.Variables)
		fmt.Fprint(w, `{"data":{"events":[]}}`)
	}))
	defer srv.Close()

	s := New(Options{Endpoint: srv.URL, UserAgent: "test"})

	s.FetchAllEvents(context.Background(), EventFilter{
		Window: timewindow.Window{Start: 10, End: 20},
	})
	if len(posted) != 1 {
		t.Fatalf("requests = %d, want 1", len(posted))
	}
	vars := posted[0]
	if _, ok := vars["name"]; ok {
		t.Fatalf("empty name posted as a filter: %v", vars)
	}
	if _, ok := vars["contract"]; ok {
		t.Fatalf("empty contract posted as a filter: %v", vars)
	}
	if vars["from"] != float64(10) || vars["to"] != float64(20) {
		t.Fatalf("window variables = %v", vars)
	}

	s.FetchAllEvents(context.Background(), EventFilter{
		Name:     "Mint",
		Contract: "0xabc",
		Window:   timewindow.Window{Start: 10, End: 20},
	})
	if len(posted) != 2 {
		t.Fatalf("requests = %d, want 2", len(posted))
	}
	vars = posted[1]
	if vars["name"] != "Mint" || vars["contract"] != "0xabc" {
		t.Fatalf("filter variables = %v", vars)
	}
}

func artistPage(n int, hasNext bool) string {
	docs := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			docs += ","
		}
		docs += fmt.Sprintf(`{"address":"0x%04d","name":"artist-%d","createdAt":%d}`, i, i, 1690000000+i)
	}
	return fmt.Sprintf(`{"artists":{"docs":[%s],"hasNextPage":%t}}`, docs, hasNext)
}

func TestFetchAllArtists_FollowsHasNextPage(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{pages: []string{
		artistPage(artistsPageSize, true),
		artistPage(artistsPageSize, true),
		artistPage(10, false),
	}}
	s := testSource(r)

	got := s.FetchAllArtists(context.Background())
	if len(got) != 2*artistsPageSize+10 {
		t.Fatalf("accumulated = %d, want %d", len(got), 2*artistsPageSize+10)
	}
	if r.calls != 3 {
		t.Fatalf("calls = %d, want 3", r.calls)
	}
}

func TestFetchAllArtists_PartialOnError(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{
		pages: []string{artistPage(artistsPageSize, true)},
		err:   errors.New("502"),
	}
	s := testSource(r)

	got := s.FetchAllArtists(context.Background())
	if len(got) != artistsPageSize {
		t.Fatalf("partial result = %d, want %d", len(got), artistsPageSize)
	}
}

func TestTimestampProjections(t *testing.T) {
	t.Parallel()

	events := []Event{{Timestamp: 1}, {Timestamp: 2}}
	if ts := Timestamps(events); len(ts) != 2 || ts[1] != 2 {
		t.Fatalf("Timestamps = %v", ts)
	}
	artists := []Artist{{CreatedAt: 7}}
	if ts := CreationTimes(artists); len(ts) != 1 || ts[0] != 7 {
		t.Fatalf("CreationTimes = %v", ts)
	}
}
