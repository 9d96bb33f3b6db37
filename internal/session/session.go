package session

import (
	"context"
	"net/url"
	"sync"

	"github.com/gordonmaloney/testify-admin/internal/logger"
	"github.com/gordonmaloney/testify-admin/internal/query"
	"github.com/gordonmaloney/testify-admin/pkg/models"
)

// DefaultLimit is the result cap applied when the user does not supply one.
const DefaultLimit = 20

// Fetcher is the slice of the API client the session needs.
type Fetcher interface {
	FetchEvents(ctx context.Context, params url.Values) ([]models.Event, error)
}

// State is a snapshot of everything driving a render: the active filters,
// the current event list, and the loading/error pair. Loading and Err are
// never both set once a fetch has settled.
type State struct {
	Site    string
	Limit   int
	Events  []models.Event
	Loading bool
	Err     string
}

// Store is the single owner of viewer state. Fetches are sequenced: each
// Refresh takes the next sequence number, and a completion that is not the
// latest issued fetch is discarded, so a slow early response can never
// overwrite the result of a later one.
type Store struct {
	mu     sync.Mutex
	client Fetcher
	log    *logger.Logger

	site  string
	limit int

	events []models.Event
	errMsg string

	issued  uint64 // sequence number of the most recent fetch
	settled uint64 // sequence number of the most recent applied completion
}

func NewStore(client Fetcher) *Store {
	return &Store{
		client: client,
		log:    logger.Get(logger.WarnLevel),
		limit:  DefaultLimit,
	}
}

// SetFilter updates the site and limit filters for subsequent fetches.
func (s *Store) SetFilter(site string, limit int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.site = site
	s.limit = limit
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	events := make([]models.Event, len(s.events))
	copy(events, s.events)
	return State{
		Site:    s.site,
		Limit:   s.limit,
		Events:  events,
		Loading: s.issued > s.settled,
		Err:     s.errMsg,
	}
}

// Refresh performs one fetch with the current filters and returns the state
// after the fetch settles. Starting a fetch clears any previous error; on
// success the event list is replaced wholesale and the error stays empty, on
// failure the list is emptied and the error message is set. Every outcome is
// a single best-effort attempt; recovery is another Refresh.
func (s *Store) Refresh(ctx context.Context) State {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.errMsg = ""
	params := query.Build(query.Filter{Site: s.site, Limit: s.limit})
	s.mu.Unlock()

	events, err := s.client.FetchEvents(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.issued {
		// A newer fetch is in flight or already settled; this result is stale.
		s.log.Debugf("discarding stale fetch result (seq %d < %d)", seq, s.issued)
		return s.snapshotLocked()
	}
	s.settled = seq

	if err != nil {
		s.events = nil
		s.errMsg = err.Error()
		s.log.Debugf("fetch failed: %v", err)
	} else {
		s.events = events
		s.errMsg = ""
	}
	return s.snapshotLocked()
}
