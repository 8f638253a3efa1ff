package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/FACorreiaa/go-vibe-navigator/internal/client"
	"github.com/FACorreiaa/go-vibe-navigator/internal/query"
	"github.com/FACorreiaa/go-vibe-navigator/internal/results"
	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

// SearchSession is the search interaction surface: free text in,
// normalized and facet-filterable results out. One outstanding fetch at a
// time; a fetch superseded by a newer Search is discarded.
type SearchSession struct {
	mu       sync.Mutex
	inFlight bool
	gen      uint64

	agent      client.AgentClient
	normalizer *results.Normalizer
	logger     *slog.Logger

	query    query.Query
	results  []types.NormalizedLocation
	facets   []string
	selected results.TagSet
}

func NewSearchSession(agent client.AgentClient, normalizer *results.Normalizer, logger *slog.Logger) *SearchSession {
	return &SearchSession{
		agent:      agent,
		normalizer: normalizer,
		logger:     logger,
		selected:   results.NewTagSet(),
	}
}

// Search interprets raw text, fetches matching locations and derives the
// facet set. An empty backend result is the informational ErrNoResults
// state, distinct from a transport failure; it clears the current results.
func (s *SearchSession) Search(ctx context.Context, raw string) ([]types.NormalizedLocation, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	s.inFlight = true
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	q := query.Interpret(raw)
	records, err := s.agent.FetchLocations(ctx, q.City, q.Category)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, ErrSuperseded
	}
	s.inFlight = false
	s.query = q

	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch locations",
			slog.String("city", q.City),
			slog.String("category", q.Category),
			slog.Any("error", err),
		)
		s.results = nil
		s.facets = nil
		s.selected = results.NewTagSet()
		return nil, err
	}

	normalized := s.normalizer.NormalizeAll(records)
	s.results = normalized
	s.facets = results.UniqueTags(normalized)
	s.selected = results.NewTagSet()

	if len(normalized) == 0 {
		return nil, ErrNoResults
	}
	return normalized, nil
}

// ToggleTag flips one facet selection and returns the filtered view.
func (s *SearchSession) ToggleTag(tag string) []types.NormalizedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = s.selected.Toggle(tag)
	return results.Apply(s.results, s.selected)
}

// Filtered returns the current results narrowed by the selected facets.
func (s *SearchSession) Filtered() []types.NormalizedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return results.Apply(s.results, s.selected)
}

// Facets returns the unique tags across the current result set.
func (s *SearchSession) Facets() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.facets
}

// Query returns the interpreted form of the last search.
func (s *SearchSession) Query() query.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// ClearFilters drops every facet selection.
func (s *SearchSession) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = results.NewTagSet()
}

// Reset clears the surface, as when the user navigates away. A fetch
// still in flight keeps running but its completion is dropped.
func (s *SearchSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.inFlight = false
	s.query = query.Query{}
	s.results = nil
	s.facets = nil
	s.selected = results.NewTagSet()
}
