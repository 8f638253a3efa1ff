package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/FACorreiaa/go-vibe-navigator/internal/client"
	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

// DefaultMaxVibes is the reference selection cap on the tour surface.
const DefaultMaxVibes = 3

// TourSession is the tour-planner interaction surface: a city, up to
// maxVibes selected vibes, and the last generated tour.
type TourSession struct {
	mu       sync.Mutex
	inFlight bool

	agent    client.AgentClient
	logger   *slog.Logger
	maxVibes int

	city  string
	vibes []string
	tour  *types.TourResult
}

func NewTourSession(agent client.AgentClient, maxVibes int, logger *slog.Logger) *TourSession {
	if maxVibes <= 0 {
		maxVibes = DefaultMaxVibes
	}
	return &TourSession{agent: agent, maxVibes: maxVibes, logger: logger}
}

// SelectCity sets the tour city.
func (s *TourSession) SelectCity(city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.city = city
}

// ToggleVibe flips one vibe selection. Adding beyond the cap is refused;
// ok reports whether the toggle was applied.
func (s *TourSession) ToggleVibe(vibe string) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vibes {
		if v == vibe {
			s.vibes = append(s.vibes[:i], s.vibes[i+1:]...)
			return true
		}
	}
	if len(s.vibes) >= s.maxVibes {
		return false
	}
	s.vibes = append(s.vibes, vibe)
	return true
}

// Vibes returns the current selection.
func (s *TourSession) Vibes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.vibes))
	copy(out, s.vibes)
	return out
}

// Generate requests a tour for the selected city and vibes. It requires a
// city and at least one vibe, and allows one outstanding request.
func (s *TourSession) Generate(ctx context.Context) (*types.TourResult, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	if s.city == "" {
		s.mu.Unlock()
		return nil, ErrNoCitySelected
	}
	if len(s.vibes) == 0 {
		s.mu.Unlock()
		return nil, ErrNoVibesSelected
	}
	s.inFlight = true
	city := s.city
	vibes := make([]string, len(s.vibes))
	copy(vibes, s.vibes)
	s.mu.Unlock()

	tour, err := s.agent.GenerateTour(ctx, city, vibes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to generate tour",
			slog.String("city", city),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.tour = tour
	return tour, nil
}

// Tour returns the last generated tour, nil when none has been generated
// or the session was cleared.
func (s *TourSession) Tour() *types.TourResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tour
}

// Clear drops the generated tour so a new one can be planned.
func (s *TourSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tour = nil
	s.vibes = nil
}
