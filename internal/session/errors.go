package session

import "errors"

var (
	// ErrRequestInFlight gates re-submission while a surface's request is
	// still pending.
	ErrRequestInFlight = errors.New("a request is already in flight for this surface")
	// ErrSuperseded marks a completion that arrived after the surface was
	// reset; its result is discarded.
	ErrSuperseded = errors.New("request was superseded by a reset")
	// ErrEmptyMessage rejects empty or whitespace-only chat input.
	ErrEmptyMessage = errors.New("message must not be empty")
	// ErrNoResults is the informational no-data state for a location
	// search. It is not a transport failure.
	ErrNoResults = errors.New("no locations found for this search")
	// ErrNoCitySelected is returned when a tour is generated without a city.
	ErrNoCitySelected = errors.New("a city must be selected")
	// ErrNoVibesSelected is returned when a tour is generated without vibes.
	ErrNoVibesSelected = errors.New("at least one vibe is required")
)
