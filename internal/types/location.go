package types

// Coordinates matches the backend's GeoJSON-ish point shape.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Review is a scraped review attached to a location record.
type Review struct {
	Text   string  `json:"text"`
	Source string  `json:"source"`
	Author *string `json:"author,omitempty"`
}

// AIAnalysis is the backend's per-location vibe digest.
type AIAnalysis struct {
	VibeSummary string   `json:"vibe_summary"`
	VibeTags    []string `json:"vibe_tags"`
	Emojis      string   `json:"emojis"`
}

// Location matches the raw record returned by GET /vibes/locations. The
// shape is owned by the backend; every optional field defaults through
// the normalizer before display.
type Location struct {
	ID          string       `json:"_id"`
	Name        string       `json:"name"`
	City        string       `json:"city"`
	Category    string       `json:"category"`
	Address     string       `json:"address,omitempty"`
	Rating      *float64     `json:"rating,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	RawReviews  []Review     `json:"raw_reviews,omitempty"`
	AIAnalysis  *AIAnalysis  `json:"ai_analysis,omitempty"`
}

// NormalizedLocation is the uniform display shape derived from a raw
// Location. Every field carries a displayable value.
type NormalizedLocation struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Rating   string   `json:"rating"`
	Vibes    []string `json:"vibes"`
	Tags     []string `json:"tags"`
	Summary  string   `json:"summary"`
}

// TourRequest is the body for POST /vibes/agent/tour.
type TourRequest struct {
	City     string   `json:"city"`
	VibeTags []string `json:"vibe_tags"`
}

// TourResult is the open-shaped tour payload. The backend owns the shape;
// Raw keeps the full decoded body so callers survive contract additions.
type TourResult struct {
	Reply    string                 `json:"reply"`
	Sources  []Citation             `json:"sources"`
	Duration string                 `json:"duration"`
	Raw      map[string]interface{} `json:"-"`
}
