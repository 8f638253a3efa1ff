package results

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

// FallbackSummary is shown when the backend has no vibe digest for a record.
const FallbackSummary = "No description available."

// Normalizer maps raw backend location records into the uniform display
// shape. When a record carries no rating the normalizer synthesizes a
// display placeholder in [3.5, 5.0); the placeholder is decorative, not a
// computed rating, so the random source is injectable for reproducibility.
type Normalizer struct {
	rng *rand.Rand
}

// NewNormalizer returns a normalizer with a time-seeded placeholder source.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithSeed(time.Now().UnixNano())
}

// NewNormalizerWithSeed pins the placeholder rating sequence; tests use it
// to make output deterministic.
func NewNormalizerWithSeed(seed int64) *Normalizer {
	return &Normalizer{rng: rand.New(rand.NewSource(seed))}
}

// Normalize derives the display shape for a single record. It is total:
// every optional field defaults rather than failing.
func (n *Normalizer) Normalize(raw types.Location) types.NormalizedLocation {
	loc := raw.Address
	if loc == "" {
		loc = raw.City
	}

	rating := n.placeholderRating()
	if raw.Rating != nil {
		rating = fmt.Sprintf("%.1f", *raw.Rating)
	}

	vibes := []string{}
	tags := []string{}
	summary := FallbackSummary
	if raw.AIAnalysis != nil {
		if raw.AIAnalysis.Emojis != "" {
			vibes = strings.Split(raw.AIAnalysis.Emojis, " ")
		}
		if raw.AIAnalysis.VibeTags != nil {
			tags = raw.AIAnalysis.VibeTags
		}
		if raw.AIAnalysis.VibeSummary != "" {
			summary = raw.AIAnalysis.VibeSummary
		}
	}

	return types.NormalizedLocation{
		ID:       raw.ID,
		Name:     raw.Name,
		Location: loc,
		Rating:   rating,
		Vibes:    vibes,
		Tags:     tags,
		Summary:  summary,
	}
}

// NormalizeAll maps a fetch response record by record, preserving order.
func (n *Normalizer) NormalizeAll(raw []types.Location) []types.NormalizedLocation {
	out := make([]types.NormalizedLocation, 0, len(raw))
	for _, r := range raw {
		out = append(out, n.Normalize(r))
	}
	return out
}

func (n *Normalizer) placeholderRating() string {
	return fmt.Sprintf("%.1f", n.rng.Float64()*1.5+3.5)
}
