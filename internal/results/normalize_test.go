package results

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

func TestNormalize(t *testing.T) {
	normalizer := NewNormalizerWithSeed(42)

	t.Run("FullRecord", func(t *testing.T) {
		rating := 4.2
		raw := types.Location{
			ID:      "abc123",
			Name:    "Cafe Goodluck",
			City:    "pune",
			Address: "FC Road, Pune",
			Rating:  &rating,
			AIAnalysis: &types.AIAnalysis{
				VibeSummary: "Old-school bustle with great bun maska.",
				VibeTags:    []string{"Lively", "Foodie Adventure"},
				Emojis:      "🎉 🍕",
			},
		}

		got := normalizer.Normalize(raw)

		assert.Equal(t, "abc123", got.ID)
		assert.Equal(t, "FC Road, Pune", got.Location)
		assert.Equal(t, "4.2", got.Rating)
		assert.Equal(t, []string{"🎉", "🍕"}, got.Vibes)
		assert.Equal(t, []string{"Lively", "Foodie Adventure"}, got.Tags)
		assert.Equal(t, "Old-school bustle with great bun maska.", got.Summary)
	})

	t.Run("LocationFallsBackToCity", func(t *testing.T) {
		got := normalizer.Normalize(types.Location{Name: "Somewhere", City: "goa"})
		assert.Equal(t, "goa", got.Location)
	})

	t.Run("TotalOnBareRecord", func(t *testing.T) {
		got := normalizer.Normalize(types.Location{})

		assert.Equal(t, "", got.Location)
		assert.Equal(t, []string{}, got.Vibes)
		assert.Equal(t, []string{}, got.Tags)
		assert.Equal(t, FallbackSummary, got.Summary)

		rating, err := strconv.ParseFloat(got.Rating, 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rating, 3.5)
		assert.Less(t, rating, 5.0)
	})

	t.Run("PlaceholderRatingIsSeedDeterministic", func(t *testing.T) {
		a := NewNormalizerWithSeed(7).Normalize(types.Location{})
		b := NewNormalizerWithSeed(7).Normalize(types.Location{})
		assert.Equal(t, a.Rating, b.Rating)
	})
}

func TestNormalizeAll(t *testing.T) {
	normalizer := NewNormalizerWithSeed(1)
	raw := []types.Location{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
	}

	got := normalizer.NormalizeAll(raw)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}
