package session

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-vibe-navigator/internal/results"
	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

func newSearchSession(agent *MockAgentClient) *SearchSession {
	return NewSearchSession(agent, results.NewNormalizerWithSeed(1), slog.Default())
}

func searchFixtures() []types.Location {
	return []types.Location{
		{
			ID:      "1",
			Name:    "Cafe Goodluck",
			City:    "pune",
			Address: "FC Road",
			AIAnalysis: &types.AIAnalysis{
				VibeSummary: "Bustling and old-school.",
				VibeTags:    []string{"Lively", "Foodie Adventure"},
				Emojis:      "🎉 🍕",
			},
		},
		{
			ID:   "2",
			Name: "Pagdandi Books Chai Cafe",
			City: "pune",
			AIAnalysis: &types.AIAnalysis{
				VibeSummary: "Quiet corner with books.",
				VibeTags:    []string{"Work & Focus"},
				Emojis:      "💼",
			},
		},
	}
}

func TestSearchSessionSearch(t *testing.T) {
	t.Run("InterpretsQueryAndDerivesFacets", func(t *testing.T) {
		ctx := context.Background()
		mockAgent := new(MockAgentClient)
		session := newSearchSession(mockAgent)

		mockAgent.On("FetchLocations", ctx, "pune", "cafes").
			Return(searchFixtures(), nil).Once()

		found, err := session.Search(ctx, "cafes in Pune")

		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "FC Road", found[0].Location)
		assert.Equal(t, "pune", found[1].Location)
		assert.Equal(t, []string{"Lively", "Foodie Adventure", "Work & Focus"}, session.Facets())
		assert.Equal(t, "pune", session.Query().City)
		assert.Equal(t, "cafes", session.Query().Category)
		mockAgent.AssertExpectations(t)
	})

	t.Run("EmptyResultIsNoResultsStateNotFailure", func(t *testing.T) {
		ctx := context.Background()
		mockAgent := new(MockAgentClient)
		session := newSearchSession(mockAgent)

		mockAgent.On("FetchLocations", ctx, "goa", "igloos").
			Return([]types.Location{}, nil).Once()

		found, err := session.Search(ctx, "igloos in goa")

		assert.ErrorIs(t, err, ErrNoResults)
		assert.Empty(t, found)
		assert.Empty(t, session.Facets())
		mockAgent.AssertExpectations(t)
	})

	t.Run("ResetDiscardsPendingCompletion", func(t *testing.T) {
		ctx := context.Background()
		mockAgent := new(MockAgentClient)
		session := newSearchSession(mockAgent)

		inFlight := make(chan struct{})
		release := make(chan struct{})
		mockAgent.On("FetchLocations", ctx, "pune", "cafes").
			Run(func(args mock.Arguments) {
				close(inFlight)
				<-release
			}).
			Return(searchFixtures(), nil).Once()

		errCh := make(chan error, 1)
		go func() {
			_, err := session.Search(ctx, "cafes in pune")
			errCh <- err
		}()

		<-inFlight
		session.Reset()
		close(release)

		assert.ErrorIs(t, <-errCh, ErrSuperseded)
		assert.Empty(t, session.Filtered())
		mockAgent.AssertExpectations(t)
	})

	t.Run("TransportFailureClearsResults", func(t *testing.T) {
		ctx := context.Background()
		mockAgent := new(MockAgentClient)
		session := newSearchSession(mockAgent)

		mockAgent.On("FetchLocations", ctx, "pune", "cafes").
			Return(searchFixtures(), nil).Once()
		_, err := session.Search(ctx, "cafes in pune")
		require.NoError(t, err)

		mockAgent.On("FetchLocations", ctx, "delhi", "bars").
			Return(nil, assert.AnError).Once()
		_, err = session.Search(ctx, "bars in delhi")

		assert.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, ErrNoResults)
		assert.Empty(t, session.Filtered())
		mockAgent.AssertExpectations(t)
	})
}

func TestSearchSessionFilters(t *testing.T) {
	ctx := context.Background()
	mockAgent := new(MockAgentClient)
	session := newSearchSession(mockAgent)

	mockAgent.On("FetchLocations", ctx, "pune", "cafes").
		Return(searchFixtures(), nil).Once()
	_, err := session.Search(ctx, "cafes in pune")
	require.NoError(t, err)

	t.Run("EmptySelectionShowsEverything", func(t *testing.T) {
		assert.Len(t, session.Filtered(), 2)
	})

	t.Run("ToggleNarrowsToIntersectingTags", func(t *testing.T) {
		filtered := session.ToggleTag("Work & Focus")
		require.Len(t, filtered, 1)
		assert.Equal(t, "2", filtered[0].ID)
	})

	t.Run("DoubleToggleRestoresEverything", func(t *testing.T) {
		filtered := session.ToggleTag("Work & Focus")
		assert.Len(t, filtered, 2)
	})

	t.Run("ClearFiltersResetsSelection", func(t *testing.T) {
		session.ToggleTag("Lively")
		session.ClearFilters()
		assert.Len(t, session.Filtered(), 2)
	})

	t.Run("NewSearchResetsSelection", func(t *testing.T) {
		session.ToggleTag("Lively")
		mockAgent.On("FetchLocations", ctx, "pune", "cafes").
			Return(searchFixtures(), nil).Once()
		_, err := session.Search(ctx, "cafes in pune")
		require.NoError(t, err)
		assert.Len(t, session.Filtered(), 2)
	})
}
