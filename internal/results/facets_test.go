package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-vibe-navigator/internal/types"
)

func testResults() []types.NormalizedLocation {
	return []types.NormalizedLocation{
		{ID: "1", Tags: []string{"Aesthetic", "Romantic Date"}},
		{ID: "2", Tags: []string{"Lively"}},
		{ID: "3", Tags: []string{"Aesthetic", "Work & Focus"}},
		{ID: "4", Tags: []string{}},
	}
}

func TestUniqueTags(t *testing.T) {
	tags := UniqueTags(testResults())
	assert.Equal(t, []string{"Aesthetic", "Romantic Date", "Lively", "Work & Focus"}, tags)
}

func TestToggle(t *testing.T) {
	t.Run("AddsWhenAbsent", func(t *testing.T) {
		set := NewTagSet().Toggle("Lively")
		assert.True(t, set.Has("Lively"))
	})

	t.Run("RemovesWhenPresent", func(t *testing.T) {
		set := NewTagSet("Lively").Toggle("Lively")
		assert.False(t, set.Has("Lively"))
	})

	t.Run("DoubleToggleIsIdentity", func(t *testing.T) {
		start := NewTagSet("Aesthetic", "Lively")
		assert.Equal(t, start, start.Toggle("Romantic Date").Toggle("Romantic Date"))
	})

	t.Run("DoesNotMutateReceiver", func(t *testing.T) {
		start := NewTagSet("Aesthetic")
		_ = start.Toggle("Aesthetic")
		assert.True(t, start.Has("Aesthetic"))
	})
}

func TestApply(t *testing.T) {
	results := testResults()

	t.Run("EmptySelectionIsIdentity", func(t *testing.T) {
		assert.Equal(t, results, Apply(results, NewTagSet()))
		assert.Equal(t, results, Apply(results, nil))
	})

	t.Run("OrSemanticsAcrossSelectedTags", func(t *testing.T) {
		got := Apply(results, NewTagSet("Lively", "Work & Focus"))
		require.Len(t, got, 2)
		assert.Equal(t, "2", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("SurvivorsKeepInputOrder", func(t *testing.T) {
		got := Apply(results, NewTagSet("Aesthetic"))
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "3", got[1].ID)
	})

	t.Run("NoIntersection", func(t *testing.T) {
		assert.Empty(t, Apply(results, NewTagSet("Nature Escape")))
	})
}
