package results

import "github.com/FACorreiaa/go-vibe-navigator/internal/types"

// TagSet is the multi-select facet filter state owned by a search surface.
type TagSet map[string]struct{}

// NewTagSet builds a set from the given tags.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// Has reports whether tag is selected.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Toggle returns a new set with tag added if absent or removed if present.
// The receiver is not mutated.
func (s TagSet) Toggle(tag string) TagSet {
	out := make(TagSet, len(s)+1)
	for t := range s {
		out[t] = struct{}{}
	}
	if _, ok := out[tag]; ok {
		delete(out, tag)
	} else {
		out[tag] = struct{}{}
	}
	return out
}

// UniqueTags returns the union of tags across results in first-seen order.
func UniqueTags(results []types.NormalizedLocation) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range results {
		for _, tag := range r.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}

// Apply narrows results to those whose tags intersect the selected set.
// An empty selection is the identity; matching is OR across selected tags
// and the input order is preserved.
func Apply(results []types.NormalizedLocation, selected TagSet) []types.NormalizedLocation {
	if len(selected) == 0 {
		return results
	}
	var out []types.NormalizedLocation
	for _, r := range results {
		for _, tag := range r.Tags {
			if selected.Has(tag) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
