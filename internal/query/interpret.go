package query

import (
	"regexp"
	"strings"
)

const (
	// DefaultCity is used when the text names no city.
	DefaultCity = "pune"
	// DefaultCategory is used when the text reduces to an empty category.
	DefaultCategory = "cafe"
)

var (
	cityPattern       = regexp.MustCompile(`in ([a-z\s]+)`)
	strictCityPattern = regexp.MustCompile(`in (\w+)`)
)

// Query is the interpreted form of a free-text search.
type Query struct {
	City     string `json:"city"`
	Category string `json:"category"`
}

// Interpret parses a free-text search like "cozy cafes in Pune" into a
// city/category pair. The text is lowercased; the city is the trimmed
// letters-and-spaces tail after the first " in ", the category the trimmed
// head before it. It is total: missing pieces fall back to DefaultCity and
// DefaultCategory. Callers reject empty input before this stage.
func Interpret(raw string) Query {
	lower := strings.ToLower(raw)

	city := DefaultCity
	if m := cityPattern.FindStringSubmatch(lower); m != nil {
		city = strings.TrimSpace(m[1])
	}

	category := strings.TrimSpace(strings.SplitN(lower, " in ", 2)[0])
	if category == "" {
		category = DefaultCategory
	}

	return Query{City: city, Category: category}
}

// InterpretStrict is the single-word variant used by the map view: the
// city is the first word token after "in ", so "in navi mumbai" resolves
// to "navi". Splitting behaves otherwise like Interpret.
func InterpretStrict(raw string) Query {
	lower := strings.ToLower(raw)

	city := DefaultCity
	if m := strictCityPattern.FindStringSubmatch(lower); m != nil {
		city = m[1]
	}

	category := strings.TrimSpace(strings.SplitN(lower, " in ", 2)[0])
	if category == "" {
		category = DefaultCategory
	}

	return Query{City: city, Category: category}
}
