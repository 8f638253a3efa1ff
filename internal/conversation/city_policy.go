package conversation

import "strings"

// DefaultSupportedCities mirrors the cities the backend has indexed data for.
var DefaultSupportedCities = []string{
	"pune",
	"mumbai",
	"bangalore",
	"noida",
	"delhi",
	"goa",
	"ahmednagar",
}

// DefaultChatCity is substituted when a message names no supported city.
const DefaultChatCity = "mumbai"

// CityPolicy decides which city a chat message is about. Unmatched text
// falls back to Default rather than erroring, so a message about an
// unsupported city is answered for the fallback city. The policy is a
// value so callers can swap in a stricter one.
type CityPolicy struct {
	Supported []string
	Default   string
}

// DefaultCityPolicy returns the lenient policy the reference product ships.
func DefaultCityPolicy() CityPolicy {
	return CityPolicy{Supported: DefaultSupportedCities, Default: DefaultChatCity}
}

// ExtractCity scans text case-insensitively for the first supported city
// that appears as a substring. The tie-break is list order, not position
// in the text. ok is false when no city matches.
func (p CityPolicy) ExtractCity(text string) (city string, ok bool) {
	lower := strings.ToLower(text)
	for _, c := range p.Supported {
		if strings.Contains(lower, c) {
			return c, true
		}
	}
	return "", false
}

// Resolve applies the fallback-not-error policy: the extracted city when
// one matches, Default otherwise.
func (p CityPolicy) Resolve(text string) string {
	if city, ok := p.ExtractCity(text); ok {
		return city
	}
	return p.Default
}
