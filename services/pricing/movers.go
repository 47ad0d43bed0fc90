package pricing

import (
	"strconv"
	"strings"
)

// MoversPrice computes the linear packers & movers price. No tiering, no
// minimum.
func MoversPrice(distanceKm float64) float64 {
	return distanceKm * MoversRatePerKm
}

// ParseDistance parses a user-entered distance. Empty or non-numeric input
// parses to zero, which prices to zero and is caught by the validation gate.
func ParseDistance(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	km, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return km
}
