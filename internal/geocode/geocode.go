package geocode

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("geocode not found")

type Result struct {
	Lat         float64 `json:"latitud"`
	Lon         float64 `json:"longitud"`
	DisplayName string  `json:"direccion_normalizada"`
	Confidence  float64 `json:"confianza"`
}

type Geocoder interface {
	Geocode(ctx context.Context, query string) (Result, error)
}

// BuildGeocodeQuery joins the non-empty parts from most to least specific:
// street address, comuna, country.
func BuildGeocodeQuery(address string, comuna string, country string) string {
	parts := []string{}
	for _, p := range []string{address, comuna, country} {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// the caller may already have typed the comuna or country
		if len(parts) > 0 && strings.Contains(strings.ToLower(parts[0]), strings.ToLower(p)) {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ", ")
}
