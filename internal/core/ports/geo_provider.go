package ports

import (
	"context"
)

// Location is a WGS84 coordinate pair returned by geocoding.
type Location struct {
	Lat float64
	Lng float64
}

// GeoProvider defines the contract for address geocoding and route distance
// lookups. Implementations wrap an external map service; failures are
// reported as ExternalProviderError.
type GeoProvider interface {
	// Geocode resolves a free-form address into a coordinate pair.
	Geocode(ctx context.Context, address string) (Location, error)

	// RouteDistance returns the driving distance in meters between two
	// locations.
	RouteDistance(ctx context.Context, from, to Location) (int, error)
}
