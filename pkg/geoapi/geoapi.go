// Package geoapi provides an abstraction layer for the geographic
// upstream services: postal-code lookup, geocoding and route estimation.
package geoapi

import (
	"context"
)

// AddressResolver converts a postal code (CEP) into a structured address.
type AddressResolver interface {
	// Name returns the provider identifier (e.g., "viacep").
	Name() string

	// Resolve looks up the address registered for a CEP.
	Resolve(ctx context.Context, cep string) (*Address, error)
}

// Geocoder converts a free-text address into coordinates.
type Geocoder interface {
	// Name returns the provider identifier (e.g., "googlemaps", "nominatim").
	Name() string

	// Geocode returns the coordinates of the first match for the address.
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}

// RouteEstimator computes travel distance and duration between two points.
type RouteEstimator interface {
	// Name returns the provider identifier (e.g., "googlemaps").
	Name() string

	// Route returns the distance and duration of the primary route.
	Route(ctx context.Context, origin, destination Coordinates) (*RouteResult, error)
}
