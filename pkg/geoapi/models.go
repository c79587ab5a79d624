package geoapi

import (
	"fmt"
	"strings"
)

// Address is the structured address registered for a postal code.
type Address struct {
	CEP      string
	Street   string
	District string
	City     string
	State    string // two-letter state code, e.g. "SP"
}

// Formatted returns the address in the "street, city, state" form the
// geocoders accept as free-text input. Empty components are skipped.
func (a *Address) Formatted() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Street, a.City, a.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Coordinates is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

// RouteResult is the travel estimate for the primary route between two
// points. Alternative routes and extra legs are discarded by providers.
type RouteResult struct {
	DistanceMeters  int
	DurationSeconds int
}
