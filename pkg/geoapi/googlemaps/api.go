package googlemaps

import (
	"context"
)

// APIClient defines the interface for Google Maps API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// Geocode converts a free-text address into candidate locations.
	Geocode(ctx context.Context, address string) (*GeocodeResponse, error)

	// Directions computes routes between two "lat,lng" waypoints.
	Directions(ctx context.Context, origin, destination string) (*DirectionsResponse, error)
}

// ============================================================================
// API Response Types (match the Google Maps web service JSON structure)
// ============================================================================

// GeocodeResponse represents a Geocoding API response.
// GET /maps/api/geocode/json endpoint
type GeocodeResponse struct {
	Status       string          `json:"status"` // "OK", "ZERO_RESULTS", ...
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results"`
}

// GeocodeResult is a single geocoding candidate.
type GeocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
	PlaceID          string   `json:"place_id,omitempty"`
}

// Geometry holds the location of a geocoding result.
type Geometry struct {
	Location     LatLng `json:"location"`
	LocationType string `json:"location_type,omitempty"`
}

// LatLng is a latitude/longitude pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DirectionsResponse represents a Directions API response.
// GET /maps/api/directions/json endpoint
type DirectionsResponse struct {
	Status       string  `json:"status"` // "OK", "ZERO_RESULTS", ...
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

// Route is a single route alternative.
type Route struct {
	Summary string `json:"summary,omitempty"`
	Legs    []Leg  `json:"legs"`
}

// Leg is a section of a route between two waypoints.
type Leg struct {
	Distance TextValue `json:"distance"`
	Duration TextValue `json:"duration"`
}

// TextValue is Google's value-with-display-text pair; Value is meters
// for distances and seconds for durations.
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// APIError represents an error from the Google Maps API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
