package nominatim

import (
	"context"
)

// APIClient defines the interface for Nominatim API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// Search geocodes a free-text query.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// ============================================================================
// API Response Types (match the Nominatim JSON structure)
// ============================================================================

// SearchResult is a single Nominatim search result.
// Nominatim returns coordinates as strings.
type SearchResult struct {
	PlaceID     int64  `json:"place_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Class       string `json:"class,omitempty"`
	Type        string `json:"type,omitempty"`
	Importance  float64 `json:"importance,omitempty"`
}

// APIError represents an error from the Nominatim API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
