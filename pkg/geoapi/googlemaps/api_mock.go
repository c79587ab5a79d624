package googlemaps

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnGeocode    func(ctx context.Context, address string) (*GeocodeResponse, error)
	OnDirections func(ctx context.Context, origin, destination string) (*DirectionsResponse, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Geocode returns a mock geocoding result.
func (m *MockAPIClient) Geocode(ctx context.Context, address string) (*GeocodeResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnGeocode != nil {
		return m.OnGeocode(ctx, address)
	}

	return &GeocodeResponse{
		Status: "OK",
		Results: []GeocodeResult{
			{
				FormattedAddress: address,
				Geometry: Geometry{
					Location: LatLng{Lat: -23.55, Lng: -46.63},
				},
			},
		},
	}, nil
}

// Directions returns a mock route.
func (m *MockAPIClient) Directions(ctx context.Context, origin, destination string) (*DirectionsResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnDirections != nil {
		return m.OnDirections(ctx, origin, destination)
	}

	return &DirectionsResponse{
		Status: "OK",
		Routes: []Route{
			{
				Legs: []Leg{
					{
						Distance: TextValue{Text: "1.5 km", Value: 1500},
						Duration: TextValue{Text: "5 mins", Value: 300},
					},
				},
			},
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
