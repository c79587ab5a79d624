package nominatim

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnSearch func(ctx context.Context, query string) ([]SearchResult, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Search returns a mock geocoding result.
func (m *MockAPIClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnSearch != nil {
		return m.OnSearch(ctx, query)
	}

	return []SearchResult{
		{
			PlaceID:     1,
			Lat:         "-23.55",
			Lon:         "-46.63",
			DisplayName: query,
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
