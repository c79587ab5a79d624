package melhorenvio

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCalculate func(ctx context.Context, req *CalculateRequest) ([]ShipmentOption, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Calculate returns mock shipping options.
func (m *MockAPIClient) Calculate(ctx context.Context, req *CalculateRequest) ([]ShipmentOption, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnCalculate != nil {
		return m.OnCalculate(ctx, req)
	}

	return []ShipmentOption{
		{
			ID:                 1,
			Name:               "PAC",
			Price:              "25.00",
			CustomPrice:        "25.00",
			Currency:           "R$",
			DeliveryTime:       5,
			CustomDeliveryTime: 5,
		},
		{
			ID:                 2,
			Name:               "SEDEX",
			Price:              "35.00",
			CustomPrice:        "35.00",
			Currency:           "R$",
			DeliveryTime:       2,
			CustomDeliveryTime: 2,
		},
		{
			ID:   17,
			Name: ".Com",
			// Option the carrier cannot serve: no price, only an error.
			Error: "Serviço indisponível para o trecho",
		},
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
