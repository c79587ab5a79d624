package correios

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnCalculateFrete func(ctx context.Context, req *FreteRequest) (*FreteResponse, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// CalculateFrete returns a mock price/deadline.
func (m *MockAPIClient) CalculateFrete(ctx context.Context, req *FreteRequest) (*FreteResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnCalculateFrete != nil {
		return m.OnCalculateFrete(ctx, req)
	}

	switch req.Servico {
	case ServiceCodeSEDEX:
		return &FreteResponse{Valor: "35,90", PrazoEntrega: "2"}, nil
	default:
		return &FreteResponse{Valor: "24,50", PrazoEntrega: "6"}, nil
	}
}

var _ APIClient = (*MockAPIClient)(nil)
