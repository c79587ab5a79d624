package viacep

import (
	"context"
	"time"
)

// MockAPIClient is a mock implementation of APIClient for testing.
type MockAPIClient struct {
	SimulateErrors  bool
	SimulateLatency time.Duration

	OnLookup func(ctx context.Context, cep string) (*LookupResponse, error)
}

// NewMockAPIClient creates a new mock API client with default behavior.
func NewMockAPIClient() *MockAPIClient {
	return &MockAPIClient{}
}

// Lookup returns a mock address.
func (m *MockAPIClient) Lookup(ctx context.Context, cep string) (*LookupResponse, error) {
	if m.SimulateLatency > 0 {
		time.Sleep(m.SimulateLatency)
	}

	if m.SimulateErrors {
		return nil, &APIError{Code: "MOCK_ERROR", Message: "Simulated API error"}
	}

	if m.OnLookup != nil {
		return m.OnLookup(ctx, cep)
	}

	return &LookupResponse{
		CEP:        cep,
		Logradouro: "Praça da Sé",
		Bairro:     "Sé",
		Localidade: "São Paulo",
		UF:         "SP",
		DDD:        "11",
	}, nil
}

var _ APIClient = (*MockAPIClient)(nil)
