package viacep

import (
	"context"
)

// APIClient defines the interface for ViaCEP API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// Lookup fetches the address registered for a CEP.
	Lookup(ctx context.Context, cep string) (*LookupResponse, error)
}

// ============================================================================
// API Response Types (match the ViaCEP JSON structure)
// ============================================================================

// LookupResponse represents a ViaCEP lookup response.
// GET /ws/{cep}/json/ endpoint
type LookupResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge,omitempty"`
	DDD         string `json:"ddd,omitempty"`

	// Erro is set by ViaCEP when the CEP is well-formed but unregistered.
	Erro bool `json:"erro,omitempty"`
}

// APIError represents an error from the ViaCEP API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
