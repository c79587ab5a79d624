package correios

import (
	"context"
)

// Service codes of the legacy Correios price/deadline API.
const (
	ServiceCodeSEDEX = "40010"
	ServiceCodePAC   = "41106"
)

// APIClient defines the interface for Correios API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// CalculateFrete queries price and deadline for a single service code.
	CalculateFrete(ctx context.Context, req *FreteRequest) (*FreteResponse, error)
}

// ============================================================================
// API Request/Response Types (match the Correios frete structure)
// ============================================================================

// FreteRequest represents a Correios price/deadline request.
// POST /frete endpoint. Field names follow the legacy parameter block.
type FreteRequest struct {
	CepOrigem        string  `json:"sCepOrigem"`
	CepDestino       string  `json:"sCepDestino"`
	Peso             float64 `json:"nVlPeso"`
	Formato          int     `json:"nCdFormato"` // 1 = box/package
	Comprimento      float64 `json:"nVlComprimento"`
	Altura           float64 `json:"nVlAltura"`
	Largura          float64 `json:"nVlLargura"`
	MaoPropria       string  `json:"sCdMaoPropria"`
	ValorDeclarado   float64 `json:"nVlValorDeclarado"`
	AvisoRecebimento string  `json:"sCdAvisoRecebimento"`
	Servico          string  `json:"nCdServico"`
}

// FreteResponse represents a Correios price/deadline response.
// Valor uses the Brazilian decimal comma, e.g. "27,30".
type FreteResponse struct {
	Valor        string `json:"valor"`
	PrazoEntrega string `json:"prazoEntrega"`
	Erro         string `json:"erro,omitempty"`
	MsgErro      string `json:"msgErro,omitempty"`
}

// APIError represents an error from the Correios API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
