package melhorenvio

import (
	"context"
)

// APIClient defines the interface for Melhor Envio API operations.
// This abstraction allows for mock implementations during testing
// and real implementations in production.
type APIClient interface {
	// Calculate fetches shipping options for a shipment.
	Calculate(ctx context.Context, req *CalculateRequest) ([]ShipmentOption, error)
}

// ============================================================================
// API Request/Response Types (match the Melhor Envio calculator structure)
// ============================================================================

// CalculateRequest represents a Melhor Envio calculator request.
// POST /api/v2/me/shipment/calculate endpoint
type CalculateRequest struct {
	From    Endpoint    `json:"from"`
	To      Endpoint    `json:"to"`
	Package PackageSpec `json:"package"`
}

// Endpoint identifies one side of the shipment by postal code.
type Endpoint struct {
	PostalCode string `json:"postal_code"`
}

// PackageSpec describes the package being quoted.
type PackageSpec struct {
	Height float64 `json:"height"` // cm
	Width  float64 `json:"width"`  // cm
	Length float64 `json:"length"` // cm
	Weight float64 `json:"weight"` // kg
}

// ShipmentOption is one carrier service option in the calculator response.
// Prices and lead times come back as strings; options the carrier cannot
// serve carry an Error message and no price.
type ShipmentOption struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"` // "PAC", "SEDEX", ".Com", ...
	Price              string `json:"price,omitempty"`
	CustomPrice        string `json:"custom_price,omitempty"`
	Currency           string `json:"currency,omitempty"`
	DeliveryTime       int    `json:"delivery_time,omitempty"`
	CustomDeliveryTime int    `json:"custom_delivery_time,omitempty"`
	Error              string `json:"error,omitempty"`
}

// APIError represents an error from the Melhor Envio API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}
