// Package freight provides an abstraction layer for carrier rate services.
package freight

import (
	"context"
)

// RateClient defines the interface that all carrier rate providers
// must implement.
type RateClient interface {
	// Name returns the provider identifier (e.g., "melhorenvio", "correios").
	Name() string

	// Quote returns the shipping options for a package between two CEPs.
	// An empty slice (with a nil error) means the provider answered but
	// offered none of the supported service tiers.
	Quote(ctx context.Context, req *QuoteRequest) ([]Quote, error)
}
