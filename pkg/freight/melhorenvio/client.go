// Package melhorenvio provides integration with the Melhor Envio
// shipping calculator API.
package melhorenvio

import (
	"context"
	"strconv"
	"time"

	"github.com/tournevent/storelocator/pkg/freight"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "melhorenvio"

// allowedServices is the fixed set of service tiers exposed to callers.
// Upstream options outside this list are dropped.
var allowedServices = map[string]string{
	"PAC":   freight.ServicePAC,
	"SEDEX": freight.ServiceSEDEX,
}

// Config holds Melhor Envio configuration.
type Config struct {
	Token   string
	BaseURL string
	UseMock bool // When true, uses mock API client
}

// Client is the Melhor Envio rate client.
// It implements the freight.RateClient interface and delegates API
// calls to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Melhor Envio client.
// If cfg.UseMock is true, it uses a mock API client for testing.
// Otherwise, it uses the real HTTP API client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			Token:   cfg.Token,
			Timeout: 15 * time.Second,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new Melhor Envio client with a custom API client.
// This is useful for injecting mock clients in tests.
func NewWithAPIClient(cfg Config, apiClient APIClient, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return providerName
}

// Quote returns the PAC and SEDEX options for a package. Options
// missing a price or lead time are dropped; an upstream list with no
// allow-listed tier yields an empty slice, not an error.
func (c *Client) Quote(ctx context.Context, req *freight.QuoteRequest) ([]freight.Quote, error) {
	c.logger.Info("Getting Melhor Envio quotes",
		zap.String("origin_cep", req.OriginCEP),
		zap.String("destination_cep", req.DestinationCEP),
		zap.Float64("weight_kg", req.WeightKg),
	)

	apiReq := &CalculateRequest{
		From: Endpoint{PostalCode: req.OriginCEP},
		To:   Endpoint{PostalCode: req.DestinationCEP},
		Package: PackageSpec{
			Height: req.HeightCm,
			Width:  req.WidthCm,
			Length: req.LengthCm,
			Weight: req.WeightKg,
		},
	}

	options, err := c.apiClient.Calculate(ctx, apiReq)
	if err != nil {
		c.logger.Error("Melhor Envio API error", zap.Error(err))
		return nil, freight.NewError(providerName, "CALCULATE_FAILED", "rate calculation failed").WithCause(err)
	}

	return optionsToQuotes(options), nil
}

// ============================================================================
// Conversion helpers: API models -> freight models
// ============================================================================

func optionsToQuotes(options []ShipmentOption) []freight.Quote {
	quotes := make([]freight.Quote, 0, len(options))
	for _, opt := range options {
		service, ok := allowedServices[opt.Name]
		if !ok {
			continue
		}

		price, ok := optionPrice(opt)
		if !ok {
			continue
		}

		days := opt.CustomDeliveryTime
		if days == 0 {
			days = opt.DeliveryTime
		}
		if days == 0 {
			continue
		}

		quotes = append(quotes, freight.Quote{
			Service: service,
			Price:   price,
			Days:    days,
		})
	}
	return quotes
}

// optionPrice parses the custom price, falling back to the list price.
func optionPrice(opt ShipmentOption) (float64, bool) {
	for _, raw := range []string{opt.CustomPrice, opt.Price} {
		if raw == "" {
			continue
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

var _ freight.RateClient = (*Client)(nil)
