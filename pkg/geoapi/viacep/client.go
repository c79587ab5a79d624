// Package viacep provides integration with the ViaCEP postal-code API.
package viacep

import (
	"context"
	"regexp"
	"time"

	"github.com/tournevent/storelocator/pkg/geoapi"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const serviceName = "viacep"

// cepPattern accepts "01001000" and "01001-000".
var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// Config holds ViaCEP configuration.
type Config struct {
	BaseURL string
	UseMock bool // When true, uses mock API client
}

// Client is the ViaCEP address resolver.
// It implements the geoapi.AddressResolver interface and delegates
// API calls to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new ViaCEP client.
// If cfg.UseMock is true, it uses a mock API client for testing.
// Otherwise, it uses the real HTTP API client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			Timeout: 10 * time.Second,
		})
	}

	return &Client{
		config:    cfg,
		apiClient: apiClient,
		logger:    logger,
		tracer:    tracer,
	}
}

// NewWithAPIClient creates a new ViaCEP client with a custom API client.
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
	return serviceName
}

// Resolve looks up the address registered for a CEP.
func (c *Client) Resolve(ctx context.Context, cep string) (*geoapi.Address, error) {
	if !cepPattern.MatchString(cep) {
		return nil, geoapi.ErrInvalidCEP
	}

	c.logger.Info("Resolving CEP", zap.String("cep", cep))

	apiResp, err := c.apiClient.Lookup(ctx, cep)
	if err != nil {
		c.logger.Error("ViaCEP API error", zap.Error(err))
		return nil, geoapi.NewError(serviceName, "LOOKUP_FAILED", "cep lookup failed").WithCause(err)
	}

	// ViaCEP reports unregistered CEPs with a 200 response carrying an
	// error flag, never an HTTP error status.
	if apiResp.Erro {
		return nil, geoapi.ErrCEPNotFound
	}

	return lookupResponseToAddress(apiResp), nil
}

// ============================================================================
// Conversion helpers: API models -> geoapi models
// ============================================================================

func lookupResponseToAddress(resp *LookupResponse) *geoapi.Address {
	return &geoapi.Address{
		CEP:      resp.CEP,
		Street:   resp.Logradouro,
		District: resp.Bairro,
		City:     resp.Localidade,
		State:    resp.UF,
	}
}

var _ geoapi.AddressResolver = (*Client)(nil)
