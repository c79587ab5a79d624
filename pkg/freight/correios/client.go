// Package correios provides integration with the Correios price and
// deadline (frete) API.
package correios

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tournevent/storelocator/pkg/freight"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const providerName = "correios"

// Config holds Correios configuration.
type Config struct {
	BaseURL string
	UseMock bool // When true, uses mock API client
}

// Client is the Correios rate client.
// It implements the freight.RateClient interface and delegates API
// calls to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Correios client.
// If cfg.UseMock is true, it uses a mock API client for testing.
// Otherwise, it uses the real HTTP API client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
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

// NewWithAPIClient creates a new Correios client with a custom API client.
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

// Quote queries the SEDEX and PAC services for a package. The legacy
// API prices one service per call, so two calls are made.
func (c *Client) Quote(ctx context.Context, req *freight.QuoteRequest) ([]freight.Quote, error) {
	c.logger.Info("Getting Correios quotes",
		zap.String("origin_cep", req.OriginCEP),
		zap.String("destination_cep", req.DestinationCEP),
	)

	services := []struct {
		code string
		name string
	}{
		{ServiceCodeSEDEX, freight.ServiceSEDEX},
		{ServiceCodePAC, freight.ServicePAC},
	}

	quotes := make([]freight.Quote, 0, len(services))
	for _, svc := range services {
		apiResp, err := c.apiClient.CalculateFrete(ctx, freteRequest(req, svc.code))
		if err != nil {
			c.logger.Error("Correios API error",
				zap.String("servico", svc.code),
				zap.Error(err),
			)
			return nil, freight.NewError(providerName, "FRETE_FAILED", "frete calculation failed").WithCause(err)
		}

		quote, ok := freteResponseToQuote(apiResp, svc.name)
		if !ok {
			continue
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

// ============================================================================
// Conversion helpers: freight models <-> API models
// ============================================================================

func freteRequest(req *freight.QuoteRequest, serviceCode string) *FreteRequest {
	return &FreteRequest{
		CepOrigem:        req.OriginCEP,
		CepDestino:       req.DestinationCEP,
		Peso:             req.WeightKg,
		Formato:          1,
		Comprimento:      req.LengthCm,
		Altura:           req.HeightCm,
		Largura:          req.WidthCm,
		MaoPropria:       "N",
		ValorDeclarado:   0,
		AvisoRecebimento: "N",
		Servico:          serviceCode,
	}
}

func freteResponseToQuote(resp *FreteResponse, service string) (freight.Quote, bool) {
	price, err := parseValor(resp.Valor)
	if err != nil {
		return freight.Quote{}, false
	}

	days, err := strconv.Atoi(resp.PrazoEntrega)
	if err != nil || days <= 0 {
		return freight.Quote{}, false
	}

	return freight.Quote{
		Service: service,
		Price:   price,
		Days:    days,
	}, true
}

// parseValor parses a Brazilian-formatted amount like "1.027,30".
func parseValor(s string) (float64, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}

var _ freight.RateClient = (*Client)(nil)
