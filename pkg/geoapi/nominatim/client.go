// Package nominatim provides integration with the OpenStreetMap
// Nominatim geocoding API.
package nominatim

import (
	"context"
	"strconv"
	"time"

	"github.com/tournevent/storelocator/pkg/geoapi"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const serviceName = "nominatim"

// Config holds Nominatim configuration.
type Config struct {
	BaseURL string
	UseMock bool // When true, uses mock API client
}

// Client is the Nominatim geocoder.
// It implements the geoapi.Geocoder interface and delegates API calls
// to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Nominatim client.
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

// NewWithAPIClient creates a new Nominatim client with a custom API client.
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

// Geocode returns the coordinates of the first search result.
func (c *Client) Geocode(ctx context.Context, address string) (*geoapi.Coordinates, error) {
	c.logger.Info("Geocoding address", zap.String("address", address))

	results, err := c.apiClient.Search(ctx, address)
	if err != nil {
		c.logger.Error("Nominatim API error", zap.Error(err))
		return nil, geoapi.NewError(serviceName, "SEARCH_FAILED", "geocoding failed").WithCause(err)
	}

	if len(results) == 0 {
		return nil, geoapi.ErrNoCoordinates
	}

	return searchResultToCoordinates(results[0])
}

// ============================================================================
// Conversion helpers: API models -> geoapi models
// ============================================================================

func searchResultToCoordinates(r SearchResult) (*geoapi.Coordinates, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return nil, geoapi.NewError(serviceName, "BAD_COORDINATES", "unparsable latitude").WithCause(err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return nil, geoapi.NewError(serviceName, "BAD_COORDINATES", "unparsable longitude").WithCause(err)
	}
	return &geoapi.Coordinates{Latitude: lat, Longitude: lon}, nil
}

var _ geoapi.Geocoder = (*Client)(nil)
