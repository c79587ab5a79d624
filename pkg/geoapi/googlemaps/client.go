// Package googlemaps provides integration with the Google Maps Geocoding
// and Directions web services.
package googlemaps

import (
	"context"
	"time"

	"github.com/tournevent/storelocator/pkg/geoapi"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const serviceName = "googlemaps"

// Config holds Google Maps configuration.
type Config struct {
	APIKey  string
	BaseURL string
	UseMock bool // When true, uses mock API client
}

// Client is the Google Maps client. It implements both the
// geoapi.Geocoder and geoapi.RouteEstimator interfaces and delegates
// API calls to the underlying APIClient (mock or HTTP).
type Client struct {
	config    Config
	apiClient APIClient
	logger    *otelzap.Logger
	tracer    trace.Tracer
}

// New creates a new Google Maps client.
// If cfg.UseMock is true, it uses a mock API client for testing.
// Otherwise, it uses the real HTTP API client.
func New(cfg Config, logger *otelzap.Logger, tracer trace.Tracer) *Client {
	var apiClient APIClient

	if cfg.UseMock {
		apiClient = NewMockAPIClient()
	} else {
		apiClient = NewHTTPAPIClient(HTTPAPIClientConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
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

// NewWithAPIClient creates a new Google Maps client with a custom API client.
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

// Geocode returns the coordinates of the first geocoding result.
// Multiple candidates are not ranked; the first wins deterministically.
func (c *Client) Geocode(ctx context.Context, address string) (*geoapi.Coordinates, error) {
	c.logger.Info("Geocoding address", zap.String("address", address))

	apiResp, err := c.apiClient.Geocode(ctx, address)
	if err != nil {
		c.logger.Error("Google Maps API error", zap.Error(err))
		return nil, geoapi.NewError(serviceName, "GEOCODE_FAILED", "geocoding failed").WithCause(err)
	}

	if len(apiResp.Results) == 0 {
		return nil, geoapi.ErrNoCoordinates
	}

	loc := apiResp.Results[0].Geometry.Location
	return &geoapi.Coordinates{
		Latitude:  loc.Lat,
		Longitude: loc.Lng,
	}, nil
}

// Route returns the distance and duration of the primary route.
// Only the first route and its first leg are used; alternatives and
// additional legs are discarded.
func (c *Client) Route(ctx context.Context, origin, destination geoapi.Coordinates) (*geoapi.RouteResult, error) {
	c.logger.Info("Computing route",
		zap.String("origin", origin.String()),
		zap.String("destination", destination.String()),
	)

	apiResp, err := c.apiClient.Directions(ctx, origin.String(), destination.String())
	if err != nil {
		c.logger.Error("Google Maps API error", zap.Error(err))
		return nil, geoapi.NewError(serviceName, "DIRECTIONS_FAILED", "route computation failed").WithCause(err)
	}

	if len(apiResp.Routes) == 0 || len(apiResp.Routes[0].Legs) == 0 {
		return nil, geoapi.ErrNoRoute
	}

	leg := apiResp.Routes[0].Legs[0]
	return &geoapi.RouteResult{
		DistanceMeters:  leg.Distance.Value,
		DurationSeconds: leg.Duration.Value,
	}, nil
}

var (
	_ geoapi.Geocoder       = (*Client)(nil)
	_ geoapi.RouteEstimator = (*Client)(nil)
)
