// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.opentelemetry.io/otel/attribute"
)

// Config holds all configuration for the service.
type Config struct {
	// Server
	Port     int    `envconfig:"PORT" default:"3000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Database
	DatabasePath string `envconfig:"DATABASE_PATH" default:"database.db"`

	// ViaCEP
	ViaCEPBaseURL string `envconfig:"VIACEP_BASE_URL" default:"https://viacep.com.br/ws"`
	ViaCEPUseMock bool   `envconfig:"VIACEP_USE_MOCK" default:"false"`

	// Google Maps (geocoding + directions)
	GoogleMapsAPIKey  string `envconfig:"GOOGLE_MAPS_API_KEY"`
	GoogleMapsBaseURL string `envconfig:"GOOGLE_MAPS_BASE_URL" default:"https://maps.googleapis.com"`
	GoogleMapsUseMock bool   `envconfig:"GOOGLE_MAPS_USE_MOCK" default:"false"`

	// Nominatim (cheap geocoder for the radius flow)
	NominatimBaseURL string `envconfig:"NOMINATIM_BASE_URL" default:"https://nominatim.openstreetmap.org"`
	NominatimUseMock bool   `envconfig:"NOMINATIM_USE_MOCK" default:"false"`

	// Melhor Envio
	MelhorEnvioToken   string `envconfig:"MELHORENVIO_TOKEN"`
	MelhorEnvioBaseURL string `envconfig:"MELHORENVIO_BASE_URL" default:"https://melhorenvio.com.br"`
	MelhorEnvioEnabled bool   `envconfig:"MELHORENVIO_ENABLED" default:"true"`
	MelhorEnvioUseMock bool   `envconfig:"MELHORENVIO_USE_MOCK" default:"false"`

	// Correios
	CorreiosBaseURL string `envconfig:"CORREIOS_BASE_URL" default:"https://api.correios.com.br"`
	CorreiosEnabled bool   `envconfig:"CORREIOS_ENABLED" default:"true"`
	CorreiosUseMock bool   `envconfig:"CORREIOS_USE_MOCK" default:"false"`

	// FreightProvider selects the rate client used by the CEP flow.
	FreightProvider string `envconfig:"FREIGHT_PROVIDER" default:"correios"`

	// Quoted package. Quotes are priced for a fixed reference parcel
	// shipped from the warehouse CEP, not per item.
	OriginCEP       string  `envconfig:"ORIGIN_CEP" default:"01001-000"`
	PackageWeightKg float64 `envconfig:"PACKAGE_WEIGHT_KG" default:"1"`
	PackageHeightCm float64 `envconfig:"PACKAGE_HEIGHT_CM" default:"10"`
	PackageWidthCm  float64 `envconfig:"PACKAGE_WIDTH_CM" default:"15"`
	PackageLengthCm float64 `envconfig:"PACKAGE_LENGTH_CM" default:"20"`

	// Telemetry
	OTELEnabled  bool   `envconfig:"OTEL_ENABLED" default:"true"`
	OTELEndpoint string `envconfig:"OTEL_ENDPOINT" default:"http://localhost:4318"`
	ServiceName  string `envconfig:"SERVICE_NAME" default:"storelocator"`
	Version      string `envconfig:"SERVICE_VERSION" default:"0.0.1"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings the serve command cannot run without.
func (c *Config) Validate() error {
	if c.GoogleMapsAPIKey == "" && !c.GoogleMapsUseMock {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is required")
	}
	return nil
}

// Attributes returns OpenTelemetry attributes for this configuration.
func (c *Config) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.name", c.ServiceName),
		attribute.String("service.version", c.Version),
		attribute.Bool("melhorenvio.enabled", c.MelhorEnvioEnabled),
		attribute.Bool("correios.enabled", c.CorreiosEnabled),
		attribute.String("freight.provider", c.FreightProvider),
	}
}
