package main

import (
	"context"

	"github.com/tournevent/storelocator/internal/config"
	"github.com/tournevent/storelocator/internal/service"
	"github.com/tournevent/storelocator/internal/store"
	"github.com/tournevent/storelocator/internal/telemetry"
	"github.com/tournevent/storelocator/pkg/freight"
	"github.com/tournevent/storelocator/pkg/freight/correios"
	"github.com/tournevent/storelocator/pkg/freight/melhorenvio"
	"github.com/tournevent/storelocator/pkg/geoapi/googlemaps"
	"github.com/tournevent/storelocator/pkg/geoapi/nominatim"
	"github.com/tournevent/storelocator/pkg/geoapi/viacep"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

func loadConfig() (*config.Config, error) {
	return config.Load()
}

func initLogger(level string) (*otelzap.Logger, error) {
	return telemetry.NewLogger(level)
}

func initTracer(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	if !cfg.OTELEnabled {
		return func(context.Context) error { return nil }, nil
	}

	_, shutdown, err := telemetry.InitTracer(ctx, cfg.OTELEndpoint, cfg.ServiceName, cfg.Version)
	return shutdown, err
}

func initFreightRegistry(cfg *config.Config, logger *otelzap.Logger, tracer trace.Tracer) *freight.Registry {
	registry := freight.NewRegistry()

	// Register enabled rate providers
	if cfg.CorreiosEnabled {
		registry.Register(correios.New(correios.Config{
			BaseURL: cfg.CorreiosBaseURL,
			UseMock: cfg.CorreiosUseMock,
		}, logger, tracer))
	}

	if cfg.MelhorEnvioEnabled {
		registry.Register(melhorenvio.New(melhorenvio.Config{
			Token:   cfg.MelhorEnvioToken,
			BaseURL: cfg.MelhorEnvioBaseURL,
			UseMock: cfg.MelhorEnvioUseMock,
		}, logger, tracer))
	}

	return registry
}

func initLocator(cfg *config.Config, db *gorm.DB, logger *otelzap.Logger) (*service.Locator, error) {
	var tracer trace.Tracer
	// tracer would be initialized from otel.GetTracerProvider().Tracer(cfg.ServiceName)

	registry := initFreightRegistry(cfg, logger, tracer)
	rates, err := registry.Get(cfg.FreightProvider)
	if err != nil {
		return nil, err
	}

	google := googlemaps.New(googlemaps.Config{
		APIKey:  cfg.GoogleMapsAPIKey,
		BaseURL: cfg.GoogleMapsBaseURL,
		UseMock: cfg.GoogleMapsUseMock,
	}, logger, tracer)

	deps := service.Deps{
		Repo: store.NewRepository(db, logger),
		Resolver: viacep.New(viacep.Config{
			BaseURL: cfg.ViaCEPBaseURL,
			UseMock: cfg.ViaCEPUseMock,
		}, logger, tracer),
		Geocoder: google,
		CheapGeocoder: nominatim.New(nominatim.Config{
			BaseURL: cfg.NominatimBaseURL,
			UseMock: cfg.NominatimUseMock,
		}, logger, tracer),
		Routes: google,
		Rates:  rates,
		Fees:   freight.NewFeeTable(),
	}

	pkg := service.Package{
		WeightKg:  cfg.PackageWeightKg,
		HeightCm:  cfg.PackageHeightCm,
		WidthCm:   cfg.PackageWidthCm,
		LengthCm:  cfg.PackageLengthCm,
		OriginCEP: cfg.OriginCEP,
	}

	return service.NewLocator(deps, pkg, logger, tracer), nil
}
