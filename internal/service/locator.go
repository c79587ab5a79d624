// Package service orchestrates the postal lookup, geocoding, routing,
// carrier rate and persistence layers behind the HTTP surface.
package service

import (
	"context"
	"fmt"

	"github.com/tournevent/storelocator/internal/store"
	"github.com/tournevent/storelocator/pkg/freight"
	"github.com/tournevent/storelocator/pkg/geoapi"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// privateDeliveryMaxMeters is the route distance up to which local
// flat-fee delivery is offered.
const privateDeliveryMaxMeters = 50000

const (
	privateDeliveryAvailable   = "Disponível (R$15 fixo)"
	privateDeliveryUnavailable = "Não disponível"
)

// defaultNearbyRadiusKm bounds the haversine query of the cheap flow.
const defaultNearbyRadiusKm = 100.0

// Package describes the parcel quoted on behalf of the caller. The
// values come from configuration, not from the stores or the request.
type Package struct {
	WeightKg  float64
	HeightCm  float64
	WidthCm   float64
	LengthCm  float64
	OriginCEP string
}

// Deps are the collaborators of the Locator.
type Deps struct {
	Repo          *store.Repository
	Resolver      geoapi.AddressResolver
	Geocoder      geoapi.Geocoder
	CheapGeocoder geoapi.Geocoder
	Routes        geoapi.RouteEstimator
	Rates         freight.RateClient
	Fees          *freight.FeeTable
}

// Locator implements the store lookup and delivery quoting flows.
type Locator struct {
	repo          *store.Repository
	resolver      geoapi.AddressResolver
	geocoder      geoapi.Geocoder
	cheapGeocoder geoapi.Geocoder
	routes        geoapi.RouteEstimator
	rates         freight.RateClient
	fees          *freight.FeeTable
	pkg           Package
	logger        *otelzap.Logger
	tracer        trace.Tracer
}

// NewLocator creates a locator service.
func NewLocator(deps Deps, pkg Package, logger *otelzap.Logger, tracer trace.Tracer) *Locator {
	return &Locator{
		repo:          deps.Repo,
		resolver:      deps.Resolver,
		geocoder:      deps.Geocoder,
		cheapGeocoder: deps.CheapGeocoder,
		routes:        deps.Routes,
		rates:         deps.Rates,
		fees:          deps.Fees,
		pkg:           pkg,
		logger:        logger,
		tracer:        tracer,
	}
}

// FindByCEP resolves the caller's CEP, geocodes the address and builds
// the per-store delivery summary: route distance and duration, local
// delivery availability and carrier quotes. Any failure fails the whole
// request. An empty store set yields an empty list.
func (l *Locator) FindByCEP(ctx context.Context, cep string) (*CEPResult, error) {
	ctx, span := l.startSpan(ctx, "locator.FindByCEP")
	defer span.End()

	address, err := l.resolver.Resolve(ctx, cep)
	if err != nil {
		return nil, err
	}

	origin, err := l.geocoder.Geocode(ctx, address.Formatted())
	if err != nil {
		return nil, err
	}

	stores, err := l.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	l.logger.Info("Building delivery summary",
		zap.String("cep", cep),
		zap.Int("stores", len(stores)),
	)

	deliveries := make([]StoreDelivery, len(stores))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range stores {
		g.Go(func() error {
			route, err := l.routes.Route(gctx, *origin, geoapi.Coordinates{
				Latitude:  s.Latitude,
				Longitude: s.Longitude,
			})
			if err != nil {
				return err
			}

			quotes, err := l.rates.Quote(gctx, &freight.QuoteRequest{
				WeightKg:       l.pkg.WeightKg,
				HeightCm:       l.pkg.HeightCm,
				WidthCm:        l.pkg.WidthCm,
				LengthCm:       l.pkg.LengthCm,
				OriginCEP:      l.pkg.OriginCEP,
				DestinationCEP: cep,
			})
			if err != nil {
				return err
			}

			deliveries[i] = newStoreDelivery(s, route, quotes)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &CEPResult{Stores: deliveries}, nil
}

// FindNearby resolves the CEP, geocodes it with the cheap geocoder and
// returns the stores within radiusKm by great-circle distance, closest
// first. A radius of zero or less uses the default 100 km.
func (l *Locator) FindNearby(ctx context.Context, cep string, radiusKm float64) ([]store.NearbyStore, error) {
	ctx, span := l.startSpan(ctx, "locator.FindNearby")
	defer span.End()

	if radiusKm <= 0 {
		radiusKm = defaultNearbyRadiusKm
	}

	address, err := l.resolver.Resolve(ctx, cep)
	if err != nil {
		return nil, err
	}

	coords, err := l.cheapGeocoder.Geocode(ctx, address.Formatted())
	if err != nil {
		return nil, err
	}

	return l.repo.FindNearby(ctx, coords.Latitude, coords.Longitude, radiusKm)
}

// CreateStore resolves the CEP into an address, geocodes the CEP and
// persists the new store.
func (l *Locator) CreateStore(ctx context.Context, name, cep string) (*store.Store, error) {
	ctx, span := l.startSpan(ctx, "locator.CreateStore")
	defer span.End()

	address, err := l.resolver.Resolve(ctx, cep)
	if err != nil {
		return nil, err
	}

	coords, err := l.geocoder.Geocode(ctx, fmt.Sprintf("%s, Brasil", cep))
	if err != nil {
		return nil, err
	}

	s := &store.Store{
		Name:      name,
		CEP:       cep,
		Street:    address.Street,
		District:  address.District,
		City:      address.City,
		State:     address.State,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}

	if err := l.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetStore returns a single store by ID.
func (l *Locator) GetStore(ctx context.Context, id uint) (*store.Store, error) {
	return l.repo.FindByID(ctx, id)
}

// UpdateStore applies a partial update to a store.
func (l *Locator) UpdateStore(ctx context.Context, id uint, fields store.UpdateFields) (*store.Store, error) {
	return l.repo.Update(ctx, id, fields)
}

// DeleteStore removes a store by ID.
func (l *Locator) DeleteStore(ctx context.Context, id uint) error {
	return l.repo.Delete(ctx, id)
}

// ListByState returns a page of stores in the given UF.
func (l *Locator) ListByState(ctx context.Context, state string, limit, offset int) (*StorePage, error) {
	stores, total, err := l.repo.FindByState(ctx, state, limit, offset)
	if err != nil {
		return nil, err
	}
	return &StorePage{Stores: stores, Total: total, Limit: limit, Offset: offset}, nil
}

// ListAll returns a page of all stores.
func (l *Locator) ListAll(ctx context.Context, limit, offset int) (*StorePage, error) {
	stores, total, err := l.repo.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return &StorePage{Stores: stores, Total: total, Limit: limit, Offset: offset}, nil
}

// EstimateFee prices a shipment from the local fee table using the
// configured package dimensions. No upstream calls are made.
func (l *Locator) EstimateFee(weightKg, distanceKm float64) (*FreightOption, error) {
	quote, err := l.fees.Estimate(weightKg, distanceKm, l.pkg.HeightCm, l.pkg.WidthCm, l.pkg.LengthCm)
	if err != nil {
		return nil, err
	}
	opt := quoteToOption(*quote)
	return &opt, nil
}

func (l *Locator) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if l.tracer == nil {
		return noop.NewTracerProvider().Tracer("").Start(ctx, name)
	}
	return l.tracer.Start(ctx, name)
}

// ============================================================================
// Conversion helpers: domain models -> response models
// ============================================================================

func newStoreDelivery(s store.Store, route *geoapi.RouteResult, quotes []freight.Quote) StoreDelivery {
	availability := privateDeliveryUnavailable
	if route.DistanceMeters <= privateDeliveryMaxMeters {
		availability = privateDeliveryAvailable
	}

	options := make([]FreightOption, 0, len(quotes))
	for _, q := range quotes {
		options = append(options, quoteToOption(q))
	}

	return StoreDelivery{
		Store:           s.Name,
		Distance:        fmt.Sprintf("%.2f km", float64(route.DistanceMeters)/1000),
		PrivateDelivery: availability,
		EstimatedTime:   fmt.Sprintf("%.0f minutos", float64(route.DurationSeconds)/60),
		Freight:         options,
	}
}

func quoteToOption(q freight.Quote) FreightOption {
	return FreightOption{
		Type:     q.Service,
		Price:    q.Price,
		Deadline: q.Deadline(),
	}
}
