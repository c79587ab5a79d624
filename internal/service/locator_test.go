package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/internal/service"
	"github.com/tournevent/storelocator/internal/store"
	"github.com/tournevent/storelocator/pkg/freight"
	freightmock "github.com/tournevent/storelocator/pkg/freight/mock"
	"github.com/tournevent/storelocator/pkg/geoapi"
	"github.com/tournevent/storelocator/pkg/geoapi/googlemaps"
	"github.com/tournevent/storelocator/pkg/geoapi/viacep"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type locatorFixture struct {
	locator *service.Locator
	repo    *store.Repository
	viacep  *viacep.MockAPIClient
	google  *googlemaps.MockAPIClient
	rates   *freightmock.Client
}

func newLocatorFixture(t *testing.T) *locatorFixture {
	t.Helper()

	logger := otelzap.New(zap.NewNop())

	db, err := store.Open(":memory:")
	require.NoError(t, err)
	repo := store.NewRepository(db, logger)

	viacepMock := viacep.NewMockAPIClient()
	googleMock := googlemaps.NewMockAPIClient()
	rates := freightmock.New("mock")

	resolver := viacep.NewWithAPIClient(viacep.Config{}, viacepMock, logger, nil)
	google := googlemaps.NewWithAPIClient(googlemaps.Config{}, googleMock, logger, nil)

	locator := service.NewLocator(
		service.Deps{
			Repo:          repo,
			Resolver:      resolver,
			Geocoder:      google,
			CheapGeocoder: google,
			Routes:        google,
			Rates:         rates,
			Fees:          freight.NewFeeTable(),
		},
		service.Package{
			WeightKg:  1,
			HeightCm:  10,
			WidthCm:   15,
			LengthCm:  20,
			OriginCEP: "01001-000",
		},
		logger,
		nil,
	)

	return &locatorFixture{
		locator: locator,
		repo:    repo,
		viacep:  viacepMock,
		google:  googleMock,
		rates:   rates,
	}
}

func (f *locatorFixture) createStore(t *testing.T, name string) *store.Store {
	t.Helper()

	s := &store.Store{
		Name:      name,
		CEP:       "01001-000",
		Street:    "Praça da Sé",
		District:  "Sé",
		City:      "São Paulo",
		State:     "SP",
		Latitude:  -23.5475,
		Longitude: -46.6361,
	}
	require.NoError(t, f.repo.Create(context.Background(), s))
	return s
}

func TestLocator_FindByCEP(t *testing.T) {
	f := newLocatorFixture(t)
	f.createStore(t, "Loja A")

	result, err := f.locator.FindByCEP(context.Background(), "01001-000")

	require.NoError(t, err)
	require.Len(t, result.Stores, 1)

	delivery := result.Stores[0]
	assert.Equal(t, "Loja A", delivery.Store)
	assert.Equal(t, "1.50 km", delivery.Distance)
	assert.Equal(t, "Disponível (R$15 fixo)", delivery.PrivateDelivery)
	assert.Equal(t, "5 minutos", delivery.EstimatedTime)

	require.Len(t, delivery.Freight, 2)
	assert.Equal(t, "PAC", delivery.Freight[0].Type)
	assert.Equal(t, 25.00, delivery.Freight[0].Price)
	assert.Equal(t, "5 dias úteis", delivery.Freight[0].Deadline)
	assert.Equal(t, "SEDEX", delivery.Freight[1].Type)
	assert.Equal(t, 35.00, delivery.Freight[1].Price)
	assert.Equal(t, "2 dias úteis", delivery.Freight[1].Deadline)
}

func TestLocator_FindByCEP_NoStores(t *testing.T) {
	f := newLocatorFixture(t)

	result, err := f.locator.FindByCEP(context.Background(), "01001-000")

	require.NoError(t, err)
	assert.Empty(t, result.Stores)
}

func TestLocator_FindByCEP_UnknownCEP_StopsBeforeGeocoding(t *testing.T) {
	f := newLocatorFixture(t)
	f.createStore(t, "Loja A")

	f.viacep.OnLookup = func(ctx context.Context, cep string) (*viacep.LookupResponse, error) {
		return &viacep.LookupResponse{Erro: true}, nil
	}

	geocoded := false
	f.google.OnGeocode = func(ctx context.Context, address string) (*googlemaps.GeocodeResponse, error) {
		geocoded = true
		return &googlemaps.GeocodeResponse{Status: "ZERO_RESULTS"}, nil
	}

	_, err := f.locator.FindByCEP(context.Background(), "99999-999")

	assert.ErrorIs(t, err, geoapi.ErrCEPNotFound)
	assert.False(t, geocoded, "geocoder must not be called for an unknown CEP")
}

func TestLocator_FindByCEP_FarStore(t *testing.T) {
	f := newLocatorFixture(t)
	f.createStore(t, "Loja Distante")

	f.google.OnDirections = func(ctx context.Context, origin, destination string) (*googlemaps.DirectionsResponse, error) {
		return &googlemaps.DirectionsResponse{
			Status: "OK",
			Routes: []googlemaps.Route{{Legs: []googlemaps.Leg{{
				Distance: googlemaps.TextValue{Value: 60000},
				Duration: googlemaps.TextValue{Value: 3600},
			}}}},
		}, nil
	}

	result, err := f.locator.FindByCEP(context.Background(), "01001-000")

	require.NoError(t, err)
	require.Len(t, result.Stores, 1)
	assert.Equal(t, "Não disponível", result.Stores[0].PrivateDelivery)
	assert.Equal(t, "60.00 km", result.Stores[0].Distance)
	assert.Equal(t, "60 minutos", result.Stores[0].EstimatedTime)
}

func TestLocator_FindByCEP_QuoteFailureFailsRequest(t *testing.T) {
	f := newLocatorFixture(t)
	f.createStore(t, "Loja A")
	f.createStore(t, "Loja B")

	f.rates.Err = errors.New("carrier unavailable")

	_, err := f.locator.FindByCEP(context.Background(), "01001-000")
	assert.Error(t, err, "a single store's quote failure fails the whole request")
}

func TestLocator_FindByCEP_RouteFailureFailsRequest(t *testing.T) {
	f := newLocatorFixture(t)
	f.createStore(t, "Loja A")

	f.google.OnDirections = func(ctx context.Context, origin, destination string) (*googlemaps.DirectionsResponse, error) {
		return &googlemaps.DirectionsResponse{Status: "ZERO_RESULTS"}, nil
	}

	_, err := f.locator.FindByCEP(context.Background(), "01001-000")
	assert.ErrorIs(t, err, geoapi.ErrNoRoute)
}

func TestLocator_FindNearby(t *testing.T) {
	f := newLocatorFixture(t)
	f.createStore(t, "Loja A")

	stores, err := f.locator.FindNearby(context.Background(), "01001-000", 0)

	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Loja A", stores[0].Name)
	assert.Less(t, stores[0].DistanceKm, 100.0)
}

func TestLocator_FindNearby_UnknownCEP(t *testing.T) {
	f := newLocatorFixture(t)

	f.viacep.OnLookup = func(ctx context.Context, cep string) (*viacep.LookupResponse, error) {
		return &viacep.LookupResponse{Erro: true}, nil
	}

	_, err := f.locator.FindNearby(context.Background(), "99999-999", 0)
	assert.ErrorIs(t, err, geoapi.ErrCEPNotFound)
}

func TestLocator_CreateStore(t *testing.T) {
	f := newLocatorFixture(t)

	var geocoded string
	f.google.OnGeocode = func(ctx context.Context, address string) (*googlemaps.GeocodeResponse, error) {
		geocoded = address
		return &googlemaps.GeocodeResponse{
			Status: "OK",
			Results: []googlemaps.GeocodeResult{{
				Geometry: googlemaps.Geometry{Location: googlemaps.LatLng{Lat: -23.55, Lng: -46.63}},
			}},
		}, nil
	}

	s, err := f.locator.CreateStore(context.Background(), "Loja Nova", "01001-000")

	require.NoError(t, err)
	assert.Equal(t, "01001-000, Brasil", geocoded, "geocodes the CEP, not the street address")
	assert.NotZero(t, s.ID)
	assert.Equal(t, "Loja Nova", s.Name)
	assert.Equal(t, "Praça da Sé", s.Street)
	assert.Equal(t, "SP", s.State)
	assert.Equal(t, -23.55, s.Latitude)

	persisted, err := f.repo.FindByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Loja Nova", persisted.Name)
}

func TestLocator_UpdateStore_NotFound(t *testing.T) {
	f := newLocatorFixture(t)

	name := "X"
	_, err := f.locator.UpdateStore(context.Background(), 999, store.UpdateFields{Name: &name})
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestLocator_EstimateFee(t *testing.T) {
	f := newLocatorFixture(t)

	opt, err := f.locator.EstimateFee(1, 50)

	require.NoError(t, err)
	assert.Equal(t, 15.00, opt.Price)
	assert.Equal(t, "2 dias úteis", opt.Deadline)
}

func TestLocator_EstimateFee_NoTier(t *testing.T) {
	f := newLocatorFixture(t)

	_, err := f.locator.EstimateFee(8, 150)
	assert.ErrorIs(t, err, freight.ErrNoMatchingTier)
}
