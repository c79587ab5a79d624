package googlemaps_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/pkg/geoapi"
	"github.com/tournevent/storelocator/pkg/geoapi/googlemaps"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestClient(mockClient *googlemaps.MockAPIClient) *googlemaps.Client {
	logger := otelzap.New(zap.NewNop())
	return googlemaps.NewWithAPIClient(
		googlemaps.Config{},
		mockClient,
		logger,
		nil,
	)
}

func TestClient_Geocode_Success(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	client := newTestClient(mockAPI)

	ctx := context.Background()
	coords, err := client.Geocode(ctx, "Praça da Sé, São Paulo, SP")

	require.NoError(t, err)
	assert.Equal(t, -23.55, coords.Latitude)
	assert.Equal(t, -46.63, coords.Longitude)
}

func TestClient_Geocode_ZeroResults(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnGeocode = func(ctx context.Context, address string) (*googlemaps.GeocodeResponse, error) {
		return &googlemaps.GeocodeResponse{Status: "ZERO_RESULTS"}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "Endereço Inválido")

	assert.ErrorIs(t, err, geoapi.ErrNoCoordinates)
}

func TestClient_Geocode_FirstResultWins(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnGeocode = func(ctx context.Context, address string) (*googlemaps.GeocodeResponse, error) {
		return &googlemaps.GeocodeResponse{
			Status: "OK",
			Results: []googlemaps.GeocodeResult{
				{Geometry: googlemaps.Geometry{Location: googlemaps.LatLng{Lat: -23.55, Lng: -46.63}}},
				{Geometry: googlemaps.Geometry{Location: googlemaps.LatLng{Lat: -22.90, Lng: -43.20}}},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	coords, err := client.Geocode(ctx, "São Paulo")

	require.NoError(t, err)
	assert.Equal(t, -23.55, coords.Latitude)
}

func TestClient_Geocode_APIError(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.SimulateErrors = true

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "São Paulo")

	assert.Error(t, err)
}

func TestClient_Route_Success(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	client := newTestClient(mockAPI)

	ctx := context.Background()
	result, err := client.Route(ctx,
		geoapi.Coordinates{Latitude: -23.55, Longitude: -46.63},
		geoapi.Coordinates{Latitude: -23.56, Longitude: -46.64},
	)

	require.NoError(t, err)
	assert.Equal(t, 1500, result.DistanceMeters)
	assert.Equal(t, 300, result.DurationSeconds)
}

func TestClient_Route_NoRoutes(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnDirections = func(ctx context.Context, origin, destination string) (*googlemaps.DirectionsResponse, error) {
		return &googlemaps.DirectionsResponse{Status: "ZERO_RESULTS"}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Route(ctx,
		geoapi.Coordinates{Latitude: -23.55, Longitude: -46.63},
		geoapi.Coordinates{Latitude: 40.71, Longitude: -74.00},
	)

	assert.ErrorIs(t, err, geoapi.ErrNoRoute)
}

func TestClient_Route_FirstLegOnly(t *testing.T) {
	mockAPI := googlemaps.NewMockAPIClient()
	mockAPI.OnDirections = func(ctx context.Context, origin, destination string) (*googlemaps.DirectionsResponse, error) {
		return &googlemaps.DirectionsResponse{
			Status: "OK",
			Routes: []googlemaps.Route{
				{
					Legs: []googlemaps.Leg{
						{Distance: googlemaps.TextValue{Value: 1000}, Duration: googlemaps.TextValue{Value: 120}},
						{Distance: googlemaps.TextValue{Value: 9000}, Duration: googlemaps.TextValue{Value: 900}},
					},
				},
				{
					Legs: []googlemaps.Leg{
						{Distance: googlemaps.TextValue{Value: 5000}, Duration: googlemaps.TextValue{Value: 600}},
					},
				},
			},
		}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	result, err := client.Route(ctx, geoapi.Coordinates{}, geoapi.Coordinates{})

	require.NoError(t, err)
	assert.Equal(t, 1000, result.DistanceMeters)
	assert.Equal(t, 120, result.DurationSeconds)
}

func TestClient_Name(t *testing.T) {
	client := newTestClient(googlemaps.NewMockAPIClient())
	assert.Equal(t, "googlemaps", client.Name())
}
