package nominatim_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/pkg/geoapi"
	"github.com/tournevent/storelocator/pkg/geoapi/nominatim"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

func newTestClient(mockClient *nominatim.MockAPIClient) *nominatim.Client {
	logger := otelzap.New(zap.NewNop())
	return nominatim.NewWithAPIClient(
		nominatim.Config{},
		mockClient,
		logger,
		nil,
	)
}

func TestClient_Geocode_Success(t *testing.T) {
	mockAPI := nominatim.NewMockAPIClient()
	client := newTestClient(mockAPI)

	ctx := context.Background()
	coords, err := client.Geocode(ctx, "Praça da Sé, São Paulo, SP")

	require.NoError(t, err)
	assert.Equal(t, -23.55, coords.Latitude)
	assert.Equal(t, -46.63, coords.Longitude)
}

func TestClient_Geocode_NoResults(t *testing.T) {
	mockAPI := nominatim.NewMockAPIClient()
	mockAPI.OnSearch = func(ctx context.Context, query string) ([]nominatim.SearchResult, error) {
		return []nominatim.SearchResult{}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "Endereço Inválido")

	assert.ErrorIs(t, err, geoapi.ErrNoCoordinates)
}

func TestClient_Geocode_BadCoordinates(t *testing.T) {
	mockAPI := nominatim.NewMockAPIClient()
	mockAPI.OnSearch = func(ctx context.Context, query string) ([]nominatim.SearchResult, error) {
		return []nominatim.SearchResult{{Lat: "not-a-number", Lon: "-46.63"}}, nil
	}

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "São Paulo")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, geoapi.ErrNoCoordinates)
}

func TestClient_Geocode_APIError(t *testing.T) {
	mockAPI := nominatim.NewMockAPIClient()
	mockAPI.SimulateErrors = true

	client := newTestClient(mockAPI)

	ctx := context.Background()
	_, err := client.Geocode(ctx, "São Paulo")

	assert.Error(t, err)
}

func TestClient_Name(t *testing.T) {
	client := newTestClient(nominatim.NewMockAPIClient())
	assert.Equal(t, "nominatim", client.Name())
}
