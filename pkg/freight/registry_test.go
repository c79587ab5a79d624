package freight_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/storelocator/pkg/freight"
	"github.com/tournevent/storelocator/pkg/freight/mock"
)

func TestRegistry_Register(t *testing.T) {
	registry := freight.NewRegistry()

	registry.Register(mock.New("test-provider"))

	got, err := registry.Get("test-provider")
	require.NoError(t, err, "provider should be registered")
	assert.Equal(t, "test-provider", got.Name())
}

func TestRegistry_Register_Override(t *testing.T) {
	registry := freight.NewRegistry()

	registry.Register(mock.New("test-provider"))
	assert.Equal(t, 1, registry.Count())

	// Register again with same name should override
	registry.Register(mock.New("test-provider"))
	assert.Equal(t, 1, registry.Count())
}

func TestRegistry_Get_NotFound(t *testing.T) {
	registry := freight.NewRegistry()

	_, err := registry.Get("nonexistent")
	assert.Error(t, err, "should return error for unregistered provider")
	assert.True(t, errors.Is(err, freight.ErrProviderNotFound))
}

func TestRegistry_Names(t *testing.T) {
	registry := freight.NewRegistry()

	registry.Register(mock.New("melhorenvio"))
	registry.Register(mock.New("correios"))

	names := registry.Names()
	assert.Len(t, names, 2)
	assert.Contains(t, names, "melhorenvio")
	assert.Contains(t, names, "correios")
}

func TestRegistry_Count(t *testing.T) {
	registry := freight.NewRegistry()
	assert.Equal(t, 0, registry.Count())

	registry.Register(mock.New("provider-a"))
	assert.Equal(t, 1, registry.Count())

	registry.Register(mock.New("provider-b"))
	assert.Equal(t, 2, registry.Count())
}

func TestRegistry_QuoteAll(t *testing.T) {
	registry := freight.NewRegistry()

	registry.Register(mock.New("melhorenvio"))
	registry.Register(mock.New("correios"))

	req := &freight.QuoteRequest{
		WeightKg:       1,
		HeightCm:       10,
		WidthCm:        15,
		LengthCm:       20,
		OriginCEP:      "01001-000",
		DestinationCEP: "01310-100",
	}

	ctx := context.Background()
	quotes, errs := registry.QuoteAll(ctx, req)

	assert.Empty(t, errs, "should have no errors from mock providers")
	assert.Len(t, quotes, 4, "two quotes from each provider")
}

func TestRegistry_QuoteAll_Empty(t *testing.T) {
	registry := freight.NewRegistry()

	ctx := context.Background()
	quotes, errs := registry.QuoteAll(ctx, &freight.QuoteRequest{})

	assert.Empty(t, quotes, "should return empty results for empty registry")
	assert.NotEmpty(t, errs, "should return error for empty registry")
}

func TestRegistry_QuoteAll_CollectsErrors(t *testing.T) {
	registry := freight.NewRegistry()

	broken := mock.New("broken")
	broken.Err = errors.New("upstream unavailable")
	registry.Register(broken)
	registry.Register(mock.New("correios"))

	ctx := context.Background()
	quotes, errs := registry.QuoteAll(ctx, &freight.QuoteRequest{})

	// The healthy provider still answers.
	assert.Len(t, quotes, 2)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "broken")
}
