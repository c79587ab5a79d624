package geoapi_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tournevent/storelocator/pkg/geoapi"
)

func TestError_Error(t *testing.T) {
	err := geoapi.NewError("viacep", "LOOKUP_FAILED", "cep lookup failed")
	assert.Equal(t, "viacep error (LOOKUP_FAILED): cep lookup failed", err.Error())
}

func TestError_ErrorWithCause(t *testing.T) {
	cause := errors.New("network timeout")
	err := geoapi.NewError("googlemaps", "GEOCODE_FAILED", "geocoding failed").WithCause(cause)
	assert.Contains(t, err.Error(), "geocoding failed")
	assert.Contains(t, err.Error(), "network timeout")
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("network timeout")
	err := geoapi.NewError("googlemaps", "GEOCODE_FAILED", "geocoding failed").WithCause(cause)
	assert.True(t, errors.Is(err, cause))
}

func TestError_Is(t *testing.T) {
	err1 := geoapi.NewError("viacep", "LOOKUP_FAILED", "cep lookup failed")
	err2 := geoapi.NewError("nominatim", "LOOKUP_FAILED", "different message")

	// Same code should match
	assert.True(t, errors.Is(err1, err2))
}

func TestError_IsNot(t *testing.T) {
	err1 := geoapi.NewError("viacep", "LOOKUP_FAILED", "cep lookup failed")
	err2 := geoapi.NewError("viacep", "DIFFERENT_CODE", "different error")

	// Different codes should not match
	assert.False(t, errors.Is(err1, err2))
}

func TestError_WithStatusCode(t *testing.T) {
	err := geoapi.NewError("googlemaps", "AUTH_ERROR", "Unauthorized").WithStatusCode(401)
	assert.Equal(t, 401, err.StatusCode)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, geoapi.IsNotFound(geoapi.ErrCEPNotFound))
	assert.True(t, geoapi.IsNotFound(geoapi.ErrNoCoordinates))
	assert.True(t, geoapi.IsNotFound(geoapi.ErrNoRoute))
	assert.False(t, geoapi.IsNotFound(geoapi.ErrInvalidCEP))
	assert.False(t, geoapi.IsNotFound(errors.New("other")))
}

func TestIsNotFound_Wrapped(t *testing.T) {
	wrapped := geoapi.NewError("viacep", "LOOKUP_FAILED", "failed").WithCause(geoapi.ErrCEPNotFound)
	assert.True(t, geoapi.IsNotFound(wrapped))
}

func TestAddress_Formatted(t *testing.T) {
	addr := &geoapi.Address{Street: "Praça da Sé", City: "São Paulo", State: "SP"}
	assert.Equal(t, "Praça da Sé, São Paulo, SP", addr.Formatted())
}

func TestAddress_Formatted_SkipsEmpty(t *testing.T) {
	addr := &geoapi.Address{City: "São Paulo", State: "SP"}
	assert.Equal(t, "São Paulo, SP", addr.Formatted())
}
