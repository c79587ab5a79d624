// Package mock provides a mock rate client implementation for testing.
package mock

import (
	"context"

	"github.com/tournevent/storelocator/pkg/freight"
)

// Client is a mock rate client for testing.
type Client struct {
	name string

	// Err, when set, is returned by every Quote call.
	Err error

	// Quotes, when set, overrides the default canned quotes.
	Quotes []freight.Quote
}

// New creates a new mock rate client.
func New(name string) *Client {
	return &Client{name: name}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return c.name
}

// Quote returns canned shipping quotes.
func (c *Client) Quote(ctx context.Context, req *freight.QuoteRequest) ([]freight.Quote, error) {
	if c.Err != nil {
		return nil, c.Err
	}

	if c.Quotes != nil {
		return c.Quotes, nil
	}

	return []freight.Quote{
		{Service: freight.ServicePAC, Price: 25.00, Days: 5},
		{Service: freight.ServiceSEDEX, Price: 35.00, Days: 2},
	}, nil
}

var _ freight.RateClient = (*Client)(nil)
