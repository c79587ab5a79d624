package freight

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Registry manages registered carrier rate providers.
type Registry struct {
	clients map[string]RateClient
	mu      sync.RWMutex
}

// NewRegistry creates a new provider registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[string]RateClient),
	}
}

// Register adds a provider to the registry.
func (r *Registry) Register(c RateClient) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c.Name()] = c
}

// Get returns a provider by name.
func (r *Registry) Get(name string) (RateClient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.clients[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
}

// All returns all registered providers.
func (r *Registry) All() []RateClient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]RateClient, 0, len(r.clients))
	for _, c := range r.clients {
		result = append(result, c)
	}
	return result
}

// Names returns the names of all registered providers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.clients))
	for name := range r.clients {
		names = append(names, name)
	}
	return names
}

// Count returns the number of registered providers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// QuoteAll fetches quotes from all registered providers in parallel.
// Errors from individual providers are collected but don't fail the
// entire request.
func (r *Registry) QuoteAll(ctx context.Context, req *QuoteRequest) ([]Quote, []error) {
	clients := r.All()
	if len(clients) == 0 {
		return nil, []error{ErrProviderNotFound}
	}

	results := make([]Quote, 0, len(clients)*2)
	errs := make([]error, 0)
	mu := &sync.Mutex{}

	g, ctx := errgroup.WithContext(ctx)

	for _, c := range clients {
		g.Go(func() error {
			quotes, err := c.Quote(ctx, req)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
				return nil // Don't fail the group, continue with other providers
			}
			results = append(results, quotes...)
			return nil
		})
	}

	g.Wait()
	return results, errs
}
