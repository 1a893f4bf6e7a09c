// Package providers defines the adapter surface shared by model providers
// and a slug-keyed registry of adapters.
package providers

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/victorarias/modelweave/catalog"
)

// ErrProviderNotFound is returned when a slug has no registered provider.
var ErrProviderNotFound = errors.New("provider not found")

// Provider supplies the connection parameters a transport collaborator needs
// and enumerates the models it serves.
type Provider interface {
	// Slug returns the short identifier stamped on every descriptor.
	Slug() string

	// BaseURL returns the API endpoint requests are issued against.
	BaseURL() string

	// AuthHeaders returns the headers the transport must attach.
	AuthHeaders() map[string]string

	// RequiredConfigKeys names the configuration the provider depends on,
	// for presence validation at configuration-load time.
	RequiredConfigKeys() []string

	// ListModels returns descriptors for the provider's catalog in fixed
	// order.
	ListModels() []catalog.ModelDescriptor
}

// Registry stores provider adapters keyed by slug.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds providers to the registry. A later registration replaces an
// earlier one with the same slug.
func (r *Registry) Register(providers ...Provider) error {
	for i, provider := range providers {
		if provider == nil {
			return fmt.Errorf("provider at index %d is nil", i)
		}
		if provider.Slug() == "" {
			return fmt.Errorf("provider at index %d has empty slug", i)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, provider := range providers {
		r.providers[provider.Slug()] = provider
	}
	return nil
}

// Get returns the provider registered under slug.
func (r *Registry) Get(slug string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider := r.providers[slug]
	if provider == nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, slug)
	}
	return provider, nil
}

// Slugs returns registered slugs in stable order.
func (r *Registry) Slugs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := make([]string, 0, len(r.providers))
	for slug := range r.providers {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}

// ListModels returns the descriptors of the provider registered under slug.
func (r *Registry) ListModels(slug string) ([]catalog.ModelDescriptor, error) {
	provider, err := r.Get(slug)
	if err != nil {
		return nil, err
	}
	return provider.ListModels(), nil
}
