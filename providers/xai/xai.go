// Package xai adapts the xAI API surface: a fixed base endpoint, bearer
// auth derived from one configured secret, and the static Grok model
// catalog.
package xai

import (
	"os"
	"strings"

	"golang.org/x/oauth2"

	"github.com/victorarias/modelweave/capabilities"
	capxai "github.com/victorarias/modelweave/capabilities/xai"
	"github.com/victorarias/modelweave/catalog"
)

const (
	slug    = "xai"
	baseURL = "https://api.x.ai/v1"

	// EnvAPIKey names the one secret the adapter needs.
	EnvAPIKey = "XAI_API_KEY"
)

// Config controls an xAI adapter.
type Config struct {
	APIKey string
}

// Adapter derives connection parameters and model descriptors for xAI.
//
// The adapter performs no presence validation on the API key: a missing key
// surfaces as an empty bearer value. Callers are expected to validate
// RequiredConfigKeys at configuration-load time instead.
type Adapter struct {
	apiKey string
}

// New constructs an xAI adapter from config.
func New(cfg Config) *Adapter {
	return &Adapter{apiKey: strings.TrimSpace(cfg.APIKey)}
}

// NewFromEnv builds an xAI adapter from environment variables.
func NewFromEnv() *Adapter {
	return New(Config{APIKey: os.Getenv(EnvAPIKey)})
}

// Slug returns the provider identifier stamped on descriptors.
func (*Adapter) Slug() string { return slug }

// BaseURL returns the fixed API endpoint. Configuration is not consulted.
func (*Adapter) BaseURL() string { return baseURL }

// TokenSource exposes the configured key as a static bearer token.
func (a *Adapter) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: a.apiKey,
		TokenType:   "Bearer",
	})
}

// AuthHeaders returns the headers a transport must attach to requests.
func (a *Adapter) AuthHeaders() map[string]string {
	token, _ := a.TokenSource().Token()
	return map[string]string{"Authorization": "Bearer " + token.AccessToken}
}

// RequiredConfigKeys names the configuration this adapter depends on.
func (*Adapter) RequiredConfigKeys() []string {
	return []string{EnvAPIKey}
}

// Capabilities implements capabilities.Adapter.
func (*Adapter) Capabilities() capabilities.Capabilities {
	return capxai.Adapter{}.Capabilities()
}

// ListModels materializes descriptors for the static catalog in fixed
// order. No network call is made: listing enumerates the compiled-in
// catalog, not the remote service.
func (a *Adapter) ListModels() []catalog.ModelDescriptor {
	ids := catalog.ModelIDs()
	models := make([]catalog.ModelDescriptor, 0, len(ids))
	for _, id := range ids {
		models = append(models, catalog.BuildDescriptor(id, slug))
	}
	return models
}
