package oauth

import (
	"slices"

	"passage/config"
	"passage/internal/domain/entity"
	domainerrors "passage/internal/domain/errors"
	"passage/internal/domain/service"
)

// Registry holds all configured provider clients and allows lookup by kind.
// It performs no auth logic itself.
type Registry struct {
	clients map[entity.ProviderKind]service.ProviderClient
}

// NewRegistry registers the given clients by kind. Kinds must be unique.
func NewRegistry(list ...service.ProviderClient) *Registry {
	m := make(map[entity.ProviderKind]service.ProviderClient, len(list))
	for _, c := range list {
		m[c.Kind()] = c
	}

	return &Registry{clients: m}
}

// NewRegistryFromConfig registers a client for every provider that has a client ID configured.
func NewRegistryFromConfig(cfg *config.Config) service.ProviderRegistry {
	timeout := defaultProviderTimeout
	if cfg.Auth != nil && cfg.Auth.ProviderTimeout > 0 {
		timeout = cfg.Auth.ProviderTimeout
	}

	var list []service.ProviderClient
	if cfg.OAuth.Google.ClientID != "" {
		list = append(list, NewGoogleClient(cfg.OAuth.Google, timeout))
	}
	if cfg.OAuth.Facebook.ClientID != "" {
		list = append(list, NewFacebookClient(cfg.OAuth.Facebook, timeout))
	}

	return NewRegistry(list...)
}

// Client returns the client for kind or ErrUnknownProvider.
func (r *Registry) Client(kind entity.ProviderKind) (service.ProviderClient, error) {
	c, ok := r.clients[kind]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider.WithDetails("unknown provider: " + kind.String())
	}

	return c, nil
}

// Kinds lists registered kinds in a stable order.
func (r *Registry) Kinds() []entity.ProviderKind {
	kinds := make([]entity.ProviderKind, 0, len(r.clients))
	for kind := range r.clients {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	return kinds
}
