package deeplink

import (
	"context"
	"errors"
	"fmt"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/storage"
	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// DelegateResolver turns the delegate or publicKey parameter of a vote
// request into a delegate identity.
type DelegateResolver struct {
	registry storage.DelegateRegistry
}

// NewDelegateResolver returns a resolver backed by registry.
// A nil registry knows no delegates.
func NewDelegateResolver(registry storage.DelegateRegistry) *DelegateResolver {
	if registry == nil {
		registry = storage.NewMemoryDelegateRegistry()
	}
	return &DelegateResolver{registry: registry}
}

// Resolve looks up exactly one of username or publicKey on network.
// Unknown and resigned delegates are returned as *ValidationError; registry
// failures are wrapped and returned unchanged.
func (r *DelegateResolver) Resolve(ctx context.Context, network, username, publicKey string) (*models.Delegate, error) {
	if username != "" && publicKey != "" {
		return nil, newError(DelegateOrPublicKey, "")
	}
	if username == "" && publicKey == "" {
		return nil, newError(DelegateMissing, "")
	}

	var (
		d          *models.Delegate
		err        error
		identifier string
	)
	if username != "" {
		identifier = username
		d, err = r.registry.FindByUsername(ctx, network, username)
	} else {
		identifier = publicKey
		d, err = r.registry.FindByPublicKey(ctx, network, publicKey)
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, newError(DelegateNotFound, identifier)
	case err != nil:
		return nil, fmt.Errorf("lookup delegate %q: %w", identifier, err)
	case d == nil:
		return nil, newError(DelegateNotFound, identifier)
	case d.Resigned:
		return nil, newError(DelegateResigned, identifier)
	}
	return d, nil
}
