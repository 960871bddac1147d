package storage

import (
	"context"
	"errors"

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// ErrNotFound is returned by lookups that found nothing.
var ErrNotFound = errors.New("not found")

// WalletStore answers which wallets a profile holds.
type WalletStore interface {
	// HasWallets reports whether at least one wallet exists for coin on network.
	// Coin comparison is case-insensitive.
	HasWallets(coin, network string) (bool, error)
}

// DelegateRegistry resolves delegate identities on a network.
// In production: wraps the network's delegate/validator API.
type DelegateRegistry interface {
	// FindByUsername returns the delegate registered under username, or ErrNotFound.
	FindByUsername(ctx context.Context, network, username string) (*models.Delegate, error)
	// FindByPublicKey returns the delegate owning publicKey, or ErrNotFound.
	FindByPublicKey(ctx context.Context, network, publicKey string) (*models.Delegate, error)
}

// NonceStore manages per-address nonce state.
type NonceStore interface {
	// GetAndIncrement atomically reserves and returns the next nonce for address.
	// Nonces start at 1.
	GetAndIncrement(address string) (uint64, error)
}
