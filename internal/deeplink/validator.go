// Package deeplink validates untrusted deep link requests against the
// networks and wallets of a profile and resolves them into navigation
// targets.
package deeplink

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/network"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/storage"
	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// AddressValidator checks which network an address belongs to.
type AddressValidator interface {
	BelongsTo(network models.NetworkDescriptor, address string) bool
}

// Validator checks deep link requests. It holds no per-request state and
// may be used concurrently.
type Validator struct {
	wallets   storage.WalletStore
	delegates *DelegateResolver
	addresses AddressValidator
	methods   *MethodResolver
	logger    *slog.Logger
}

// NewValidator returns a Validator. A nil methods resolver registers
// DefaultMethods.
func NewValidator(wallets storage.WalletStore, delegates storage.DelegateRegistry, addresses AddressValidator, methods *MethodResolver) *Validator {
	if methods == nil {
		methods = NewMethodResolver()
	}
	return &Validator{
		wallets:   wallets,
		delegates: NewDelegateResolver(delegates),
		addresses: addresses,
		methods:   methods,
		logger:    slog.Default().With("component", "deeplink_validator"),
	}
}

// Methods returns the method resolver used by the validator.
func (v *Validator) Methods() *MethodResolver {
	return v.methods
}

// Validate resolves raw against the enabled networks. Checks run in a fixed
// order and stop at the first failure, which is returned as a
// *ValidationError. pin may be nil.
func (v *Validator) Validate(ctx context.Context, networks network.EnabledSet, raw RawRequest, pin *RequiredParameters) (*ResolvedRequest, error) {
	req, err := v.validate(ctx, networks, raw, pin)
	if err != nil {
		v.logger.Debug("deep link rejected", "error", err)
		return nil, err
	}
	v.logger.Debug("deep link resolved",
		"coin", req.Coin,
		"method", req.Method,
		"network", req.Target().ID,
	)
	return req, nil
}

func (v *Validator) validate(ctx context.Context, networks network.EnabledSet, raw RawRequest, pin *RequiredParameters) (*ResolvedRequest, error) {
	if pin == nil {
		pin = &RequiredParameters{}
	}

	coin, ok := raw.Get(KeyCoin)
	if !ok {
		return nil, newError(CoinMissing, "")
	}
	if pin.Coin != nil && !strings.EqualFold(coin, *pin.Coin) {
		return nil, newError(CoinMismatch, coin)
	}

	method, ok := raw.Get(KeyMethod)
	if !ok {
		return nil, newError(MethodMissing, "")
	}
	spec, ok := v.methods.Lookup(method)
	if !ok {
		return nil, newError(MethodNotSupported, method)
	}

	networkID, hasNetwork := raw.Get(KeyNetwork)
	nethash, hasNethash := raw.Get(KeyNethash)
	if !hasNetwork && !hasNethash {
		return nil, newError(NetworkOrNethashMissing, "")
	}

	if !networks.HasCoin(coin) {
		return nil, newError(CoinNotSupported, coin)
	}

	req := &ResolvedRequest{
		Coin:        coin,
		Method:      spec.Name,
		ExtraFields: make(map[string]string),
	}

	if hasNetwork {
		target, err := v.resolveNetwork(networks, coin, networkID, pin)
		if err != nil {
			return nil, err
		}
		req.Network = &target
		req.target = target
	}

	if hasNethash {
		if pin.Nethash != nil && nethash != *pin.Nethash {
			return nil, newError(NetworkMismatch, nethash)
		}
		target, err := v.resolveNethash(networks, coin, nethash)
		if err != nil {
			return nil, err
		}
		if hasNetwork {
			// both given: they must name the same network, recorded by id
			if target.ID != req.target.ID {
				return nil, newError(NetworkMismatch, nethash)
			}
		} else {
			req.Nethash = nethash
			req.target = target
		}
	}

	for _, key := range extraKeys {
		if value, ok := raw.Get(key); ok {
			req.ExtraFields[key] = value
		}
	}

	if err := v.validateMethod(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (v *Validator) resolveNetwork(networks network.EnabledSet, coin, id string, pin *RequiredParameters) (models.NetworkDescriptor, error) {
	if pin.Network != nil && id != *pin.Network {
		return models.NetworkDescriptor{}, newError(NetworkMismatch, id)
	}
	if !network.IsKnown(id) {
		return models.NetworkDescriptor{}, newError(NetworkInvalid, id)
	}
	target, ok := networks.ByID(id)
	if !ok {
		return models.NetworkDescriptor{}, newError(NetworkNotEnabled, id)
	}
	has, err := v.wallets.HasWallets(coin, target.ID)
	if err != nil {
		return models.NetworkDescriptor{}, fmt.Errorf("lookup wallets for %s: %w", target.ID, err)
	}
	if !has {
		return models.NetworkDescriptor{}, newError(NetworkNoWallets, id)
	}
	return target, nil
}

func (v *Validator) resolveNethash(networks network.EnabledSet, coin, nethash string) (models.NetworkDescriptor, error) {
	target, ok := networks.ByNethash(nethash)
	if !ok {
		return models.NetworkDescriptor{}, newError(NethashNotEnabled, nethash)
	}
	has, err := v.wallets.HasWallets(coin, target.ID)
	if err != nil {
		return models.NetworkDescriptor{}, fmt.Errorf("lookup wallets for %s: %w", target.ID, err)
	}
	if !has {
		return models.NetworkDescriptor{}, newError(NethashNoWallets, nethash)
	}
	return target, nil
}

func (v *Validator) validateMethod(ctx context.Context, req *ResolvedRequest) error {
	switch req.Method {
	case models.MethodSign:
		if _, ok := req.Field(KeyMessage); !ok {
			return newError(MessageMissing, "")
		}
		if address, ok := req.Field(KeyAddress); ok {
			if v.addresses == nil || !v.addresses.BelongsTo(req.Target(), address) {
				return newError(NetworkMismatch, address)
			}
		}
	case models.MethodVote:
		username, _ := req.Field(KeyDelegate)
		publicKey, _ := req.Field(KeyPublicKey)
		d, err := v.delegates.Resolve(ctx, req.Target().ID, username, publicKey)
		if err != nil {
			return err
		}
		req.Delegate = d
	case models.MethodTransfer:
		// recipient is advisory; callers check it against the network
	}
	return nil
}

// PathFor builds the navigation path for a request this validator resolved.
func (v *Validator) PathFor(req *ResolvedRequest, nav NavigationContext) string {
	return v.methods.PathFor(req, nav)
}
