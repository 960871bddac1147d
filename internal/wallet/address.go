package wallet

import (
	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// AddressValidator checks address ownership by network version byte.
type AddressValidator struct{}

// NewAddressValidator returns an AddressValidator.
func NewAddressValidator() *AddressValidator {
	return &AddressValidator{}
}

// BelongsTo reports whether address is a well-formed address of network.
func (v *AddressValidator) BelongsTo(network models.NetworkDescriptor, address string) bool {
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return false
	}
	return version == network.PubKeyHash && len(payload) == 20
}
