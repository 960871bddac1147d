package wallet

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/signatory"
)

// ParsePath parses an absolute BIP-32 derivation path such as m/44'/111'/0'/0/0.
// Relative paths are rejected.
func ParsePath(path string) (accounts.DerivationPath, error) {
	if !strings.HasPrefix(strings.TrimSpace(path), "m/") {
		return nil, errors.Errorf("derivation path %q must start with m/", path)
	}
	parsed, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid derivation path %q", path)
	}
	return parsed, nil
}

// BIP44Path returns m/44'/{coinType}'/{account}'/{change}/{index}.
func BIP44Path(coinType uint32, opts signatory.BIP44) accounts.DerivationPath {
	return accounts.DerivationPath{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + coinType,
		bip32.FirstHardenedChild + opts.Account,
		opts.Change,
		opts.AddressIndex,
	}
}

// seedFromMnemonic validates a BIP-39 phrase and returns its seed.
func seedFromMnemonic(mnemonic string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return seed, nil
}

// deriveKey derives a child private key from a BIP-39 seed along path.
func deriveKey(seed []byte, path accounts.DerivationPath) ([]byte, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("master key: %w", err)
	}
	for depth, index := range path {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, fmt.Errorf("derive depth %d: %w", depth+1, err)
		}
	}
	return key.Key, nil
}
