package wallet

import (
	"github.com/pkg/errors"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/signatory"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/text"
	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// Factory builds Signatories from raw user input for one network. Secrets
// are NFD-normalized before any identity is derived from them.
type Factory struct {
	gen Generator
}

// NewFactory returns a Factory deriving identities with gen.
func NewFactory(gen Generator) *Factory {
	return &Factory{gen: gen}
}

// FromMnemonic builds a Mnemonic signatory. With BIP-44 options the identity
// is derived from the BIP-39 seed at the network's BIP-44 path; otherwise the
// phrase is used as a passphrase.
func (f *Factory) FromMnemonic(mnemonic string, opts *signatory.Options) (*signatory.Signatory, error) {
	mnemonic = text.NFD(mnemonic)
	id, err := f.identity(mnemonic, opts)
	if err != nil {
		return nil, err
	}
	return signatory.New(signatory.NewMnemonic(mnemonic, id.Address, id.PublicKey, opts)), nil
}

// FromSecret builds a Secret signatory.
func (f *Factory) FromSecret(secret string, opts *signatory.Options) (*signatory.Signatory, error) {
	secret = text.NFD(secret)
	id, err := f.gen.FromPassphrase(secret)
	if err != nil {
		return nil, errors.Wrap(err, "derive from secret")
	}
	return signatory.New(signatory.NewSecret(secret, id.Address, id.PublicKey, opts)), nil
}

// FromConfirmationMnemonic builds a two-phrase signatory. The identity is
// the one of the first phrase.
func (f *Factory) FromConfirmationMnemonic(mnemonic, confirm string) (*signatory.Signatory, error) {
	mnemonic, confirm = text.NFD(mnemonic), text.NFD(confirm)
	if confirm == "" {
		return nil, errors.New("empty confirmation mnemonic")
	}
	id, err := f.gen.FromPassphrase(mnemonic)
	if err != nil {
		return nil, errors.Wrap(err, "derive from mnemonic")
	}
	return signatory.New(signatory.NewConfirmationMnemonic(mnemonic, confirm, id.Address, id.PublicKey)), nil
}

// FromConfirmationSecret builds a two-secret signatory.
func (f *Factory) FromConfirmationSecret(secret, confirm string) (*signatory.Signatory, error) {
	secret, confirm = text.NFD(secret), text.NFD(confirm)
	if confirm == "" {
		return nil, errors.New("empty confirmation secret")
	}
	id, err := f.gen.FromPassphrase(secret)
	if err != nil {
		return nil, errors.Wrap(err, "derive from secret")
	}
	return signatory.New(signatory.NewConfirmationSecret(secret, confirm, id.Address, id.PublicKey)), nil
}

// FromLedgerPath builds a Ledger signatory after checking path is a valid
// absolute derivation path. The path is kept as given.
func (f *Factory) FromLedgerPath(path string, opts *signatory.Options) (*signatory.Signatory, error) {
	if _, err := ParsePath(path); err != nil {
		return nil, err
	}
	return signatory.New(signatory.NewLedger(path, opts)), nil
}

// FromMnemonicWithDerivationPath builds a signatory whose identity is the
// BIP-32 child of the mnemonic's seed at path.
func (f *Factory) FromMnemonicWithDerivationPath(mnemonic, path string, opts *signatory.Options) (*signatory.Signatory, error) {
	mnemonic = text.NFD(mnemonic)
	parsed, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	seed, err := seedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	id, err := f.gen.FromSeed(seed, parsed)
	if err != nil {
		return nil, err
	}
	return signatory.New(signatory.NewMnemonicWithDerivationPath(mnemonic, path, id.Address, id.PublicKey, opts)), nil
}

func (f *Factory) identity(mnemonic string, opts *signatory.Options) (*models.DerivedAddress, error) {
	if opts == nil || opts.BIP44 == nil {
		id, err := f.gen.FromPassphrase(mnemonic)
		if err != nil {
			return nil, errors.Wrap(err, "derive from mnemonic")
		}
		return id, nil
	}
	seed, err := seedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return f.gen.FromSeed(seed, BIP44Path(f.gen.Network().SLIP44, *opts.BIP44))
}
