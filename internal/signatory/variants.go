package signatory

import "github.com/olehkaliuzhnyi/wallet-deeplink/internal/text"

// Kind names a credential variant.
type Kind string

// Credential variant kinds.
const (
	KindMnemonic                   Kind = "mnemonic"
	KindSecret                     Kind = "secret"
	KindConfirmationMnemonic       Kind = "confirmation_mnemonic"
	KindConfirmationSecret         Kind = "confirmation_secret"
	KindLedger                     Kind = "ledger"
	KindMnemonicWithDerivationPath Kind = "mnemonic_with_derivation_path"
)

// Variant is one shape of signing material. The set is closed: only the
// types in this package implement it.
type Variant interface {
	Kind() Kind
	variant()
}

// BIP44 selects an account, change chain and address index under the
// network's coin type.
type BIP44 struct {
	Account      uint32
	Change       uint32
	AddressIndex uint32
}

// Options are auxiliary identity options attached to a credential.
type Options struct {
	BIP44 *BIP44
}

// Mnemonic is a recovery-phrase credential.
type Mnemonic struct {
	address    string
	publicKey  string
	signingKey string
	options    *Options
}

// NewMnemonic returns a Mnemonic credential. The phrase is stored NFD-normalized.
func NewMnemonic(signingKey, address, publicKey string, options *Options) Mnemonic {
	return Mnemonic{
		address:    address,
		publicKey:  publicKey,
		signingKey: text.NFD(signingKey),
		options:    options,
	}
}

func (m Mnemonic) Kind() Kind { return KindMnemonic }
func (m Mnemonic) SigningKey() string { return m.signingKey }
func (m Mnemonic) Address() string { return m.address }
func (m Mnemonic) PublicKey() string { return m.publicKey }
func (m Mnemonic) Options() *Options { return m.options }
func (Mnemonic) variant() {}

// Secret is a passphrase credential that is not a BIP-39 phrase.
type Secret struct {
	address    string
	publicKey  string
	signingKey string
	options    *Options
}

// NewSecret returns a Secret credential. The secret is stored NFD-normalized.
func NewSecret(signingKey, address, publicKey string, options *Options) Secret {
	return Secret{
		address:    address,
		publicKey:  publicKey,
		signingKey: text.NFD(signingKey),
		options:    options,
	}
}

func (s Secret) Kind() Kind { return KindSecret }
func (s Secret) SigningKey() string { return s.signingKey }
func (s Secret) Address() string { return s.address }
func (s Secret) PublicKey() string { return s.publicKey }
func (s Secret) Options() *Options { return s.options }
func (Secret) variant() {}

// ConfirmationMnemonic is a recovery phrase paired with a second phrase that
// confirms the signature.
type ConfirmationMnemonic struct {
	address    string
	publicKey  string
	signingKey string
	confirmKey string
}

// NewConfirmationMnemonic returns a two-phrase credential. Both phrases are
// stored NFD-normalized.
func NewConfirmationMnemonic(signingKey, confirmKey, address, publicKey string) ConfirmationMnemonic {
	return ConfirmationMnemonic{
		address:    address,
		publicKey:  publicKey,
		signingKey: text.NFD(signingKey),
		confirmKey: text.NFD(confirmKey),
	}
}

func (c ConfirmationMnemonic) Kind() Kind { return KindConfirmationMnemonic }
func (c ConfirmationMnemonic) SigningKey() string { return c.signingKey }
func (c ConfirmationMnemonic) ConfirmKey() string { return c.confirmKey }
func (c ConfirmationMnemonic) Address() string { return c.address }
func (c ConfirmationMnemonic) PublicKey() string { return c.publicKey }
func (ConfirmationMnemonic) variant() {}

// ConfirmationSecret is a secret paired with a second secret.
type ConfirmationSecret struct {
	address    string
	publicKey  string
	signingKey string
	confirmKey string
}

// NewConfirmationSecret returns a two-secret credential. Both secrets are
// stored NFD-normalized.
func NewConfirmationSecret(signingKey, confirmKey, address, publicKey string) ConfirmationSecret {
	return ConfirmationSecret{
		address:    address,
		publicKey:  publicKey,
		signingKey: text.NFD(signingKey),
		confirmKey: text.NFD(confirmKey),
	}
}

func (c ConfirmationSecret) Kind() Kind { return KindConfirmationSecret }
func (c ConfirmationSecret) SigningKey() string { return c.signingKey }
func (c ConfirmationSecret) ConfirmKey() string { return c.confirmKey }
func (c ConfirmationSecret) Address() string { return c.address }
func (c ConfirmationSecret) PublicKey() string { return c.publicKey }
func (ConfirmationSecret) variant() {}

// Ledger is a hardware device credential. Its signing key is the device
// derivation path; address and public key require a device round trip and
// are not available here.
type Ledger struct {
	path    string
	options *Options
}

// NewLedger returns a Ledger credential for the given derivation path.
func NewLedger(path string, options *Options) Ledger {
	return Ledger{path: path, options: options}
}

func (l Ledger) Kind() Kind { return KindLedger }
func (l Ledger) SigningKey() string { return l.path }
func (l Ledger) Path() string { return l.path }
func (l Ledger) Options() *Options { return l.options }
func (Ledger) variant() {}

// MnemonicWithDerivationPath is a recovery phrase bound to an explicit
// derivation path.
type MnemonicWithDerivationPath struct {
	Mnemonic
	path string
}

// NewMnemonicWithDerivationPath returns a Mnemonic credential bound to path.
// The path is kept verbatim.
func NewMnemonicWithDerivationPath(signingKey, path, address, publicKey string, options *Options) MnemonicWithDerivationPath {
	return MnemonicWithDerivationPath{
		Mnemonic: NewMnemonic(signingKey, address, publicKey, options),
		path:     path,
	}
}

func (m MnemonicWithDerivationPath) Kind() Kind { return KindMnemonicWithDerivationPath }
func (m MnemonicWithDerivationPath) Path() string { return m.path }
