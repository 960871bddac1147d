// Package signatory gates access to signing material by credential variant.
//
// A Signatory wraps exactly one Variant for its lifetime. It is built right
// before a signing attempt and dropped afterwards; it is not safe to share
// between concurrent signing flows.
package signatory

import "log/slog"

// Signatory exposes a uniform accessor surface over one credential variant
// and rejects accessors the variant does not support.
type Signatory struct {
	variant Variant
	logger  *slog.Logger
}

// New returns a Signatory over v.
func New(v Variant) *Signatory {
	return &Signatory{
		variant: v,
		logger:  slog.Default().With("component", "signatory"),
	}
}

// Kind returns the kind of the wrapped variant.
func (s *Signatory) Kind() Kind {
	if s.variant == nil {
		return "unknown"
	}
	return s.variant.Kind()
}

// SigningKey returns the NFD-normalized signing secret, or the device
// derivation path for Ledger.
func (s *Signatory) SigningKey() (string, error) {
	switch v := s.variant.(type) {
	case Mnemonic:
		return v.SigningKey(), nil
	case Secret:
		return v.SigningKey(), nil
	case ConfirmationMnemonic:
		return v.SigningKey(), nil
	case ConfirmationSecret:
		return v.SigningKey(), nil
	case Ledger:
		return v.SigningKey(), nil
	case MnemonicWithDerivationPath:
		return v.SigningKey(), nil
	}
	return "", s.unsupported(OpSigningKey)
}

// ConfirmKey returns the NFD-normalized second secret of a confirmation variant.
func (s *Signatory) ConfirmKey() (string, error) {
	switch v := s.variant.(type) {
	case ConfirmationMnemonic:
		return v.ConfirmKey(), nil
	case ConfirmationSecret:
		return v.ConfirmKey(), nil
	case Mnemonic, Secret, Ledger, MnemonicWithDerivationPath:
	}
	return "", s.unsupported(OpConfirmKey)
}

// Address returns the address the credential signs for.
func (s *Signatory) Address() (string, error) {
	switch v := s.variant.(type) {
	case Mnemonic:
		return v.Address(), nil
	case Secret:
		return v.Address(), nil
	case ConfirmationMnemonic:
		return v.Address(), nil
	case ConfirmationSecret:
		return v.Address(), nil
	case MnemonicWithDerivationPath:
		return v.Address(), nil
	case Ledger:
	}
	return "", s.unsupported(OpAddress)
}

// PublicKey returns the public key the credential signs with.
func (s *Signatory) PublicKey() (string, error) {
	switch v := s.variant.(type) {
	case Mnemonic:
		return v.PublicKey(), nil
	case Secret:
		return v.PublicKey(), nil
	case ConfirmationMnemonic:
		return v.PublicKey(), nil
	case ConfirmationSecret:
		return v.PublicKey(), nil
	case MnemonicWithDerivationPath:
		return v.PublicKey(), nil
	case Ledger:
	}
	return "", s.unsupported(OpPublicKey)
}

// Path returns the derivation path, unmodified.
func (s *Signatory) Path() (string, error) {
	switch v := s.variant.(type) {
	case Ledger:
		return v.Path(), nil
	case MnemonicWithDerivationPath:
		return v.Path(), nil
	case Mnemonic, Secret, ConfirmationMnemonic, ConfirmationSecret:
	}
	return "", s.unsupported(OpPath)
}

// Options returns the identity options. A nil result with a nil error means
// the variant supports options but none were given.
func (s *Signatory) Options() (*Options, error) {
	switch v := s.variant.(type) {
	case Mnemonic:
		return v.Options(), nil
	case Secret:
		return v.Options(), nil
	case Ledger:
		return v.Options(), nil
	case MnemonicWithDerivationPath:
		return v.Options(), nil
	case ConfirmationMnemonic, ConfirmationSecret:
	}
	return nil, s.unsupported(OpOptions)
}

func (s *Signatory) ActsWithMnemonic() bool {
	_, ok := s.variant.(Mnemonic)
	return ok
}

func (s *Signatory) ActsWithMnemonicWithDerivationPath() bool {
	_, ok := s.variant.(MnemonicWithDerivationPath)
	return ok
}

func (s *Signatory) ActsWithConfirmationMnemonic() bool {
	_, ok := s.variant.(ConfirmationMnemonic)
	return ok
}

func (s *Signatory) ActsWithLedger() bool {
	_, ok := s.variant.(Ledger)
	return ok
}

func (s *Signatory) ActsWithSecret() bool {
	_, ok := s.variant.(Secret)
	return ok
}

func (s *Signatory) ActsWithConfirmationSecret() bool {
	_, ok := s.variant.(ConfirmationSecret)
	return ok
}

func (s *Signatory) unsupported(op Operation) error {
	err := &UnsupportedOperationError{Variant: s.Kind(), Operation: op}
	s.logger.Warn("rejected signatory operation",
		"variant", err.Variant,
		"operation", err.Operation,
	)
	return err
}
