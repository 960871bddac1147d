package wallet

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/signatory"
	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// Generator derives identities for one network.
type Generator interface {
	// Network returns the network this generator derives for
	Network() models.NetworkDescriptor

	// FromPassphrase derives the identity whose private key is the hash of passphrase
	FromPassphrase(passphrase string) (*models.DerivedAddress, error)

	// FromSeed derives the identity at path below the HD root of seed
	FromSeed(seed []byte, path accounts.DerivationPath) (*models.DerivedAddress, error)
}

// Signer signs transaction drafts.
// In production, this is the wallet SDK or a hardware device transport.
type Signer interface {
	// Sign signs a draft with the material held by s and returns it with Signed set
	Sign(ctx context.Context, tx *models.Transaction, s *signatory.Signatory) (*models.Transaction, error)
}
