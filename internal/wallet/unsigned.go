package wallet

import (
	"context"

	"github.com/pkg/errors"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/signatory"
	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// UnsignedSigner hands drafts back unsigned, for callers that pass them on
// to a wallet SDK or hardware device. It still checks that s can produce
// signing material.
type UnsignedSigner struct{}

// Sign returns a copy of tx with Signed cleared.
func (UnsignedSigner) Sign(ctx context.Context, tx *models.Transaction, s *signatory.Signatory) (*models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := s.SigningKey(); err != nil {
		return nil, errors.Wrap(err, "signing material")
	}
	out := *tx
	out.Signed = false
	out.Signature = ""
	return &out, nil
}
