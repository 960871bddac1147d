package tx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/deeplink"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/signatory"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/storage"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/wallet"
	"github.com/olehkaliuzhnyi/wallet-deeplink/pkg/models"
)

// BuilderConfig holds configurable parameters for the draft builder.
type BuilderConfig struct {
	// Decimals is the number of fractional digits of the coin's base unit.
	Decimals int
}

// Builder turns resolved deep links into transaction drafts and hands them
// to the network's signer. A failure is terminal for the attempt; the
// caller decides whether to prompt again.
type Builder struct {
	signers    map[string]wallet.Signer
	nonceStore storage.NonceStore
	logger     *slog.Logger
	cfg        BuilderConfig
}

// NewBuilder creates a new draft builder with the given config and nonce store.
func NewBuilder(cfg BuilderConfig, nonces storage.NonceStore) *Builder {
	if cfg.Decimals <= 0 {
		cfg.Decimals = 8
	}
	return &Builder{
		signers:    make(map[string]wallet.Signer),
		nonceStore: nonces,
		logger:     slog.Default().With("component", "tx_builder"),
		cfg:        cfg,
	}
}

// RegisterSigner registers a signer for a network id.
func (b *Builder) RegisterSigner(network string, signer wallet.Signer) {
	b.signers[network] = signer
}

// Build drafts the action described by req, reading signing material only
// through the gated accessors of s, and signs it.
func (b *Builder) Build(ctx context.Context, req *deeplink.ResolvedRequest, s *signatory.Signatory) (*models.Transaction, error) {
	target := req.Target()
	tx := &models.Transaction{
		Network: target.ID,
		Method:  req.Method,
	}

	if s.ActsWithLedger() {
		path, err := s.Path()
		if err != nil {
			return nil, fmt.Errorf("ledger path: %w", err)
		}
		tx.DerivationPath = path
	} else {
		from, err := s.Address()
		if err != nil {
			return nil, fmt.Errorf("sender address: %w", err)
		}
		tx.From = from
	}

	if s.ActsWithConfirmationMnemonic() || s.ActsWithConfirmationSecret() {
		if _, err := s.ConfirmKey(); err != nil {
			return nil, fmt.Errorf("confirm key: %w", err)
		}
		tx.SecondSignature = true
	}

	if err := b.fill(tx, req); err != nil {
		return nil, err
	}

	b.logger.Info("building transaction",
		"network", tx.Network,
		"method", tx.Method,
		"signatory", s.Kind(),
		"from", tx.From,
		"to", tx.To,
		"amount", tx.Amount,
		"nonce", tx.Nonce,
	)

	signer, ok := b.signers[tx.Network]
	if !ok {
		return nil, fmt.Errorf("no signer for network %s", tx.Network)
	}

	signed, err := signer.Sign(ctx, tx, s)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	b.logger.Info("transaction signed",
		"network", signed.Network,
		"method", signed.Method,
		"tx_hash", signed.TxHash,
	)
	return signed, nil
}

func (b *Builder) fill(tx *models.Transaction, req *deeplink.ResolvedRequest) error {
	switch req.Method {
	case models.MethodTransfer:
		recipient, ok := req.Field(deeplink.KeyRecipient)
		if !ok {
			return errors.New("transfer: recipient is required to build a draft")
		}
		amount, ok := req.Field(deeplink.KeyAmount)
		if !ok {
			return errors.New("transfer: amount is required to build a draft")
		}
		units, err := b.parseAmount(amount)
		if err != nil {
			return fmt.Errorf("transfer: %w", err)
		}
		tx.To = recipient
		tx.Amount = units
		tx.Memo, _ = req.Field(deeplink.KeyMemo)
	case models.MethodVote:
		if req.Delegate == nil {
			return errors.New("vote: request has no resolved delegate")
		}
		tx.Votes = []string{"+" + req.Delegate.PublicKey}
	case models.MethodSign:
		message, _ := req.Field(deeplink.KeyMessage)
		tx.Message = message
		if address, ok := req.Field(deeplink.KeyAddress); ok && tx.From != "" && address != tx.From {
			return fmt.Errorf("sign: message address %s does not match signatory address %s", address, tx.From)
		}
		// messages carry no nonce
		return nil
	default:
		return fmt.Errorf("unsupported method %s", req.Method)
	}

	// Nonce management for account-model chains. Hardware wallets take the
	// nonce from the device session.
	if tx.From != "" {
		nonce, err := b.nonceStore.GetAndIncrement(tx.From)
		if err != nil {
			return fmt.Errorf("nonce store: %w", err)
		}
		tx.Nonce = nonce
	}
	return nil
}

// parseAmount converts a decimal coin amount into base units.
func (b *Builder) parseAmount(amount string) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(amount)
	if !ok || r.Sign() <= 0 {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(b.cfg.Decimals)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	if !r.IsInt() {
		return nil, fmt.Errorf("amount %q has more than %d decimals", amount, b.cfg.Decimals)
	}
	return new(big.Int).Set(r.Num()), nil
}
