package main

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/config"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/signatory"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/storage"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/tx"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/wallet"
)

const (
	mnemonicFlag       = "mnemonic"
	secretFlag         = "secret"
	confirmFlag        = "confirm"
	ledgerPathFlag     = "ledger-path"
	derivationPathFlag = "derivation-path"
	accountFlag        = "bip44-account"
	changeFlag         = "bip44-change"
	indexFlag          = "bip44-index"
)

func newDraftCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draft <url>",
		Short: "Validate a deep link and print the unsigned transaction draft it describes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(*cfg)
			if err != nil {
				return err
			}
			req, err := p.resolve(cmd, args[0])
			if err != nil {
				return err
			}

			target := req.Target()
			s, err := signatoryFromFlags(cmd, wallet.NewFactory(wallet.NewARKGenerator(target)))
			if err != nil {
				return err
			}

			builder := tx.NewBuilder(tx.BuilderConfig{Decimals: cfg.AmountDecimals}, storage.NewMemoryNonceStore())
			builder.RegisterSigner(target.ID, wallet.UnsignedSigner{})
			draft, err := builder.Build(cmd.Context(), req, s)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(draft)
		},
	}
	addPinFlags(cmd)
	cmd.Flags().String(mnemonicFlag, "", "Sign with this mnemonic")
	cmd.Flags().String(secretFlag, "", "Sign with this secret")
	cmd.Flags().String(confirmFlag, "", "Second mnemonic or secret for two-step signing")
	cmd.Flags().String(ledgerPathFlag, "", "Sign on a Ledger device at this derivation path")
	cmd.Flags().String(derivationPathFlag, "", "Derive the mnemonic's key at this path")
	cmd.Flags().Uint32(accountFlag, 0, "BIP-44 account")
	cmd.Flags().Uint32(changeFlag, 0, "BIP-44 change")
	cmd.Flags().Uint32(indexFlag, 0, "BIP-44 address index")
	cmd.MarkFlagsMutuallyExclusive(mnemonicFlag, secretFlag, ledgerPathFlag)
	cmd.MarkFlagsOneRequired(mnemonicFlag, secretFlag, ledgerPathFlag)
	return cmd
}

// signatoryFromFlags picks the signatory variant from the credential flags.
func signatoryFromFlags(cmd *cobra.Command, f *wallet.Factory) (*signatory.Signatory, error) {
	flags := cmd.Flags()
	mnemonic, _ := flags.GetString(mnemonicFlag)
	secret, _ := flags.GetString(secretFlag)
	confirm, _ := flags.GetString(confirmFlag)
	ledgerPath, _ := flags.GetString(ledgerPathFlag)
	path, _ := flags.GetString(derivationPathFlag)

	var opts *signatory.Options
	if flags.Changed(accountFlag) || flags.Changed(changeFlag) || flags.Changed(indexFlag) {
		bip44 := &signatory.BIP44{}
		bip44.Account, _ = flags.GetUint32(accountFlag)
		bip44.Change, _ = flags.GetUint32(changeFlag)
		bip44.AddressIndex, _ = flags.GetUint32(indexFlag)
		opts = &signatory.Options{BIP44: bip44}
	}

	hasConfirm := flags.Changed(confirmFlag)
	switch {
	case flags.Changed(ledgerPathFlag):
		if hasConfirm {
			return nil, errors.New("--confirm cannot be used with --ledger-path")
		}
		return f.FromLedgerPath(ledgerPath, opts)
	case flags.Changed(secretFlag):
		if hasConfirm {
			return f.FromConfirmationSecret(secret, confirm)
		}
		return f.FromSecret(secret, opts)
	case flags.Changed(derivationPathFlag):
		if hasConfirm {
			return nil, errors.New("--confirm cannot be used with --derivation-path")
		}
		return f.FromMnemonicWithDerivationPath(mnemonic, path, opts)
	case hasConfirm:
		return f.FromConfirmationMnemonic(mnemonic, confirm)
	default:
		return f.FromMnemonic(mnemonic, opts)
	}
}
