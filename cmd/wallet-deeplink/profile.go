package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/config"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/deeplink"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/i18n"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/network"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/storage"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/wallet"
)

const (
	pinCoinFlag    = "pin-coin"
	pinNetworkFlag = "pin-network"
	pinNethashFlag = "pin-nethash"
)

// profile is the wallet state a deep link is validated against.
type profile struct {
	cfg       config.Config
	networks  network.EnabledSet
	validator *deeplink.Validator
	messages  *i18n.Service
	lang      language.Tag
}

func loadProfile(cfg config.Config) (*profile, error) {
	networks, err := network.Enable(cfg.EnabledNetworks...)
	if err != nil {
		return nil, err
	}

	wallets := storage.NewMemoryWalletStore()
	entries, err := cfg.ParseWallets()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := wallets.Add(e.Coin, e.Network, e.Address); err != nil {
			return nil, err
		}
	}

	delegates := storage.NewMemoryDelegateRegistry()
	if cfg.DelegatesFile != "" {
		if err := delegates.LoadDelegatesFile(cfg.DelegatesFile); err != nil {
			return nil, err
		}
	}

	lang, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("locale: %w", err)
	}
	messages, err := i18n.New(language.English)
	if err != nil {
		return nil, err
	}

	return &profile{
		cfg:       cfg,
		networks:  networks,
		validator: deeplink.NewValidator(wallets, delegates, wallet.NewAddressValidator(), nil),
		messages:  messages,
		lang:      messages.ParseLanguage(lang.String()),
	}, nil
}

// resolve validates the deep link in rawURL. Validation failures are printed
// as localized messages before being returned.
func (p *profile) resolve(cmd *cobra.Command, rawURL string) (*deeplink.ResolvedRequest, error) {
	raw, err := deeplink.FromURL(rawURL)
	if err != nil {
		return nil, err
	}
	req, err := p.validator.Validate(cmd.Context(), p.networks, raw, pinFromFlags(cmd))
	if err != nil {
		var verr *deeplink.ValidationError
		if errors.As(err, &verr) {
			fmt.Fprintln(cmd.ErrOrStderr(), p.messages.Message(err, p.lang))
		}
		return nil, err
	}
	return req, nil
}

func addPinFlags(cmd *cobra.Command) {
	cmd.Flags().String(pinCoinFlag, "", "Require the deep link to use this coin")
	cmd.Flags().String(pinNetworkFlag, "", "Require the deep link to use this network id")
	cmd.Flags().String(pinNethashFlag, "", "Require the deep link to use this nethash")
}

func pinFromFlags(cmd *cobra.Command) *deeplink.RequiredParameters {
	pin := &deeplink.RequiredParameters{}
	if cmd.Flags().Changed(pinCoinFlag) {
		v, _ := cmd.Flags().GetString(pinCoinFlag)
		pin.Coin = &v
	}
	if cmd.Flags().Changed(pinNetworkFlag) {
		v, _ := cmd.Flags().GetString(pinNetworkFlag)
		pin.Network = &v
	}
	if cmd.Flags().Changed(pinNethashFlag) {
		v, _ := cmd.Flags().GetString(pinNethashFlag)
		pin.Nethash = &v
	}
	return pin
}
