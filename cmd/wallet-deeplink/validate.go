package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/config"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/deeplink"
)

func newValidateCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <url>",
		Short: "Validate a deep link and print the page it navigates to",
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
			fmt.Fprintln(cmd.OutOrStdout(), p.validator.PathFor(req, deeplink.NavigationContext{ProfileID: cfg.ProfileID}))
			return nil
		},
	}
	addPinFlags(cmd)
	return cmd
}
