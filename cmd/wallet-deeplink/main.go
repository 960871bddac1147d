package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/config"
	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/deeplink"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// validation failures are already rendered as localized messages
		var verr *deeplink.ValidationError
		if !errors.As(err, &verr) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	// loaded once per invocation and shared with the subcommands
	cfg := config.Default()

	root := &cobra.Command{
		Use:           "wallet-deeplink",
		Short:         "Validate wallet deep links against a profile",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.FromEnv()
			if err != nil {
				return err
			}
			cfg = loaded
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	root.AddCommand(newValidateCmd(&cfg), newDraftCmd(&cfg), newNetworksCmd())
	return root
}
