package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/olehkaliuzhnyi/wallet-deeplink/internal/network"
)

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks a deep link may name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]string, 0, len(network.Known))
			for id := range network.Known {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				d := network.Known[id]
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", d.ID, d.Coin, d.Nethash)
			}
			return nil
		},
	}
}
