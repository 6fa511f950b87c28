package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func assetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets <asset-type-uid>",
		Short: "List the assets of one asset type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			c, err := selectedClient(logger)
			if err != nil {
				return err
			}
			assets, err := c.GetAssetsByAssetTypeUID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("assets: %w", err)
			}
			rows := make([][]string, 0, len(assets))
			for _, a := range assets {
				rows = append(rows, []string{a.Name, a.AssetUID, a.DisplayPath})
			}
			return writeListing(cmd, assets, []string{"Name", "UID", "Path"}, rows)
		},
	}
}
