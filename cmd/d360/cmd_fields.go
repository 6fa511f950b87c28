package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields <asset-type-uid>",
		Short: "List the custom fields of one asset type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			c, err := selectedClient(logger)
			if err != nil {
				return err
			}
			fields, err := c.GetFieldsByAssetTypeUID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("fields: %w", err)
			}
			rows := make([][]string, 0, len(fields))
			for _, f := range fields {
				rows = append(rows, []string{f.Name, f.FriendlyName, f.Category, string(f.Type.Kind())})
			}
			return writeListing(cmd, fields, []string{"Name", "Friendly name", "Category", "Kind"}, rows)
		},
	}
}
