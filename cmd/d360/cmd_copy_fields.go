package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuciusCaesar/D360-Client/internal/migrate"
	"github.com/LuciusCaesar/D360-Client/internal/report"
)

func copyFieldsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "copy-fields",
		Short: "Print the fields of one asset type re-pointed at another",
		Long: `Reads the fields of --from on the selected instance and prints them with
AssetTypeUid set to --to and their Id removed, ready to be created on the
destination. Nothing is written to either catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if from == "" || to == "" {
				return errors.New("copy-fields: --from and --to are required")
			}
			f, err := outputFormat()
			if err != nil {
				return err
			}
			if f != report.FormatYAML {
				f = report.FormatJSON
			}

			logger := newLogger()
			c, err := selectedClient(logger)
			if err != nil {
				return err
			}
			fields, err := c.GetFieldsByAssetTypeUID(cmd.Context(), from)
			if err != nil {
				return fmt.Errorf("copy-fields: %w", err)
			}
			copies, err := migrate.CopyFields(fields, to)
			if err != nil {
				return fmt.Errorf("copy-fields: %w", err)
			}
			logger.Info("fields retargeted", "count", len(copies), "from", from, "to", to)
			return report.WriteValue(cmd.OutOrStdout(), copies, f)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "asset type uid to copy fields from")
	cmd.Flags().StringVar(&to, "to", "", "asset type uid the copies should belong to")
	return cmd
}
