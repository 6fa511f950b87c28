package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuciusCaesar/D360-Client/internal/models"
)

func typesCmd() *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the asset types of an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			c, err := selectedClient(logger)
			if err != nil {
				return err
			}

			var filter *models.AssetClassName
			if class != "" {
				n, parseErr := models.ParseAssetClassName(class)
				if parseErr != nil {
					return parseErr
				}
				filter = &n
			}

			types, err := c.GetAssetTypes(cmd.Context(), filter)
			if err != nil {
				return fmt.Errorf("types: %w", err)
			}
			rows := make([][]string, 0, len(types))
			for _, t := range types {
				rows = append(rows, []string{t.Name, t.UID, string(t.Class.Value)})
			}
			return writeListing(cmd, types, []string{"Name", "UID", "Class"}, rows)
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "only list asset types of this class")
	return cmd
}
