package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func classesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the asset classes of an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			c, err := selectedClient(logger)
			if err != nil {
				return err
			}
			classes, err := c.GetAssetClasses(cmd.Context())
			if err != nil {
				return fmt.Errorf("classes: %w", err)
			}
			rows := make([][]string, 0, len(classes))
			for _, cl := range classes {
				rows = append(rows, []string{string(cl.Value), cl.Name, strconv.FormatBool(cl.AllowCommentsOnAsset)})
			}
			return writeListing(cmd, classes, []string{"Value", "Name", "Comments"}, rows)
		},
	}
}
