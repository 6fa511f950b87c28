package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LuciusCaesar/D360-Client/internal/reconcile"
	"github.com/LuciusCaesar/D360-Client/internal/report"
)

func driftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drift",
		Short: "Show asset types whose definition differs between source and destination",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat()
			if err != nil {
				return err
			}
			logger := newLogger()
			target, current, err := loadSnapshots(cmd, logger, false)
			if err != nil {
				return err
			}
			drift, err := reconcile.Drift(target, current)
			if err != nil {
				return fmt.Errorf("drift: %w", err)
			}
			return report.WriteDrift(cmd.OutOrStdout(), drift, f)
		},
	}
}
