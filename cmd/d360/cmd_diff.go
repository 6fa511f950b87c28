package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/LuciusCaesar/D360-Client/internal/metamodel"
	"github.com/LuciusCaesar/D360-Client/internal/reconcile"
	"github.com/LuciusCaesar/D360-Client/internal/report"
)

func diffCmd() *cobra.Command {
	var includeAssets bool

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show what the destination is missing and what it has in excess",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := outputFormat()
			if err != nil {
				return err
			}
			logger := newLogger()
			target, current, err := loadSnapshots(cmd, logger, includeAssets)
			if err != nil {
				return err
			}
			d := reconcile.Compute(target, current)
			logger.Info("diff computed", "summary", d.Summary())
			return report.WriteDiff(cmd.OutOrStdout(), d, f)
		},
	}

	cmd.Flags().BoolVar(&includeAssets, "assets", false, "also compare assets (one request per asset type)")
	return cmd
}

// loadSnapshots reads the source as the target and the destination as the current state.
func loadSnapshots(cmd *cobra.Command, logger *slog.Logger, includeAssets bool) (target, current metamodel.MetaModel, err error) {
	target, err = metamodel.Load(cmd.Context(), newSource(logger), includeAssets)
	if err != nil {
		return target, current, fmt.Errorf("loading source meta-model: %w", err)
	}
	current, err = metamodel.Load(cmd.Context(), newDestination(logger), includeAssets)
	if err != nil {
		return target, current, fmt.Errorf("loading destination meta-model: %w", err)
	}
	return target, current, nil
}
