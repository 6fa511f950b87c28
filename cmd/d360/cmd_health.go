package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that both catalog instances answer with the configured credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			checks := []struct {
				name   string
				probe  func(context.Context) error
				target string
			}{
				{instanceSource, func(ctx context.Context) error {
					_, err := newSource(logger).GetAssetClasses(ctx)
					return err
				}, cfg.Source.URL},
				{instanceDestination, func(ctx context.Context) error {
					_, err := newDestination(logger).GetAssetClasses(ctx)
					return err
				}, cfg.Destination.URL},
			}

			failed := 0
			for _, c := range checks {
				if err := c.probe(ctx); err != nil {
					failed++
					_, _ = fmt.Fprintf(out, "%-12s %s  %s: %v\n", c.name, color.RedString("FAIL"), c.target, err)
					continue
				}
				_, _ = fmt.Fprintf(out, "%-12s %s  %s\n", c.name, color.GreenString("OK"), c.target)
			}
			if failed > 0 {
				return fmt.Errorf("health: %d of %d instances unreachable", failed, len(checks))
			}
			return nil
		},
	}
}
