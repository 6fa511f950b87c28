package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/LuciusCaesar/D360-Client/internal/catalog"
	"github.com/LuciusCaesar/D360-Client/internal/config"
	"github.com/LuciusCaesar/D360-Client/internal/report"
)

const (
	instanceSource      = "source"
	instanceDestination = "destination"
)

var (
	cfg      *config.Config
	instance string
	format   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "d360",
		Short: "d360 compares and migrates Data360 catalog meta-models",
		Long:  "d360 reads the meta-model of a source and a destination Data360 instance and reports what the destination is missing.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&instance, "instance", "i", instanceSource, "catalog instance to query (source or destination)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", string(report.FormatTable), "output format (table, text, json or yaml)")

	rootCmd.AddCommand(
		classesCmd(),
		typesCmd(),
		assetsCmd(),
		fieldsCmd(),
		diffCmd(),
		driftCmd(),
		copyFieldsCmd(),
		healthCmd(),
		serveCmd(),
		mcpCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && (cfg.Debug || cfg.Logging.Level == "debug") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newClient(e config.Endpoint, logger *slog.Logger) *catalog.Client {
	return catalog.NewFromEndpoint(e,
		catalog.WithTimeout(cfg.HTTP.Timeout),
		catalog.WithLogger(logger),
	)
}

func newSource(logger *slog.Logger) *catalog.Client {
	return newClient(cfg.Source, logger.With("instance", instanceSource))
}

func newDestination(logger *slog.Logger) *catalog.Client {
	return newClient(cfg.Destination, logger.With("instance", instanceDestination))
}

// selectedClient returns the client named by --instance.
func selectedClient(logger *slog.Logger) (*catalog.Client, error) {
	switch instance {
	case instanceSource:
		return newSource(logger), nil
	case instanceDestination:
		return newDestination(logger), nil
	}
	return nil, fmt.Errorf("unknown instance %q (want source or destination)", instance)
}

func outputFormat() (report.Format, error) {
	return report.ParseFormat(format)
}

// writeListing prints rows as a table for table/text and v for json/yaml.
func writeListing(cmd *cobra.Command, v any, header []string, rows [][]string) error {
	f, err := outputFormat()
	if err != nil {
		return err
	}
	switch f {
	case report.FormatJSON, report.FormatYAML:
		return report.WriteValue(cmd.OutOrStdout(), v, f)
	}
	return report.WriteTable(cmd.OutOrStdout(), header, rows)
}
