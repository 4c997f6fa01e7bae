// Package main provides the storefront binary: a terminal shell around
// the catalog, cart, and checkout core for demoing the store without a
// web front end.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikolayk812/storefront-demo/internal/catalog"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		catalogPath string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Egyptian cotton tee storefront demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a catalog YAML file (default: embedded seed)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		catalogCmd(&catalogPath, &logLevel),
		translateCmd(),
		demoCmd(&catalogPath, &logLevel),
	)

	return cmd
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
