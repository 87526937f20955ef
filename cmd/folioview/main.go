package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raykavin/folioview"
	"github.com/raykavin/folioview/pkg/config"
	"github.com/raykavin/folioview/pkg/logger/zerolog"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

// Command line flags
var (
	configFile string
	baseURL    string
	port       int
	frequency  string
	debug      bool
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "folioview",
		Short:         "Portfolio evolution dashboard and benchmark comparison",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (e.g. ./folioview.yaml)")
	rootCmd.PersistentFlags().StringVarP(&baseURL, "api", "a", "", "Backend base URL (e.g. http://localhost:5000)")

	// Add commands
	rootCmd.AddCommand(buildServeCmd(), buildCompareCmd(), buildVersionCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard",
		RunE:  runServe,
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP port (default 8080)")
	serveCmd.Flags().StringVarP(&frequency, "frequency", "f", "", "Default frequency: daily, weekly or monthly")
	serveCmd.Flags().BoolVar(&debug, "debug", false, "Serve the page script unminified")

	return serveCmd
}

func buildCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Print the yearly benchmark comparison",
		RunE:  runCompare,
	}
}

func buildVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "folioview", version)
		},
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := initialize(cmd)
	if err != nil {
		return err
	}
	return app.Serve(cmd.Context())
}

func runCompare(cmd *cobra.Command, _ []string) error {
	app, err := initialize(cmd)
	if err != nil {
		return err
	}
	return app.Compare(cmd.Context(), cmd.OutOrStdout())
}

// initialize loads the configuration, applies the flags over it and
// builds the logger.
func initialize(cmd *cobra.Command) (*folioview.Folioview, error) {
	v := config.New()

	flags := map[string]string{
		"api":       "api.base_url",
		"port":      "server.port",
		"frequency": "charts.frequency",
		"debug":     "server.debug",
	}
	for flag, key := range flags {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, err
			}
		}
	}

	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}

	log, err := zerolog.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	return folioview.New(cfg, folioview.WithLogger(zerolog.NewAdapter(log))), nil
}
