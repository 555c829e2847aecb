package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio.dev/internal/config"
	"folio.dev/internal/content"
	"folio.dev/internal/render"
	"folio.dev/internal/services"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio site renderer",
	Long: `folio serves a portfolio site whose projects, education, experience and
project detail pages are rendered from static JSON records into HTML page shells.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv(".env")
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads and validates the configuration and installs the logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	config.SetupLog(cfg, os.Stderr)
	return cfg, nil
}

// newServices opens the configured content source
func newServices(cfg *config.Config) (*services.ProjectService, *services.TimelineService, error) {
	src, err := content.Open(cfg.SiteDir, cfg.RemoteBase, cfg.FetchTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("opening content source: %w", err)
	}
	return services.NewProjectService(src), services.NewTimelineService(src), nil
}

func newRenderer(cfg *config.Config) (*render.Renderer, error) {
	ps, ts, err := newServices(cfg)
	if err != nil {
		return nil, err
	}
	return render.New(ps, ts, nil), nil
}
