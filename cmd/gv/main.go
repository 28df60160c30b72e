// Command gv is a terminal dashboard for Shaanxi's regional economy.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/econlens/gdp_viewer/pkg/catalog"
	"github.com/econlens/gdp_viewer/pkg/config"
	"github.com/econlens/gdp_viewer/pkg/schedule"
	"github.com/econlens/gdp_viewer/pkg/ui"
	"github.com/econlens/gdp_viewer/pkg/viewmodel"
)

var version = "dev"

type rootOptions struct {
	configPath  string
	catalogPath string
	logFile     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "gv",
		Short:         "Browse Shaanxi's regional GDP in the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDashboard(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "path to the YAML config file")
	pf.StringVar(&opts.catalogPath, "catalog", "", "catalog YAML replacing the built-in dataset")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file")

	root.AddCommand(newExportCmd(opts), newCatalogCmd(opts))
	return root
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gv", "config.yaml")
}

// env is what every subcommand starts from.
type env struct {
	cfg    config.Config
	cat    *catalog.Catalog
	logger zerolog.Logger
	close  func()
}

// setup loads config, opens the log and loads the catalog. Flags win over
// the config file and environment.
func setup(opts *rootOptions) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.catalogPath != "" {
		cfg.Catalog = opts.catalogPath
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	var cat *catalog.Catalog
	if cfg.Catalog != "" {
		cat, err = catalog.Load(cfg.Catalog)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Debug().Str("config", opts.configPath).Msg("config loaded")
	logger.Debug().Int("cities", cat.Len()).Str("source", cfg.Catalog).Msg("catalog loaded")

	return &env{cfg: cfg, cat: cat, logger: logger, close: closeLog}, nil
}

// newLogger logs to the configured file. Without one logging is disabled,
// since stdout belongs to the dashboard.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("log level: %w", err)
	}
	if cfg.LogFile == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

func runDashboard(ctx context.Context, opts *rootOptions) error {
	e, err := setup(opts)
	if err != nil {
		return err
	}
	defer e.close()

	clock := schedule.NewClock(64)
	defer clock.Stop()

	m, err := ui.NewModel(ui.Options{
		Catalog: e.cat,
		ViewModel: viewmodel.Options{
			Palette:         viewmodel.Palette(e.cfg.Palette),
			Loading:         e.cfg.LoadingOptions(),
			ScrollThreshold: e.cfg.Scroll.Threshold,
			Logger:          e.logger,
		},
		Clock:       clock,
		ScrollFrame: e.cfg.Scroll.Frame,
		Logger:      e.logger,
	})
	if err != nil {
		return err
	}

	e.logger.Info().Str("version", version).Msg("dashboard starting")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}
