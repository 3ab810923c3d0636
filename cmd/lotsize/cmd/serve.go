package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/config"
	"github.com/rustyeddy/lotsize/metrics"
	"github.com/rustyeddy/lotsize/prefs"
	"github.com/rustyeddy/lotsize/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web calculator",
	Long: `Serve the calculator form, the JSON API and metrics over HTTP.

Settings come from the config file, then from the environment
(LOTSIZE_ADDR, LOTSIZE_PREFS_DB, LOTSIZE_DEFAULT_LANG, optionally loaded
from a .env file), then from flags.

Examples:
  lotsize serve
  lotsize serve --addr :9090
  lotsize serve -c lotsize.yaml --env-file prod.env`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveAddr    string
	serveEnvFile string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveEnvFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(serveEnvFile); err != nil {
		return err
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	logger, err := newLogger(debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync()

	store, err := openStore(cfg.Prefs)
	if err != nil {
		return err
	}
	defer store.Close()

	var m *metrics.Metrics
	if !cfg.Server.DisableMetrics {
		m = metrics.New()
	}

	srv, err := web.NewServer(web.Options{
		Config:  cfg,
		Store:   store,
		Metrics: m,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("lotsize ready",
		zap.String("addr", cfg.Server.Addr),
		zap.String("prefs", cfg.Prefs.Type),
		zap.String("delay", cfg.Server.CalculationDelay),
		zap.Int("instruments", len(cfg.Instruments)))

	return srv.Run(ctx)
}

func openStore(cfg config.PrefsConfig) (prefs.Store, error) {
	if cfg.Type == "sqlite" {
		s, err := prefs.NewSQLite(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open prefs db: %w", err)
		}
		return s, nil
	}
	return prefs.NewMemory(), nil
}
