package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "lotsize",
	Short: "Forex position size calculator",
	Long: `Lotsize works out how many lots to trade so that hitting the stop loss
costs exactly the amount you chose to risk.

It provides:
  - A one-shot calculator on the command line
  - A localized (en/fr), theme-aware web form
  - A small JSON API and Prometheus metrics

Example:
  lotsize calc --balance 10000 --risk 1 --stop-loss 50 --instrument XAUUSD`,
	SilenceUsage: true,
}

var (
	cfgFile string
	debug   bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON); built-in defaults when empty")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "development logging")
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	return cfg.Build()
}
