package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/pricing"
)

var (
	rootCmd = &cobra.Command{
		Use:   "cdkcost",
		Short: "Estimate and compare cloud architecture costs from CDK templates",
		Long: `cdkcost analyzes CloudFormation/CDK JSON templates without
provisioning anything: it classifies declared resources into billable
services, estimates usage, prices the result against a rate table, and
can compare two architectures side by side.`,
		SilenceUsage: true,
	}

	flagPricing string
	flagDebug   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPricing, "pricing", "", "Pricing table file (JSON or YAML); overrides built-in rates")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagDebug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// loadPricing resolves the rate table: the --pricing file when given,
// otherwise the embedded defaults.
func loadPricing(logger zerolog.Logger) (pricing.Table, error) {
	if flagPricing == "" {
		return pricing.Default(), nil
	}
	return pricing.LoadFile(flagPricing, logger)
}

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
