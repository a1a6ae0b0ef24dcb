package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/analyzer"
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/pricing"
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/template"
)

func main() {
	cfg := LoadConfig()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel()).
		With().Timestamp().Logger()

	table := pricing.Default()
	if cfg.PricingFile != "" {
		loaded, err := pricing.LoadFile(cfg.PricingFile, logger)
		if err != nil {
			logger.Fatal().Err(err).Str("path", cfg.PricingFile).Msg("failed to load pricing file")
		}
		table = loaded
	}

	a := analyzer.New(table, logger)
	supplier := template.NewFileSupplier(cfg.TemplateDir)

	s := server.NewMCPServer(
		"cdk-cost-analyzer",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	RegisterTools(s, a, supplier)

	logger.Info().Str("template_dir", cfg.TemplateDir).Msg("serving on stdio")

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
