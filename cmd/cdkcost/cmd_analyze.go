package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/analyzer"
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/report"
)

var (
	analyzeName            string
	analyzeIncludeTemplate bool
	analyzeJSON            bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <template.json>",
	Short: "Analyze the monthly cost of one architecture",
	Example: `  cdkcost analyze stack.json
  cdkcost analyze stack.json --name "Serverless v2" --json
  cdkcost analyze stack.json --pricing rates.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "Override the architecture display name")
	analyzeCmd.Flags().BoolVar(&analyzeIncludeTemplate, "include-template", false, "Attach the raw template to JSON output")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw analysis as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	table, err := loadPricing(logger)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- path is intentional user input
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	a := analyzer.New(table, logger)
	analysis, err := a.AnalyzeJSON(data, analyzer.AnalyzeOptions{
		Name:            analyzeName,
		IncludeTemplate: analyzeIncludeTemplate,
	})
	if err != nil {
		return err
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(report.Analysis(analysis))
	return nil
}
