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
	compareName1 string
	compareName2 string
	compareLimit int
	compareJSON  bool
)

var compareCmd = &cobra.Command{
	Use:   "compare <a.json> <b.json>",
	Short: "Compare the cost of two architectures",
	Example: `  cdkcost compare serverless.json containers.json
  cdkcost compare a.json b.json --name1 "Current" --name2 "Proposed" --limit 10`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareName1, "name1", "", "Display name for the first architecture")
	compareCmd.Flags().StringVar(&compareName2, "name2", "", "Display name for the second architecture")
	compareCmd.Flags().IntVar(&compareLimit, "limit", 0, "Max ranked cost factors (0 = default, negative = unbounded)")
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Print the raw comparison as JSON")
}

func runCompare(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	table, err := loadPricing(logger)
	if err != nil {
		return err
	}

	a := analyzer.New(table, logger)

	analyses := make([]*analyzer.Analysis, 2)
	for i, path := range args {
		data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}
		analyses[i], err = a.AnalyzeJSON(data, analyzer.AnalyzeOptions{})
		if err != nil {
			return err
		}
	}

	comparison := a.Compare(analyses[0], analyses[1], analyzer.CompareOptions{
		Architecture1Name: compareName1,
		Architecture2Name: compareName2,
		CostFactorsLimit:  compareLimit,
	})

	if compareJSON {
		out, err := json.MarshalIndent(comparison, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(report.Comparison(comparison))
	return nil
}
