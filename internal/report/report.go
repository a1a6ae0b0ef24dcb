// Package report renders analyses and comparisons as plain-text reports.
// Rendering is pure string building; writing the result anywhere is the
// caller's concern.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/analyzer"
)

// Analysis renders one architecture analysis.
func Analysis(a *analyzer.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Architecture: %s\n", a.Name)
	fmt.Fprintf(&b, "Resources: %d across %d services\n\n", a.TotalResources, len(a.Services))

	tw := table.Table{}
	tw.AppendHeader(table.Row{"Service", "Monthly", "Yearly"})
	for _, service := range a.Services {
		cost := a.Costs.Services[service]
		tw.AppendRow(table.Row{service, money(cost.Monthly), money(cost.Yearly)})
	}
	tw.AppendFooter(table.Row{"Total", money(a.Costs.TotalMonthly), money(a.Costs.TotalYearly)})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	b.WriteString(tw.Render())
	b.WriteString("\n")

	return b.String()
}

// Comparison renders the delta between two architectures.
func Comparison(c *analyzer.Comparison) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s/month\n", c.Architecture1.Name, money(c.Architecture1.MonthlyCost))
	fmt.Fprintf(&b, "%s: %s/month\n", c.Architecture2.Name, money(c.Architecture2.MonthlyCost))

	if c.MoreExpensive == nil {
		b.WriteString("Both architectures cost the same.\n")
	} else {
		fmt.Fprintf(&b, "%s is more expensive by %s/month (%.2f%%)\n",
			*c.MoreExpensive, money(c.CostDifference), c.PercentageDifference)
	}

	if len(c.BiggestCostFactors) > 0 {
		b.WriteString("\nBiggest cost factors:\n")
		tw := table.Table{}
		tw.AppendHeader(table.Row{"#", "Service", "Architecture", "Monthly"})
		for i, factor := range c.BiggestCostFactors {
			tw.AppendRow(table.Row{i + 1, factor.Service, factor.Architecture, money(factor.MonthlyCost)})
		}
		tw.SetStyle(table.StyleRounded)
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 4, Align: text.AlignRight},
		})
		b.WriteString(tw.Render())
		b.WriteString("\n")
	}

	return b.String()
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
