package analyzer

import (
	"math"
	"sort"
)

// DefaultCostFactorsLimit bounds the ranked cost-factor list when the
// caller does not choose a limit.
const DefaultCostFactorsLimit = 5

const (
	defaultArchitecture1Name = "Architecture 1"
	defaultArchitecture2Name = "Architecture 2"
)

// Compare derives the cost delta between two completed analyses. The
// winner is determined by architecture identity, not argument position:
// Compare(a, b) and Compare(b, a) report the same more-expensive
// architecture, the same difference, and the same percentage.
func (a *Analyzer) Compare(first, second *Analysis, opts CompareOptions) *Comparison {
	name1 := architectureName(opts.Architecture1Name, first, defaultArchitecture1Name)
	name2 := architectureName(opts.Architecture2Name, second, defaultArchitecture2Name)

	limit := opts.CostFactorsLimit
	if limit == 0 {
		limit = DefaultCostFactorsLimit
	}

	cmp := &Comparison{
		Architecture1: ArchitectureSummary{
			Name:        name1,
			MonthlyCost: first.Costs.TotalMonthly,
			YearlyCost:  first.Costs.TotalYearly,
		},
		Architecture2: ArchitectureSummary{
			Name:        name2,
			MonthlyCost: second.Costs.TotalMonthly,
			YearlyCost:  second.Costs.TotalYearly,
		},
		BiggestCostFactors: FindBiggestCostFactors(first, second, name1, name2, limit),
	}

	total1 := first.Costs.TotalMonthly
	total2 := second.Costs.TotalMonthly

	// Equal totals, including zero against zero, are a tie: no winner,
	// difference and percentage exactly 0.
	if total1 != total2 {
		cmp.CostDifference = math.Abs(total1 - total2)
		cmp.PercentageDifference = percentageDifference(cmp.CostDifference, math.Min(total1, total2))

		if total1 > total2 {
			cmp.MoreExpensive = &cmp.Architecture1.Name
			cmp.LessExpensive = &cmp.Architecture2.Name
		} else {
			cmp.MoreExpensive = &cmp.Architecture2.Name
			cmp.LessExpensive = &cmp.Architecture1.Name
		}
	}

	a.logger.Info().
		Str("architecture_1", name1).
		Str("architecture_2", name2).
		Float64("cost_difference", cmp.CostDifference).
		Float64("percentage_difference", cmp.PercentageDifference).
		Msg("architectures compared")

	return cmp
}

// FindBiggestCostFactors flattens every (service, monthly cost) pair from
// both analyses, tags each with its owning architecture name, and returns
// them sorted by cost descending. The sort is stable: equal costs keep
// first-architecture-then-second order and the original per-architecture
// service order. A positive limit truncates the list; zero or negative
// means unbounded.
func FindBiggestCostFactors(first, second *Analysis, name1, name2 string, limit int) []CostFactor {
	factors := []CostFactor{}
	factors = appendFactors(factors, first, name1)
	factors = appendFactors(factors, second, name2)

	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].MonthlyCost > factors[j].MonthlyCost
	})

	if limit > 0 && len(factors) > limit {
		factors = factors[:limit]
	}
	return factors
}

func appendFactors(factors []CostFactor, analysis *Analysis, name string) []CostFactor {
	for _, service := range analysis.Services {
		cost, ok := analysis.Costs.Services[service]
		if !ok {
			continue
		}
		factors = append(factors, CostFactor{
			Service:      service,
			MonthlyCost:  cost.Monthly,
			Architecture: name,
		})
	}
	return factors
}

func architectureName(override string, analysis *Analysis, fallback string) string {
	if override != "" {
		return override
	}
	if analysis.Name != "" {
		return analysis.Name
	}
	return fallback
}

// percentageDifference expresses the cost delta relative to the cheaper
// total, rounded to two decimals. A zero baseline cannot be divided by,
// so the gap is reported as a flat 100% instead of +Inf, which would not
// survive JSON encoding.
func percentageDifference(diff, baseline float64) float64 {
	if baseline == 0 {
		return 100
	}
	return round2(diff / baseline * 100)
}

// round2 rounds to two decimal places, the documented precision of the
// percentage difference.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
