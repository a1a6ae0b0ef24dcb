package analyzer

import (
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/template"
)

// Assumptions is one service's usage profile: the consumption quantities
// that feed cost computation. Values are float64 for numeric quantities
// and string for symbolic ones (instance type). Recognized keys:
//
//	monthlyRequests, avgMemoryMB, avgDurationMs, functionCount,
//	bucketCount, storageGB, readCapacityUnits, writeCapacityUnits,
//	instanceCount, instanceType, hoursPerMonth
type Assumptions map[string]any

// Float returns the numeric value for key, tolerating the types JSON
// decoding produces. Missing or non-numeric keys return 0.
func (a Assumptions) Float(key string) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// String returns the string value for key, or empty when missing.
func (a Assumptions) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Profile maps canonical service names to their usage assumptions.
type Profile map[string]Assumptions

// ServiceCost is the computed cost for one service.
type ServiceCost struct {
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

// CostEstimate is the computed cost for a whole architecture. The total is
// always the sum of the per-service monthly costs; yearly figures are
// exactly twelve times their monthly counterparts.
type CostEstimate struct {
	Currency     string                 `json:"currency"`
	Services     map[string]ServiceCost `json:"services"`
	TotalMonthly float64                `json:"totalMonthly"`
	TotalYearly  float64                `json:"totalYearly"`
}

// Analysis is the complete cost analysis of one template. It is an
// immutable result value, safe to serialize to any wire or document
// format.
type Analysis struct {
	Name           string             `json:"stackName"`
	ResourceCounts map[string]int     `json:"resourceCounts"`
	TotalResources int                `json:"totalResources"`
	Services       []string           `json:"services"`
	Usage          Profile            `json:"usageAssumptions"`
	Costs          CostEstimate       `json:"costs"`
	Template       *template.Template `json:"template,omitempty"`
}

// Result is the envelope returned at the pipeline boundary. Failures to
// locate or parse a template are reported here as a flag plus message,
// never as a panic or an error escaping the tool boundary.
type Result struct {
	Success  bool      `json:"success"`
	Error    string    `json:"error,omitempty"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

// ArchitectureSummary names one side of a comparison with its totals.
type ArchitectureSummary struct {
	Name        string  `json:"name"`
	MonthlyCost float64 `json:"monthlyCost"`
	YearlyCost  float64 `json:"yearlyCost"`
}

// CostFactor is one (service, cost, architecture) triple in the ranked
// cost-factor list of a comparison.
type CostFactor struct {
	Service      string  `json:"service"`
	MonthlyCost  float64 `json:"monthlyCost"`
	Architecture string  `json:"architecture"`
}

// Comparison is the derived delta between two analyses. When the two
// totals are equal (including zero against zero) the difference and
// percentage are exactly 0 and both winner fields are nil: a tie has no
// winner.
type Comparison struct {
	Architecture1        ArchitectureSummary `json:"architecture1"`
	Architecture2        ArchitectureSummary `json:"architecture2"`
	CostDifference       float64             `json:"costDifference"`
	PercentageDifference float64             `json:"percentageDifference"`
	MoreExpensive        *string             `json:"moreExpensive"`
	LessExpensive        *string             `json:"lessExpensive"`
	BiggestCostFactors   []CostFactor        `json:"biggestCostFactors"`
}

// AnalyzeOptions carries the caller-controlled knobs of a single analysis.
type AnalyzeOptions struct {
	// Name overrides the stack name derived from the template.
	Name string

	// UsageAssumptions are per-service overrides applied on top of the
	// defaults and resource-derived values; every key present replaces
	// the computed value for that key only.
	UsageAssumptions map[string]Assumptions

	// IncludeTemplate attaches the raw template to the result. Off by
	// default since templates can be large.
	IncludeTemplate bool
}

// CompareOptions carries the caller-controlled knobs of a comparison.
type CompareOptions struct {
	Architecture1Name string
	Architecture2Name string

	// CostFactorsLimit truncates the ranked cost-factor list. Zero means
	// the default limit; a negative value disables truncation.
	CostFactorsLimit int
}
