// Package analyzer implements the cost-analysis pipeline: resource
// classification, usage estimation, cost calculation, and architecture
// comparison. Each analysis run is stateless with respect to any other
// run; an Analyzer may serve concurrent analyses because the rate table
// and usage defaults are read-only for its lifetime.
package analyzer

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/pricing"
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/template"
)

// Analyzer runs the analysis pipeline against an injected rate table and
// usage default set.
type Analyzer struct {
	pricing  pricing.Table
	defaults UsageDefaults
	logger   zerolog.Logger // logger is immutable (copy-on-write)
}

// New returns an Analyzer with the standard usage defaults.
func New(table pricing.Table, logger zerolog.Logger) *Analyzer {
	return NewWithDefaults(table, DefaultUsage(), logger)
}

// NewWithDefaults returns an Analyzer with a caller-supplied default
// assumption set. Used by tests to pin fixture defaults.
func NewWithDefaults(table pricing.Table, defaults UsageDefaults, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		pricing:  table,
		defaults: defaults,
		logger:   logger,
	}
}

// Analyze runs the full pipeline over a parsed template: classify
// resources into services, estimate per-service usage, and price the
// profile. The returned Analysis is a deterministic function of the
// template and options.
func (a *Analyzer) Analyze(tpl *template.Template, opts AnalyzeOptions) *Analysis {
	start := time.Now()
	runID := uuid.New().String()

	classified := classify(tpl)

	profile := make(Profile, len(classified.services))
	for _, service := range classified.services {
		profile[service] = a.estimateUsage(
			service,
			classified.resourcesFor(service),
			opts.UsageAssumptions[service],
		)
	}

	analysis := &Analysis{
		Name:           tpl.StackName(opts.Name),
		ResourceCounts: tpl.ResourceCounts(),
		TotalResources: tpl.TotalResources(),
		Services:       classified.services,
		Usage:          profile,
		Costs:          a.calculateCosts(profile),
	}
	if opts.IncludeTemplate {
		analysis.Template = tpl
	}

	a.logger.Info().
		Str("run_id", runID).
		Str("stack", analysis.Name).
		Int("resources", analysis.TotalResources).
		Int("services", len(analysis.Services)).
		Float64("monthly_cost", analysis.Costs.TotalMonthly).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("architecture analyzed")

	return analysis
}

// AnalyzeJSON parses raw template bytes and analyzes them.
func (a *Analyzer) AnalyzeJSON(data []byte, opts AnalyzeOptions) (*Analysis, error) {
	tpl, err := template.Parse(data)
	if err != nil {
		return nil, err
	}
	return a.Analyze(tpl, opts), nil
}

// Run fetches a template by name from the supplier and analyzes it,
// folding not-found and parse failures into the Result envelope. Callers
// always receive a structured result they can inspect; nothing is thrown
// across the pipeline boundary.
func (a *Analyzer) Run(supplier template.Supplier, name string, opts AnalyzeOptions) *Result {
	data, err := supplier.Fetch(name)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			return failure(fmt.Sprintf("template %q not found", name))
		}
		return failure(err.Error())
	}

	analysis, err := a.AnalyzeJSON(data, opts)
	if err != nil {
		return failure(fmt.Sprintf("template %q could not be parsed: %v", name, err))
	}

	return &Result{Success: true, Analysis: analysis}
}

func failure(msg string) *Result {
	return &Result{Success: false, Error: msg}
}
