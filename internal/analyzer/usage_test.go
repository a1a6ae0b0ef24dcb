package analyzer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/pricing"
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/template"
)

func testAnalyzer() *Analyzer {
	return New(pricing.Default(), zerolog.Nop())
}

func TestEstimateUsageFunctionDefaults(t *testing.T) {
	a := testAnalyzer()
	resources := []template.Resource{{Type: "AWS::Lambda::Function"}}

	usage := a.estimateUsage(ServiceLambda, resources, nil)

	d := DefaultUsage()
	assert.Equal(t, d.FunctionRequests, usage.Float(keyMonthlyRequests))
	assert.Equal(t, d.FunctionMemoryMB, usage.Float(keyMemoryMB))
	assert.Equal(t, d.FunctionDurationMs, usage.Float(keyDurationMs))
	assert.Equal(t, 1.0, usage.Float(keyFunctionCount))
}

func TestEstimateUsageFunctionDeclaredMemoryWins(t *testing.T) {
	a := testAnalyzer()
	resources := []template.Resource{{
		Type:       "AWS::Lambda::Function",
		Properties: map[string]any{"MemorySize": 512.0},
	}}

	usage := a.estimateUsage(ServiceLambda, resources, nil)

	assert.Equal(t, 512.0, usage.Float(keyMemoryMB))
	// Other keys keep their defaults.
	assert.Equal(t, DefaultUsage().FunctionRequests, usage.Float(keyMonthlyRequests))
}

func TestEstimateUsageOverridesWinOverDeclared(t *testing.T) {
	a := testAnalyzer()
	resources := []template.Resource{{
		Type:       "AWS::Lambda::Function",
		Properties: map[string]any{"MemorySize": 512.0},
	}}
	overrides := Assumptions{keyMemoryMB: 2048.0}

	usage := a.estimateUsage(ServiceLambda, resources, overrides)

	assert.Equal(t, 2048.0, usage.Float(keyMemoryMB))
	// Keys absent from the override retain computed values.
	assert.Equal(t, DefaultUsage().FunctionDurationMs, usage.Float(keyDurationMs))
}

func TestEstimateUsageObjectStorage(t *testing.T) {
	a := testAnalyzer()
	resources := []template.Resource{
		{Type: "AWS::S3::Bucket"},
		{Type: "AWS::S3::Bucket"},
	}

	usage := a.estimateUsage(ServiceS3, resources, nil)

	assert.Equal(t, 2.0, usage.Float(keyBucketCount))
	assert.Equal(t, DefaultUsage().StorageGB, usage.Float(keyStorageGB))
	assert.Equal(t, DefaultUsage().StorageRequests, usage.Float(keyMonthlyRequests))
}

func TestEstimateUsageTableDeclaredThroughput(t *testing.T) {
	a := testAnalyzer()

	tests := []struct {
		name     string
		props    map[string]any
		wantRCU  float64
		wantWCU  float64
	}{
		{
			name: "declared throughput",
			props: map[string]any{
				"ProvisionedThroughput": map[string]any{
					"ReadCapacityUnits":  25.0,
					"WriteCapacityUnits": 10.0,
				},
			},
			wantRCU: 25,
			wantWCU: 10,
		},
		{
			name:    "no throughput block falls back to defaults",
			props:   map[string]any{"BillingMode": "PAY_PER_REQUEST"},
			wantRCU: DefaultUsage().TableReadCapacity,
			wantWCU: DefaultUsage().TableWriteCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources := []template.Resource{{Type: "AWS::DynamoDB::Table", Properties: tt.props}}
			usage := a.estimateUsage(ServiceDynamoDB, resources, nil)
			assert.Equal(t, tt.wantRCU, usage.Float(keyReadCapacity))
			assert.Equal(t, tt.wantWCU, usage.Float(keyWriteCapacity))
		})
	}
}

func TestEstimateUsageInstance(t *testing.T) {
	a := testAnalyzer()
	resources := []template.Resource{
		{Type: "AWS::EC2::Instance", Properties: map[string]any{"InstanceType": "m5.large"}},
		{Type: "AWS::EC2::Instance"},
	}

	usage := a.estimateUsage(ServiceEC2, resources, nil)

	assert.Equal(t, 2.0, usage.Float(keyInstanceCount))
	assert.Equal(t, "m5.large", usage.String(keyInstanceType))
	assert.Equal(t, hoursPerMonth, usage.Float(keyHoursPerMonth))
}

func TestEstimateUsageRDSInstanceClass(t *testing.T) {
	a := testAnalyzer()
	resources := []template.Resource{{
		Type:       "AWS::RDS::DBInstance",
		Properties: map[string]any{"DBInstanceClass": "db.t3.medium"},
	}}

	usage := a.estimateUsage(ServiceRDS, resources, nil)

	assert.Equal(t, "db.t3.medium", usage.String(keyInstanceType))
}

func TestEstimateUsageGenericFallback(t *testing.T) {
	a := testAnalyzer()
	resources := []template.Resource{{Type: "AWS::Glue::Job"}}

	usage := a.estimateUsage("Glue", resources, nil)

	require.NotEmpty(t, usage)
	assert.Equal(t, DefaultUsage().GenericRequests, usage.Float(keyMonthlyRequests))
	assert.Equal(t, DefaultUsage().GenericStorageGB, usage.Float(keyStorageGB))
}

func TestMergeAssumptions(t *testing.T) {
	base := Assumptions{"a": 1.0, "b": 2.0, "c": 3.0}
	derived := Assumptions{"b": 20.0}
	override := Assumptions{"c": 300.0, "d": 4.0}

	merged := mergeAssumptions(base, derived, override)

	assert.Equal(t, 1.0, merged.Float("a"))
	assert.Equal(t, 20.0, merged.Float("b"))
	assert.Equal(t, 300.0, merged.Float("c"))
	assert.Equal(t, 4.0, merged.Float("d"))

	// Shallow per-key merge never mutates its inputs.
	assert.Equal(t, 3.0, base.Float("c"))
	assert.Len(t, derived, 1)
}

func TestAssumptionsAccessors(t *testing.T) {
	usage := Assumptions{
		"float":  1.5,
		"int":    2,
		"string": "t3.micro",
	}

	assert.Equal(t, 1.5, usage.Float("float"))
	assert.Equal(t, 2.0, usage.Float("int"))
	assert.Zero(t, usage.Float("missing"))
	assert.Zero(t, usage.Float("string"))
	assert.Equal(t, "t3.micro", usage.String("string"))
	assert.Empty(t, usage.String("float"))
}
