package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid template",
			input: `{"Description":"demo","Resources":{"Fn":{"Type":"AWS::Lambda::Function"}}}`,
		},
		{
			name:  "empty document",
			input: `{}`,
		},
		{
			name:    "not JSON",
			input:   `resources: []`,
			wantErr: true,
		},
		{
			name:    "wrong shape",
			input:   `{"Resources":"nope"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := Parse([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tpl)
		})
	}
}

func TestParsePopulatesLogicalIDs(t *testing.T) {
	tpl, err := Parse([]byte(`{"Resources":{"MyFn":{"Type":"AWS::Lambda::Function"}}}`))
	require.NoError(t, err)
	assert.Equal(t, "MyFn", tpl.Resources["MyFn"].LogicalID)
}

func TestStackName(t *testing.T) {
	tests := []struct {
		name     string
		tpl      Template
		override string
		want     string
	}{
		{
			name:     "override wins over description",
			tpl:      Template{Description: "From description"},
			override: "Explicit",
			want:     "Explicit",
		},
		{
			name: "description wins over metadata",
			tpl: Template{
				Description: "From description",
				Metadata:    map[string]any{"StackName": "From metadata"},
			},
			want: "From description",
		},
		{
			name: "metadata StackName",
			tpl:  Template{Metadata: map[string]any{"StackName": "From metadata"}},
			want: "From metadata",
		},
		{
			name: "metadata cdk stack name",
			tpl:  Template{Metadata: map[string]any{"aws:cdk:stack-name": "CdkStack"}},
			want: "CdkStack",
		},
		{
			name: "non-string metadata ignored",
			tpl:  Template{Metadata: map[string]any{"StackName": 42}},
			want: FallbackStackName,
		},
		{
			name: "fallback",
			tpl:  Template{},
			want: FallbackStackName,
		},
		{
			name: "blank description falls through",
			tpl:  Template{Description: "   "},
			want: FallbackStackName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tpl.StackName(tt.override))
		})
	}
}

func TestResourceGroups(t *testing.T) {
	tpl := &Template{Resources: map[string]Resource{
		"FnB":      {LogicalID: "FnB", Type: "AWS::Lambda::Function"},
		"FnA":      {LogicalID: "FnA", Type: "AWS::Lambda::Function"},
		"Bucket":   {LogicalID: "Bucket", Type: "AWS::S3::Bucket"},
		"Untyped":  {LogicalID: "Untyped"},
		"Untyped2": {LogicalID: "Untyped2", Properties: map[string]any{"x": 1}},
	}}

	groups := tpl.ResourceGroups()

	require.Len(t, groups, 2)
	require.Len(t, groups["AWS::Lambda::Function"], 2)
	// Deterministic per-type ordering by logical id.
	assert.Equal(t, "FnA", groups["AWS::Lambda::Function"][0].LogicalID)
	assert.Equal(t, "FnB", groups["AWS::Lambda::Function"][1].LogicalID)
	assert.Len(t, groups["AWS::S3::Bucket"], 1)
}

func TestResourceGroupsEmptyTemplate(t *testing.T) {
	tpl := &Template{}
	assert.Empty(t, tpl.ResourceGroups())
	assert.Empty(t, tpl.ResourceTypes())
	assert.Zero(t, tpl.TotalResources())
}

func TestResourceCountsSumToTotal(t *testing.T) {
	tpl := &Template{Resources: map[string]Resource{
		"A": {Type: "AWS::Lambda::Function"},
		"B": {Type: "AWS::Lambda::Function"},
		"C": {Type: "AWS::S3::Bucket"},
		"D": {Type: "AWS::DynamoDB::Table"},
		"E": {}, // untyped, excluded everywhere
	}}

	counts := tpl.ResourceCounts()

	sum := 0
	for _, n := range counts {
		sum += n
	}
	assert.Equal(t, tpl.TotalResources(), sum)
	assert.Equal(t, 4, sum)
	assert.NotContains(t, counts, "")
}
