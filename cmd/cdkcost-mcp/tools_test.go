package main

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/analyzer"
)

func TestParseUsageOverrides(t *testing.T) {
	raw := map[string]any{
		"Lambda": map[string]any{"monthlyRequests": float64(5000000)},
		"S3":     map[string]any{"storageGB": float64(250)},
		"bogus":  "not a map",
	}

	overrides := parseUsageOverrides(raw)

	require.Len(t, overrides, 2)
	assert.Equal(t, float64(5000000), overrides["Lambda"].Float("monthlyRequests"))
	assert.Equal(t, 250.0, overrides["S3"].Float("storageGB"))
	// Non-object values are dropped, not turned into empty overrides.
	assert.NotContains(t, overrides, "bogus")
}

func TestParseUsageOverridesEmpty(t *testing.T) {
	overrides := parseUsageOverrides(map[string]any{})
	assert.NotNil(t, overrides)
	assert.Empty(t, overrides)
}

func TestToolResultEncodesEnvelope(t *testing.T) {
	res, err := toolResult(&analyzer.Result{
		Success: false,
		Error:   `template "missing" not found`,
	})

	require.NoError(t, err)
	assert.False(t, res.IsError)

	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"success": false`)
	assert.Contains(t, text.Text, `template \"missing\" not found`)
}

func TestToolResultUnencodableValue(t *testing.T) {
	res, err := toolResult(make(chan int))

	require.NoError(t, err)
	assert.True(t, res.IsError)

	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "failed to encode result")
}
