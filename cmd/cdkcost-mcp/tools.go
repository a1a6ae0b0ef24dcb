package main

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/analyzer"
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/template"
)

// RegisterTools registers the cost-analysis tools with the MCP server
func RegisterTools(s *server.MCPServer, a *analyzer.Analyzer, supplier template.Supplier) {
	s.AddTool(
		mcp.NewTool("analyze_cdk_architecture",
			mcp.WithDescription("Analyze the estimated monthly and yearly cost of a CDK/CloudFormation JSON template, broken down by service"),
			mcp.WithString("template_path",
				mcp.Required(),
				mcp.Description("Path to the template JSON file"),
			),
			mcp.WithString("name",
				mcp.Description("Override the architecture display name"),
			),
			mcp.WithBoolean("include_template",
				mcp.Description("Attach the raw template to the result (can be large)"),
			),
			mcp.WithObject("usage_assumptions",
				mcp.Description("Per-service usage overrides, e.g. {\"Lambda\": {\"monthlyRequests\": 5000000}}"),
			),
		),
		makeAnalyzeHandler(a, supplier),
	)

	s.AddTool(
		mcp.NewTool("compare_cdk_architectures",
			mcp.WithDescription("Compare the estimated costs of two CDK/CloudFormation templates: cost difference, percentage difference, and ranked cost factors"),
			mcp.WithString("template_path_1",
				mcp.Required(),
				mcp.Description("Path to the first template JSON file"),
			),
			mcp.WithString("template_path_2",
				mcp.Required(),
				mcp.Description("Path to the second template JSON file"),
			),
			mcp.WithString("architecture1_name",
				mcp.Description("Display name for the first architecture"),
			),
			mcp.WithString("architecture2_name",
				mcp.Description("Display name for the second architecture"),
			),
			mcp.WithNumber("cost_factors_limit",
				mcp.Description("Max entries in the ranked cost-factor list (default 5)"),
			),
		),
		makeCompareHandler(a, supplier),
	)

	s.AddTool(
		mcp.NewTool("list_supported_services",
			mcp.WithDescription("List the canonical service names the analyzer recognizes; unknown resource types still analyze with generic defaults"),
		),
		makeListServicesHandler(),
	)
}

func makeAnalyzeHandler(a *analyzer.Analyzer, supplier template.Supplier) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("template_path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		opts := analyzer.AnalyzeOptions{
			Name:            request.GetString("name", ""),
			IncludeTemplate: request.GetBool("include_template", false),
		}
		if raw, ok := request.GetArguments()["usage_assumptions"].(map[string]any); ok {
			opts.UsageAssumptions = parseUsageOverrides(raw)
		}

		result := a.Run(supplier, path, opts)
		return toolResult(result)
	}
}

func makeCompareHandler(a *analyzer.Analyzer, supplier template.Supplier) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path1, err := request.RequireString("template_path_1")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		path2, err := request.RequireString("template_path_2")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result1 := a.Run(supplier, path1, analyzer.AnalyzeOptions{})
		if !result1.Success {
			return toolResult(result1)
		}
		result2 := a.Run(supplier, path2, analyzer.AnalyzeOptions{})
		if !result2.Success {
			return toolResult(result2)
		}

		comparison := a.Compare(result1.Analysis, result2.Analysis, analyzer.CompareOptions{
			Architecture1Name: request.GetString("architecture1_name", ""),
			Architecture2Name: request.GetString("architecture2_name", ""),
			CostFactorsLimit:  request.GetInt("cost_factors_limit", 0),
		})
		return toolResult(comparison)
	}
}

func makeListServicesHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return toolResult(map[string]any{
			"services": analyzer.SupportedServices(),
		})
	}
}

// parseUsageOverrides converts the raw tool argument into the analyzer's
// per-service override map.
func parseUsageOverrides(raw map[string]any) map[string]analyzer.Assumptions {
	overrides := make(map[string]analyzer.Assumptions, len(raw))
	for service, v := range raw {
		if m, ok := v.(map[string]any); ok {
			overrides[service] = analyzer.Assumptions(m)
		}
	}
	return overrides
}

func toolResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
