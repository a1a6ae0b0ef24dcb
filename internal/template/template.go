// Package template parses CloudFormation/CDK-style JSON templates and
// extracts their resource declarations for cost analysis.
package template

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"
)

// ErrParse indicates the template content is not valid JSON or does not
// have the expected document shape.
var ErrParse = errors.New("template parse failed")

// FallbackStackName is used when neither the caller, the description, nor
// the metadata carries a stack name.
const FallbackStackName = "Unknown CDK Stack"

// metadataNameKeys are checked, in order, when deriving a stack name from
// the template metadata.
var metadataNameKeys = []string{"StackName", "aws:cdk:stack-name"}

// Resource is a single resource declaration within a template.
type Resource struct {
	// LogicalID is the key under which the resource was declared.
	// Populated during parsing, not part of the document itself.
	LogicalID string `json:"-"`

	Type       string         `json:"Type"`
	Properties map[string]any `json:"Properties,omitempty"`
}

// Template is a parsed infrastructure template. Treat it as immutable
// after Parse returns.
type Template struct {
	Description string              `json:"Description,omitempty"`
	Metadata    map[string]any      `json:"Metadata,omitempty"`
	Resources   map[string]Resource `json:"Resources,omitempty"`
}

// Parse decodes raw template JSON. Malformed input is reported as a
// wrapped ErrParse so callers can distinguish it from other failures.
func Parse(data []byte) (*Template, error) {
	var tpl Template
	if err := json.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for id, res := range tpl.Resources {
		res.LogicalID = id
		tpl.Resources[id] = res
	}
	return &tpl, nil
}

// StackName derives a display name for the template. Priority order:
// explicit override, description, metadata, fixed fallback.
func (t *Template) StackName(override string) string {
	if name := strings.TrimSpace(override); name != "" {
		return name
	}
	if name := strings.TrimSpace(t.Description); name != "" {
		return name
	}
	for _, key := range metadataNameKeys {
		if v, ok := t.Metadata[key]; ok {
			if name, ok := v.(string); ok && strings.TrimSpace(name) != "" {
				return strings.TrimSpace(name)
			}
		}
	}
	return FallbackStackName
}

// ResourceGroups buckets the template's resources by declared type string.
// Resources with no declared type are excluded. Each bucket is ordered by
// logical id, which is the document's deterministic discovery order (JSON
// object order is not preserved by the decoder).
func (t *Template) ResourceGroups() map[string][]Resource {
	groups := make(map[string][]Resource)
	for _, res := range t.sortedResources() {
		if res.Type == "" {
			continue
		}
		groups[res.Type] = append(groups[res.Type], res)
	}
	return groups
}

// ResourceTypes returns the distinct declared type strings in discovery
// order (ascending by first logical id, which for sorted traversal is
// simply ascending type-of-first-occurrence order).
func (t *Template) ResourceTypes() []string {
	seen := make(map[string]bool)
	var types []string
	for _, res := range t.sortedResources() {
		if res.Type == "" || seen[res.Type] {
			continue
		}
		seen[res.Type] = true
		types = append(types, res.Type)
	}
	return types
}

// ResourceCounts returns the number of declared resources per type string.
func (t *Template) ResourceCounts() map[string]int {
	counts := make(map[string]int)
	for _, res := range t.Resources {
		if res.Type == "" {
			continue
		}
		counts[res.Type]++
	}
	return counts
}

// TotalResources returns the number of typed resource declarations.
func (t *Template) TotalResources() int {
	total := 0
	for _, res := range t.Resources {
		if res.Type != "" {
			total++
		}
	}
	return total
}

func (t *Template) sortedResources() []Resource {
	ids := make([]string, 0, len(t.Resources))
	for id := range t.Resources {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	resources := make([]Resource, 0, len(ids))
	for _, id := range ids {
		resources = append(resources, t.Resources[id])
	}
	return resources
}
