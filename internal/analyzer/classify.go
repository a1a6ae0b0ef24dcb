package analyzer

import (
	"sort"
	"strings"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/template"
)

// Canonical service names used in dispatch and pricing lookups.
const (
	ServiceLambda     = "Lambda"
	ServiceAPIGateway = "API Gateway"
	ServiceS3         = "S3"
	ServiceDynamoDB   = "DynamoDB"
	ServiceEC2        = "EC2"
	ServiceRDS        = "RDS"
	ServiceIAM        = "IAM"
	ServiceSNS        = "SNS"
	ServiceSQS        = "SQS"
	ServiceCloudWatch = "CloudWatch"
)

// serviceDisplayNames maps the service segment of a resource type string
// to its canonical display name. Segments absent from the table pass
// through verbatim, so classification never drops a resource.
var serviceDisplayNames = map[string]string{
	"Lambda":         ServiceLambda,
	"ApiGateway":     ServiceAPIGateway,
	"ApiGatewayV2":   ServiceAPIGateway,
	"S3":             ServiceS3,
	"DynamoDB":       ServiceDynamoDB,
	"EC2":            ServiceEC2,
	"RDS":            ServiceRDS,
	"IAM":            ServiceIAM,
	"SNS":            ServiceSNS,
	"SQS":            ServiceSQS,
	"CloudWatch":     ServiceCloudWatch,
	"Logs":           ServiceCloudWatch,
	"CloudFront":     "CloudFront",
	"StepFunctions":  "Step Functions",
	"SecretsManager": "Secrets Manager",
	"KMS":            "KMS",
}

// ServiceName maps a declared resource type string of the form
// "<vendor>::<service>::<kind>" to a canonical service name. Repeated
// kinds under one segment (Function, Version, Alias) collapse to the same
// name. A type with no recognizable segment yields itself, never an empty
// name.
func ServiceName(resourceType string) string {
	segments := strings.Split(resourceType, "::")
	if len(segments) < 2 {
		return resourceType
	}
	segment := segments[1]
	if name, ok := serviceDisplayNames[segment]; ok {
		return name
	}
	return segment
}

// SupportedServices returns the sorted set of canonical service names the
// classifier maps resource segments to. Resource types outside this set
// still classify, using their raw segment as the service name.
func SupportedServices() []string {
	seen := make(map[string]bool)
	var names []string
	for _, name := range serviceDisplayNames {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// classification groups a template's resources by canonical service name,
// keeping the discovery order of services.
type classification struct {
	services  []string
	resources map[string][]template.Resource
}

// classify buckets every typed resource under exactly one service name.
func classify(tpl *template.Template) classification {
	c := classification{resources: make(map[string][]template.Resource)}
	groups := tpl.ResourceGroups()
	for _, resourceType := range tpl.ResourceTypes() {
		name := ServiceName(resourceType)
		if _, seen := c.resources[name]; !seen {
			c.services = append(c.services, name)
		}
		c.resources[name] = append(c.resources[name], groups[resourceType]...)
	}
	// Services spanning several resource types collect their resources
	// type by type; restore ascending logical id so downstream
	// first-match property derivation is independent of type order.
	for _, resources := range c.resources {
		sort.Slice(resources, func(i, j int) bool {
			return resources[i].LogicalID < resources[j].LogicalID
		})
	}
	return c
}

// resourcesFor returns the union of all resources classified under the
// given service name, in ascending logical id order.
func (c classification) resourcesFor(service string) []template.Resource {
	return c.resources[service]
}
