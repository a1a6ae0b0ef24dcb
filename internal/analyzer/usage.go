package analyzer

import (
	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/template"
)

// Assumption keys shared by the estimator, the calculator, and caller
// overrides.
const (
	keyMonthlyRequests = "monthlyRequests"
	keyMemoryMB        = "avgMemoryMB"
	keyDurationMs      = "avgDurationMs"
	keyFunctionCount   = "functionCount"
	keyBucketCount     = "bucketCount"
	keyStorageGB       = "storageGB"
	keyReadCapacity    = "readCapacityUnits"
	keyWriteCapacity   = "writeCapacityUnits"
	keyInstanceCount   = "instanceCount"
	keyInstanceType    = "instanceType"
	keyHoursPerMonth   = "hoursPerMonth"
)

// hoursPerMonth is the convention for an always-on instance.
const hoursPerMonth = 730.0

// serviceFamily selects the estimation and cost rule applied to a service.
// The explicit fallback case is deliberate: estimation never fails for an
// unrecognized service.
type serviceFamily int

const (
	familyGeneric serviceFamily = iota
	familyFunction
	familyObjectStorage
	familyTable
	familyInstance
)

func familyOf(service string) serviceFamily {
	switch service {
	case ServiceLambda:
		return familyFunction
	case ServiceS3:
		return familyObjectStorage
	case ServiceDynamoDB:
		return familyTable
	case ServiceEC2, ServiceRDS:
		return familyInstance
	default:
		return familyGeneric
	}
}

// UsageDefaults is the built-in assumption set, injected into the analyzer
// so tests can substitute fixtures without touching shared state.
type UsageDefaults struct {
	FunctionMemoryMB   float64
	FunctionRequests   float64
	FunctionDurationMs float64

	StorageGB       float64
	StorageRequests float64

	TableReadCapacity  float64
	TableWriteCapacity float64
	TableStorageGB     float64

	InstanceType  string
	InstanceHours float64

	GenericRequests  float64
	GenericStorageGB float64
}

// DefaultUsage returns the standard assumption set.
func DefaultUsage() UsageDefaults {
	return UsageDefaults{
		FunctionMemoryMB:   128,
		FunctionRequests:   1_000_000,
		FunctionDurationMs: 100,

		StorageGB:       10,
		StorageRequests: 100_000,

		TableReadCapacity:  5,
		TableWriteCapacity: 5,
		TableStorageGB:     1,

		InstanceType:  "t3.micro",
		InstanceHours: hoursPerMonth,

		GenericRequests:  10_000,
		GenericStorageGB: 1,
	}
}

// estimateUsage derives one service's usage profile as a three-layer
// merge: built-in defaults, then values read off the resource declarations
// themselves, then caller overrides. Later layers win per key.
func (a *Analyzer) estimateUsage(service string, resources []template.Resource, overrides Assumptions) Assumptions {
	d := a.defaults
	base := Assumptions{}
	derived := Assumptions{}

	switch familyOf(service) {
	case familyFunction:
		base = Assumptions{
			keyFunctionCount:   float64(len(resources)),
			keyMonthlyRequests: d.FunctionRequests,
			keyMemoryMB:        d.FunctionMemoryMB,
			keyDurationMs:      d.FunctionDurationMs,
		}
		if mem, ok := firstNumericProp(resources, "MemorySize"); ok {
			derived[keyMemoryMB] = mem
		}
		if timeout, ok := firstNumericProp(resources, "Timeout"); ok {
			// Declared timeout (seconds) caps the default duration.
			if ms := timeout * 1000; ms < d.FunctionDurationMs {
				derived[keyDurationMs] = ms
			}
		}

	case familyObjectStorage:
		base = Assumptions{
			keyBucketCount:     float64(len(resources)),
			keyStorageGB:       d.StorageGB,
			keyMonthlyRequests: d.StorageRequests,
		}

	case familyTable:
		base = Assumptions{
			keyReadCapacity:  d.TableReadCapacity,
			keyWriteCapacity: d.TableWriteCapacity,
			keyStorageGB:     d.TableStorageGB,
		}
		if rcu, ok := firstThroughputProp(resources, "ReadCapacityUnits"); ok {
			derived[keyReadCapacity] = rcu
		}
		if wcu, ok := firstThroughputProp(resources, "WriteCapacityUnits"); ok {
			derived[keyWriteCapacity] = wcu
		}

	case familyInstance:
		base = Assumptions{
			keyInstanceCount: float64(len(resources)),
			keyInstanceType:  d.InstanceType,
			keyHoursPerMonth: d.InstanceHours,
		}
		if t, ok := firstStringProp(resources, "InstanceType"); ok {
			derived[keyInstanceType] = t
		} else if t, ok := firstStringProp(resources, "DBInstanceClass"); ok {
			derived[keyInstanceType] = t
		}

	default:
		base = Assumptions{
			keyMonthlyRequests: d.GenericRequests,
			keyStorageGB:       d.GenericStorageGB,
		}
	}

	return mergeAssumptions(base, derived, overrides)
}

// mergeAssumptions flattens assumption layers with later layers winning
// per key. The merge is shallow: a key present in a later layer replaces
// that key only, keys absent from it keep their earlier value.
func mergeAssumptions(layers ...Assumptions) Assumptions {
	merged := Assumptions{}
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}
	return merged
}

func firstNumericProp(resources []template.Resource, key string) (float64, bool) {
	for _, res := range resources {
		if v, ok := res.Properties[key]; ok {
			if f, ok := toFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func firstStringProp(resources []template.Resource, key string) (string, bool) {
	for _, res := range resources {
		if v, ok := res.Properties[key].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// firstThroughputProp digs into the nested ProvisionedThroughput block of
// a table declaration.
func firstThroughputProp(resources []template.Resource, key string) (float64, bool) {
	for _, res := range resources {
		throughput, ok := res.Properties["ProvisionedThroughput"].(map[string]any)
		if !ok {
			continue
		}
		if f, ok := toFloat(throughput[key]); ok {
			return f, true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
