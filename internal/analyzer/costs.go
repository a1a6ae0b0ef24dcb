package analyzer

import (
	"sort"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/pricing"
)

const (
	monthsPerYear = 12
	mbPerGB       = 1024
	msPerSecond   = 1000
)

// calculateCosts prices a complete usage profile against the analyzer's
// rate table. Pure and deterministic: identical inputs yield identical
// outputs. A service with no pricing entry contributes exactly zero and
// the calculation continues.
func (a *Analyzer) calculateCosts(profile Profile) CostEstimate {
	estimate := CostEstimate{
		Currency: "USD",
		Services: make(map[string]ServiceCost, len(profile)),
	}

	for _, service := range sortedServices(profile) {
		usage := profile[service]

		monthly := 0.0
		entry, ok := a.pricing.Lookup(service)
		if !ok {
			a.logger.Debug().
				Str("service", service).
				Msg("no pricing entry, costing at zero")
		} else {
			monthly = monthlyCost(service, usage, entry)
		}

		estimate.Services[service] = ServiceCost{
			Monthly: monthly,
			Yearly:  monthly * monthsPerYear,
		}
		estimate.TotalMonthly += monthly
	}

	estimate.TotalYearly = estimate.TotalMonthly * monthsPerYear
	return estimate
}

// monthlyCost computes one service's monthly cost as the sum of unit price
// times usage quantity over every billable dimension of its family.
func monthlyCost(service string, usage Assumptions, entry pricing.Entry) float64 {
	switch familyOf(service) {
	case familyFunction:
		requests := usage.Float(keyMonthlyRequests)
		requestCost := requests * entry.RequestPrice
		gbSeconds := requests * (usage.Float(keyDurationMs) / msPerSecond) * (usage.Float(keyMemoryMB) / mbPerGB)
		return requestCost + gbSeconds*entry.GBSecondPrice

	case familyObjectStorage:
		return usage.Float(keyStorageGB)*entry.StorageGBMonthPrice +
			usage.Float(keyMonthlyRequests)*entry.RequestPrice

	case familyTable:
		return usage.Float(keyReadCapacity)*entry.ReadCapacityUnitPrice +
			usage.Float(keyWriteCapacity)*entry.WriteCapacityUnitPrice +
			usage.Float(keyStorageGB)*entry.StorageGBMonthPrice

	case familyInstance:
		rate := entry.InstanceRate(usage.String(keyInstanceType))
		return usage.Float(keyInstanceCount) * usage.Float(keyHoursPerMonth) * rate

	default:
		return usage.Float(keyMonthlyRequests)*entry.RequestPrice +
			usage.Float(keyStorageGB)*entry.StorageGBMonthPrice
	}
}

func sortedServices(profile Profile) []string {
	services := make([]string, 0, len(profile))
	for service := range profile {
		services = append(services, service)
	}
	sort.Strings(services)
	return services
}
