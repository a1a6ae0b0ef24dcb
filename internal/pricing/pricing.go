// Package pricing holds the rate table used to turn usage estimates into
// monthly costs. The table is plain data: a mapping from canonical service
// name to the unit prices that service bills on. A built-in table derived
// from published on-demand rates ships embedded; callers may load a
// replacement or partial override from a JSON or YAML file.
package pricing

// Entry is the set of unit prices for one service. Only the dimensions a
// service bills on are populated; zero-valued dimensions contribute
// nothing to a cost calculation.
type Entry struct {
	// RequestPrice is the cost per request or invocation.
	RequestPrice float64 `json:"requestPrice,omitempty" yaml:"requestPrice,omitempty"`

	// GBSecondPrice is the cost per GB-second of compute duration.
	GBSecondPrice float64 `json:"gbSecondPrice,omitempty" yaml:"gbSecondPrice,omitempty"`

	// StorageGBMonthPrice is the cost per GB-month of storage.
	StorageGBMonthPrice float64 `json:"storageGBMonthPrice,omitempty" yaml:"storageGBMonthPrice,omitempty"`

	// ReadCapacityUnitPrice and WriteCapacityUnitPrice are the monthly
	// costs per provisioned capacity unit.
	ReadCapacityUnitPrice  float64 `json:"readCapacityUnitPrice,omitempty" yaml:"readCapacityUnitPrice,omitempty"`
	WriteCapacityUnitPrice float64 `json:"writeCapacityUnitPrice,omitempty" yaml:"writeCapacityUnitPrice,omitempty"`

	// InstanceHourly maps instance type to its hourly on-demand rate.
	InstanceHourly map[string]float64 `json:"instanceHourly,omitempty" yaml:"instanceHourly,omitempty"`

	// DefaultHourlyPrice is used when an instance type has no entry in
	// InstanceHourly.
	DefaultHourlyPrice float64 `json:"defaultHourlyPrice,omitempty" yaml:"defaultHourlyPrice,omitempty"`
}

// InstanceRate returns the hourly rate for the given instance type,
// falling back to the entry's default hourly rate.
func (e Entry) InstanceRate(instanceType string) float64 {
	if rate, ok := e.InstanceHourly[instanceType]; ok {
		return rate
	}
	return e.DefaultHourlyPrice
}

// Table maps canonical service names to their pricing entries. A Table is
// read-only once built and safe to share across concurrent calculations.
type Table map[string]Entry

// Lookup returns the entry for a service. A missing entry is a valid,
// expected condition: the service simply prices at zero.
func (t Table) Lookup(service string) (Entry, bool) {
	entry, ok := t[service]
	return entry, ok
}

// Merge returns a new table with entries from override replacing same-name
// entries in t. Entries are replaced wholesale; per-field splicing of a
// single service's prices is not supported.
func (t Table) Merge(override Table) Table {
	merged := make(Table, len(t)+len(override))
	for name, entry := range t {
		merged[name] = entry
	}
	for name, entry := range override {
		merged[name] = entry
	}
	return merged
}
