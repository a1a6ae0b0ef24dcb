// Command generate-pricing regenerates the embedded default rate table
// from the published on-demand rates listed below. Run it after updating
// a rate, then commit the regenerated JSON:
//
//	go run ./tools/generate-pricing --out internal/pricing/data/default_pricing.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Zeeshanunique/cdk-cost-analyzer/internal/pricing"
)

// defaultRates is the source of truth for the embedded table. Rates are
// us-east-1 on-demand list prices.
var defaultRates = pricing.Table{
	"Lambda": {
		RequestPrice:  0.0000002,
		GBSecondPrice: 0.0000166667,
	},
	"API Gateway": {
		RequestPrice: 0.0000035,
	},
	"S3": {
		RequestPrice:        0.0000004,
		StorageGBMonthPrice: 0.023,
	},
	"DynamoDB": {
		ReadCapacityUnitPrice:  0.09,
		WriteCapacityUnitPrice: 0.47,
		StorageGBMonthPrice:    0.25,
	},
	"EC2": {
		InstanceHourly: map[string]float64{
			"t3.nano":   0.0052,
			"t3.micro":  0.0104,
			"t3.small":  0.0208,
			"t3.medium": 0.0416,
			"t3.large":  0.0832,
			"m5.large":  0.096,
			"m5.xlarge": 0.192,
			"c5.large":  0.085,
		},
		DefaultHourlyPrice: 0.05,
	},
	"SNS": {
		RequestPrice: 0.0000005,
	},
	"SQS": {
		RequestPrice: 0.0000004,
	},
	"RDS": {
		InstanceHourly: map[string]float64{
			"db.t3.micro":  0.017,
			"db.t3.small":  0.034,
			"db.t3.medium": 0.068,
			"db.m5.large":  0.171,
		},
		DefaultHourlyPrice:  0.1,
		StorageGBMonthPrice: 0.115,
	},
	"CloudWatch": {
		StorageGBMonthPrice: 0.03,
	},
}

func main() {
	out := flag.String("out", "internal/pricing/data/default_pricing.json", "Output file")
	flag.Parse()

	data, err := json.MarshalIndent(defaultRates, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode rates: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*out, data, 0o644); err != nil { // #nosec G306 -- generated source data
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d services to %s\n", len(defaultRates), *out)
}
