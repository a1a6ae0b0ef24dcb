package pricing

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
)

// Built-in on-demand rate table. Regenerate with tools/generate-pricing.
//
//go:embed data/default_pricing.json
var rawDefaultJSON []byte

// Default returns the embedded rate table. The embedded JSON is validated
// at build time by tests, so decode failure here means a corrupted build.
func Default() Table {
	table, err := decodeJSON(rawDefaultJSON)
	if err != nil {
		panic(fmt.Sprintf("embedded pricing data is invalid: %v", err))
	}
	return table
}

func decodeJSON(data []byte) (Table, error) {
	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding pricing JSON: %w", err)
	}
	return table, nil
}
