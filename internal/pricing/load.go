package pricing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a rate table from a JSON or YAML file, chosen by
// extension. The loaded entries replace same-name entries of the embedded
// default table, so a partial file overrides only the services it names.
func LoadFile(path string, logger zerolog.Logger) (Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("reading pricing file: %w", err)
	}

	var override Table
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("decoding pricing YAML: %w", err)
		}
	case ".json":
		override, err = decodeJSON(data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported pricing file extension %q", ext)
	}

	logger.Debug().
		Str("path", path).
		Int("services", len(override)).
		Msg("pricing overrides loaded")

	return Default().Merge(override), nil
}
