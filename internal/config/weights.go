package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"league-former/internal/scoring"
)

// weightsFile is the on-disk shape of a scorer configuration.
type weightsFile struct {
	Weights map[string]float64 `yaml:"weights"`
	Depth   int                `yaml:"depth"`
}

// LoadWeights reads the scorer weight table and optional depth override from
// a YAML file. An empty path yields the default weight table and no depth
// override (returned depth 0). Unknown scorer keys and negative weights are
// rejected here rather than deep inside the run.
func LoadWeights(path string) (map[string]float64, int, error) {
	if path == "" {
		return scoring.DefaultWeights(), 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}

	var parsed weightsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	if len(parsed.Weights) == 0 {
		return nil, 0, fmt.Errorf("%s: no weights configured", path)
	}
	for key, weight := range parsed.Weights {
		if !scoring.Known(key) {
			return nil, 0, fmt.Errorf("%s: unknown scorer %q (known: %v)", path, key, scoring.Tags())
		}
		if weight < 0 {
			return nil, 0, fmt.Errorf("%s: weight for %q must be non-negative, got %v", path, key, weight)
		}
	}
	if parsed.Depth < 0 {
		return nil, 0, fmt.Errorf("%s: depth must be positive, got %d", path, parsed.Depth)
	}
	return parsed.Weights, parsed.Depth, nil
}
