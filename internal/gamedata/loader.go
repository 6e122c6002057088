package gamedata

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a YAML file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}
