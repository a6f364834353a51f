package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blockprefetch/cmc-sim/sim"
)

// LoadYAML parses a sim.Config from a YAML preset file. Decoding is
// strict (KnownFields(true)): an unrecognized key is a load error
// rather than a silently ignored typo.
func LoadYAML(path string) (sim.Config, error) {
	cfg := sim.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return sim.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
