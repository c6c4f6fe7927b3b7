// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/katalvlaran/reservoir/demo"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML run file:
//
//	seed: 42
//	parameters:
//	  reservoir_size: 200
//	  leaking_rate: 0.5
//	run:
//	  samples: 500
//	  signal: chirp
//	  pause: 0s
//
// Parameter keys accept the snake_case key or the display name. Run fields
// left out keep their defaults.
type FileConfig struct {
	Seed       *int64             `yaml:"seed"`
	Parameters map[string]float64 `yaml:"parameters"`
	Run        demo.RunConfig     `yaml:"run"`
}

// Settings is everything a run needs, after file and flags are merged.
type Settings struct {
	Seed       int64
	Parameters demo.Parameters
	Run        demo.RunConfig
}

// DefaultSettings returns the interactive defaults.
func DefaultSettings() Settings {
	return Settings{
		Seed:       demo.DefaultSeed,
		Parameters: demo.DefaultParameters(),
		Run:        demo.DefaultRunConfig(),
	}
}

// LoadConfigFile reads path and applies it on top of base.
func LoadConfigFile(path string, base Settings) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config: %w", err)
	}

	return ParseConfig(data, base)
}

// ParseConfig decodes YAML strictly and applies it on top of base. Unknown
// fields, unknown parameter keys and out-of-range values are errors.
func ParseConfig(data []byte, base Settings) (Settings, error) {
	fc := FileConfig{Run: base.Run}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("failed to parse YAML: %w", err)
	}

	out := base
	out.Run = fc.Run
	if fc.Seed != nil {
		out.Seed = *fc.Seed
	}

	// Sorted for a stable first error.
	keys := make([]string, 0, len(fc.Parameters))
	for k := range fc.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		id, err := demo.ParseParameterID(k)
		if err != nil {
			return base, err
		}
		if out.Parameters, err = out.Parameters.With(id, fc.Parameters[k]); err != nil {
			return base, err
		}
	}

	return out, nil
}
