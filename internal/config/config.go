// Package config loads the optional YAML override file that lets a CLI
// invocation set the solver's tunables without repeating every flag.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML override file shape. Dim, Lambda,
// Gamma, and Gap are pointers so an absent key is distinguishable from
// an explicit zero — gamma=0 is a legitimate tuning value (a pure
// distance-minimizing tour with no turn penalty) and must round-trip,
// not be swallowed by a zero-means-unset convention. Kappa, PCS,
// LimitSeconds, and Concurrency have no legitimate zero value in this
// system, so they keep the simpler zero-means-unset convention.
type Overrides struct {
	Dim    *float64 `yaml:"dim"`
	Lambda *float64 `yaml:"lambda"`
	Gamma  *float64 `yaml:"gamma"`
	Kappa  int64    `yaml:"kappa"`
	PCS    int64    `yaml:"pcs"`
	Gap    *float64 `yaml:"gap"`
	// LimitSeconds is the solver time limit, in seconds.
	LimitSeconds int    `yaml:"limit_seconds"`
	Concurrency  int    `yaml:"concurrency"`
	LogLevel     string `yaml:"log_level"`
}

// Load reads and parses path. A missing file is not an error — it means
// no override was requested — any other I/O or parse failure is returned.
func Load(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, nil
		}

		return Overrides{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Overrides{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return o, nil
}
