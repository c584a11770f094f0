package main

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-ebl/ebl"
)

// Config is the YAML job file accepted by -config.
type Config struct {
	Tables    string  `yaml:"tables"`    // directory holding non-embedded table files
	Tolerance float64 `yaml:"tolerance"` // horizon tolerance
	Jobs      []Job   `yaml:"jobs"`
}

// Job is one model/redshift evaluation.
type Job struct {
	Model    string    `yaml:"model"` // name or numeric id
	Redshift float64   `yaml:"redshift"`
	Energies []float64 `yaml:"energies"` // TeV
	Flux     []float64 `yaml:"flux"`     // one value, or one per energy
	Horizon  bool      `yaml:"horizon"`
}

var defaultEnergies = []float64{0.05, 0.1, 0.3, 1, 3, 10}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{Tolerance: ebl.DefaultHorizonTolerance}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, cfg.validate()
}

func applyDefaults(cfg *Config) {
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) {
		cfg.Tolerance = ebl.DefaultHorizonTolerance
	}
	for i := range cfg.Jobs {
		if cfg.Jobs[i].Model == "" {
			cfg.Jobs[i].Model = ebl.Franceschini2008.String()
		}
		if len(cfg.Jobs[i].Energies) == 0 {
			cfg.Jobs[i].Energies = append([]float64(nil), defaultEnergies...)
		}
	}
}

func (cfg *Config) validate() error {
	if len(cfg.Jobs) == 0 {
		return fmt.Errorf("config: no jobs")
	}
	for i, j := range cfg.Jobs {
		if _, err := ebl.ParseModelID(j.Model); err != nil {
			return fmt.Errorf("config: job %d: %w", i, err)
		}
		if n := len(j.Flux); n > 1 && n != len(j.Energies) {
			return fmt.Errorf("config: job %d: %d flux values for %d energies", i, n, len(j.Energies))
		}
	}
	return nil
}
