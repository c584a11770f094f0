package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes one figure.
type Config struct {
	Title   string           `yaml:"title"`
	XLabel  string           `yaml:"xlabel"`
	YLabel  string           `yaml:"ylabel"`
	Width   float64          `yaml:"width"`  // inches
	Height  float64          `yaml:"height"` // inches
	Spectra []SpectrumConfig `yaml:"spectra"`
}

// SpectrumConfig is one best-fit curve with its covariance.
type SpectrumConfig struct {
	Label  string      `yaml:"label"`
	Shape  string      `yaml:"shape"` // pl or logp
	Params []float64   `yaml:"params"`
	Cov    [][]float64 `yaml:"cov"`
	Scale  float64     `yaml:"scale"` // normalization energy, TeV
	EMin   float64     `yaml:"emin"`
	EMax   float64     `yaml:"emax"`
	Color  string      `yaml:"color"` // #rrggbb, palette when empty
	Shift  float64     `yaml:"shift"`
	Points int         `yaml:"points"`
	EBL    *EBLConfig  `yaml:"ebl"`
}

// EBLConfig attenuates a spectrum by an EBL model.
type EBLConfig struct {
	Model    string  `yaml:"model"`
	Redshift float64 `yaml:"redshift"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	applyDefaults(cfg)
	if len(cfg.Spectra) == 0 {
		return cfg, fmt.Errorf("%s: no spectra", path)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.XLabel == "" {
		cfg.XLabel = "E [TeV]"
	}
	if cfg.Width <= 0 {
		cfg.Width = 6
	}
	if cfg.Height <= 0 {
		cfg.Height = 4.5
	}
	for i := range cfg.Spectra {
		s := &cfg.Spectra[i]
		if s.Shape == "" {
			s.Shape = "pl"
		}
		if s.Scale <= 0 {
			s.Scale = 1
		}
		if s.Shift <= 0 {
			s.Shift = 1
		}
		if s.EBL != nil && s.EBL.Model == "" {
			s.EBL.Model = "Franceschini2008"
		}
	}
}

// parseColor reads "#rrggbb" or "#rrggbbaa".
func parseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return nil, fmt.Errorf("color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
