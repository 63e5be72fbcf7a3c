package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultT0      = 0.0
	DefaultT1      = 10.0
	DefaultSamples = 32
	DefaultMethod  = "heun"
	DefaultProblem = "sine_growth"
)

type Config struct {
	Problem string  `yaml:"problem"`
	Method  string  `yaml:"method"`
	T0      float64 `yaml:"t0"`
	T1      float64 `yaml:"t1"`
	Samples int     `yaml:"samples"`

	// X0 overrides the problem's initial state when present.
	X0 []float64 `yaml:"x0,omitempty"`

	// Params overrides problem parameters, e.g. lambda or omega.
	Params map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: DefaultProblem,
		Method:  DefaultMethod,
		T0:      DefaultT0,
		T1:      DefaultT1,
		Samples: DefaultSamples,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
