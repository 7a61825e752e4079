package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/flavorsim/internal/experiment"
	"github.com/san-kum/flavorsim/internal/observable"
)

const (
	DefaultWorkers   = 4
	DefaultSamples   = 1000
	DefaultScanSteps = 11
	DefaultDataDir   = ".flavorsim"
)

type Config struct {
	Observables []ObservableConfig `yaml:"observables" toml:"observables"`
	Preset      string             `yaml:"preset,omitempty" toml:"preset,omitempty"`
	Overrides   map[string]float64 `yaml:"overrides,omitempty" toml:"overrides,omitempty"`
	Scan        ScanConfig         `yaml:"scan" toml:"scan"`
	Sampling    SamplingConfig     `yaml:"sampling" toml:"sampling"`
	Workers     int                `yaml:"workers" toml:"workers"`
	Seed        uint64             `yaml:"seed" toml:"seed"`
	DataDir     string             `yaml:"data_dir" toml:"data_dir"`
}

type ObservableConfig struct {
	Name    string            `yaml:"name" toml:"name"`
	Options map[string]string `yaml:"options,omitempty" toml:"options,omitempty"`
}

type ScanConfig struct {
	Parameters []ScanParameter `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
}

// ScanParameter scans Name over Steps points. A zero Min and Max means the
// parameter's own range.
type ScanParameter struct {
	Name  string  `yaml:"name" toml:"name"`
	Min   float64 `yaml:"min,omitempty" toml:"min,omitempty"`
	Max   float64 `yaml:"max,omitempty" toml:"max,omitempty"`
	Steps int     `yaml:"steps" toml:"steps"`
}

type SamplingConfig struct {
	Samples int      `yaml:"samples" toml:"samples"`
	Vary    []string `yaml:"vary,omitempty" toml:"vary,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Workers:  DefaultWorkers,
		Sampling: SamplingConfig{Samples: DefaultSamples},
		DataDir:  DefaultDataDir,
	}
}

// Load reads a YAML or TOML file, chosen by extension, over DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(cfg)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Sampling.Samples < 0 {
		return fmt.Errorf("samples must not be negative, got %d", c.Sampling.Samples)
	}
	for _, o := range c.Observables {
		if o.Name == "" {
			return fmt.Errorf("observable without name")
		}
	}
	for _, sp := range c.Scan.Parameters {
		if sp.Name == "" {
			return fmt.Errorf("scan parameter without name")
		}
		if sp.Steps < 2 {
			return fmt.Errorf("scan parameter %s: steps must be at least 2, got %d", sp.Name, sp.Steps)
		}
	}
	if c.Preset != "" && GetPreset(c.Preset) == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", c.Preset, ListPresets())
	}
	return nil
}

// Overlay returns the preset values with the explicit overrides on top.
func (c *Config) Overlay() map[string]float64 {
	values := make(map[string]float64)
	if p := GetPreset(c.Preset); p != nil {
		for k, v := range p.Values {
			values[k] = v
		}
	}
	for k, v := range c.Overrides {
		values[k] = v
	}
	return values
}

// Experiment converts the observable list and overlay into an experiment
// configuration.
func (c *Config) Experiment() experiment.Config {
	specs := make([]experiment.Spec, len(c.Observables))
	for i, o := range c.Observables {
		specs[i] = experiment.Spec{Name: o.Name, Options: observable.Options(o.Options).Clone()}
	}
	return experiment.Config{Observables: specs, Overrides: c.Overlay()}
}
