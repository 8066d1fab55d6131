// Package config loads the optional YAML configuration file. Flags on
// the CLI override anything set here.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr    string `yaml:"addr"`
	DataDir string `yaml:"dataDir"`
	Solver  Solver `yaml:"solver"`
}

type Solver struct {
	TopK             int      `yaml:"topK"`
	MaxPhases        int      `yaml:"maxPhases"`
	MaxStates        int      `yaml:"maxStates"`
	Candidates       int      `yaml:"candidates"`
	ProgressInterval Duration `yaml:"progressInterval"`
}

// Duration lets YAML carry "2s" style values, which gopkg.in/yaml.v3
// does not decode into time.Duration on its own.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:    ":8080",
		DataDir: "./data",
		Solver: Solver{
			TopK:             5,
			MaxPhases:        5,
			MaxStates:        0, // unbounded
			Candidates:       5,
			ProgressInterval: Duration(2 * time.Second),
		},
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
