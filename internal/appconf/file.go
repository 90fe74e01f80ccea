package appconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file. Zero values mean "not set".
type FileConfig struct {
	Port      int    `yaml:"port"`
	Env       string `yaml:"env"`
	RateLimit *int   `yaml:"rate_limit"`
	DataURL   string `yaml:"data_url"`
	DBPath    string `yaml:"db_path"`
	Verbose   *bool  `yaml:"verbose"`
}

// LoadFile reads and decodes a YAML config file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig

	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	return fc, nil
}

// ApplyTo copies the values present in the file onto cfg. Settings whose flag
// name is in explicit were given on the command line and win over the file.
func (fc FileConfig) ApplyTo(cfg *Config, explicit map[string]bool) {
	if fc.Port != 0 && !explicit["port"] {
		cfg.Port = fc.Port
	}
	if fc.Env != "" && !explicit["env"] {
		cfg.Env = EnvFlagToEnvironment(fc.Env)
	}
	if fc.RateLimit != nil && !explicit["rate-limit"] {
		cfg.RateLimit = *fc.RateLimit
	}
	if fc.DataURL != "" && !explicit["data-url"] {
		cfg.DataURL = fc.DataURL
	}
	if fc.DBPath != "" && !explicit["db-path"] {
		cfg.DBPath = fc.DBPath
	}
	if fc.Verbose != nil && !explicit["verbose"] {
		cfg.Verbose = *fc.Verbose
	}
}
