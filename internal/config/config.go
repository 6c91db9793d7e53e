// Package config loads the optional YAML options file that tunes code
// generation: output package naming and register name decoration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the generation options.
type Config struct {
	// Package is the name of the generated Go package.
	Package string `yaml:"package"`
	// Output is the path the generated file is written to; empty means stdout.
	Output string `yaml:"output"`
	// DeviceName overrides the device name from the description.
	DeviceName string `yaml:"device_name"`
	// HonorPrefix applies each peripheral's declared prependToName
	// decoration to its register names.
	HonorPrefix *bool `yaml:"honor_prefix"`
	// HonorSuffix applies each peripheral's declared appendToName
	// decoration to its register names.
	HonorSuffix *bool `yaml:"honor_suffix"`
}

// Default returns the default configuration.
func Default() Config {
	t := true

	return Config{
		Package:     "device",
		HonorPrefix: &t,
		HonorSuffix: &t,
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, filling in defaults for anything
// the file leaves unset. An empty file is valid.
func Parse(data []byte) (Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	return c, nil
}

func applyDefaults(c *Config) {
	def := Default()

	if c.Package == "" {
		c.Package = def.Package
	}

	if c.HonorPrefix == nil {
		c.HonorPrefix = def.HonorPrefix
	}

	if c.HonorSuffix == nil {
		c.HonorSuffix = def.HonorSuffix
	}
}
