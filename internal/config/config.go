// Package config loads the generator configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root generator configuration. Every field maps to a key in
// the YAML file and can be overridden by the corresponding environment
// variable.
type Config struct {
	// EntitySuffix selects which files under the scan root are treated as
	// entity declarations.
	EntitySuffix string `yaml:"entity_suffix" env:"NESTDTO_ENTITY_SUFFIX" validate:"required"`

	// OutputDir is where generated files go. Empty means a dto/ directory
	// next to each entity file.
	OutputDir string `yaml:"output_dir" env:"NESTDTO_OUTPUT_DIR"`

	// Targets lists the renderers to run for each entity.
	Targets []string `yaml:"targets" env:"NESTDTO_TARGETS" validate:"min=1,dive,oneof=ts go"`

	// GoPackage is the package name used by the Go target.
	GoPackage string `yaml:"go_package" env:"NESTDTO_GO_PACKAGE" validate:"required"`

	Policy Policy `yaml:"policy"`
}

// Policy mirrors the mapper policy knobs into the configuration file.
type Policy struct {
	RelationsRequired bool `yaml:"relations_required" env:"NESTDTO_RELATIONS_REQUIRED"`
	PositiveNumbers   bool `yaml:"positive_numbers" env:"NESTDTO_POSITIVE_NUMBERS"`
}

// Default returns the configuration shipped with the generator.
func Default() *Config {
	return &Config{
		EntitySuffix: ".entity.ts",
		Targets:      []string{"ts"},
		GoPackage:    "dto",
		Policy: Policy{
			RelationsRequired: true,
			PositiveNumbers:   true,
		},
	}
}

// Load reads the configuration file at path, applies environment overrides,
// and validates the result. An empty path skips the file and uses defaults
// plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// HasTarget reports whether the named renderer is enabled.
func (c *Config) HasTarget(name string) bool {
	for _, t := range c.Targets {
		if t == name {
			return true
		}
	}
	return false
}
