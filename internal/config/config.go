// SPDX-License-Identifier: MIT

// Package config loads the run configuration of the quadrature CLI from a
// TOML or YAML file. Values absent from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/quadrature/integrand"
	"github.com/katalvlaran/quadrature/quadrature"
)

// MethodRectangle selects the rectangle rule with the evaluation point
// taken from Config.Mode.
const MethodRectangle = "rectangle"

// MethodAll runs every registered rule.
const MethodAll = "all"

// EnvPath names the environment variable consulted by LoadFromEnv.
const EnvPath = "QUADRATURE_CONFIG"

var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid indicates a value that failed Validate.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds one run: which rule, which integrand, which interval and
// which partition counts.
type Config struct {
	Method string `toml:"method" yaml:"method"`
	// Mode is the rectangle evaluation point (left, right, mid, random);
	// consulted only when Method is "rectangle".
	Mode      string  `toml:"mode" yaml:"mode"`
	Integrand string  `toml:"integrand" yaml:"integrand"`
	A         float64 `toml:"a" yaml:"a"`
	B         float64 `toml:"b" yaml:"b"`
	N         []int   `toml:"n" yaml:"n"`
	// Seed drives Random mode; 0 leaves it on the process-wide source.
	Seed     int64  `toml:"seed" yaml:"seed"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
	NoColor  bool   `toml:"no_color" yaml:"no_color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Method:    quadrature.NameSimpson,
		Mode:      quadrature.Left.String(),
		Integrand: "square",
		A:         0,
		B:         1,
		N:         []int{10},
		Seed:      0,
		LogLevel:  "info",
	}
}

// Load reads path over Default(). The format follows the extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	cfg.N = nil
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config: %s: %w", path, ErrUnsupportedFormat)
	}
	if len(cfg.N) == 0 {
		cfg.N = Default().N
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by $QUADRATURE_CONFIG, or returns
// Default() when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		cfg := Default()
		return &cfg, nil
	}
	return Load(path)
}

// Validate checks names against the registries and the numeric fields
// against the quadrature preconditions that do not depend on the rule.
func (c *Config) Validate() error {
	if _, err := quadrature.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	switch c.Method {
	case MethodAll, MethodRectangle:
	default:
		if _, err := quadrature.New(c.Method); err != nil {
			return fmt.Errorf("%w: method %q", ErrInvalid, c.Method)
		}
	}
	if _, err := integrand.Lookup(c.Integrand); err != nil {
		return fmt.Errorf("%w: integrand %q", ErrInvalid, c.Integrand)
	}
	if len(c.N) == 0 {
		return fmt.Errorf("%w: n must list at least one partition count", ErrInvalid)
	}
	for _, n := range c.N {
		if n <= 0 {
			return fmt.Errorf("%w: n=%d must be >= 1", ErrInvalid, n)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Methods resolves Method into registry names: "all" expands to every rule
// and "rectangle" becomes the name of Mode. Call after Validate.
func (c *Config) Methods() []string {
	switch c.Method {
	case MethodAll:
		return quadrature.Names()
	case MethodRectangle:
		m, err := quadrature.ParseMode(c.Mode)
		if err != nil {
			return []string{c.Mode}
		}
		return []string{m.String()}
	}
	return []string{c.Method}
}

// Options returns the quadrature options implied by Seed.
func (c *Config) Options() []quadrature.Option {
	if c.Seed == 0 {
		return nil
	}
	return []quadrature.Option{quadrature.WithSeed(c.Seed)}
}
