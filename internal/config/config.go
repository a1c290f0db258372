// Package config provides configuration management.
//
// Precedence, lowest first: defaults, config file (.hcl or .json), .env file
// and process environment, command line flags.
package config

import (
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"

	"which-portal/internal/errors"
	"which-portal/internal/logging"
)

// Environment variables read by ApplyEnv
const (
	EnvLogLevel  = "WHICH_PORTAL_LOG_LEVEL"
	EnvLogFormat = "WHICH_PORTAL_LOG_FORMAT"
	EnvLogOutput = "WHICH_PORTAL_LOG_OUTPUT"
	EnvFormat    = "WHICH_PORTAL_FORMAT"
	EnvExplain   = "WHICH_PORTAL_EXPLAIN"
	EnvNoColor   = "WHICH_PORTAL_NO_COLOR"
	EnvAddr      = "WHICH_PORTAL_ADDR"
	EnvGinMode   = "WHICH_PORTAL_GIN_MODE"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Server contains HTTP API configuration
	Server ServerConfig `json:"server"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the itinerary format (text, json)
	Format string `json:"format"`

	// Explain appends the full candidate breakdown
	Explain bool `json:"explain"`

	// NoColor disables ANSI colors in tables
	NoColor bool `json:"no_color"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// Mode is the gin mode (debug, release, test)
	Mode string `json:"mode"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Logging: logging.DefaultConfig(),
		Output: OutputConfig{
			Format: "text",
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
	}
}

// file mirrors Config for hclsimple; every block and attribute is optional
type file struct {
	Logging *struct {
		Level       string `hcl:"level,optional"`
		Format      string `hcl:"format,optional"`
		Output      string `hcl:"output,optional"`
		Development *bool  `hcl:"development,optional"`
	} `hcl:"logging,block"`

	Output *struct {
		Format  string `hcl:"format,optional"`
		Explain *bool  `hcl:"explain,optional"`
		NoColor *bool  `hcl:"no_color,optional"`
	} `hcl:"output,block"`

	Server *struct {
		Addr string `hcl:"addr,optional"`
		Mode string `hcl:"mode,optional"`
	} `hcl:"server,block"`
}

// Load reads a config file on top of the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Config("cannot read config "+path, err)
	}

	var f file
	if err := hclsimple.DecodeFile(path, nil, &f); err != nil {
		return nil, errors.Config("cannot decode config "+path, err)
	}
	cfg.merge(&f)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(f *file) {
	if l := f.Logging; l != nil {
		setString(&c.Logging.Level, l.Level)
		setString(&c.Logging.Format, l.Format)
		setString(&c.Logging.Output, l.Output)
		if l.Development != nil {
			c.Logging.Development = *l.Development
		}
	}
	if o := f.Output; o != nil {
		setString(&c.Output.Format, o.Format)
		if o.Explain != nil {
			c.Output.Explain = *o.Explain
		}
		if o.NoColor != nil {
			c.Output.NoColor = *o.NoColor
		}
	}
	if s := f.Server; s != nil {
		setString(&c.Server.Addr, s.Addr)
		setString(&c.Server.Mode, s.Mode)
	}
}

// LoadEnvFiles loads .env files into the process environment. Missing files
// are skipped; variables already set are not overridden.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.Config("cannot load env file "+p, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Config("invalid boolean in "+key, err)
		}
		*dst = b
		return nil
	}

	str(EnvLogLevel, &c.Logging.Level)
	str(EnvLogFormat, &c.Logging.Format)
	str(EnvLogOutput, &c.Logging.Output)
	str(EnvFormat, &c.Output.Format)
	str(EnvAddr, &c.Server.Addr)
	str(EnvGinMode, &c.Server.Mode)
	if err := boolean(EnvExplain, &c.Output.Explain); err != nil {
		return err
	}
	if err := boolean(EnvNoColor, &c.Output.NoColor); err != nil {
		return err
	}
	return c.Validate()
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return errors.Newf(errors.TypeConfig, "invalid output format %q (want text or json)", c.Output.Format)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return errors.Newf(errors.TypeConfig, "invalid server mode %q", c.Server.Mode)
	}
	return nil
}

// Resolve applies the full precedence chain short of command line flags:
// defaults, config file, env files, process environment.
func Resolve(path string, envFiles ...string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := LoadEnvFiles(envFiles...); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
