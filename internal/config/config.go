// Package config loads and validates the server configuration.
//
// Configuration comes from an optional TOML file. Zero values fall back to
// defaults, and the HARMONY_MCP_LOG_LEVEL environment variable overrides the
// file's log level.
//
//	log_level = "info"
//
//	[defaults]
//	step = 10
//	analogous_count = 2
//
//	[swatch]
//	size = 48
//	scale = 1.0
//
//	[http]
//	addr = ":8080"
package config

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/ironsheep/color-harmony-mcp/internal/harmony"
	"github.com/ironsheep/color-harmony-mcp/internal/palette"
)

// EnvLogLevel names the environment variable that overrides LogLevel.
const EnvLogLevel = "HARMONY_MCP_LOG_LEVEL"

const (
	defaultLogLevel       = "info"
	defaultAnalogousCount = 2
	defaultSwatchSize     = 48
	defaultSwatchScale    = 1.0
	defaultHTTPAddr       = ":8080"
)

// Config holds the tunable settings for the server and its tools.
type Config struct {
	LogLevel string   `toml:"log_level"`
	Defaults Defaults `toml:"defaults"`
	Swatch   Swatch   `toml:"swatch"`
	HTTP     HTTP     `toml:"http"`
}

// Defaults are used by tools when the caller leaves an argument out.
type Defaults struct {
	Step           float64 `toml:"step"`
	AnalogousCount int     `toml:"analogous_count"`
}

// Swatch controls PNG preview rendering.
type Swatch struct {
	Size  int     `toml:"size"`
	Scale float64 `toml:"scale"`
}

// HTTP configures the optional HTTP transport.
type HTTP struct {
	Addr string `toml:"addr"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the TOML file at path, applies defaults and the environment
// override, and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	c := &Config{}
	if path != "" {
		md, err := toml.DecodeFile(path, c)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.LogLevel = lvl
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "illegal config")
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Defaults.Step == 0 {
		c.Defaults.Step = harmony.DefaultStep
	}
	if c.Defaults.AnalogousCount == 0 {
		c.Defaults.AnalogousCount = defaultAnalogousCount
	}
	if c.Swatch.Size == 0 {
		c.Swatch.Size = defaultSwatchSize
	}
	if c.Swatch.Scale == 0 {
		c.Swatch.Scale = defaultSwatchScale
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = defaultHTTPAddr
	}
}

// Validate reports the first setting that is out of range.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info":
	default:
		return errors.New("log_level must be debug or info, got " + c.LogLevel)
	}

	if c.Defaults.Step <= 0 || c.Defaults.Step >= 100 {
		return errors.Errorf("defaults.step must be between 0 and 100, got %g", c.Defaults.Step)
	}

	if c.Defaults.AnalogousCount != 2 && c.Defaults.AnalogousCount != 4 {
		return errors.Errorf("defaults.analogous_count must be 2 or 4, got %d", c.Defaults.AnalogousCount)
	}

	if c.Swatch.Size < 0 || c.Swatch.Scale < 0 {
		return errors.New("swatch size and scale must not be negative")
	}
	if float64(c.Swatch.Size)*c.Swatch.Scale > palette.MaxSwatchSize {
		return errors.Errorf("swatch tile of %d px at scale %g exceeds %d px",
			c.Swatch.Size, c.Swatch.Scale, palette.MaxSwatchSize)
	}

	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}
