package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "launchboard.yaml"

const (
	DefaultEndpoint  = "https://api.spacex.land/graphql/"
	DefaultOutDir    = "out"
	DefaultTimezone  = "Local"
	DefaultTimeout   = 30 * time.Second
	DefaultServeAddr = ":8080"
	DefaultLogLevel  = "info"
)

var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that reads "30s"-style YAML scalars.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

type Config struct {
	Endpoint  string   `yaml:"endpoint"`
	OutDir    string   `yaml:"out_dir"`
	PublicDir string   `yaml:"public_dir"`
	Title     string   `yaml:"title"`
	Timezone  string   `yaml:"timezone"`
	Timeout   Duration `yaml:"timeout"`
	Clean     bool     `yaml:"clean"`

	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	} `yaml:"log"`

	Serve struct {
		Addr string `yaml:"addr"`
	} `yaml:"serve"`
}

func Default() *Config {
	cfg := &Config{
		Endpoint: DefaultEndpoint,
		OutDir:   DefaultOutDir,
		Timezone: DefaultTimezone,
		Timeout:  Duration(DefaultTimeout),
	}
	cfg.Log.Level = DefaultLogLevel
	cfg.Serve.Addr = DefaultServeAddr
	return cfg
}

// Load reads path on top of the defaults. A missing file is only an error
// when the caller asked for it explicitly.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("%w: endpoint is required", ErrInvalidConfig)
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: endpoint must be an http(s) URL, got %q", ErrInvalidConfig, c.Endpoint)
	}

	if c.OutDir == "" {
		return fmt.Errorf("%w: out_dir is required", ErrInvalidConfig)
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative", ErrInvalidConfig)
	}

	return nil
}

// Location resolves Timezone; empty means the machine's local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout)
}
