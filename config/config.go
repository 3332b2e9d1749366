// Package config loads and saves tagwalk's TOML configuration: scan
// profiles for the markup scanner and fetch profiles for the HTTP
// layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dhamidi/tagwalk/fetch"
	"github.com/dhamidi/tagwalk/markup"
)

// Config is the whole tagwalk configuration file.
type Config struct {
	Scan   ScanConfig   `toml:"scan"`
	Fetch  FetchConfig  `toml:"fetch"`
	Output OutputConfig `toml:"output"`
}

// ScanConfig extends the scanner's built-in tag sets.
type ScanConfig struct {
	VoidTags    []string `toml:"void_tags"`
	RawTextTags []string `toml:"raw_text_tags"`
}

// FetchConfig adjusts the HTTP layer.
type FetchConfig struct {
	UserAgent      string            `toml:"user_agent"`
	TimeoutSeconds int               `toml:"timeout_seconds"`
	MaxRedirects   int               `toml:"max_redirects"`
	Headers        map[string]string `toml:"headers"`
}

// OutputConfig controls where fetched resources are saved.
type OutputConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			TimeoutSeconds: int(fetch.DefaultTimeout / time.Second),
			MaxRedirects:   fetch.DefaultMaxRedirects,
		},
		Output: OutputConfig{Dir: "."},
	}
}

// DefaultPath returns ~/.config/tagwalk/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tagwalk", "config.toml"), nil
}

// Load reads a config file. Fields absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads the file at path, or the file at DefaultPath when
// path is empty. A missing file yields the default configuration; an
// unreadable or malformed one is an error.
func LoadOrDefault(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// NavigatorOptions translates the scan profile into scanner options.
func (c *Config) NavigatorOptions() []markup.Option {
	var opts []markup.Option
	if len(c.Scan.VoidTags) > 0 {
		opts = append(opts, markup.WithVoidTags(c.Scan.VoidTags...))
	}
	if len(c.Scan.RawTextTags) > 0 {
		opts = append(opts, markup.WithRawTextTags(c.Scan.RawTextTags...))
	}
	return opts
}

// FetcherOptions translates the fetch profile into fetcher options.
func (c *Config) FetcherOptions() []fetch.FetchOption {
	var opts []fetch.FetchOption
	if c.Fetch.UserAgent != "" {
		opts = append(opts, fetch.WithUserAgent(c.Fetch.UserAgent))
	}
	if c.Fetch.TimeoutSeconds > 0 {
		opts = append(opts, fetch.WithTimeout(time.Duration(c.Fetch.TimeoutSeconds)*time.Second))
	}
	if c.Fetch.MaxRedirects > 0 {
		opts = append(opts, fetch.WithMaxRedirects(c.Fetch.MaxRedirects))
	}
	for name, value := range c.Fetch.Headers {
		opts = append(opts, fetch.WithHeader(name, value))
	}
	return opts
}
