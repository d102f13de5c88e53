package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/domkit-dev/domkit/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "domkit.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultTitle is the default preview page title.
	DefaultTitle = "domkit preview"
)

// Config represents the domkit.json configuration used by the CLI.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Render contains output configuration.
	Render RenderConfig `json:"render,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server configuration.
type PreviewConfig struct {
	// Host is the listen host.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`

	// Title is the preview page title.
	Title string `json:"title,omitempty"`

	// Metrics exposes Prometheus metrics on /metrics when true.
	Metrics bool `json:"metrics,omitempty"`

	// Watch lists files whose changes trigger a browser reload.
	Watch []string `json:"watch,omitempty"`
}

// RenderConfig contains output configuration.
type RenderConfig struct {
	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit for pretty output.
	Indent string `json:"indent,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FromError(err, errors.CodeConfigNotFound)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.FromError(err, errors.CodeConfigInvalid).
			WithSuggestion("check " + path + " for JSON syntax errors")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return &cfg, nil
}

// Find searches the given directory and its parents for domkit.json
// and loads the first one found. When none exists, the defaults are
// returned with no error.
func Find(dir string) (*Config, error) {
	// Relative paths ("." from the CLI) never ascend past themselves,
	// so resolve before walking.
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.FromError(err, errors.CodeConfigNotFound)
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Path returns the path the configuration was loaded from, or empty
// for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// Addr returns the preview server listen address.
func (c *Config) Addr() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

func (c *Config) applyDefaults() {
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Title == "" {
		c.Preview.Title = DefaultTitle
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
}
