// Package config loads server settings from an optional .lsifnavrc YAML
// file. Missing or unreadable files fall back to defaults; flags override
// whatever the file provides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-overridable server settings.
type Config struct {
	Index IndexConfig `yaml:"index"`
	Log   LogConfig   `yaml:"log"`
	URIs  URIConfig   `yaml:"uris"`
}

// IndexConfig locates the dump to load at startup.
type IndexConfig struct {
	// Path is the dump file to load. Empty means the path must come from
	// the command line.
	Path string `yaml:"path"`
}

// LogConfig controls slog output.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Default: info.
	Level string `yaml:"level"`
}

// URIConfig configures the editor/index URI prefix translation applied at
// the tool boundary. Both empty means URIs pass through untouched.
type URIConfig struct {
	// EditorPrefix is the URI prefix requests arrive with.
	EditorPrefix string `yaml:"editor_prefix"`
	// IndexPrefix is the URI prefix the dump was produced with.
	IndexPrefix string `yaml:"index_prefix"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{}
}

// Load reads .lsifnavrc from the given directory. Returns defaults if the
// file doesn't exist or doesn't parse.
func Load(dir string) *Config {
	cfg := Default()

	path := filepath.Join(dir, ".lsifnavrc")
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg // file not found or unreadable — use defaults
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default() // invalid YAML — use defaults
	}

	return cfg
}

// EffectiveLogLevel returns the configured log level or "info".
func (c *Config) EffectiveLogLevel() string {
	if c.Log.Level == "" {
		return "info"
	}
	return c.Log.Level
}
