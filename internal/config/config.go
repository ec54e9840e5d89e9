// Package config loads loidraft.yaml. Every key is optional; a missing file
// means built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Makepad-fr/loidraft/internal/model"
)

const (
	// FileName is looked up in the working directory when no path is given.
	FileName = "loidraft.yaml"

	// EnvPath overrides the config file location.
	EnvPath = "LOIDRAFT_CONFIG"
	// EnvTheme overrides the theme key.
	EnvTheme = "LOIDRAFT_THEME"

	defaultTheme         = "classic"
	defaultMarkdownStyle = "dark"
)

// Config models loidraft.yaml.
type Config struct {
	Theme         string            `yaml:"theme"`
	MarkdownStyle string            `yaml:"markdown_style"`
	LogFile       string            `yaml:"log_file"`
	Debug         bool              `yaml:"debug"`
	Deal          model.DealContext `yaml:"deal"`

	// Path is where the config was read from; empty when defaults were used.
	Path string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:         defaultTheme,
		MarkdownStyle: defaultMarkdownStyle,
		Deal:          model.DefaultDeal(),
	}
}

// Load reads the config at path. An empty path falls back to $LOIDRAFT_CONFIG,
// then ./loidraft.yaml. Only an explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		if env := strings.TrimSpace(os.Getenv(EnvPath)); env != "" {
			path, explicit = env, true
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return Config{}, fmt.Errorf("config: getwd: %w", err)
			}
			path = filepath.Join(wd, FileName)
		}
	}

	cfg := Default()
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
		cfg.Path = path
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if env := strings.TrimSpace(os.Getenv(EnvTheme)); env != "" {
		cfg.Theme = env
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		c.Theme = defaultTheme
	}
	c.MarkdownStyle = strings.TrimSpace(c.MarkdownStyle)
	if c.MarkdownStyle == "" {
		c.MarkdownStyle = defaultMarkdownStyle
	}
	c.LogFile = strings.TrimSpace(c.LogFile)
}
