package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"floroz/pkg/parser"
)

// DefaultPath is the config file looked up in the working directory when no
// path is given.
const DefaultPath = "floroz.toml"

// DefaultEnvFile is loaded into the process environment when present.
const DefaultEnvFile = ".env"

// Output formats accepted by the ast command.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the settings of the floroz command line tools
type Config struct {
	Output   string `toml:"output"`
	MaxDepth int    `toml:"max_depth"`
	Color    bool   `toml:"color"`
	Prompt   string `toml:"prompt"`

	// Source is the config file that was read, empty if none.
	Source string `toml:"-"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Output:   OutputText,
		MaxDepth: parser.DefaultMaxDepth,
		Color:    true,
		Prompt:   "floroz> ",
	}
}

// Load builds the configuration from defaults, the TOML file at path, the
// .env file and FLOROZ_* environment variables, in that order. An empty path
// means DefaultPath, which may be missing. An explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		cfg.Source = path
	} else if explicit {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// godotenv.Load never overrides variables already set in the process.
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from FLOROZ_* environment variables
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("FLOROZ_OUTPUT"); ok {
		c.Output = v
	}
	if v, ok := os.LookupEnv("FLOROZ_MAX_DEPTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FLOROZ_MAX_DEPTH %q: %w", v, err)
		}
		c.MaxDepth = n
	}
	if v, ok := os.LookupEnv("FLOROZ_NO_COLOR"); ok && v != "" && v != "0" {
		c.Color = false
	}
	if v, ok := os.LookupEnv("FLOROZ_PROMPT"); ok {
		c.Prompt = v
	}
	return nil
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q (want text, json or yaml)", c.Output)
	}

	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

// ParserOptions returns the parser options derived from the configuration
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(c.MaxDepth)}
}
