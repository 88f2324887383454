package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/mitchellh/go-homedir"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultConfigPath is the optional rc file read at startup.
const DefaultConfigPath = "~/.qcd.rc"

// DefaultStorePath is where visit counts are kept unless configured otherwise.
const DefaultStorePath = "~/.qcd.db"

// Config represents the application configuration.
type Config struct {
	App   ApplicationConfig `yaml:"app"`
	Store StoreConfig       `yaml:"store"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Store.Validate()
}

// ApplicationConfig holds application-level configuration.
//
// Logs always go to stderr; stdout carries only the directory for cd.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatText
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.Required, validation.In(LogFormatText, LogFormatJSON)),
	)
}

// StoreConfig holds the location of the directory store file.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the store configuration.
func (c *StoreConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// ResolvedPath returns Path with a leading ~ expanded to the home directory.
func (c *StoreConfig) ResolvedPath() (string, error) {
	p, err := homedir.Expand(c.Path)
	if err != nil {
		return "", fmt.Errorf("store: expand path %q: %w", c.Path, err)
	}
	return p, nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelError,
			LogFormat: LogFormatText,
		},
		Store: StoreConfig{
			Path: DefaultStorePath,
		},
	}
}
