// Package config provides configuration for the bitchess command.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/lgbarn/bitboard-chess-go/internal/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "bitchess"

// configFileName is the name of the JSON configuration file.
const configFileName = "config.json"

// Config holds all program configuration.
type Config struct {
	Engine *EngineConfig `json:"engine"`
	Batch  *BatchConfig  `json:"batch"`
	Output *OutputConfig `json:"output"`

	// LogLevel is a logrus level name ("info", "debug", ...)
	LogLevel string `json:"log_level"`

	// Output streams
	OutputFile io.Writer `json:"-"`
	LogFile    io.Writer `json:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Engine:     NewEngineConfig(),
		Batch:      NewBatchConfig(),
		Output:     NewOutputConfig(),
		LogLevel:   logrus.InfoLevel.String(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// DefaultPath returns the location of the per-user configuration file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, configFileName)
}

// Load reads a JSON configuration file over the defaults. Fields missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %v: %w", path, err, errors.ErrInvalidConfig)
	}
	cfg.fillSections()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// LoadDefault loads the per-user configuration file if one exists and
// returns the defaults otherwise.
func LoadDefault() (*Config, error) {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, configFileName))
	if err != nil {
		return NewConfig(), nil
	}
	return Load(path)
}

// fillSections restores defaults for sections set to null in the file.
func (c *Config) fillSections() {
	if c.Engine == nil {
		c.Engine = NewEngineConfig()
	}
	if c.Batch == nil {
		c.Batch = NewBatchConfig()
	}
	if c.Output == nil {
		c.Output = NewOutputConfig()
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if err := c.Batch.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// Level returns the configured logrus level, Info if it cannot be parsed.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
