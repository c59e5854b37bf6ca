package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the command line tool. It may be loaded from a
// YAML file and is overridden by command line flags.
//
//	trace_level: info
//	capacity: 10000
//	color: auto
type Config struct {
	TraceLevel string `yaml:"trace_level"`
	Capacity   int    `yaml:"capacity"` // 0 = unlimited
	Color      string `yaml:"color"`    // auto, always or never
}

// DefaultConfig returns the settings used if no config file is given.
func DefaultConfig() Config {
	return Config{
		TraceLevel: "error",
		Color:      "auto",
	}
}

// LoadConfig reads a YAML config. Missing keys keep their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.validate()
}

// LoadConfigFile reads a YAML config from a file.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultConfig(), err
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("config: capacity must not be negative, is %d", c.Capacity)
	}
	if _, ok := traceLevels[strings.ToLower(c.TraceLevel)]; !ok {
		return fmt.Errorf("config: unknown trace level %q", c.TraceLevel)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("config: color must be one of auto, always, never; is %q", c.Color)
	}
	return nil
}

var traceLevels = map[string]tracing.TraceLevel{
	"debug": tracing.LevelDebug,
	"info":  tracing.LevelInfo,
	"error": tracing.LevelError,
}

// Level returns the trace level of the config.
func (c Config) Level() tracing.TraceLevel {
	if l, ok := traceLevels[strings.ToLower(c.TraceLevel)]; ok {
		return l
	}
	return tracing.LevelError
}

// UseColor decides whether output is colored. isTerminal reports whether
// standard output is a terminal.
func (c Config) UseColor(isTerminal bool) bool {
	switch strings.ToLower(c.Color) {
	case "always":
		return true
	case "never":
		return false
	}
	return isTerminal
}
