package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/djed/internal/errors"
)

const (
	// JSONFileName is the name of the JSON configuration file.
	JSONFileName = "djed.json"

	// YAMLFileName is the name of the YAML configuration file.
	YAMLFileName = "djed.yaml"

	// DefaultNamespace is the default Prometheus namespace.
	DefaultNamespace = "djed"

	// DefaultMetricsAddr is the default preview server address.
	DefaultMetricsAddr = "localhost:9090"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "github.com/vango-dev/djed"

	// DefaultDemo is the demo application mounted by the CLI.
	DefaultDemo = "counter"
)

// Config is the djed configuration.
type Config struct {
	// Log configures the slog handler used by the CLI.
	Log LogConfig `json:"log" yaml:"log"`

	// Metrics configures the Prometheus collector and preview server.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`

	// Demo selects the demo application and how many ticks it receives.
	Demo DemoConfig `json:"demo" yaml:"demo"`

	path string
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// MetricsConfig contains metrics settings.
type MetricsConfig struct {
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Addr      string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// TracingConfig contains tracing settings.
type TracingConfig struct {
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// DemoConfig contains demo settings.
type DemoConfig struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Ticks int    `json:"ticks,omitempty" yaml:"ticks,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
			Addr:      DefaultMetricsAddr,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Demo: DemoConfig{
			Name:  DefaultDemo,
			Ticks: 3,
		},
	}
}

// Load reads configuration from a file. The format is chosen by extension:
// .json uses encoding/json, .yaml and .yml use YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E120").
				WithDetail("No config file at " + path).
				WithSuggestion("Create " + JSONFileName + " or " + YAMLFileName + ", or run without --config")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, errors.New("E121").
			WithDetail("Unsupported config extension " + strconv.Quote(ext)).
			WithSuggestion("Use a .json, .yaml or .yml file")
	}
	if err != nil {
		return nil, errors.New("E121").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
	}

	cfg.path = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromDir loads djed.json from dir, falling back to djed.yaml.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return nil, errors.New("E120").
		WithDetail("No " + JSONFileName + " or " + YAMLFileName + " found in " + dir)
}

// Exists reports whether dir contains a config file.
func Exists(dir string) bool {
	for _, name := range []string{JSONFileName, YAMLFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// SaveTo writes the configuration to path in the format its extension names.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E121").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}
	c.path = path
	return nil
}

// Path returns the path the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = def.Metrics.Namespace
	}
	if c.Metrics.Addr == "" {
		c.Metrics.Addr = def.Metrics.Addr
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = def.Tracing.TracerName
	}
	if c.Demo.Name == "" {
		c.Demo.Name = def.Demo.Name
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, ok := parseLevel(c.Log.Level); !ok {
		return invalid("log.level", c.Log.Level, "Use debug, info, warn or error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return invalid("log.format", c.Log.Format, "Use text or json")
	}
	if c.Demo.Ticks < 0 {
		return invalid("demo.ticks", strconv.Itoa(c.Demo.Ticks), "Use zero or a positive number")
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

// JSONLogs reports whether logs should use the JSON handler.
func (c *Config) JSONLogs() bool {
	return strings.EqualFold(c.Log.Format, "json")
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

func invalid(field, value, suggestion string) error {
	return errors.New("E122").
		WithDetail(field + " = " + strconv.Quote(value)).
		WithSuggestion(suggestion)
}
