package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/pascal/foundation/calc"
	mdwevaluator "github.com/msto63/pascal/foundation/calc/evaluator"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	mdwlog "github.com/msto63/pascal/foundation/core/log"
)

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = "PASCAL_CONFIG"

// envPrefix prefixes variables that override single settings,
// e.g. PASCAL_GENERAL_LOG_LEVEL
const envPrefix = "PASCAL"

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	REPL      REPLConfig      `toml:"repl" yaml:"repl"`
	Evaluator EvaluatorConfig `toml:"evaluator" yaml:"evaluator"`

	// path of the file the configuration was loaded from, empty for defaults
	source string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// REPLConfig holds settings of the interactive front ends
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	ExitCommand string `toml:"exit_command" yaml:"exit_command"`
	Color       bool   `toml:"color" yaml:"color"`
}

// EvaluatorConfig holds limits of the calculator session
type EvaluatorConfig struct {
	MaxInputLength int   `toml:"max_input_length" yaml:"max_input_length"`
	MaxExponent    int64 `toml:"max_exponent" yaml:"max_exponent"`
	MaxPowerDigits int64 `toml:"max_power_digits" yaml:"max_power_digits"`
}

// Format represents the configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Name:        "pascal",
			Environment: "development",
			LogLevel:    "warn",
			LogFormat:   "console",
		},
		REPL: REPLConfig{
			Prompt:      "🐱 ► ",
			ExitCommand: "exit()",
			Color:       true,
		},
		Evaluator: EvaluatorConfig{
			MaxInputLength: calc.DefaultMaxInputLength,
			MaxExponent:    mdwevaluator.DefaultMaxExponent,
			MaxPowerDigits: mdwevaluator.DefaultMaxPowerDigits,
		},
	}
}

// Load loads configuration from a TOML or YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(mdwerror.CodeNotFound).
			WithSeverity(mdwerror.SeverityHigh).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		if mdwErr, ok := err.(*mdwerror.Error); ok {
			return nil, mdwErr.WithDetail("path", path)
		}
		return nil, err
	}
	cfg.source = path
	return cfg, nil
}

// Parse decodes content over the defaults, applies environment overrides
// and validates the result
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.New(fmt.Sprintf("unknown config key: %s", undecoded[0])).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse").
				WithDetail("key", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Parse")
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by PASCAL_CONFIG or the first file
// found in the default locations
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mdwerror.New("no config file found, set PASCAL_CONFIG or create configs/config.toml").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pascal", "config.toml"))
	}
	return paths
}

// Source returns the path the configuration was loaded from
func (c *Config) Source() string {
	return c.source
}

// Validate checks value ranges and names
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if c.Evaluator.MaxInputLength <= 0 {
		return invalid("evaluator.max_input_length", c.Evaluator.MaxInputLength, nil)
	}
	if c.Evaluator.MaxExponent <= 0 {
		return invalid("evaluator.max_exponent", c.Evaluator.MaxExponent, nil)
	}
	if c.Evaluator.MaxPowerDigits <= 0 {
		return invalid("evaluator.max_power_digits", c.Evaluator.MaxPowerDigits, nil)
	}
	if strings.TrimSpace(c.REPL.ExitCommand) == "" {
		return invalid("repl.exit_command", c.REPL.ExitCommand, nil)
	}
	return nil
}

// NewLogger creates the application logger described by the general
// section. Entries go to out, or to stderr when out is nil, and carry the
// configured environment.
func (c *Config) NewLogger(out io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return nil, invalid("general.log_level", c.General.LogLevel, err)
	}
	format, err := mdwlog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return nil, invalid("general.log_format", c.General.LogFormat, err)
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Name:   c.General.Name,
		Output: out,
	}).WithField("environment", c.General.Environment), nil
}

// SessionOptions returns calculator session options for logger
func (c *Config) SessionOptions(logger *mdwlog.Logger) calc.Options {
	return calc.Options{
		Logger:         logger,
		MaxInputLength: c.Evaluator.MaxInputLength,
		MaxExponent:    c.Evaluator.MaxExponent,
		MaxPowerDigits: c.Evaluator.MaxPowerDigits,
	}
}

// applyDefaults restores defaults for values a file set to empty
func (c *Config) applyDefaults() {
	def := Default()
	if c.General.Name == "" {
		c.General.Name = def.General.Name
	}
	if c.General.Environment == "" {
		c.General.Environment = def.General.Environment
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = def.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = def.General.LogFormat
	}
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = def.REPL.Prompt
	}
	if c.REPL.ExitCommand == "" {
		c.REPL.ExitCommand = def.REPL.ExitCommand
	}
}

// applyEnv overrides settings from PASCAL_<SECTION>_<KEY> variables
func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"general.log_level":   &c.General.LogLevel,
		"general.log_format":  &c.General.LogFormat,
		"general.environment": &c.General.Environment,
		"repl.prompt":         &c.REPL.Prompt,
	}
	for key, target := range strs {
		if v, ok := os.LookupEnv(envKey(key)); ok {
			*target = v
		}
	}

	if v, ok := os.LookupEnv(envKey("repl.color")); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return invalid("repl.color", v, err)
		}
		c.REPL.Color = b
	}
	if v, ok := os.LookupEnv(envKey("evaluator.max_input_length")); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return invalid("evaluator.max_input_length", v, err)
		}
		c.Evaluator.MaxInputLength = n
	}
	if v, ok := os.LookupEnv(envKey("evaluator.max_exponent")); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return invalid("evaluator.max_exponent", v, err)
		}
		c.Evaluator.MaxExponent = n
	}
	if v, ok := os.LookupEnv(envKey("evaluator.max_power_digits")); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return invalid("evaluator.max_power_digits", v, err)
		}
		c.Evaluator.MaxPowerDigits = n
	}
	return nil
}

// envKey converts a config key to its variable name:
// repl.prompt -> PASCAL_REPL_PROMPT
func envKey(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// detectFormat determines the configuration format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func invalid(key string, value interface{}, cause error) error {
	var err *mdwerror.Error
	if cause != nil {
		err = mdwerror.Wrap(cause, fmt.Sprintf("invalid value for %s", key))
	} else {
		err = mdwerror.New(fmt.Sprintf("invalid value for %s", key))
	}
	return err.WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}
