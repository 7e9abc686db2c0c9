package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oukeidos/assctx/internal/ass"
	"gopkg.in/yaml.v3"
)

// Config is the optional user configuration read from a YAML file.
// Environment variables override file values at runtime.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Context ContextConfig `yaml:"context"`
	Logging LoggingConfig `yaml:"logging"`
}

type InputConfig struct {
	Path string `yaml:"path"`
}

type OutputConfig struct {
	Path string `yaml:"path"`
	// Suffix is appended to the input name when only an input is given.
	Suffix       string `yaml:"suffix"`
	InjectStyles bool   `yaml:"inject_styles"`
}

type ContextConfig struct {
	PrevStyle    string `yaml:"prev_style"`
	CurrentStyle string `yaml:"current_style"`
	NextStyle    string `yaml:"next_style"`
	Placeholder  string `yaml:"placeholder"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Input:  InputConfig{Path: "input_subtitles.ass"},
		Output: OutputConfig{Path: "output.ass", Suffix: "_context"},
		Context: ContextConfig{
			PrevStyle:    ass.DefaultPrevStyle,
			CurrentStyle: ass.DefaultCurrentStyle,
			NextStyle:    ass.DefaultNextStyle,
			Placeholder:  ass.DefaultPlaceholder,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Env var names used as overrides.
const (
	EnvConfig       = "ASSCTX_CONFIG"
	EnvInput        = "ASSCTX_INPUT"
	EnvOutput       = "ASSCTX_OUTPUT"
	EnvInjectStyles = "ASSCTX_INJECT_STYLES"
	EnvLogLevel     = "ASSCTX_LOG_LEVEL"
	EnvLogFile      = "ASSCTX_LOG_FILE"
)

// Path returns the config file path: explicit, then $ASSCTX_CONFIG, then the user config dir.
func Path(explicit string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, "assctx", "config.yaml"), nil
}

// Load reads the config file at path (if present), merges it over the defaults
// and applies environment overrides. A missing file is not an error unless
// required is set; a file that exists but does not parse always is.
func Load(path string, required bool) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case errors.Is(err, os.ErrNotExist) && !required:
	default:
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	applyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate rejects style tags that would break the event line layout.
func (c Config) Validate() error {
	styles := map[string]string{
		"context.prev_style":    c.Context.PrevStyle,
		"context.current_style": c.Context.CurrentStyle,
		"context.next_style":    c.Context.NextStyle,
	}
	for _, key := range []string{"context.prev_style", "context.current_style", "context.next_style"} {
		v := styles[key]
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
		if strings.ContainsAny(v, ",\r\n") {
			return fmt.Errorf("%s must not contain commas or line breaks: %q", key, v)
		}
	}
	if strings.ContainsAny(c.Context.Placeholder, "\r\n") {
		return fmt.Errorf("context.placeholder must not contain line breaks")
	}
	return nil
}

// Options converts the context settings for the expander.
func (c Config) Options() ass.Options {
	return ass.Options{
		PrevStyle:    c.Context.PrevStyle,
		CurrentStyle: c.Context.CurrentStyle,
		NextStyle:    c.Context.NextStyle,
		Placeholder:  c.Context.Placeholder,
	}
}

func mergeInto(dst *Config, src *Config) {
	if v := strings.TrimSpace(src.Input.Path); v != "" {
		dst.Input.Path = v
	}
	if v := strings.TrimSpace(src.Output.Path); v != "" {
		dst.Output.Path = v
	}
	if src.Output.Suffix != "" {
		dst.Output.Suffix = src.Output.Suffix
	}
	dst.Output.InjectStyles = src.Output.InjectStyles
	if v := strings.TrimSpace(src.Context.PrevStyle); v != "" {
		dst.Context.PrevStyle = v
	}
	if v := strings.TrimSpace(src.Context.CurrentStyle); v != "" {
		dst.Context.CurrentStyle = v
	}
	if v := strings.TrimSpace(src.Context.NextStyle); v != "" {
		dst.Context.NextStyle = v
	}
	if src.Context.Placeholder != "" {
		dst.Context.Placeholder = src.Context.Placeholder
	}
	if v := strings.TrimSpace(src.Logging.Level); v != "" {
		dst.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvInput)); v != "" {
		cfg.Input.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvInjectStyles)); v != "" {
		lv := strings.ToLower(v)
		cfg.Output.InjectStyles = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}
