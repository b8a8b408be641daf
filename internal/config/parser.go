package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

// Environment variables that override file settings.
const (
	EnvSource    = "SHOWCASE_SOURCE"
	EnvLogLevel  = "SHOWCASE_LOG_LEVEL"
	EnvLogFile   = "SHOWCASE_LOG_FILE"
	EnvHumanLogs = "SHOWCASE_HUMAN_LOGS"
	EnvTimeout   = "SHOWCASE_TIMEOUT"
)

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// Path is an optional YAML config file. A missing file is an error only
	// when the path was given explicitly.
	Path string
	// DotEnvPath is an optional .env file; a missing file is ignored.
	DotEnvPath string
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// Load resolves the configuration: defaults, then the YAML file, then the
// environment (after loading the .env file), and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	cfg := Default()

	if opts.Path != "" {
		if err := mergeFile(&cfg, opts.Path); err != nil {
			return nil, err
		}
	}

	if opts.DotEnvPath != "" {
		if err := godotenv.Load(opts.DotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, showcaseerrors.NewParseError(opts.DotEnvPath, 0, err)
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return showcaseerrors.NewParseError(path, 0, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return showcaseerrors.NewParseError(path, showcaseerrors.ExtractLine(err), err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSource); ok && strings.TrimSpace(v) != "" {
		cfg.Source = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvHumanLogs); ok && v != "" {
		human, err := strconv.ParseBool(v)
		if err != nil {
			return showcaseerrors.NewValidationError(EnvHumanLogs, fmt.Sprintf("invalid boolean %q", v), err)
		}
		cfg.HumanLogs = human
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return showcaseerrors.NewValidationError(EnvTimeout, fmt.Sprintf("invalid duration %q", v), err)
		}
		cfg.Timeout = timeout
	}
	return nil
}
