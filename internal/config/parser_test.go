package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/catalog"
	showcaseerrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestLoadFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "valid configuration is parsed",
			contents: `source: https://shop.example/data/tote_bag.json
log_level: debug
timeout: 3s
markdown_description: true
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "https://shop.example/data/tote_bag.json", cfg.Source)
				require.Equal(t, "debug", cfg.LogLevel)
				require.Equal(t, 3*time.Second, cfg.Timeout)
				require.True(t, cfg.MarkdownDescription)
				require.True(t, cfg.HumanLogs, "unset fields keep their defaults")
			},
		},
		{
			name:     "empty file keeps defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, catalog.DefaultLocation, cfg.Source)
				require.Equal(t, "info", cfg.LogLevel)
				require.False(t, cfg.MarkdownDescription)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "source: [a, b\nlog_level: info\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *showcaseerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "bad log level returns validation error",
			contents: "log_level: chatty\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *showcaseerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log_level", validationErr.Field)
			},
		},
		{
			name:     "unsupported scheme returns validation error",
			contents: "source: ftp://shop.example/tote.json\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *showcaseerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "source", validationErr.Field)
			},
		},
		{
			name:     "negative timeout returns validation error",
			contents: "timeout: -1s\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *showcaseerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "timeout", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "showcase.yaml", tc.contents)
			cfg, err := Load(LoadOptions{Path: path, LookupEnv: noEnv})
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadPrecedence(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "showcase.yaml", "source: from-file.json\nlog_level: warn\n")
	env := map[string]string{
		EnvSource:    "https://cdn.example/tote.json",
		EnvHumanLogs: "false",
		EnvTimeout:   "750ms",
	}

	cfg, err := Load(LoadOptions{
		Path: path,
		LookupEnv: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/tote.json", cfg.Source)
	require.Equal(t, "warn", cfg.LogLevel)
	require.False(t, cfg.HumanLogs)
	require.Equal(t, 750*time.Millisecond, cfg.Timeout)
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(LoadOptions{LookupEnv: noEnv, DotEnvPath: filepath.Join(t.TempDir(), ".env")})
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestLoadRejectsBadEnvironment(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		EnvHumanLogs: "sometimes",
		EnvTimeout:   "soon",
	}

	for key, value := range cases {
		key, value := key, value
		t.Run(key, func(t *testing.T) {
			t.Parallel()
			_, err := Load(LoadOptions{LookupEnv: func(k string) (string, bool) {
				if k == key {
					return value, true
				}
				return "", false
			}})
			var validationErr *showcaseerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, key, validationErr.Field)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Setenv(EnvLogFile, "placeholder")
	require.NoError(t, os.Unsetenv(EnvLogFile))

	dir := t.TempDir()
	dotenv := writeFile(t, dir, ".env", EnvLogFile+"="+filepath.Join(dir, "showcase.log")+"\n")

	cfg, err := Load(LoadOptions{DotEnvPath: dotenv})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "showcase.log"), cfg.LogFile)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.yaml"), LookupEnv: noEnv})
	var parseErr *showcaseerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
