package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.Equal(t, 100, cfg.Experiment.Games)
	require.Equal(t, 8, cfg.Experiment.Turns)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("server:\n  port: 9999\nlogging:\n  level: debug\n  format: json\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, 9999, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, 100, cfg.Experiment.Games, "Unset values keep defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)
	valid := func() Config { return base }

	t.Run("accepts any valid port", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			cfg := valid()
			cfg.Server.Port = rapid.IntRange(1, 65535).Draw(t, "port")

			if err := cfg.Validate(); err != nil {
				t.Fatalf("valid port %d rejected: %v", cfg.Server.Port, err)
			}
		})
	})

	t.Run("rejects out-of-range port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0

		require.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		cfg := valid()
		cfg.Logging.Level = "verbose"

		require.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive experiment settings", func(t *testing.T) {
		cfg := valid()
		cfg.Experiment.Games = 0

		require.Error(t, cfg.Validate())
	})
}
