package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/rtzbench/config"
)

func TestParseConfigPrecedence(t *testing.T) {
	t.Cleanup(func() { configPath = "" })
	flags := cmd.PersistentFlags()

	// Nothing set: pure defaults.
	configPath = ""
	cfg, err := parseConfig(flags)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), *cfg)

	// A config file overrides defaults.
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("samples: 777\nmin-duration: 2s\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	configPath = path
	cfg, err = parseConfig(flags)
	require.NoError(t, err)
	require.Equal(t, 777, cfg.Samples)
	require.Equal(t, 2*time.Second, cfg.MinDuration)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, config.DefaultConfig().MaxDigits32, cfg.MaxDigits32)

	// A flag set on the command line wins over the file.
	require.NoError(t, flags.Set("samples", "1234"))
	cfg, err = parseConfig(flags)
	require.NoError(t, err)
	require.Equal(t, 1234, cfg.Samples)
	require.Equal(t, 2*time.Second, cfg.MinDuration)
}

func TestParseConfigBadFile(t *testing.T) {
	t.Cleanup(func() { configPath = "" })
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := parseConfig(cmd.PersistentFlags())
	require.ErrorContains(t, err, "read config file")
}

func TestCandidateTables(t *testing.T) {
	c32 := candidates32()
	require.Len(t, c32, 9)
	require.Equal(t, "Null (baseline)", c32[0].Name)
	require.Equal(t, "Naive", c32[1].Name)
	for _, c := range c32 {
		require.NotNil(t, c.Fn, c.Name)
	}

	c64 := candidates64()
	require.Len(t, c64, 13)
	require.Equal(t, "Null (baseline)", c64[0].Name)
	require.Equal(t, "Naive", c64[1].Name)
	require.Equal(t, "Generalized Granlund-Montgomery 8-2-1", c64[12].Name)
	for _, c := range c64 {
		require.NotNil(t, c.Fn, c.Name)
	}
}

func TestBuildLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	logger, err := buildLogger(&cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)

	cfg.Logging.Encoder = config.JSONLogEncoder
	logger, err = buildLogger(&cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)

	cfg.Logging.Level = "chatty"
	_, err = buildLogger(&cfg)
	require.ErrorContains(t, err, "parse log level")
}
