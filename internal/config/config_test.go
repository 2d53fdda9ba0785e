package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"inventory/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.True(t, cfg.Seed)
	assert.True(t, cfg.Pause)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("INVENTORY_SEED", "false")
	t.Setenv("INVENTORY_LOG_LEVEL", "debug")

	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.False(t, cfg.Seed)
	assert.True(t, cfg.Pause)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pause: false\nlog_level: info\n"), 0o600))

	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.Load(v, path)
	require.NoError(t, err)
	assert.False(t, cfg.Pause)
	assert.True(t, cfg.Seed)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	_, err := config.Load(v, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	v = viper.New()
	config.SetDefaults(v)
	v.Set(config.KeyLogLevel, "loud")
	_, err = config.Load(v, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
