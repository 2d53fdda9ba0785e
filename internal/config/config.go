package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables (INVENTORY_ prefix) and config files.
const (
	KeySeed     = "seed"
	KeyPause    = "pause"
	KeyLogLevel = "log_level"
)

// Config holds runtime settings for the inventory menu.
type Config struct {
	Seed     bool
	Pause    bool
	LogLevel logrus.Level
}

// SetDefaults registers the defaults on v and turns on environment lookup.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySeed, true)
	v.SetDefault(KeyPause, true)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetEnvPrefix("INVENTORY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load reads the optional config file and resolves a Config from v.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	return Config{
		Seed:     v.GetBool(KeySeed),
		Pause:    v.GetBool(KeyPause),
		LogLevel: level,
	}, nil
}
