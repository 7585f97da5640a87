// Package config loads settings from config file and environment using viper.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every setting when read from environment, e.g. SMSINFO_HTTP_PORT
const EnvPrefix = "SMSINFO"

// Config has all settings of http server
type Config struct {
	HTTPHost        string
	HTTPPort        int
	ShutdownTimeout time.Duration
	// MaxTextLength is the longest text in runes the service accepts
	MaxTextLength int
	LogLevel      string
}

// SetDefaults sets default values, config file name and env lookup on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_HOST", "")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	v.SetDefault("MAX_TEXT_LENGTH", 10000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

// Load reads config file if there's one and returns validated settings.
// A missing config file isn't an error, defaults and environment are used instead.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, errors.Wrap(err, "couldn't read config file")
		}
	}
	c := Config{
		HTTPHost:        v.GetString("HTTP_HOST"),
		HTTPPort:        v.GetInt("HTTP_PORT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		MaxTextLength:   v.GetInt("MAX_TEXT_LENGTH"),
		LogLevel:        v.GetString("LOG_LEVEL"),
	}
	return c, c.Validate()
}

// Validate checks ranges of settings
func (c Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return errors.Errorf("HTTP_PORT %d is out of range", c.HTTPPort)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	if c.MaxTextLength < 1 {
		return errors.Errorf("MAX_TEXT_LENGTH must be positive, got %d", c.MaxTextLength)
	}
	return nil
}
