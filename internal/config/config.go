// Package config loads the server configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the backend configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
}

// ServerConfig holds the listener settings.
type ServerConfig struct {
	Port int
}

// DatabaseConfig holds the sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds the CORS settings.
type CORSConfig struct {
	AllowOrigins []string
}

// Load reads the configuration from an optional config file and the
// environment. Environment variables use the prefix POUCH_, e.g.
// POUCH_DATABASE_PATH.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "data/pouch.db")
	v.SetDefault("cors.allow_origins", []string{})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POUCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The config file is optional, a missing file is not an error
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	return c, nil
}
