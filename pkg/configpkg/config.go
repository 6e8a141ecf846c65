// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	DBDriver        string        `mapstructure:"DB_DRIVER"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	DBAutoMigrate   bool          `mapstructure:"DB_AUTO_MIGRATE"`
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	Environement    string        `mapstructure:"GO_ENV"`
}

var defaults = map[string]any{
	"DB_DRIVER":        "postgres",
	"DB_SOURCE":        "",
	"DB_AUTO_MIGRATE":  false,
	"SERVER_ADDRESS":   "0.0.0.0:8080",
	"SHUTDOWN_TIMEOUT": 10 * time.Second,
	"GO_ENV":           "production",
}

// Load read configuration from file or environment variables.
//
// A missing app.env file is not an error, the environment alone is enough.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// Defaults register every key so that Unmarshal sees env-only values.
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
