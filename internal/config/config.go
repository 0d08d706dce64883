// Package config loads command configuration from .env files and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"bookstore/internal/platform/logging"
)

const (
	DefaultURI        = "mongodb://localhost:27017"
	DefaultDatabase   = "plp_bookstore"
	DefaultCollection = "books"
	DefaultTimeout    = 30 * time.Second
)

// Config is the configuration shared by the commands.
type Config struct {
	Mongo Mongo          `mapstructure:"mongo"`
	Log   logging.Config `mapstructure:"log"`
}

// Mongo addresses the target collection.
type Mongo struct {
	URI        string        `mapstructure:"uri"`
	Database   string        `mapstructure:"database"`
	Collection string        `mapstructure:"collection"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Validate checks that a collection is fully addressed.
func (m Mongo) Validate() error {
	var errs []error
	if m.URI == "" {
		errs = append(errs, errors.New("mongo uri is required"))
	}
	if m.Database == "" {
		errs = append(errs, errors.New("mongo database is required"))
	}
	if m.Collection == "" {
		errs = append(errs, errors.New("mongo collection is required"))
	}
	if m.Timeout < 0 {
		errs = append(errs, fmt.Errorf("mongo timeout must not be negative (got: %s)", m.Timeout))
	}
	return errors.Join(errs...)
}

// Validate validates the whole configuration.
func (c Config) Validate() error {
	return errors.Join(c.Mongo.Validate(), c.Log.Validate())
}

// LoadEnvFiles reads .env and .env.local into the environment.
func LoadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads env files, then the environment. MONGO_URI, MONGO_DATABASE,
// MONGO_COLLECTION, MONGO_TIMEOUT, LOG_LEVEL and LOG_FORMAT override the
// defaults.
func Load() (Config, error) {
	LoadEnvFiles()
	return FromEnv()
}

// FromEnv reads configuration from the environment only.
func FromEnv() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mongo.uri", DefaultURI)
	v.SetDefault("mongo.database", DefaultDatabase)
	v.SetDefault("mongo.collection", DefaultCollection)
	v.SetDefault("mongo.timeout", DefaultTimeout)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
