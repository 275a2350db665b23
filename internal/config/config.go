// Package config loads the command line tool's settings from defaults, an optional config file, a .env file and
// YTMETA_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/alanbriolat/ytmeta/fetch"
)

const (
	Name      = "ytmeta"
	EnvPrefix = "YTMETA"
)

type Config struct {
	UserAgent string        `mapstructure:"user_agent"`
	Language  string        `mapstructure:"language"`
	Timeout   time.Duration `mapstructure:"timeout"`
	// CachePath is the page cache file; empty disables the on-disk cache.
	CachePath string `mapstructure:"cache_path"`
	// CacheMaxAge of zero keeps cached pages forever.
	CacheMaxAge     time.Duration `mapstructure:"cache_max_age"`
	MemoryCacheSize int           `mapstructure:"memory_cache_size"`
	LogLevel        string        `mapstructure:"log_level"`
}

var defaults = map[string]any{
	"user_agent":        fetch.DefaultUserAgent,
	"language":          fetch.DefaultLanguage,
	"timeout":           fetch.DefaultTimeout,
	"cache_path":        "",
	"cache_max_age":     24 * time.Hour,
	"memory_cache_size": 128,
	"log_level":         "info",
}

// Load reads the configuration. If path is empty, a file named ytmeta.{json,yaml,toml,...} is looked for in the
// working directory and the user config directory, and it is fine for there to be none; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, Name))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if config.MemoryCacheSize < 0 {
		return nil, fmt.Errorf("memory_cache_size must not be negative, got %d", config.MemoryCacheSize)
	}
	if _, err := config.Level(); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnv adds the variables in a .env file to the environment, without overriding ones already set. A missing
// file is ignored.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	return nil
}

func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// FetchOptions turns the HTTP settings into options for the fetch package.
func (c *Config) FetchOptions() []fetch.Option {
	return []fetch.Option{
		fetch.WithUserAgent(c.UserAgent),
		fetch.WithLanguage(c.Language),
		fetch.WithTimeout(c.Timeout),
	}
}
