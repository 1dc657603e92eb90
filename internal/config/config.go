// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/credwise/credwise/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the credwise service.
type Configuration struct {
	Server  ServerConfig  `yaml:"server,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Auth    AuthConfig    `yaml:"auth,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Address        string `yaml:"address,omitempty"`
	MaxRequestSize string `yaml:"maxRequestSize,omitempty"` // human-friendly, e.g. "64K"

	maxRequestBytes int64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// AuthConfig holds mock-session options.
type AuthConfig struct {
	Secret   string `yaml:"secret,omitempty"`
	TokenTTL string `yaml:"tokenTTL,omitempty"` // duration string, e.g. "24h"

	tokenTTL time.Duration
}

// CacheConfig holds calculation-cache options.
type CacheConfig struct {
	Enabled      bool   `yaml:"enabled,omitempty"`
	RedisAddress string `yaml:"redisAddress,omitempty"`
	TTL          string `yaml:"ttl,omitempty"` // duration string, e.g. "10m"

	ttl time.Duration
}

// DefaultTokenTTL is the session token lifetime when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// DefaultCacheTTL is the calculation-cache entry lifetime when none is configured.
const DefaultCacheTTL = 10 * time.Minute

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file yields defaults without error so the
// service can run unconfigured.
func LoadConfiguration(configPath string) (*Configuration, error) {
	configuration := &Configuration{}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			viper.SetConfigFile(configPath)
			viper.AutomaticEnv()
			viper.SetConfigType("yml")

			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
			if err := viper.Unmarshal(configuration); err != nil {
				return nil, fmt.Errorf("unable to decode into struct, %s", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}
	return configuration, nil
}

// ValidateConfiguration checks for soft configuration issues and returns
// warnings rather than errors.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch conf.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log level %q; falling back to info", conf.Logging.Level))
	}

	if conf.Auth.Secret == "" {
		warnings = append(warnings, "auth.secret is not set; sessions will not survive a restart")
	}

	if conf.Cache.Enabled && conf.Cache.RedisAddress == "" {
		warnings = append(warnings, "cache.enabled is set without cache.redisAddress; using in-process cache")
	}

	return warnings
}

// MaxRequestBytes returns the configured request size limit in bytes.
func (conf *Configuration) MaxRequestBytes() int64 {
	return conf.Server.maxRequestBytes
}

// TokenTTL returns the configured session token lifetime.
func (conf *Configuration) TokenTTL() time.Duration {
	return conf.Auth.tokenTTL
}

// CacheTTL returns the configured calculation-cache entry lifetime.
func (conf *Configuration) CacheTTL() time.Duration {
	return conf.Cache.ttl
}

func (conf *Configuration) normalize() error {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}

	sizeStr := strings.TrimSpace(conf.Server.MaxRequestSize)
	if sizeStr == "" {
		conf.Server.maxRequestBytes = constants.DefaultMaxRequestSizeBytes
	} else {
		bytes, err := ParseSize(sizeStr)
		if err != nil {
			return err
		}
		if bytes <= 0 {
			bytes = constants.DefaultMaxRequestSizeBytes
		}
		conf.Server.maxRequestBytes = bytes
	}

	conf.Auth.tokenTTL = DefaultTokenTTL
	if ttl := strings.TrimSpace(conf.Auth.TokenTTL); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid auth.tokenTTL %q: %w", ttl, err)
		}
		if parsed > 0 {
			conf.Auth.tokenTTL = parsed
		}
	}

	conf.Cache.ttl = DefaultCacheTTL
	if ttl := strings.TrimSpace(conf.Cache.TTL); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid cache.ttl %q: %w", ttl, err)
		}
		if parsed > 0 {
			conf.Cache.ttl = parsed
		}
	}

	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxRequestSizeBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
