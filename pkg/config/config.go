// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/NVIDIA/inference-template/pkg/defaults"
	apperrors "github.com/NVIDIA/inference-template/pkg/errors"
	"github.com/NVIDIA/inference-template/pkg/server"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "INFER"

// Setting keys.
const (
	KeyHost            = "host"
	KeyPort            = "port"
	KeyLogLevel        = "log_level"
	KeyDefaultModel    = "default_model"
	KeyMaxBodyBytes    = "max_body_bytes"
	KeyRateLimit       = "rate_limit"
	KeyRateLimitBurst  = "rate_limit_burst"
	KeyShutdownTimeout = "shutdown_timeout"
)

// defaultModelName mirrors prediction.DefaultModelName without importing the
// handler package.
const defaultModelName = "cnn"

// Settings is the resolved runtime configuration.
type Settings struct {
	Host            string        `mapstructure:"host" json:"host" yaml:"host"`
	Port            int           `mapstructure:"port" json:"port" yaml:"port"`
	LogLevel        string        `mapstructure:"log_level" json:"logLevel" yaml:"logLevel"`
	DefaultModel    string        `mapstructure:"default_model" json:"defaultModel" yaml:"defaultModel"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes" json:"maxBodyBytes" yaml:"maxBodyBytes"`
	RateLimit       float64       `mapstructure:"rate_limit" json:"rateLimit" yaml:"rateLimit"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst" json:"rateLimitBurst" yaml:"rateLimitBurst"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" json:"shutdownTimeout" yaml:"shutdownTimeout"`
}

// Options selects the optional sources read by Load.
type Options struct {
	// ConfigFile is a YAML, JSON or TOML file. Empty skips it.
	ConfigFile string
	// EnvFile is a dotenv file with INFER_* entries. Empty skips it.
	EnvFile string
}

// Load resolves settings from defaults, files and the environment, then
// validates them.
func Load(opts Options) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
				fmt.Sprintf("failed to read config file %s", opts.ConfigFile), err)
		}
	}

	if opts.EnvFile != "" {
		if err := mergeEnvFile(v, opts.EnvFile); err != nil {
			return nil, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to decode settings", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyHost, defaults.ServerHost)
	v.SetDefault(KeyPort, defaults.ServerPort)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyDefaultModel, defaultModelName)
	v.SetDefault(KeyMaxBodyBytes, defaults.MaxRequestBodyBytes)
	v.SetDefault(KeyRateLimit, defaults.RateLimit)
	v.SetDefault(KeyRateLimitBurst, defaults.RateLimitBurst)
	v.SetDefault(KeyShutdownTimeout, defaults.ServerShutdownTimeout)
}

// mergeEnvFile layers INFER_* entries of a dotenv file over the config file.
// Real environment variables still win.
func mergeEnvFile(v *viper.Viper, path string) error {
	entries, err := godotenv.Read(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to read env file %s", path), err)
	}

	values := make(map[string]any, len(entries))
	for k, val := range entries {
		key, ok := strings.CutPrefix(k, EnvPrefix+"_")
		if !ok {
			continue
		}
		values[strings.ToLower(key)] = val
	}

	if err := v.MergeConfigMap(values); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to merge env file", err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate reports the first setting that is out of range.
func (s *Settings) Validate() error {
	invalid := func(key string, value any, msg string) error {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid %s: %s", key, msg), map[string]any{key: value})
	}

	switch {
	case s.Host == "":
		return invalid(KeyHost, s.Host, "must not be empty")
	case s.Port < 1 || s.Port > 65535:
		return invalid(KeyPort, s.Port, "must be between 1 and 65535")
	case !validLogLevels[strings.ToLower(s.LogLevel)]:
		return invalid(KeyLogLevel, s.LogLevel, "must be one of debug, info, warn, error")
	case s.DefaultModel == "":
		return invalid(KeyDefaultModel, s.DefaultModel, "must not be empty")
	case s.MaxBodyBytes <= 0:
		return invalid(KeyMaxBodyBytes, s.MaxBodyBytes, "must be positive")
	case s.RateLimit <= 0:
		return invalid(KeyRateLimit, s.RateLimit, "must be positive")
	case s.RateLimitBurst <= 0:
		return invalid(KeyRateLimitBurst, s.RateLimitBurst, "must be positive")
	case s.ShutdownTimeout <= 0:
		return invalid(KeyShutdownTimeout, s.ShutdownTimeout.String(), "must be positive")
	}
	return nil
}

// ServerConfig builds the HTTP server configuration from these settings.
// Name and version identify the binary and are left to the caller.
func (s *Settings) ServerConfig() *server.Config {
	cfg := server.NewConfig()
	cfg.Address = s.Host
	cfg.Port = s.Port
	cfg.RateLimit = rate.Limit(s.RateLimit)
	cfg.RateLimitBurst = s.RateLimitBurst
	cfg.ShutdownTimeout = s.ShutdownTimeout
	return cfg
}
