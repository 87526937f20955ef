// Package config handles application configuration management using Viper
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/raykavin/folioview/pkg/core"
	"github.com/raykavin/folioview/pkg/logger/zerolog"
	"github.com/spf13/viper"
	"github.com/xhit/go-str2duration/v2"
)

// Constants for configuration
const (
	EnvPrefix         = "FOLIOVIEW"
	DefaultBaseURL    = "http://localhost:5000"
	DefaultWait       = "30s"
	DefaultPort       = 8080
	DefaultLogLevel   = "info"
	DefaultTimeFormat = "2006-01-02 15:04:05"
)

// AppConfig holds the application configuration
type AppConfig struct {
	API    APIConfig
	Server ServerConfig
	Charts core.Settings
	Log    zerolog.Settings
}

// APIConfig holds the backend connection settings
type APIConfig struct {
	BaseURL     string
	WaitTimeout time.Duration
}

// ServerConfig holds the dashboard server settings
type ServerConfig struct {
	Port  int
	Debug bool
}

// New returns a viper instance with the defaults set and environment
// variables bound, e.g. FOLIOVIEW_API_BASE_URL for api.base_url.
func New() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := core.DefaultSettings()
	v.SetDefault("api.base_url", DefaultBaseURL)
	v.SetDefault("api.wait_timeout", DefaultWait)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.debug", false)
	v.SetDefault("charts.frequency", string(defaults.Frequency))
	v.SetDefault("charts.currency", defaults.Chart.Currency)
	v.SetDefault("charts.height", defaults.Chart.Height)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.time_format", DefaultTimeFormat)
	v.SetDefault("log.color", true)
	v.SetDefault("log.json", false)

	return v
}

// Load reads the optional config file and builds the configuration.
// An empty path only uses defaults and the environment.
func Load(v *viper.Viper, path string) (*AppConfig, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	wait, err := str2duration.ParseDuration(v.GetString("api.wait_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid api.wait_timeout: %w", err)
	}

	frequency, err := core.ParseFrequency(v.GetString("charts.frequency"))
	if err != nil {
		return nil, fmt.Errorf("invalid charts.frequency: %w", err)
	}

	cfg := &AppConfig{
		API: APIConfig{
			BaseURL:     strings.TrimRight(v.GetString("api.base_url"), "/"),
			WaitTimeout: wait,
		},
		Server: ServerConfig{
			Port:  v.GetInt("server.port"),
			Debug: v.GetBool("server.debug"),
		},
		Charts: core.Settings{
			Frequency: frequency,
			Chart: core.ChartSettings{
				Currency: strings.ToUpper(v.GetString("charts.currency")),
				Height:   v.GetInt("charts.height"),
			},
		},
		Log: zerolog.Settings{
			Level:      v.GetString("log.level"),
			TimeFormat: v.GetString("log.time_format"),
			Colored:    v.GetBool("log.color"),
			JSON:       v.GetBool("log.json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values viper cannot type-check.
func (c *AppConfig) Validate() error {
	var errs []error
	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Charts.Chart.Height <= 0 {
		errs = append(errs, fmt.Errorf("charts.height must be positive, got %d", c.Charts.Chart.Height))
	}
	if c.API.WaitTimeout < 0 {
		errs = append(errs, errors.New("api.wait_timeout must not be negative"))
	}
	return errors.Join(errs...)
}
