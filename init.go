package folioview

import (
	"os"
	"strconv"

	"github.com/raykavin/folioview/pkg/logger/zerolog"
)

const (
	// Default configuration values
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogLevel      = "FOLIOVIEW_LOG_LEVEL"
	envLogTimeFormat = "FOLIOVIEW_LOG_TIME_FORMAT"
	envLogColor      = "FOLIOVIEW_LOG_COLOR"
	envLogJSON       = "FOLIOVIEW_LOG_JSON"
)

func init() {
	// Initialize the logger with configuration from environment variables
	settings, err := logSettingsFromEnv()
	if err != nil {
		panic(err)
	}

	log, err := zerolog.New(settings)
	if err != nil {
		panic(err)
	}

	DefaultLog = zerolog.NewAdapter(log)
}

// logSettingsFromEnv reads the logger settings from environment variables
func logSettingsFromEnv() (zerolog.Settings, error) {
	colored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return zerolog.Settings{}, err
	}

	json, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return zerolog.Settings{}, err
	}

	return zerolog.Settings{
		Level:      getEnvWithDefault(envLogLevel, defaultLogLevel),
		TimeFormat: getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat),
		Colored:    colored,
		JSON:       json,
	}, nil
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value
func parseBoolEnv(key, defaultValue string) (bool, error) {
	value := getEnvWithDefault(key, defaultValue)
	return strconv.ParseBool(value)
}
