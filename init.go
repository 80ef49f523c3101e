package vbtforge

import (
	"os"
	"strconv"

	"github.com/raykavin/vbtforge/pkg/logger/zerolog"
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
	envLogLevel      = "VBTFORGE_LOG_LEVEL"
	envLogTimeFormat = "VBTFORGE_LOG_TIME_FORMAT"
	envLogColor      = "VBTFORGE_LOG_COLOR"
	envLogJSON       = "VBTFORGE_LOG_JSON"
)

func init() {
	log, err := NewLoggerFromEnv()
	if err != nil {
		panic(err)
	}
	DefaultLog = log
}

// NewLoggerFromEnv creates a logger configured from the VBTFORGE_LOG_*
// environment variables. The CLI calls it again after loading .env.
func NewLoggerFromEnv() (*zerolog.Adapter, error) {
	logLevel := getEnvWithDefault(envLogLevel, defaultLogLevel)
	logTimeFormat := getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat)

	logColored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}

	logJSON, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	return zerolog.New(zerolog.Config{
		Level:      logLevel,
		TimeFormat: logTimeFormat,
		Colored:    logColored,
		JSON:       logJSON,
	})
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
