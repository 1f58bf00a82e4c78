package config

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EnvironmentVariable names the variable the current environment is read from.
const EnvironmentVariable = "COMPILE_JS_ENVIRONMENT"

const (
	DevelopmentEnvironment = "development"
	StagingEnvironment     = "staging"
	ProductionEnvironment  = "production"

	DefaultEnvironment = DevelopmentEnvironment
)

const DefaultLogLevel = "warn"

var currentEnvironment = ""

// envOnce ensures concurrent tests only pull the value once.
var envOnce sync.Once

// GetCurrentEnvironment returns the environment the tool is running in.
// Anything other than staging, production or development falls back to
// DefaultEnvironment.
func GetCurrentEnvironment() string {
	envOnce.Do(func() {
		switch value := os.Getenv(EnvironmentVariable); value {
		case DevelopmentEnvironment, StagingEnvironment, ProductionEnvironment:
			currentEnvironment = value
		default:
			currentEnvironment = DefaultEnvironment
		}
	})

	return currentEnvironment
}

// ConfigureLogger sets up the global logger on the given writer. Development
// gets human readable console output, every other environment gets JSON. The
// writer should never be standard output since that carries the compile result.
func ConfigureLogger(w io.Writer, environment string, level string) error {
	if level == "" {
		level = DefaultLogLevel
	}

	parsedLevel, err := zerolog.ParseLevel(level)

	if err != nil {
		return errors.Wrapf(err, "invalid log level %s", level)
	}

	zerolog.SetGlobalLevel(parsedLevel)

	if environment == DevelopmentEnvironment {
		w = zerolog.ConsoleWriter{Out: w}
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	return nil
}
