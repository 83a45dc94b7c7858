package util

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger = zerolog.Logger

// LogLevel represents available log levels
type LogLevel = int

// Log levels
const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var zerologLevels = map[LogLevel]zerolog.Level{
	DebugLevel: zerolog.DebugLevel,
	InfoLevel:  zerolog.InfoLevel,
	WarnLevel:  zerolog.WarnLevel,
	ErrorLevel: zerolog.ErrorLevel,
}

// InitializeLogger sets up the global logger. Library consumers that manage
// their own zerolog setup can skip this entirely; component loggers derive
// from whatever global logger is in place.
func InitializeLogger(level LogLevel) {
	zerolog.TimeFieldFormat = time.RFC3339

	zlvl, ok := zerologLevels[level]
	if !ok {
		zlvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zlvl)

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	ctx := zerolog.New(output).With().Timestamp()
	if zlvl == zerolog.DebugLevel {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()
}

// GetLogger returns a configured logger for a specific component
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}
