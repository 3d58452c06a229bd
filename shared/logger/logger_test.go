package logger_test

import (
	"bytes"
	"errors"
	"salon/config"
	"salon/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("dangling store reference"))

	assert.Contains(t, buf.String(), "dangling store reference")
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "warn level", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "disabled level", logLevel: "disabled", expectedLevel: zerolog.Disabled},
		{name: "invalid level defaults to trace", logLevel: "invalid_level", expectedLevel: zerolog.TraceLevel},
		{name: "empty level defaults to trace", logLevel: "", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestUseJSON(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	t.Run("development keeps console writer", func(t *testing.T) {
		var buf bytes.Buffer
		log.Logger = log.Output(&buf)

		cfg := &config.Config{}
		cfg.Server.Env = "development"
		logger.UseJSON(cfg)

		log.Info().Msg("still console")
		assert.Contains(t, buf.String(), "still console")
	})

	t.Run("production replaces the logger", func(t *testing.T) {
		var buf bytes.Buffer
		log.Logger = log.Output(&buf)

		cfg := &config.Config{}
		cfg.Server.Env = "production"
		cfg.App.Name = "salon"
		logger.UseJSON(cfg)

		log.Info().Msg("goes to stdout")
		assert.Empty(t, buf.String())
	})
}
