package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

/************************************************************************************************
** Test cases for logger configuration
************************************************************************************************/

func TestConfigureLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel logrus.Level
	}{
		{
			name:      "default level is info",
			logLevel:  "",
			wantLevel: logrus.InfoLevel,
		},
		{
			name:      "debug level from env",
			logLevel:  "debug",
			wantLevel: logrus.DebugLevel,
		},
		{
			name:      "warning level from env",
			logLevel:  "warning",
			wantLevel: logrus.WarnLevel,
		},
		{
			name:      "invalid level falls back to info",
			logLevel:  "loud",
			wantLevel: logrus.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.logLevel)
			t.Setenv("LOG_FORMAT", "")

			logger := configureLogger()
			assert.Equal(t, tt.wantLevel, logger.Level)
		})
	}
}

func TestConfigureLoggerFormat(t *testing.T) {
	t.Run("json format from env", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "json")

		logger := configureLogger()
		assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	})

	t.Run("text format by default", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")

		logger := configureLogger()
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	})
}
