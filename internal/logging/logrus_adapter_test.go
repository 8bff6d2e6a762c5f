package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	logrusLogger := logrus.New()
	var buf bytes.Buffer
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{"debug text", "debug", "text", logrus.DebugLevel},
		{"info json", "info", "json", logrus.InfoLevel},
		{"warn text", "warn", "text", logrus.WarnLevel},
		{"error json", "error", "json", logrus.ErrorLevel},
		{"invalid level defaults to info", "loud", "text", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_LoggingMethods(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(Logger, string, ...Field)
		message string
	}{
		{"Debug", func(l Logger, msg string, fields ...Field) { l.Debug(msg, fields...) }, "debug message"},
		{"Info", func(l Logger, msg string, fields ...Field) { l.Info(msg, fields...) }, "info message"},
		{"Warn", func(l Logger, msg string, fields ...Field) { l.Warn(msg, fields...) }, "warn message"},
		{"Error", func(l Logger, msg string, fields ...Field) { l.Error(msg, fields...) }, "error message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferedAdapter(logrus.DebugLevel)

			tt.logFunc(logger, tt.message, Field{Key: FieldOperation, Value: "parse"})

			output := buf.String()
			assert.Contains(t, output, tt.message)
			assert.Contains(t, output, FieldOperation)
			assert.Contains(t, output, "parse")
		})
	}
}

func TestLogrusAdapter_WithError(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.ErrorLevel)

	logger.WithError(errors.New("capability unreachable")).Error("parse failed")

	output := buf.String()
	assert.Contains(t, output, "parse failed")
	assert.Contains(t, output, "capability unreachable")
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldProvider, "openai").
		WithField(FieldOutcome, "incomplete").
		WithError(errors.New("bad reply")).
		Error("contract violated")

	output := buf.String()
	assert.Contains(t, output, "contract violated")
	assert.Contains(t, output, "openai")
	assert.Contains(t, output, "incomplete")
	assert.Contains(t, output, "bad reply")
}

func TestConvertFields(t *testing.T) {
	fields := []Field{
		{Key: "provider", Value: "gemini"},
		{Key: "count", Value: 2},
		{Key: "success", Value: true},
	}

	logrusFields := convertFields(fields)

	assert.Len(t, logrusFields, 3)
	assert.Equal(t, "gemini", logrusFields["provider"])
	assert.Equal(t, 2, logrusFields["count"])
	assert.Equal(t, true, logrusFields["success"])

	assert.Empty(t, convertFields(nil))
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
