package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{name: "text info", level: "info", format: "text"},
		{name: "json debug", level: "debug", format: "json"},
		{name: "invalid level falls back to info", level: "chatty", format: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogrusAdapter(tt.level, tt.format)
			assert.NotNil(t, logger)
		})
	}
}

func TestLogrusAdapterWritesFields(t *testing.T) {
	underlying := logrus.New()
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField(FieldCategory, "Dining").Info("categorized")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"category":"Dining"`)
	assert.Contains(t, out, "categorized")
}

func TestLogrusAdapterWithError(t *testing.T) {
	underlying := logrus.New()
	var buf bytes.Buffer
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithError(errors.New("boom")).Warn("something failed")

	assert.Contains(t, buf.String(), "boom")
}

func TestMockLoggerCapturesDerivedEntries(t *testing.T) {
	mock := &MockLogger{}
	mock.WithError(errors.New("bad row")).WithField(FieldRow, 3).Warn("Skipping malformed row")

	require.Len(t, mock.Entries, 1)
	assert.Equal(t, "WARN", mock.Entries[0].Level)
	assert.True(t, mock.HasMessage("Skipping malformed row"))
}
