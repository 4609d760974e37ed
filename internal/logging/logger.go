// Package logging provides a logging abstraction layer that decouples the
// application from specific logging frameworks.
package logging

// Logger defines the interface for structured logging throughout the application.
type Logger interface {
	// Debug logs a debug-level message with optional fields
	Debug(msg string, fields ...Field)

	// Info logs an info-level message with optional fields
	Info(msg string, fields ...Field)

	// Warn logs a warning-level message with optional fields
	Warn(msg string, fields ...Field)

	// Error logs an error-level message with optional fields
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached
	WithFields(fields ...Field) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Standardized field names used across the application's log output.
const (
	FieldFile     = "file_path"
	FieldRow      = "row"
	FieldCategory = "category"
	FieldKeyword  = "keyword"
	FieldMonth    = "month"
	FieldCount    = "count"
)

var defaultLogger Logger = NewLogrusAdapter("info", "text")

// GetLogger returns the process-wide default logger.
func GetLogger() Logger {
	return defaultLogger
}

// SetLogger replaces the process-wide default logger. Passing nil is a no-op.
func SetLogger(logger Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}
