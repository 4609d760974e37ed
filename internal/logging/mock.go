package logging

// MockLogger is a mock implementation of the Logger interface for testing.
// It captures log entries for verification in tests. Loggers derived via
// WithError/WithField/WithFields record into the originating MockLogger,
// so assertions can always run against the root instance.
type MockLogger struct {
	Entries []LogEntry

	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) sink() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := make([]Field, 0, len(m.pendingFields)+len(fields))
	allFields = append(allFields, m.pendingFields...)
	allFields = append(allFields, fields...)

	sink := m.sink()
	sink.Entries = append(sink.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// WithError returns a derived logger with an error attached to subsequent entries.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.sink(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived logger with a field attached to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger with fields attached to subsequent entries.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	combined := make([]Field, 0, len(m.pendingFields)+len(fields))
	combined = append(combined, m.pendingFields...)
	combined = append(combined, fields...)
	return &MockLogger{
		root:          m.sink(),
		pendingError:  m.pendingError,
		pendingFields: combined,
	}
}

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.sink().Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}
