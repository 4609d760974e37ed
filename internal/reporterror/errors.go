// Package reporterror defines the error taxonomy for the reporting
// pipeline: configuration problems, unparseable input rows and I/O
// failures. All of these are fatal; only chart rendering is allowed to
// degrade, and that is handled at the call site with a warning.
package reporterror

import "fmt"

// ConfigurationError represents an invalid or unusable configuration:
// a missing required column, a malformed rule file or an invalid
// target month.
type ConfigurationError struct {
	Subject string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Subject, e.Reason)
}

// ParseError represents a row whose date or amount cannot be parsed.
// Row is the 1-based line number in the input file, header included.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: failed to parse %s=%q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents a failed file operation on an input or output path.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
