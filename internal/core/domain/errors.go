package domain

import "fmt"

// The error taxonomy below covers every failure kind the tool can
// produce. None of them is ever retried; each is logged where it occurs
// and the CLI maps any of them to a non-zero exit status.

// ConfigurationError indicates a missing or invalid connection
// parameter. It is raised before any network I/O is attempted.
type ConfigurationError struct {
	Param  string // Name of the offending parameter
	Detail string // Optional detail, empty means "missing"
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid connection parameter %q: %s", e.Param, e.Detail)
	}
	return fmt.Sprintf("missing required connection parameter %q", e.Param)
}

// ConnectionError indicates a failure to establish the database session
// (network unreachable, authentication rejected, TLS failure).
type ConnectionError struct {
	Err error // Underlying cause
}

// Error implements the error interface
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// EmptyQueryError indicates that the supplied query text was empty or
// all whitespace.
type EmptyQueryError struct{}

// Error implements the error interface
func (e *EmptyQueryError) Error() string {
	return "empty query provided"
}

// maxQueryInMessage caps how much rejected query text an error message
// carries.
const maxQueryInMessage = 60

// DisallowedQueryError indicates that the supplied query failed the
// SELECT allow-list check.
type DisallowedQueryError struct {
	Query string // The rejected query text
}

// Error implements the error interface
func (e *DisallowedQueryError) Error() string {
	q := e.Query
	if r := []rune(q); len(r) > maxQueryInMessage {
		q = string(r[:maxQueryInMessage]) + "..."
	}
	return fmt.Sprintf("only SELECT queries are allowed, got %q", q)
}

// ExecutionError indicates that the server rejected or failed to
// execute the statement (syntax error, permissions error, timeout).
type ExecutionError struct {
	Err error // Underlying cause
}

// Error implements the error interface
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("query execution failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *ExecutionError) Unwrap() error {
	return e.Err
}
