package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Runtime failure (benchmark solve failed, etc.)
	ExitCommandError = 2 // Command error (missing arguments, bad input files, etc.)
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric           = "E001" // Generic/unknown error
	ErrCodeUsage             = "E002" // Missing or invalid arguments
	ErrCodeNotFound          = "E005" // Path not found
	ErrCodeWriteFailed       = "E007" // File write error
	ErrCodeParse             = "E008" // Input is not a numeric matrix/vector
	ErrCodeDimensionMismatch = "E009" // rows(X) != len(y)
	ErrCodeSolveFailed       = "E010" // Least-squares solve failed
	ErrCodeBenchConfig       = "E011" // Invalid benchmark config
	ErrCodeHistory           = "E012" // Benchmark history store error
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostic output; logs are discarded when nil
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error writes a JSON error envelope to Writer. Text-mode errors are
// printed by main from the returned ExitError instead.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Logger returns a text slog.Logger on the diagnostic writer. Level is Info,
// or Debug when verbose. Logs never go to Writer, so they cannot corrupt
// coefficient or JSON output.
func (f *OutputFormatter) Logger() *slog.Logger {
	level := slog.LevelInfo
	if f.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f.logWriter(), &slog.HandlerOptions{
		Level: level,
	}))
}

func (f *OutputFormatter) logWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return io.Discard
}

// fail reports a command error and returns it with ExitCommandError.
// In JSON mode the error envelope is also written to Writer; in text mode
// the caller (main) prints the returned error.
func (f *OutputFormatter) fail(code, message string, err error) error {
	if f.Format == "json" {
		var details interface{}
		if err != nil {
			details = err.Error()
		}
		_ = f.Error(code, message, details)
	}
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), err)
}
