package dataio

import (
	"errors"
	"fmt"
)

// LoadErrorCode categorizes load failures.
type LoadErrorCode string

const (
	// ErrCodeFileNotFound indicates the input path does not exist.
	ErrCodeFileNotFound LoadErrorCode = "FILE_NOT_FOUND"

	// ErrCodeParse indicates the content is not a numeric matrix.
	ErrCodeParse LoadErrorCode = "PARSE_ERROR"
)

// LoadError represents a failure to read a matrix or vector file.
type LoadError struct {
	// Code identifies the error category.
	Code LoadErrorCode

	// Path is the file being read.
	Path string

	// Line is the 1-based physical line number, or 0 when the error is not
	// tied to a line.
	Line int

	// Message is a human-readable description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Code, loc, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, loc, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if err is a FILE_NOT_FOUND load error.
func IsNotFound(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeFileNotFound
	}
	return false
}

// IsParseError returns true if err is a PARSE_ERROR load error.
func IsParseError(err error) bool {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Code == ErrCodeParse
	}
	return false
}

func parseError(path string, line int, message string, err error) *LoadError {
	return &LoadError{Code: ErrCodeParse, Path: path, Line: line, Message: message, Err: err}
}
