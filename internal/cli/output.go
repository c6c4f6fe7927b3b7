// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // successful execution
	ExitFailure      = 1 // the run started and failed or was cancelled
	ExitCommandError = 2 // bad flags, config file or parameters
)

// Error codes carried in the JSON envelope.
const (
	ErrCodeConfig    = "E001"
	ErrCodeParameter = "E002"
	ErrCodeRun       = "E003"
	ErrCodeCancelled = "E004"
)

// ExitError is an error with a process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
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

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err; ExitFailure when err is not an
// ExitError, ExitSuccess for nil.
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

// OutputFormatter writes command results as text or as a JSON envelope.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// Response is the JSON envelope.
type Response struct {
	Status string         `json:"status"` // "ok" or "error"
	Data   interface{}    `json:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError is the error part of the envelope.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success writes data. Text output uses data's String method when it has one.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
	}
	if s, ok := data.(fmt.Stringer); ok {
		_, err := io.WriteString(f.Writer, s.String())
		return err
	}
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Fail writes an error record and returns an ExitError with the given code.
func (f *OutputFormatter) Fail(exitCode int, code, message string, err error) error {
	details := ""
	if err != nil {
		details = err.Error()
	}
	if f.Format == "json" {
		_ = json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &ResponseError{Code: code, Message: message, Details: details},
		})
	} else {
		fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
		if details != "" {
			fmt.Fprintf(f.Writer, "Details: %s\n", details)
		}
	}

	return WrapExitError(exitCode, message, err)
}
