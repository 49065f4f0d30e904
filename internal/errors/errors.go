// Package errors provides standardized error handling for tread.
// It defines the error kinds raised while loading verbs, launching external
// programs and exporting commands to the parent shell, plus helpers for
// consistent creation, wrapping and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	InvalidVerbInvocation
	InvalidVerbKey
	// Launch error kinds
	EmptyLaunch
	LaunchFailed
	// Export error kinds
	ExportFailed
)

// Common error constants for frequently occurring errors
var (
	ErrInvalidConfig = NewConfigError("invalid configuration", "", InvalidConfig, nil)
	ErrEmptyLaunch   = NewLaunchError("empty launch string", "", EmptyLaunch, nil)
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ConfigError represents errors related to configuration, including verb
// definitions that cannot be compiled.
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// LaunchError represents a program that could not be started or that exited
// abnormally.
type LaunchError struct {
	ApplicationError
	program string
}

// NewLaunchError creates a new launch error
func NewLaunchError(msg string, program string, kind ErrorKind, err error) *LaunchError {
	return &LaunchError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		program: program,
	}
}

// Error returns the launch error message
func (e *LaunchError) Error() string {
	if e.program != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.program, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.program)
	}
	return e.ApplicationError.Error()
}

// Program returns the program associated with the error
func (e *LaunchError) Program() string {
	return e.program
}

// ExportError represents a failure to write to an export file read by the
// shell function wrapping tread.
type ExportError struct {
	ApplicationError
	path string
}

// NewExportError creates a new export error
func NewExportError(msg string, path string, err error) *ExportError {
	return &ExportError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ExportFailed,
		},
		path: path,
	}
}

// Error returns the export error message
func (e *ExportError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the export file path associated with the error
func (e *ExportError) Path() string {
	return e.path
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsConfigNotFound checks if the error is about a missing configuration file
func IsConfigNotFound(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == ConfigNotFound
	}
	return false
}

// IsInvalidVerbInvocation checks if the error comes from a verb whose declared
// arguments could not be compiled into a matcher
func IsInvalidVerbInvocation(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidVerbInvocation
	}
	return false
}

// IsInvalidVerbKey checks if the error comes from an unparsable verb key
func IsInvalidVerbKey(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidVerbKey
	}
	return false
}

// IsLaunchError checks if the error is a launch error
func IsLaunchError(err error) bool {
	var launchErr *LaunchError
	return errors.As(err, &launchErr)
}

// IsExportError checks if the error is an export error
func IsExportError(err error) bool {
	var exportErr *ExportError
	return errors.As(err, &exportErr)
}
