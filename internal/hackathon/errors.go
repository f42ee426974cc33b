package hackathon

import (
	"errors"
	"fmt"
)

// Error is a fatal pipeline error. Every Error aborts the whole run.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Worker names the failing worker, e.g. "idea-producer-1". Empty for
	// errors detected before any worker is spawned.
	Worker string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes pipeline errors.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates invalid counts or worker numbers.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"

	// ErrCodeDataSource indicates missing or empty name-space inputs.
	ErrCodeDataSource ErrorCode = "DATA_SOURCE_ERROR"

	// ErrCodeChannelUnavailable indicates a closed queue during enqueue or
	// dequeue. Always a coordination bug; never retried.
	ErrCodeChannelUnavailable ErrorCode = "CHANNEL_UNAVAILABLE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Worker != "" {
		msg = fmt.Sprintf("%s (worker=%s)", msg, e.Worker)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates an Error for invalid configuration.
func NewConfigurationError(format string, args ...any) *Error {
	return &Error{Code: ErrCodeConfiguration, Message: fmt.Sprintf(format, args...)}
}

// NewDataSourceError creates an Error for unusable name-space inputs.
func NewDataSourceError(message string, err error) *Error {
	return &Error{Code: ErrCodeDataSource, Message: message, Err: err}
}

// NewChannelUnavailableError creates an Error for a closed queue.
func NewChannelUnavailableError(worker, queueName string) *Error {
	return &Error{
		Code:    ErrCodeChannelUnavailable,
		Message: fmt.Sprintf("%s queue is closed", queueName),
		Worker:  worker,
	}
}

// IsConfigurationError returns true if err is a configuration error.
// Uses errors.As to handle wrapped errors.
func IsConfigurationError(err error) bool {
	return hasCode(err, ErrCodeConfiguration)
}

// IsDataSourceError returns true if err is a data source error.
func IsDataSourceError(err error) bool {
	return hasCode(err, ErrCodeDataSource)
}

// IsChannelUnavailable returns true if err reports a closed queue.
func IsChannelUnavailable(err error) bool {
	return hasCode(err, ErrCodeChannelUnavailable)
}

func hasCode(err error, code ErrorCode) bool {
	var he *Error
	if errors.As(err, &he) {
		return he.Code == code
	}
	return false
}
