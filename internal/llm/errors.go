package llm

import (
	"errors"
	"fmt"
)

// ErrClass tags an upstream failure so callers can dispatch retry policy on
// a typed variant instead of matching substrings in error text.
type ErrClass int

const (
	// ClassUnavailable covers permanent failures: missing credentials,
	// auth rejection, bad requests. Degrade immediately, never retry.
	ClassUnavailable ErrClass = iota
	// ClassOverloaded covers transient failures (429/502/503/504).
	// Retried with exponential backoff up to the attempt cap.
	ClassOverloaded
	// ClassMalformed covers unparsable or empty upstream replies.
	// Degrade to schema defaults, never retry.
	ClassMalformed
)

func (c ErrClass) String() string {
	switch c {
	case ClassOverloaded:
		return "overloaded"
	case ClassMalformed:
		return "malformed"
	default:
		return "unavailable"
	}
}

// Error is a classified failure from an upstream capability
type Error struct {
	Class   ErrClass
	Status  int // HTTP status when known, 0 otherwise
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s (%d): %s", e.Class, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream %s: %s", e.Class, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a classified error wrapping cause
func NewError(class ErrClass, status int, message string, cause error) *Error {
	return &Error{Class: class, Status: status, Message: message, Err: cause}
}

// ClassifyStatus maps an HTTP status code to an error class
func ClassifyStatus(status int) ErrClass {
	switch status {
	case 429, 500, 502, 503, 504:
		return ClassOverloaded
	default:
		return ClassUnavailable
	}
}

// IsOverloaded reports whether err is a classified transient failure
func IsOverloaded(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassOverloaded
}

// IsMalformed reports whether err is a classified unparsable-reply failure
func IsMalformed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Class == ClassMalformed
}
