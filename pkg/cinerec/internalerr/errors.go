package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrParse         = errors.New("parse error")
	ErrQuery         = errors.New("query error")
	ErrUnavailable   = errors.New("rule engine unavailable")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicate     = errors.New("duplicate entry")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError reports user-supplied text that could not be parsed into a
// filter criterion. Matches ErrParse via errors.Is.
type ParseError struct {
	Field      string
	Input      string
	Suggestion string
	Err        error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// QueryError reports an unknown rule name or missing/malformed rule
// parameters. Matches ErrQuery via errors.Is.
type QueryError struct {
	Rule       string
	Reason     string
	Suggestion string
	Err        error
}

func (e *QueryError) Error() string {
	msg := "query"
	if e.Rule != "" {
		msg += " " + e.Rule
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *QueryError) Unwrap() error { return e.Err }

func (e *QueryError) Is(target error) bool { return target == ErrQuery }

// UnavailableError is returned for every query once the fact store or the
// rule engine failed to initialize. Matches ErrUnavailable via errors.Is.
type UnavailableError struct {
	Component string
	Err       error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s is not available", e.Component)
	}
	return fmt.Sprintf("%s is not available: %v", e.Component, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }
