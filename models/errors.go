package models

import "errors"

// ErrorKind classifies engine failures so controllers can map them to HTTP
// statuses without string matching.
type ErrorKind string

const (
	ErrKindNotFound           ErrorKind = "not_found"
	ErrKindForbidden          ErrorKind = "forbidden"
	ErrKindInvalidInput       ErrorKind = "invalid_input"
	ErrKindInvalidState       ErrorKind = "invalid_state"
	ErrKindSchedulingConflict ErrorKind = "scheduling_conflict"
	ErrKindDependencyFailure  ErrorKind = "dependency_failure"
)

// AppError is the error type returned by the scheduling engine. A
// scheduling_conflict error additionally carries the detected conflicts and
// the rendered summary so callers can show an actionable message or retry
// with the override flag set.
type AppError struct {
	Kind             ErrorKind  `json:"kind"`
	Message          string     `json:"message"`
	Conflicts        []Conflict `json:"conflicts,omitempty"`
	RequiresOverride bool       `json:"requiresOverride,omitempty"`
	Err              error      `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: ErrKindNotFound, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: ErrKindForbidden, Message: message}
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Kind: ErrKindInvalidInput, Message: message}
}

func NewInvalidState(message string) *AppError {
	return &AppError{Kind: ErrKindInvalidState, Message: message}
}

// NewSchedulingConflict builds the rejection described in the availability
// contract: the conflict list plus its human-readable summary.
func NewSchedulingConflict(message string, conflicts []Conflict) *AppError {
	return &AppError{
		Kind:             ErrKindSchedulingConflict,
		Message:          message,
		Conflicts:        conflicts,
		RequiresOverride: true,
	}
}

func NewDependencyFailure(message string, err error) *AppError {
	return &AppError{Kind: ErrKindDependencyFailure, Message: message, Err: err}
}

// KindOf returns the ErrorKind of err, or empty string for non-engine errors.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
