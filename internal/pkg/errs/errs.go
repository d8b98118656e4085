package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Every concrete error type in
// this package unwraps to exactly one of these.
var (
	ErrObjectNotFound        = fmt.Errorf("object not found")
	ErrValueIsInvalid        = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange     = fmt.Errorf("value is out of range")
	ErrValueIsRequired       = fmt.Errorf("value is required")
	ErrInvalidTransition     = fmt.Errorf("invalid status transition")
	ErrConcurrencyConflict   = fmt.Errorf("concurrency conflict")
	ErrActorForbidden        = fmt.Errorf("actor is forbidden")
	ErrTechnicianUnavailable = fmt.Errorf("technician is unavailable")
)

// sanitize collapses line breaks so error messages stay single-line in logs.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ObjectNotFoundError indicates that an entity could not be resolved by its identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value is malformed or violates a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a value falls outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// StatusTransitionError indicates that a requested status change is not present
// in the order transition table. It names the rejected from -> to pair so callers
// can surface the exact edge that was refused.
type StatusTransitionError struct {
	From  string
	To    string
	Cause error
}

// NewStatusTransitionError creates a StatusTransitionError for the rejected pair.
func NewStatusTransitionError(from, to string) *StatusTransitionError {
	return &StatusTransitionError{From: from, To: to}
}

// NewStatusTransitionErrorWithCause creates a StatusTransitionError wrapping an underlying cause.
func NewStatusTransitionErrorWithCause(from, to string, cause error) *StatusTransitionError {
	return &StatusTransitionError{From: from, To: to, Cause: cause}
}

func (e *StatusTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s -> %s (cause: %s)", ErrInvalidTransition, e.From, e.To, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To))
}

func (e *StatusTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ConcurrencyConflictError indicates that a conditional write lost a race: the
// stored status no longer matches the status the caller based its decision on.
// The caller must re-read and retry or abort.
type ConcurrencyConflictError struct {
	ParamName      string
	ID             any
	ExpectedStatus string
	ActualStatus   string
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError naming the
// entity, its identifier, and the expected versus actual status.
func NewConcurrencyConflictError(paramName string, id any, expected, actual string) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id, ExpectedStatus: expected, ActualStatus: actual}
}

func (e *ConcurrencyConflictError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s %s expected status %s, actual status %s",
		ErrConcurrencyConflict, e.ParamName, e.ID, e.ExpectedStatus, e.ActualStatus))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// ActorForbiddenError indicates that the calling actor's identity or role does
// not satisfy the operation's precondition.
type ActorForbiddenError struct {
	ActorID any
	Reason  string
}

// NewActorForbiddenError creates an ActorForbiddenError for the given actor and reason.
func NewActorForbiddenError(actorID any, reason string) *ActorForbiddenError {
	return &ActorForbiddenError{ActorID: actorID, Reason: reason}
}

func (e *ActorForbiddenError) Error() string {
	return sanitize(fmt.Sprintf("%s: actor %s: %s", ErrActorForbidden, e.ActorID, e.Reason))
}

func (e *ActorForbiddenError) Unwrap() error {
	return ErrActorForbidden
}

// TechnicianUnavailableError indicates that the target technician failed the
// availability check at assignment or reassignment time.
type TechnicianUnavailableError struct {
	TechnicianID any
	Reason       string
}

// NewTechnicianUnavailableError creates a TechnicianUnavailableError for the given technician.
func NewTechnicianUnavailableError(technicianID any, reason string) *TechnicianUnavailableError {
	return &TechnicianUnavailableError{TechnicianID: technicianID, Reason: reason}
}

func (e *TechnicianUnavailableError) Error() string {
	return sanitize(fmt.Sprintf("%s: technician %s: %s", ErrTechnicianUnavailable, e.TechnicianID, e.Reason))
}

func (e *TechnicianUnavailableError) Unwrap() error {
	return ErrTechnicianUnavailable
}
