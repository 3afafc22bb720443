package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrVersionIsInvalid     = errors.New("version is invalid")
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrPreconditionFailed   = errors.New("precondition failed")
)

// sanitize flattens a value into a single log-safe line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a lookup that returned nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
	}
	return withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %v", ErrObjectNotFound, e.ParamName, e.ID),
		e.Cause,
	)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports an optimistic concurrency conflict: the stored
// version of an object no longer matches the version the caller read.
type VersionIsInvalidError struct {
	ParamName string
	Expected  int64
	Actual    int64
	Cause     error
}

func NewVersionIsInvalidError(paramName string, expected, actual int64) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Expected: expected, Actual: actual}
}

func NewVersionIsInvalidErrorWithCause(paramName string, expected, actual int64, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Expected: expected, Actual: actual, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s (expected %d, actual %d)",
		ErrVersionIsInvalid, e.ParamName, e.Expected, e.Actual), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// TransitionNotAllowedError reports a state change that the transition graph
// or the actor's permissions do not allow.
type TransitionNotAllowedError struct {
	From  string
	To    string
	Cause error
}

func NewTransitionNotAllowedError(from, to string) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{From: from, To: to}
}

func NewTransitionNotAllowedErrorWithCause(from, to string, cause error) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{From: from, To: to, Cause: cause}
}

func (e *TransitionNotAllowedError) Error() string {
	return withCause(fmt.Sprintf("Transition %s -> %s not allowed", e.From, e.To), e.Cause)
}

func (e *TransitionNotAllowedError) Unwrap() error {
	return ErrTransitionNotAllowed
}

// PreconditionFailedError reports a business rule that blocks an operation.
// Reason is meant to be shown to the user verbatim.
type PreconditionFailedError struct {
	Reason string
	Cause  error
}

func NewPreconditionFailedError(reason string) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason}
}

func NewPreconditionFailedErrorWithCause(reason string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	return withCause(e.Reason, e.Cause)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}
