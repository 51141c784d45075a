package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the targets for errors.Is matching.
// Each custom error type in this package unwraps to exactly one of them,
// which lets callers classify failures without inspecting concrete types.
var (
	// ErrObjectNotFound indicates that a requested object does not exist.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates that a provided value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired indicates that a required value was not provided.
	ErrValueIsRequired = errors.New("value is required")

	// ErrPersistenceFailed indicates that a durable-store write could not be
	// completed. It is the marker for the one failure class the order
	// processor absorbs per order instead of aborting the batch.
	ErrPersistenceFailed = errors.New("persistence failed")

	// ErrClassificationFailed indicates that the remote classification call
	// could not produce a response envelope (transport, timeout, decode or
	// open-circuit failures).
	ErrClassificationFailed = errors.New("classification failed")
)

// sanitize collapses newlines so that error messages stay on one log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError reports that an object with the given identifier
// could not be found. Unwraps to ErrObjectNotFound.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// the underlying cause.
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

// ValueIsInvalidError reports that a named value failed validation.
// Unwraps to ErrValueIsInvalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the underlying cause.
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

// ValueIsRequiredError reports that a required value is missing.
// Unwraps to ErrValueIsRequired.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// the underlying cause.
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

// PersistenceError reports a failed write against the durable order store.
// It is a distinct error kind from other repository failures so that callers
// can match it with errors.Is(err, ErrPersistenceFailed) and contain it
// locally. Unwraps to ErrPersistenceFailed.
type PersistenceError struct {
	Operation string
	Cause     error
}

// NewPersistenceError creates a PersistenceError without a cause.
func NewPersistenceError(operation string) *PersistenceError {
	return &PersistenceError{Operation: operation}
}

// NewPersistenceErrorWithCause creates a PersistenceError wrapping the
// underlying storage failure.
func NewPersistenceErrorWithCause(operation string, cause error) *PersistenceError {
	return &PersistenceError{Operation: operation, Cause: cause}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPersistenceFailed, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPersistenceFailed, e.Operation))
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailed
}

// ClassificationError reports that the remote classification capability
// failed to return an envelope for the given order.
// Unwraps to ErrClassificationFailed.
type ClassificationError struct {
	OrderID string
	Cause   error
}

// NewClassificationError creates a ClassificationError without a cause.
func NewClassificationError(orderID string) *ClassificationError {
	return &ClassificationError{OrderID: orderID}
}

// NewClassificationErrorWithCause creates a ClassificationError wrapping the
// underlying transport failure.
func NewClassificationErrorWithCause(orderID string, cause error) *ClassificationError {
	return &ClassificationError{OrderID: orderID, Cause: cause}
}

func (e *ClassificationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrClassificationFailed, e.OrderID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrClassificationFailed, e.OrderID))
}

func (e *ClassificationError) Unwrap() error {
	return ErrClassificationFailed
}
