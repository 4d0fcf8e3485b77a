package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrObjectNotFound    = errors.New("object not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrForbidden         = errors.New("operation is forbidden")
	ErrConflict          = errors.New("concurrent modification conflict")
)

// sanitize flattens multi-line values so error messages stay on one log line.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValueIsRequiredError indicates a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
}

// NewValueIsRequiredError creates an error for a missing required value.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func (e *ValueIsRequiredError) Error() string {
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value does not satisfy its constraints.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value
// wrapping the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for a missing object.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an error for a missing object
// wrapping the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %v (cause: %s)",
			sanitize(e.ParamName), e.ID, sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("object not found: %v", e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError indicates the current order status does not permit
// the requested operation. The caller must re-fetch the order before deciding
// on a different operation; the transition is never retried.
type InvalidTransitionError struct {
	Operation  string
	FromStatus string
}

// NewInvalidTransitionError creates an error for an operation rejected by the
// order state machine.
func NewInvalidTransitionError(operation, fromStatus string) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, FromStatus: fromStatus}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot %s from status %s",
		sanitize(e.Operation), sanitize(e.FromStatus))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientStockError indicates the requested quantity exceeds the stock
// available at order-creation time.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

// NewInsufficientStockError creates an error for a failed stock reservation.
func NewInsufficientStockError(productID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: product %s has %d, requested %d",
		sanitize(e.ProductID), e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// ForbiddenError indicates the caller is not the party the operation requires.
type ForbiddenError struct {
	Operation string
	CallerID  string
}

// NewForbiddenError creates an error for a caller that fails the operation's
// party check.
func NewForbiddenError(operation, callerID string) *ForbiddenError {
	return &ForbiddenError{Operation: operation, CallerID: callerID}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("operation is forbidden: %s is not permitted for caller %s",
		sanitize(e.Operation), sanitize(e.CallerID))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// ConflictError indicates a concurrent transition on the same order or the
// same stock/agent resource won the race. Retry policy is left to the caller.
type ConflictError struct {
	Resource string
	ID       any
}

// NewConflictError creates an error for a lost concurrency race.
func NewConflictError(resource string, id any) *ConflictError {
	return &ConflictError{Resource: resource, ID: id}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("concurrent modification conflict: %s %v was modified by another operation",
		sanitize(e.Resource), e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
