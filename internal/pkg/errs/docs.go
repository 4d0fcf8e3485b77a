// Package errs provides standardized error types for the fulfillment application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Besides the generic construction errors (value required/invalid, object not
// found), the package carries the orchestrator's failure taxonomy: invalid
// status transitions, insufficient stock, forbidden callers, and lost
// concurrency races. All of them are terminal validation outcomes that are
// returned to the caller synchronously and never retried by the orchestrator.
package errs
