// Package errs provides standardized error types for the order pipeline.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - PersistenceError: for failed writes against the durable order store
//   - ClassificationError: for failed remote classification calls
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrPersistenceFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is matching against the sentinel
//
// PersistenceError and ClassificationError are deliberately distinct kinds:
// the order processor contains them locally (db_error / api_failure order
// statuses) while every other failure propagates and aborts the batch.
package errs
