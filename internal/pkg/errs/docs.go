// Package errs provides standardized error types for the returns application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found
//   - OperationNotAllowedError: For when a business rule forbids an operation
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsOutOfRangeError: For when a value lies outside its bounds
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The error kinds surfaced by the return lifecycle operations map onto
// these types as follows: a missing return or swap is ObjectNotFoundError,
// a status-transition or business-rule violation is OperationNotAllowedError,
// and structurally invalid input is ValueIsInvalidError. The enclosing API
// layer translates each kind to a user-facing response.
package errs
