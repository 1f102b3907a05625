// Package errs provides standardized error types for the studyhub core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a numeric value leaves its range
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when an atomic conditional write loses a race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Domain-specific sentinels (invalid transition, order not available,
// dispute already exists, …) live next to the rule that owns them in the
// domain model packages; this package only carries the cross-cutting kinds.
package errs
