// Package errs provides standardized error types for the field operations service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error type per failure kind in the engine's taxonomy:
//   - ObjectNotFoundError: an order or technician id does not resolve
//   - ValueIsInvalidError / ValueIsRequiredError / ValueIsOutOfRangeError: malformed
//     or missing payload values
//   - StatusTransitionError: a status change not present in the transition table
//   - ConcurrencyConflictError: a conditional write lost a race against a concurrent caller
//   - ActorForbiddenError: the actor's role or identity fails an operation precondition
//   - TechnicianUnavailableError: the target technician fails the availability check
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConcurrencyConflict)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All errors in this package are recoverable by the caller: they carry enough
// context (identifiers, expected versus actual status) to retry or present to a
// user, and none of them signals a fault in the service instance itself.
package errs
