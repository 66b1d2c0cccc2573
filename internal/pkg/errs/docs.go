// Package errs provides the standardized error taxonomy for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout both services.
//
// The package defines one error type per failure kind:
//   - UnauthorizedError: missing or invalid bearer token
//   - ForbiddenError: valid token but wrong role or ownership
//   - ObjectNotFoundError: entity does not exist (or ownership is masked)
//   - ConflictError: illegal state transition or duplicate unique key
//   - UpstreamUnavailableError: a required downstream call failed or timed out
//   - ValueIsInvalidError / ValueIsRequiredError: malformed input
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by kind
//
// Transport adapters map the sentinel kinds onto status codes; callers never
// see stack traces or driver-level details, only the kind and a reason.
package errs
