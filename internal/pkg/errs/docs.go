// Package errs provides the standardized error taxonomy for the fulfillment
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package defines one error type per failure class in the pipeline:
//   - ValueIsRequiredError / ValueIsInvalidError: input validation failures,
//     raised before any mutation
//   - ObjectNotFoundError: an identifier did not resolve
//   - ForbiddenError: the access policy denied the operation
//   - ConflictError: a uniqueness rule was violated
//   - InsufficientInventoryError: a reservation exceeded available stock
//   - InvalidStatusTransitionError: a state machine edge outside the
//     transition table
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrForbidden) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause
//   - Error() method for formatting the message
//   - Unwrap() method returning the sentinel
//
// HTTP adapters map the sentinels to status codes; business code classifies
// with errors.Is and never inspects message strings.
package errs
