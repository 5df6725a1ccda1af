// Package errs provides the error kinds shared by the trip engine and its adapters.
//
// Every kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsRequired, ...) to match with errors.Is
//   - a struct carrying details, built with NewX or NewXWithCause
//   - Unwrap returning the sentinel
//
// Kinds used by the engine:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: caller input was
//     rejected before anything changed (see IsValidation)
//   - ObjectNotFoundError: unknown trip, vehicle or driver id
//   - TransitionIsInvalidError: the subject's status does not allow the action
//   - InconsistentStateError: a state change could not be recorded in the audit trail
package errs
