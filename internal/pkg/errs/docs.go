// Package errs provides the typed errors shared by the pressing service.
//
// Every error type follows the same pattern:
//   - a sentinel variable (ErrValueIsRequired, ErrTransitionNotAllowed, ...)
//     usable with errors.Is
//   - a struct carrying the details, usable with errors.As
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// The lifecycle error taxonomy maps onto these types:
//   - invalid state        -> ValueIsInvalidError
//   - transition refused   -> TransitionNotAllowedError
//   - missing field        -> ValueIsRequiredError
//   - business rule failed -> PreconditionFailedError
//   - concurrent update    -> VersionIsInvalidError
//
// HTTP adapters translate the sentinels into status codes; the Error() text is
// what the user sees.
package errs
