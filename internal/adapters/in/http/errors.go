package http

import (
	"errors"
	"net/http"

	"pressing/internal/core/domain/services"
	"pressing/internal/pkg/errs"
)

// StatusCode maps an application error to its HTTP status.
//
//	not found                            404
//	transition refused, version conflict 409
//	missing, invalid or blocked input    422
//	side effect failed                   502
//	anything else                        500
func StatusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrTransitionNotAllowed),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, services.ErrSideEffectFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
